package handler

import (
	"net/http"

	"github.com/pkordes/trip-registrations/internal/cqrs"
	"github.com/pkordes/trip-registrations/internal/service"
)

type createTripResponse struct {
	ID int64 `json:"id"`
}

type deleteTripResponse struct {
	Deleted bool `json:"deleted"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var in service.CreateTripInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := s.bus.CreateTrip.Handle(r.Context(), cqrs.CreateTripCommand{Input: in})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createTripResponse{ID: id})
}

// EditTrip handles PUT /trips/{id}. Keys missing from the body keep their
// current value.
func (s *Server) EditTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in service.EditTripInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.bus.EditTrip.Handle(r.Context(), cqrs.EditTripCommand{ID: id, Input: in}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrip handles DELETE /trips/{id}. An unknown id answers
// {"deleted": false} with 200.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	deleted, err := s.bus.DeleteTrip.Handle(r.Context(), cqrs.DeleteTripCommand{ID: id})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteTripResponse{Deleted: deleted})
}

// ListAllTrips handles GET /trips.
func (s *Server) ListAllTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.bus.ListAllTrips.Handle(r.Context(), cqrs.ListAllTripsQuery{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// SearchTripsByCountry handles GET /trips/country/{country}.
func (s *Server) SearchTripsByCountry(w http.ResponseWriter, r *http.Request) {
	var country string
	if err := pathParam(r, "country", &country); err != nil {
		s.writeError(w, r, err)
		return
	}

	trips, err := s.bus.SearchTripsByCountry.Handle(r.Context(), cqrs.SearchTripsByCountryQuery{Country: country})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// GetSingleTrip handles GET /trips/{id}.
func (s *Server) GetSingleTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	details, err := s.bus.GetSingleTrip.Handle(r.Context(), cqrs.GetSingleTripQuery{ID: id})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// RegisterForTrip handles POST /trips/{id}/register?email=.
func (s *Server) RegisterForTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var email string
	if err := queryParam(r, "email", true, &email); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.bus.RegisterForTrip.Handle(r.Context(), cqrs.RegisterForTripCommand{ID: id, Email: email}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
