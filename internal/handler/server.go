// Package handler implements the HTTP transport for the trips API.
// All handlers are methods on Server, split into domain-specific files
// (health.go, trip.go, ...). Handlers bind the request, dispatch a command or
// query on the cqrs.Bus and map the result or error to a response.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-registrations/internal/cqrs"
)

// Server holds the dependencies shared by every handler.
type Server struct {
	bus        *cqrs.Bus
	logger     *slog.Logger
	newErrorID func() uuid.UUID
}

// NewServer constructs the Server with all its dependencies.
func NewServer(bus *cqrs.Bus, logger *slog.Logger) *Server {
	return &Server{bus: bus, logger: logger, newErrorID: uuid.New}
}

// Routes returns a chi router with every API route registered.
// main.go mounts it under "/" behind the shared middleware stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListAllTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/country/{country}", s.SearchTripsByCountry)
		r.Get("/{id}", s.GetSingleTrip)
		r.Put("/{id}", s.EditTrip)
		r.Delete("/{id}", s.DeleteTrip)
		r.Post("/{id}/register", s.RegisterForTrip)
	})

	r.Get("/countries", s.ListCountries)
	r.Get("/export", s.GetExport)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Route not found."})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "Method not allowed."})
	})
	return r
}
