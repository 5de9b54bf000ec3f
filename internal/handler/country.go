package handler

import (
	"net/http"

	"github.com/pkordes/trip-registrations/internal/cqrs"
)

// ListCountries handles GET /countries.
func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.bus.ListCountries.Handle(r.Context(), cqrs.ListCountriesQuery{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}
