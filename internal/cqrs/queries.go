package cqrs

import (
	"context"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/service"
)

// ListAllTripsQuery returns a summary of every trip.
type ListAllTripsQuery struct{}

// SearchTripsByCountryQuery returns summaries of trips to Country.
type SearchTripsByCountryQuery struct {
	Country string
}

// GetSingleTripQuery returns the details of trip ID.
type GetSingleTripQuery struct {
	ID int64
}

// ListCountriesQuery returns every known destination.
type ListCountriesQuery struct{}

// ExportQuery returns the flat export of trips and registrations.
type ExportQuery struct{}

type listAllTripsHandler struct{ svc TripService }

func (h listAllTripsHandler) Handle(ctx context.Context, _ ListAllTripsQuery) ([]service.TripSummary, error) {
	return h.svc.GetAll(ctx)
}

type searchTripsByCountryHandler struct{ svc TripService }

func (h searchTripsByCountryHandler) Handle(ctx context.Context, q SearchTripsByCountryQuery) ([]service.TripSummary, error) {
	return h.svc.GetByCountry(ctx, q.Country)
}

type getSingleTripHandler struct{ svc TripService }

func (h getSingleTripHandler) Handle(ctx context.Context, q GetSingleTripQuery) (service.TripDetails, error) {
	return h.svc.GetDetails(ctx, q.ID)
}

type listCountriesHandler struct{ svc TripService }

func (h listCountriesHandler) Handle(ctx context.Context, _ ListCountriesQuery) ([]domain.Country, error) {
	return h.svc.ListCountries(ctx)
}

type exportHandler struct{ svc Exporter }

func (h exportHandler) Handle(ctx context.Context, _ ExportQuery) ([]domain.ExportRow, error) {
	return h.svc.Export(ctx)
}
