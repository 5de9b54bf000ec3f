package cqrs

import (
	"context"
	"log/slog"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/service"
)

// TripService is the subset of *service.TripService the handlers call.
type TripService interface {
	CreateTrip(ctx context.Context, in service.CreateTripInput) (int64, error)
	EditTrip(ctx context.Context, id int64, in service.EditTripInput) error
	DeleteTrip(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context) ([]service.TripSummary, error)
	GetByCountry(ctx context.Context, country string) ([]service.TripSummary, error)
	GetDetails(ctx context.Context, id int64) (service.TripDetails, error)
	Register(ctx context.Context, id int64, email string) error
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

var _ TripService = (*service.TripService)(nil)

// Exporter produces the flat export.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

var _ Exporter = (*service.ExportService)(nil)

// Bus holds one handler per command and query. Fields are exported so tests
// can replace individual handlers.
type Bus struct {
	CreateTrip      Handler[CreateTripCommand, int64]
	EditTrip        Handler[EditTripCommand, None]
	DeleteTrip      Handler[DeleteTripCommand, bool]
	RegisterForTrip Handler[RegisterForTripCommand, None]

	ListAllTrips         Handler[ListAllTripsQuery, []service.TripSummary]
	SearchTripsByCountry Handler[SearchTripsByCountryQuery, []service.TripSummary]
	GetSingleTrip        Handler[GetSingleTripQuery, service.TripDetails]
	ListCountries        Handler[ListCountriesQuery, []domain.Country]
	Export               Handler[ExportQuery, []domain.ExportRow]
}

// NewBus wires every handler to svc and exporter and wraps each one with
// debug logging.
func NewBus(svc TripService, exporter Exporter, logger *slog.Logger) *Bus {
	return &Bus{
		CreateTrip:      logged(logger, "CreateTrip", Handler[CreateTripCommand, int64](createTripHandler{svc})),
		EditTrip:        logged(logger, "EditTrip", Handler[EditTripCommand, None](editTripHandler{svc})),
		DeleteTrip:      logged(logger, "DeleteTrip", Handler[DeleteTripCommand, bool](deleteTripHandler{svc})),
		RegisterForTrip: logged(logger, "RegisterForTrip", Handler[RegisterForTripCommand, None](registerForTripHandler{svc})),

		ListAllTrips:         logged(logger, "ListAllTrips", Handler[ListAllTripsQuery, []service.TripSummary](listAllTripsHandler{svc})),
		SearchTripsByCountry: logged(logger, "SearchTripsByCountry", Handler[SearchTripsByCountryQuery, []service.TripSummary](searchTripsByCountryHandler{svc})),
		GetSingleTrip:        logged(logger, "GetSingleTrip", Handler[GetSingleTripQuery, service.TripDetails](getSingleTripHandler{svc})),
		ListCountries:        logged(logger, "ListCountries", Handler[ListCountriesQuery, []domain.Country](listCountriesHandler{svc})),
		Export:               logged(logger, "Export", Handler[ExportQuery, []domain.ExportRow](exportHandler{exporter})),
	}
}
