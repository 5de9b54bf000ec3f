package cqrs

import (
	"context"

	"github.com/pkordes/trip-registrations/internal/service"
)

// CreateTripCommand asks for a new trip. The result is the new trip id.
type CreateTripCommand struct {
	Input service.CreateTripInput
}

// EditTripCommand applies a partial update to trip ID.
type EditTripCommand struct {
	ID    int64
	Input service.EditTripInput
}

// DeleteTripCommand removes trip ID. The result reports whether it existed.
type DeleteTripCommand struct {
	ID int64
}

// RegisterForTripCommand registers Email for trip ID.
type RegisterForTripCommand struct {
	ID    int64
	Email string
}

type createTripHandler struct{ svc TripService }

func (h createTripHandler) Handle(ctx context.Context, cmd CreateTripCommand) (int64, error) {
	return h.svc.CreateTrip(ctx, cmd.Input)
}

type editTripHandler struct{ svc TripService }

func (h editTripHandler) Handle(ctx context.Context, cmd EditTripCommand) (None, error) {
	return None{}, h.svc.EditTrip(ctx, cmd.ID, cmd.Input)
}

type deleteTripHandler struct{ svc TripService }

func (h deleteTripHandler) Handle(ctx context.Context, cmd DeleteTripCommand) (bool, error) {
	return h.svc.DeleteTrip(ctx, cmd.ID)
}

type registerForTripHandler struct{ svc TripService }

func (h registerForTripHandler) Handle(ctx context.Context, cmd RegisterForTripCommand) (None, error) {
	return None{}, h.svc.Register(ctx, cmd.ID, cmd.Email)
}
