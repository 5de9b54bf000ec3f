package domain

import "time"

// Registration is one attendee's claim on a seat, identified by email.
// It is immutable once created and is removed together with its trip.
type Registration struct {
	ID           int64
	TripID       int64
	Email        string
	RegisteredAt time.Time
}

// NewRegistration validates email and the owning trip and stamps the
// registration with now. now must be the caller's current clock reading;
// TripService passes its own clock and is the only caller, so RegisteredAt
// is never ahead of that clock. Capacity and duplicate checks belong to the
// service, which sees the trip's current registrations.
func NewRegistration(email string, trip *Trip, l Limits, now time.Time) (Registration, error) {
	if err := validateRegistration(email, trip, l); err != nil {
		return Registration{}, err
	}
	return Registration{
		TripID:       trip.ID,
		Email:        email,
		RegisteredAt: now,
	}, nil
}
