// Package domain contains the core types and business rules for the trip
// registration service: countries, trips, registrations, the validation rules
// that guard them, and the error taxonomy handlers map to HTTP statuses.
// It depends on nothing inside the module.
package domain

import (
	"strings"
	"time"
)

// Trip is a travel offering with a destination country, a start date and a
// fixed number of seats. A trip owns its registrations; the country is only
// referenced.
type Trip struct {
	// ID is assigned by storage; zero until the trip is persisted.
	ID            int64
	Name          string
	Description   *string // nil when the trip has no description
	StartDate     time.Time
	NumberOfSeats int
	Country       *Country

	// Registrations are kept in registration order.
	Registrations []Registration
}

// TripParams is the full field set accepted by NewTrip.
type TripParams struct {
	Name          string
	Description   *string
	StartDate     time.Time
	NumberOfSeats int
	Country       *Country
}

// TripUpdate carries a partial edit. Fields left as None keep their current
// value; Description set to Some(nil) clears the description.
type TripUpdate struct {
	Name          Optional[string]
	Description   Optional[*string]
	StartDate     Optional[time.Time]
	NumberOfSeats Optional[int]
	Country       Optional[*Country]
}

// NewTrip validates p as a whole and returns a trip with no registrations and
// no id. The first violated rule is reported as an *InputError.
func NewTrip(p TripParams, l Limits, now time.Time) (Trip, error) {
	if err := validateTrip(p, l, now); err != nil {
		return Trip{}, err
	}
	return Trip{
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate,
		NumberOfSeats: p.NumberOfSeats,
		Country:       p.Country,
		Registrations: []Registration{},
	}, nil
}

// Update merges u over the current values and revalidates the merged result
// with the same rules as NewTrip, so an untouched start date that has since
// passed also fails. The trip is only modified when validation succeeds.
//
// Registration count vs. seats is not checked here; that policy lives in the
// service.
func (t *Trip) Update(u TripUpdate, l Limits, now time.Time) error {
	merged := TripParams{
		Name:          u.Name.OrElse(t.Name),
		Description:   u.Description.OrElse(t.Description),
		StartDate:     u.StartDate.OrElse(t.StartDate),
		NumberOfSeats: u.NumberOfSeats.OrElse(t.NumberOfSeats),
		Country:       u.Country.OrElse(t.Country),
	}
	if err := validateTrip(merged, l, now); err != nil {
		return err
	}

	t.Name = merged.Name
	t.Description = merged.Description
	t.StartDate = merged.StartDate
	t.NumberOfSeats = merged.NumberOfSeats
	t.Country = merged.Country
	return nil
}

// RegistrationCount returns the number of seats already taken.
func (t *Trip) RegistrationCount() int {
	return len(t.Registrations)
}

// IsFull reports whether every seat is taken.
func (t *Trip) IsFull() bool {
	return t.RegistrationCount() >= t.NumberOfSeats
}

// HasRegistration reports whether email is already registered, ignoring case.
func (t *Trip) HasRegistration(email string) bool {
	for _, r := range t.Registrations {
		if strings.EqualFold(r.Email, email) {
			return true
		}
	}
	return false
}

// CountryName returns the destination name, or "" when no country is set.
func (t *Trip) CountryName() string {
	if t.Country == nil {
		return ""
	}
	return t.Country.Name
}
