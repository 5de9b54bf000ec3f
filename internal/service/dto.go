package service

import (
	"time"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// CreateTripInput is the payload for CreateTrip. The country is given by its
// English name and resolved case-insensitively.
type CreateTripInput struct {
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	StartDate     time.Time `json:"startDate"`
	NumberOfSeats int       `json:"numberOfSeats"`
	CountryName   string    `json:"countryName"`
}

// EditTripInput is the payload for EditTrip. A key missing from the JSON
// document leaves the field unchanged; "description": null clears it.
type EditTripInput struct {
	Name          domain.Optional[string]    `json:"name"`
	Description   domain.Optional[*string]   `json:"description"`
	StartDate     domain.Optional[time.Time] `json:"startDate"`
	NumberOfSeats domain.Optional[int]       `json:"numberOfSeats"`
	CountryName   domain.Optional[string]    `json:"countryName"`
}

// TripSummary is the list projection of a trip.
type TripSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	StartDate time.Time `json:"startDate"`
}

// TripDetails is the full projection of one trip with its registrations.
type TripDetails struct {
	Name                string                `json:"name"`
	Country             string                `json:"country"`
	Description         *string               `json:"description"`
	StartDate           time.Time             `json:"startDate"`
	NumberOfSeats       int                   `json:"numberOfSeats"`
	RegistrationDetails []RegistrationDetails `json:"registrationDetails"`
}

// RegistrationDetails is one entry of TripDetails.RegistrationDetails.
type RegistrationDetails struct {
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func toSummaries(trips []domain.Trip) []TripSummary {
	out := make([]TripSummary, 0, len(trips))
	for _, t := range trips {
		out = append(out, TripSummary{
			ID:        t.ID,
			Name:      t.Name,
			Country:   t.CountryName(),
			StartDate: t.StartDate,
		})
	}
	return out
}

func toDetails(t domain.Trip) TripDetails {
	regs := make([]RegistrationDetails, 0, len(t.Registrations))
	for _, r := range t.Registrations {
		regs = append(regs, RegistrationDetails{Email: r.Email, RegisteredAt: r.RegisteredAt})
	}
	return TripDetails{
		Name:                t.Name,
		Country:             t.CountryName(),
		Description:         t.Description,
		StartDate:           t.StartDate,
		NumberOfSeats:       t.NumberOfSeats,
		RegistrationDetails: regs,
	}
}
