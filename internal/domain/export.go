package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per registration, with trip fields
// repeated for every registration on that trip. Trips with no registrations
// yield one row with zero values for the registration fields.
type ExportRow struct {
	TripID        int64
	TripName      string
	CountryCode   string
	CountryName   string
	StartDate     time.Time
	NumberOfSeats int

	// Zero values when the trip has no registrations.
	Email        string
	RegisteredAt *time.Time
}
