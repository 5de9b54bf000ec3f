package domain

// Limits holds the numeric bounds enforced by the validation rules.
// Every validating constructor takes a Limits value instead of reading
// package globals, so tests can tighten or relax individual bounds.
type Limits struct {
	// CountryCodeLength is the exact length of a country code (ISO 3166 alpha-3).
	CountryCodeLength int

	// MaxCountryNameLength caps country names. The seed path truncates to it;
	// NewCountry rejects longer names.
	MaxCountryNameLength int

	// MaxTripNameLength caps trip names, counted in runes.
	MaxTripNameLength int

	// MinSeats and MaxSeats bound a trip's number of seats, both inclusive.
	MinSeats int
	MaxSeats int

	// MaxEmailLength caps email addresses. 254 is the longest address that
	// fits an SMTP forward path (RFC 5321).
	MaxEmailLength int
}

// DefaultLimits returns the production bounds.
func DefaultLimits() Limits {
	return Limits{
		CountryCodeLength:    3,
		MaxCountryNameLength: 20,
		MaxTripNameLength:    50,
		MinSeats:             1,
		MaxSeats:             100,
		MaxEmailLength:       254,
	}
}
