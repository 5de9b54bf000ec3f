package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// singleLine rejects any carriage return or line feed.
var singleLine = regexp.MustCompile(`^[^\r\n]*$`)

// rule pairs a field name with a value and the ozzo rules that value must pass.
// Rules run in slice order and validation stops at the first failing rule,
// so the order of a []rule is part of the contract.
type rule struct {
	field string
	value any
	rules []validation.Rule
}

// firstViolation runs rules in order and returns an InputError for the first
// one that fails.
func firstViolation(rules []rule) error {
	for _, r := range rules {
		if err := validation.Validate(r.value, r.rules...); err != nil {
			return NewInputError(r.field, err.Error())
		}
	}
	return nil
}

func validateCountry(code, name string, l Limits) error {
	return firstViolation([]rule{
		{"code", strings.TrimSpace(code), []validation.Rule{
			validation.Required.Error("Country code cannot be null or empty."),
		}},
		{"code", code, []validation.Rule{
			validation.RuneLength(l.CountryCodeLength, l.CountryCodeLength).
				Error(fmt.Sprintf("Country code must be exactly %d characters long.", l.CountryCodeLength)),
		}},
		{"name", strings.TrimSpace(name), []validation.Rule{
			validation.Required.Error("Country name cannot be null or empty."),
		}},
		{"name", name, []validation.Rule{
			validation.RuneLength(0, l.MaxCountryNameLength).
				Error(fmt.Sprintf("Country name has max length of %d characters.", l.MaxCountryNameLength)),
		}},
	})
}

// validateTrip checks the full field set of a trip, in this order:
// name presence, name shape, description, start date, seats, country.
func validateTrip(p TripParams, l Limits, now time.Time) error {
	rules := []rule{
		{"name", strings.TrimSpace(p.Name), []validation.Rule{
			validation.Required.Error("Trip name cannot be null or empty."),
		}},
		{"name", p.Name, []validation.Rule{
			validation.Match(singleLine).Error(nameShapeMessage(l)),
			validation.RuneLength(0, l.MaxTripNameLength).Error(nameShapeMessage(l)),
		}},
	}
	if p.Description != nil {
		rules = append(rules, rule{"description", strings.TrimSpace(*p.Description), []validation.Rule{
			validation.Required.Error("Trip description cannot be empty or whitespace."),
		}})
	}
	seatsMessage := fmt.Sprintf("Number of seats must be between %d and %d.", l.MinSeats, l.MaxSeats)
	rules = append(rules,
		rule{"startDate", p.StartDate, []validation.Rule{
			validation.Required.Error("Trip start date must be in the future."),
			validation.Min(now).Exclusive().Error("Trip start date must be in the future."),
		}},
		rule{"numberOfSeats", p.NumberOfSeats, []validation.Rule{
			validation.Required.Error(seatsMessage),
			validation.Min(l.MinSeats).Error(seatsMessage),
			validation.Max(l.MaxSeats).Error(seatsMessage),
		}},
		rule{"country", p.Country, []validation.Rule{
			validation.NotNil.Error("Trip country cannot be null."),
		}},
	)
	return firstViolation(rules)
}

func nameShapeMessage(l Limits) string {
	return fmt.Sprintf("Trip name must be a single line of at most %d characters.", l.MaxTripNameLength)
}

// validateRegistration checks email presence, email length, email syntax,
// then the owning trip. Length runs before syntax so an over-long address is
// reported as such and not echoed back in full.
func validateRegistration(email string, trip *Trip, l Limits) error {
	return firstViolation([]rule{
		{"email", strings.TrimSpace(email), []validation.Rule{
			validation.Required.Error("Email cannot be null or empty."),
		}},
		{"email", email, []validation.Rule{
			validation.RuneLength(0, l.MaxEmailLength).
				Error(fmt.Sprintf("Email has max length of %d characters.", l.MaxEmailLength)),
			is.EmailFormat.Error(fmt.Sprintf("'%s' is not a valid email address.", email)),
		}},
		{"trip", trip, []validation.Rule{
			validation.NotNil.Error("Registration must belong to a trip."),
		}},
	})
}
