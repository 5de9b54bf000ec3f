package domain

import (
	"iter"
	"strings"
)

// Country is a valid trip destination, identified by its three-letter code.
// Countries are seeded once at startup and never change afterwards.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCountry validates code and name and returns a Country.
// Codes compare case-insensitively, so the stored code is upper-cased.
// Names longer than l.MaxCountryNameLength are rejected, never truncated.
func NewCountry(code, name string, l Limits) (Country, error) {
	if err := validateCountry(code, name, l); err != nil {
		return Country{}, err
	}
	return Country{Code: strings.ToUpper(code), Name: name}, nil
}

// AllCountries turns raw (code, name) region pairs into Countries.
// Duplicate codes (compared case-insensitively) are skipped after the first,
// and names are cut to l.MaxCountryNameLength before validation.
// The sequence is recomputed from regions on every iteration.
func AllCountries(regions iter.Seq2[string, string], l Limits) iter.Seq2[Country, error] {
	return func(yield func(Country, error) bool) {
		seen := make(map[string]struct{})
		for code, name := range regions {
			key := strings.ToUpper(strings.TrimSpace(code))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			c, err := NewCountry(code, truncateName(name, l.MaxCountryNameLength), l)
			if !yield(c, err) {
				return
			}
		}
	}
}

// truncateName cuts name to at most max runes and drops any trailing space
// left behind by the cut.
func truncateName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return strings.TrimRight(string(r[:max]), " ")
}
