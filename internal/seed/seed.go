// Package seed holds the country reference table and loads it into storage
// at startup.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"iter"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// countriesCSV is a code,name table of ISO 3166-1 alpha-3 codes with short
// English names. The first line is a header.
//
//go:embed countries.csv
var countriesCSV []byte

type region struct {
	code, name string
}

var regions = mustParseRegions(countriesCSV)

// mustParseRegions panics on malformed data; the table is compiled in, so a
// bad row is a build defect, not a runtime condition.
func mustParseRegions(data []byte) []region {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		panic(fmt.Sprintf("seed: parse countries.csv: %v", err))
	}
	if len(records) == 0 {
		panic("seed: countries.csv is empty")
	}

	out := make([]region, 0, len(records)-1)
	for _, rec := range records[1:] {
		out = append(out, region{code: rec[0], name: rec[1]})
	}
	return out
}

// Regions yields the raw (code, name) pairs of the reference table in file
// order. Names are not yet cut to any length.
func Regions() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, r := range regions {
			if !yield(r.code, r.name) {
				return
			}
		}
	}
}

// CountryWriter persists countries. repo.CountryRepo satisfies it.
type CountryWriter interface {
	UpsertAll(ctx context.Context, countries []domain.Country) error
}

// Countries builds every Country from the reference table and upserts them in
// one batch. It returns how many countries were written. Running it again
// only refreshes names.
func Countries(ctx context.Context, w CountryWriter, l domain.Limits) (int, error) {
	var countries []domain.Country
	for c, err := range domain.AllCountries(Regions(), l) {
		if err != nil {
			return 0, fmt.Errorf("seed.Countries: %w", err)
		}
		countries = append(countries, c)
	}

	if err := w.UpsertAll(ctx, countries); err != nil {
		return 0, fmt.Errorf("seed.Countries: %w", err)
	}
	return len(countries), nil
}
