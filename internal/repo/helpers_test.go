package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/repo"
	"github.com/pkordes/trip-registrations/testutil"
)

// repos bundles every repository bound to the same test transaction.
type repos struct {
	trips         repo.TripRepo
	countries     repo.CountryRepo
	registrations repo.RegistrationRepo
}

// newTestRepos returns repositories sharing one test transaction that is
// rolled back when the test finishes.
func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		trips:         repo.NewTripRepo(tx),
		countries:     repo.NewCountryRepo(tx),
		registrations: repo.NewRegistrationRepo(tx),
	}
}

// Test-only country codes; the X prefix is reserved for user assignment in
// ISO 3166 so they never clash with seeded rows.
var (
	testland  = domain.Country{Code: "XTL", Name: "Testland"}
	otherland = domain.Country{Code: "XOL", Name: "Otherland"}
)

// seedCountries inserts the test countries inside the test transaction.
func seedCountries(t *testing.T, r repos) {
	t.Helper()
	err := r.countries.UpsertAll(context.Background(), []domain.Country{testland, otherland})
	require.NoError(t, err, "seed countries")
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture(name string) domain.Trip {
	desc := "A week of testing."
	c := testland
	return domain.Trip{
		Name:          name,
		Description:   &desc,
		StartDate:     time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
		NumberOfSeats: 10,
		Country:       &c,
	}
}

// createTrip persists a fixture and returns its id.
func createTrip(t *testing.T, r repos, name string) int64 {
	t.Helper()
	id, err := r.trips.Create(context.Background(), tripFixture(name))
	require.NoError(t, err, "create trip %q", name)
	return id
}

// register persists a registration for tripID.
func register(t *testing.T, r repos, tripID int64, email string, at time.Time) domain.Registration {
	t.Helper()
	reg, err := r.registrations.Create(context.Background(), domain.Registration{
		TripID:       tripID,
		Email:        email,
		RegisteredAt: at,
	})
	require.NoError(t, err, "register %q", email)
	return reg
}
