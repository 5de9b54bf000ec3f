package service_test

import (
	"context"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create            func(ctx context.Context, trip domain.Trip) (int64, error)
	getByID           func(ctx context.Context, id int64) (domain.Trip, error)
	existsByName      func(ctx context.Context, name string) (bool, error)
	list              func(ctx context.Context) ([]domain.Trip, error)
	listByCountryName func(ctx context.Context, country string) ([]domain.Trip, error)
	update            func(ctx context.Context, trip domain.Trip) error
	delete            func(ctx context.Context, id int64) error
	exportRows        func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (int64, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.existsByName(ctx, name)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListByCountryName(ctx context.Context, country string) ([]domain.Trip, error) {
	return m.listByCountryName(ctx, country)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) error {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockTripRepo) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	return m.exportRows(ctx)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockCountryRepo is a hand-written test double for repo.CountryRepo.
type mockCountryRepo struct {
	findByName func(ctx context.Context, name string) (domain.Country, error)
	list       func(ctx context.Context) ([]domain.Country, error)
	upsertAll  func(ctx context.Context, countries []domain.Country) error
}

func (m *mockCountryRepo) FindByName(ctx context.Context, name string) (domain.Country, error) {
	return m.findByName(ctx, name)
}
func (m *mockCountryRepo) List(ctx context.Context) ([]domain.Country, error) {
	return m.list(ctx)
}
func (m *mockCountryRepo) UpsertAll(ctx context.Context, countries []domain.Country) error {
	return m.upsertAll(ctx, countries)
}

var _ repo.CountryRepo = (*mockCountryRepo)(nil)

// mockRegistrationRepo is a hand-written test double for repo.RegistrationRepo.
type mockRegistrationRepo struct {
	create func(ctx context.Context, reg domain.Registration) (domain.Registration, error)
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	return m.create(ctx, reg)
}

var _ repo.RegistrationRepo = (*mockRegistrationRepo)(nil)
