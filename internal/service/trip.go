// Package service contains the business logic for the trips API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/repo"
)

// TripService is the trip application service. Every call re-reads fresh
// state from the repos; nothing is cached between calls.
type TripService struct {
	trips         repo.TripRepo
	countries     repo.CountryRepo
	registrations repo.RegistrationRepo
	limits        domain.Limits
	now           func() time.Time
}

// Option configures a TripService.
type Option func(*TripService)

// WithLimits overrides domain.DefaultLimits.
func WithLimits(l domain.Limits) Option {
	return func(s *TripService) { s.limits = l }
}

// WithClock overrides the clock used for start date checks and registration
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TripService) { s.now = now }
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, countries repo.CountryRepo, registrations repo.RegistrationRepo, opts ...Option) *TripService {
	s := &TripService{
		trips:         trips,
		countries:     countries,
		registrations: registrations,
		limits:        domain.DefaultLimits(),
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTrip resolves the country, rejects duplicate names and persists a new
// trip. It returns the id assigned by storage.
func (s *TripService) CreateTrip(ctx context.Context, in CreateTripInput) (int64, error) {
	country, err := s.findCountry(ctx, in.CountryName)
	if err != nil {
		return 0, err
	}

	exists, err := s.trips.ExistsByName(ctx, in.Name)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.CreateTrip: %w", err)
	}
	if exists {
		return 0, duplicateName(in.Name)
	}

	trip, err := domain.NewTrip(domain.TripParams{
		Name:          in.Name,
		Description:   in.Description,
		StartDate:     in.StartDate,
		NumberOfSeats: in.NumberOfSeats,
		Country:       &country,
	}, s.limits, s.now())
	if err != nil {
		return 0, err
	}

	id, err := s.trips.Create(ctx, trip)
	if errors.Is(err, domain.ErrConflict) {
		return 0, duplicateName(in.Name)
	}
	if err != nil {
		return 0, fmt.Errorf("service.TripService.CreateTrip: %w", err)
	}
	return id, nil
}

// EditTrip applies a partial update to trip id. Seats may not drop below the
// number of people already registered.
func (s *TripService) EditTrip(ctx context.Context, id int64, in EditTripInput) error {
	trip, err := s.loadTrip(ctx, id)
	if err != nil {
		return err
	}

	update := domain.TripUpdate{
		Name:          in.Name,
		Description:   in.Description,
		StartDate:     in.StartDate,
		NumberOfSeats: in.NumberOfSeats,
	}

	if name, ok := in.CountryName.Get(); ok {
		country, err := s.findCountry(ctx, name)
		if err != nil {
			return err
		}
		update.Country = domain.Some(&country)
	}

	if seats, ok := in.NumberOfSeats.Get(); ok && seats < trip.RegistrationCount() {
		return domain.NewInputError("numberOfSeats", fmt.Sprintf(
			"Number of seats cannot be lower than number of already registered people. There are %d registered users.",
			trip.RegistrationCount()))
	}

	if err := trip.Update(update, s.limits, s.now()); err != nil {
		return err
	}

	err = s.trips.Update(ctx, trip)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.TripNotFound(id)
	case errors.Is(err, domain.ErrConflict):
		return duplicateName(trip.Name)
	case err != nil:
		return fmt.Errorf("service.TripService.EditTrip: %w", err)
	}
	return nil
}

// DeleteTrip removes trip id and its registrations. It reports false, not an
// error, when the trip does not exist.
func (s *TripService) DeleteTrip(ctx context.Context, id int64) (bool, error) {
	err := s.trips.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service.TripService.DeleteTrip: %w", err)
	}
	return true, nil
}

// GetAll returns every trip as a summary.
func (s *TripService) GetAll(ctx context.Context) ([]TripSummary, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.GetAll: %w", err)
	}
	return toSummaries(trips), nil
}

// GetByCountry returns summaries of trips to country, matched ignoring case.
// An unknown country yields an empty list.
func (s *TripService) GetByCountry(ctx context.Context, country string) ([]TripSummary, error) {
	trips, err := s.trips.ListByCountryName(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.GetByCountry: %w", err)
	}
	return toSummaries(trips), nil
}

// GetDetails returns trip id with its registrations in registration order.
func (s *TripService) GetDetails(ctx context.Context, id int64) (TripDetails, error) {
	trip, err := s.loadTrip(ctx, id)
	if err != nil {
		return TripDetails{}, err
	}
	return toDetails(trip), nil
}

// Register adds email to trip id. A full trip fails with
// *domain.RegistrationLimitExceededError before the email is looked at.
func (s *TripService) Register(ctx context.Context, id int64, email string) error {
	trip, err := s.loadTrip(ctx, id)
	if err != nil {
		return err
	}

	if trip.IsFull() {
		return &domain.RegistrationLimitExceededError{TripID: trip.ID, NumberOfSeats: trip.NumberOfSeats}
	}
	if trip.HasRegistration(email) {
		return alreadyRegistered(email, trip.ID)
	}

	reg, err := domain.NewRegistration(email, &trip, s.limits, s.now())
	if err != nil {
		return err
	}

	_, err = s.registrations.Create(ctx, reg)
	if errors.Is(err, domain.ErrConflict) {
		return alreadyRegistered(email, trip.ID)
	}
	if err != nil {
		return fmt.Errorf("service.TripService.Register: %w", err)
	}
	return nil
}

// ListCountries returns every known destination ordered by name.
func (s *TripService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListCountries: %w", err)
	}
	return countries, nil
}

// loadTrip fetches a trip with country and registrations, turning a missing
// row into *domain.NotFoundError.
func (s *TripService) loadTrip(ctx context.Context, id int64) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Trip{}, domain.TripNotFound(id)
	}
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService: load trip %d: %w", id, err)
	}
	return trip, nil
}

// findCountry resolves a country by name, turning a miss into an InputError.
func (s *TripService) findCountry(ctx context.Context, name string) (domain.Country, error) {
	country, err := s.countries.FindByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Country{}, domain.NewInputError("countryName", fmt.Sprintf(
			"The country name '%s' does not exist in the database. Try using only English names, for reference check ISO 3166.",
			name))
	}
	if err != nil {
		return domain.Country{}, fmt.Errorf("service.TripService: find country: %w", err)
	}
	return country, nil
}

func duplicateName(name string) error {
	return domain.NewInputError("name", fmt.Sprintf(
		"The trip with name '%s' already exists in the database. Try using other name.", name))
}

func alreadyRegistered(email string, tripID int64) error {
	return domain.NewInputError("email", fmt.Sprintf(
		"The email '%s' is already registered for trip with ID %d.", email, tripID))
}
