// Package repo contains all database access logic for the trips API.
// Each aggregate has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so repos that need their own transaction still work under a test tx.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns its DB-generated id.
	// Returns domain.ErrConflict if a trip with the same name (any case) exists.
	Create(ctx context.Context, trip domain.Trip) (int64, error)

	// GetByID retrieves a single trip with its country and registrations
	// (in registration order). Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// ExistsByName reports whether a trip with this name exists, ignoring case.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns all trips with their country, ordered by id.
	// Registrations are not loaded.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByCountryName returns trips whose country name matches, ignoring case.
	ListByCountryName(ctx context.Context, country string) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip.
	// Returns domain.ErrNotFound if the trip does not exist and
	// domain.ErrConflict if the new name is taken.
	Update(ctx context.Context, trip domain.Trip) error

	// Delete removes the trip's registrations and then the trip, in one
	// transaction. Returns domain.ErrNotFound if the trip does not exist.
	Delete(ctx context.Context, id int64) error

	// ExportRows returns one row per registration across all trips; trips
	// without registrations contribute a single row.
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const selectTrip = `
	SELECT t.id, t.name, t.description, t.start_date, t.number_of_seats, c.code, c.name
	FROM trips t
	JOIN countries c ON c.code = t.country_code`

// Create inserts a new trip row and returns the generated id.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (int64, error) {
	const q = `
		INSERT INTO trips (name, description, start_date, number_of_seats, country_code)
		VALUES (@name, @description, @start_date, @number_of_seats, @country_code)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, tripArgs(trip)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Create: %w", mapWriteError(err))
	}
	return id, nil
}

// GetByID loads the trip row joined with its country, then its registrations.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = selectTrip + `
		WHERE t.id = @id`

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	trip.Registrations, err = selectRegistrations(ctx, r.db, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trip, nil
}

// ExistsByName performs a case-insensitive existence check on trip names.
func (r *pgTripRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM trips WHERE lower(name) = lower(@name))`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.TripRepo.ExistsByName: %w", err)
	}
	return exists, nil
}

// List returns every trip ordered by id.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = selectTrip + `
		ORDER BY t.id`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListByCountryName returns trips to the named country ordered by id.
func (r *pgTripRepo) ListByCountryName(ctx context.Context, country string) ([]domain.Trip, error) {
	const q = selectTrip + `
		WHERE lower(c.name) = lower(@country)
		ORDER BY t.id`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"country": country})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByCountryName: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) error {
	const q = `
		UPDATE trips
		SET name            = @name,
		    description     = @description,
		    start_date      = @start_date,
		    number_of_seats = @number_of_seats,
		    country_code    = @country_code
		WHERE id = @id`

	args := tripArgs(trip)
	args["id"] = trip.ID

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes registrations and the trip inside one transaction so no
// caller can observe a trip without its registrations or the other way round.
func (r *pgTripRepo) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{"id": id}
		if _, err := tx.Exec(ctx, `DELETE FROM registrations WHERE trip_id = @id`, args); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM trips WHERE id = @id`, args)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

// ExportRows flattens trips and registrations with a LEFT JOIN.
func (r *pgTripRepo) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	const q = `
		SELECT t.id, t.name, c.code, c.name, t.start_date, t.number_of_seats,
		       r.email, r.registered_at
		FROM trips t
		JOIN countries c ON c.code = t.country_code
		LEFT JOIN registrations r ON r.trip_id = t.id
		ORDER BY t.id, r.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ExportRows: %w", err)
	}
	defer rows.Close()

	out := []domain.ExportRow{}
	for rows.Next() {
		var (
			row          domain.ExportRow
			email        pgtype.Text
			registeredAt pgtype.Timestamptz
		)
		err := rows.Scan(&row.TripID, &row.TripName, &row.CountryCode, &row.CountryName,
			&row.StartDate, &row.NumberOfSeats, &email, &registeredAt)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ExportRows: scan: %w", err)
		}
		row.Email = email.String
		if registeredAt.Valid {
			ts := registeredAt.Time
			row.RegisteredAt = &ts
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ExportRows: rows: %w", err)
	}
	return out, nil
}

func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

func tripArgs(trip domain.Trip) pgx.NamedArgs {
	var countryCode string
	if trip.Country != nil {
		countryCode = trip.Country.Code
	}
	return pgx.NamedArgs{
		"name":            trip.Name,
		"description":     trip.Description, // nil becomes NULL
		"start_date":      trip.StartDate,
		"number_of_seats": trip.NumberOfSeats,
		"country_code":    countryCode,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a row produced by selectTrip into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t           domain.Trip
		description pgtype.Text
		startDate   time.Time
		country     domain.Country
	)

	err := s.Scan(&t.ID, &t.Name, &description, &startDate, &t.NumberOfSeats, &country.Code, &country.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.StartDate = startDate.UTC()
	if description.Valid {
		d := description.String
		t.Description = &d
	}
	t.Country = &country
	t.Registrations = []domain.Registration{}
	return t, nil
}
