package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// CountryRepo defines the persistence operations for the country reference set.
type CountryRepo interface {
	// FindByName returns the country whose name matches, ignoring case.
	// Returns domain.ErrNotFound if no country has that name.
	FindByName(ctx context.Context, name string) (domain.Country, error)

	// List returns all countries ordered by name.
	List(ctx context.Context) ([]domain.Country, error)

	// UpsertAll inserts every country, overwriting the name of codes that
	// already exist. Running it twice is harmless.
	UpsertAll(ctx context.Context, countries []domain.Country) error
}

// pgCountryRepo is the Postgres implementation of CountryRepo.
type pgCountryRepo struct {
	db db
}

// NewCountryRepo constructs a CountryRepo backed by the provided db connection.
func NewCountryRepo(db db) CountryRepo {
	return &pgCountryRepo{db: db}
}

func (r *pgCountryRepo) FindByName(ctx context.Context, name string) (domain.Country, error) {
	const q = `
		SELECT code, name
		FROM countries
		WHERE lower(name) = lower(@name)
		ORDER BY code
		LIMIT 1`

	var c domain.Country
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}).Scan(&c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Country{}, fmt.Errorf("repo.CountryRepo.FindByName: %w", domain.ErrNotFound)
		}
		return domain.Country{}, fmt.Errorf("repo.CountryRepo.FindByName: %w", err)
	}
	return c, nil
}

func (r *pgCountryRepo) List(ctx context.Context) ([]domain.Country, error) {
	const q = `SELECT code, name FROM countries ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CountryRepo.List: %w", err)
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("repo.CountryRepo.List: scan: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CountryRepo.List: rows: %w", err)
	}
	return countries, nil
}

// UpsertAll sends one batched round trip with an upsert per country.
func (r *pgCountryRepo) UpsertAll(ctx context.Context, countries []domain.Country) error {
	const q = `
		INSERT INTO countries (code, name)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name`

	b := &pgx.Batch{}
	for _, c := range countries {
		b.Queue(q, c.Code, c.Name)
	}

	br := r.db.SendBatch(ctx, b)
	for range countries {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("repo.CountryRepo.UpsertAll: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("repo.CountryRepo.UpsertAll: close batch: %w", err)
	}
	return nil
}
