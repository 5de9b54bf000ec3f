package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// RegistrationRepo defines the persistence operations for Registrations.
// Reading registrations happens through TripRepo.GetByID, which owns them.
type RegistrationRepo interface {
	// Create inserts a registration and returns it with its DB-generated id.
	// Returns domain.ErrConflict if the email is already registered for the
	// trip (ignoring case).
	Create(ctx context.Context, reg domain.Registration) (domain.Registration, error)
}

// pgRegistrationRepo is the Postgres implementation of RegistrationRepo.
type pgRegistrationRepo struct {
	db db
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db) RegistrationRepo {
	return &pgRegistrationRepo{db: db}
}

func (r *pgRegistrationRepo) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	const q = `
		INSERT INTO registrations (trip_id, email, registered_at)
		VALUES (@trip_id, @email, @registered_at)
		RETURNING id`

	args := pgx.NamedArgs{
		"trip_id":       reg.TripID,
		"email":         reg.Email,
		"registered_at": reg.RegisteredAt,
	}
	if err := r.db.QueryRow(ctx, q, args).Scan(&reg.ID); err != nil {
		return domain.Registration{}, fmt.Errorf("repo.RegistrationRepo.Create: %w", mapWriteError(err))
	}
	return reg, nil
}

// selectRegistrations loads a trip's registrations in insertion order.
func selectRegistrations(ctx context.Context, db db, tripID int64) ([]domain.Registration, error) {
	const q = `
		SELECT id, trip_id, email, registered_at
		FROM registrations
		WHERE trip_id = @trip_id
		ORDER BY id`

	rows, err := db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("registrations: %w", err)
	}
	defer rows.Close()

	regs := []domain.Registration{}
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.ID, &reg.TripID, &reg.Email, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("registrations: scan: %w", err)
		}
		reg.RegisteredAt = reg.RegisteredAt.UTC()
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("registrations: rows: %w", err)
	}
	return regs, nil
}
