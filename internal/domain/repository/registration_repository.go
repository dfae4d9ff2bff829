package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// RegistrationRepository has no update or delete: registrations are
// append-only records.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) error
	Count(ctx context.Context) (int, error)
}

type pgRegistrationRepository struct {
	db *sql.DB
}

func NewPgRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &pgRegistrationRepository{db: db}
}

func (r *pgRegistrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	query := `INSERT INTO registrations (id, user_id, event_id, registered_at)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query,
		registration.ID, registration.UserID, registration.EventID, registration.RegisteredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return fmt.Errorf("registration references a missing record: %w", common.ErrValidation)
		}
		return fmt.Errorf("pgRegistrationRepository.Create: %w", err)
	}
	return nil
}

func (r *pgRegistrationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM registrations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgRegistrationRepository.Count: %w", err)
	}
	return count, nil
}
