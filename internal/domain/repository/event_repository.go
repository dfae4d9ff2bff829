package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	// FindByIDForOrganizer looks the event up inside the organizer's own
	// events only. A hit on someone else's event and a miss on a
	// non-existent id are both common.ErrNotFound, which is what keeps
	// foreign events unobservable.
	FindByIDForOrganizer(ctx context.Context, id, organizerID string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id, organizerID string) error
	Count(ctx context.Context) (int, error)
}

const eventColumns = `id, title, slug, description, start_time, end_time, status, organizer_id, created_at, updated_at`

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

func scanEvent(row interface {
	Scan(dest ...interface{}) error
}) (*model.Event, error) {
	event := &model.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Slug, &event.Description,
		&event.StartTime, &event.EndTime, &event.Status, &event.OrganizerID,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *pgEventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (id, title, slug, description, start_time, end_time, status, organizer_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Slug, event.Description,
		event.StartTime, event.EndTime, event.Status, event.OrganizerID,
	)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.FindByID: %w", err)
	}
	return event, nil
}

func (r *pgEventRepository) FindByIDForOrganizer(ctx context.Context, id, organizerID string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND organizer_id = $2`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id, organizerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.FindByIDForOrganizer: %w", err)
	}
	return event, nil
}

func (r *pgEventRepository) List(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at`
	return r.listQuery(ctx, query)
}

func (r *pgEventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE organizer_id = $1 ORDER BY created_at`
	return r.listQuery(ctx, query, organizerID)
}

func (r *pgEventRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository list: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("pgEventRepository list scan: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *pgEventRepository) Update(ctx context.Context, event *model.Event) error {
	// organizer_id is never part of the SET list: ownership is fixed at
	// creation.
	query := `UPDATE events
	          SET title = $1, slug = $2, description = $3, start_time = $4, end_time = $5, status = $6, updated_at = now()
	          WHERE id = $7 AND organizer_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		event.Title, event.Slug, event.Description, event.StartTime, event.EndTime, event.Status,
		event.ID, event.OrganizerID,
	)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgEventRepository.Update rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgEventRepository) Delete(ctx context.Context, id, organizerID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM events WHERE id = $1 AND organizer_id = $2`, id, organizerID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgEventRepository.Count: %w", err)
	}
	return count, nil
}
