package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fashionistas/fashionistas-api/internal/domain"
)

type EventRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *EventRepo) With(db DB) *EventRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *EventRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const eventColumns = `id, organizer_id, title, description, venue, capacity,
	starts_at, ends_at, registration_deadline, status, created_at`

// Create inserts a new event and returns its id.
func (r *EventRepo) Create(ctx context.Context, e *domain.Event) (int64, error) {
	const op = "postgres.EventRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO events(organizer_id, title, description, venue, capacity,
			starts_at, ends_at, registration_deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		e.OrganizerID, e.Title, e.Description, e.Venue, e.Capacity,
		e.Starts, e.Ends, e.RegistrationDeadline, e.Status,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Upsert writes an event under a caller-chosen id; re-running with the same id
// updates in place. Used by the seeding flow.
func (r *EventRepo) Upsert(ctx context.Context, e *domain.Event) error {
	const op = "postgres.EventRepo.Upsert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO events(id, organizer_id, title, description, venue, capacity,
			starts_at, ends_at, registration_deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
			organizer_id = EXCLUDED.organizer_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			venue = EXCLUDED.venue,
			capacity = EXCLUDED.capacity,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			registration_deadline = EXCLUDED.registration_deadline,
			status = EXCLUDED.status`,
		e.ID, e.OrganizerID, e.Title, e.Description, e.Venue, e.Capacity,
		e.Starts, e.Ends, e.RegistrationDeadline, e.Status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Update rewrites the mutable fields of an existing, non-deleted event.
func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	const op = "postgres.EventRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, venue = $4, capacity = $5,
			starts_at = $6, ends_at = $7, registration_deadline = $8, status = $9
		 WHERE id = $1 AND status <> 'deleted'`,
		e.ID, e.Title, e.Description, e.Venue, e.Capacity,
		e.Starts, e.Ends, e.RegistrationDeadline, e.Status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(op)
	}

	return nil
}

// SoftDelete flips the status to deleted; the row is retained.
func (r *EventRepo) SoftDelete(ctx context.Context, id int64) error {
	const op = "postgres.EventRepo.SoftDelete"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE events SET status = 'deleted' WHERE id = $1 AND status <> 'deleted'`,
		id,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(op)
	}

	return nil
}

// Get returns the event unless it is soft-deleted.
func (r *EventRepo) Get(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "postgres.EventRepo.Get"

	db := r.handle()

	var e domain.Event
	err := db.QueryRow(ctx,
		`SELECT `+eventColumns+`
		 FROM events WHERE id = $1 AND status <> 'deleted'`,
		id,
	).Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Venue, &e.Capacity,
		&e.Starts, &e.Ends, &e.RegistrationDeadline, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &e, nil
}

// List returns a page of non-deleted events, newest first, plus the total
// count for pagination.
func (r *EventRepo) List(ctx context.Context, limit, offset int) ([]domain.Event, int64, error) {
	const op = "postgres.EventRepo.List"

	db := r.handle()

	var total int64
	if err := db.QueryRow(ctx,
		`SELECT count(*) FROM events WHERE status <> 'deleted'`,
	).Scan(&total); err != nil {
		return nil, 0, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE status <> 'deleted'
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, wrapDBErr(op, err)
	}

	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Venue, &e.Capacity,
			&e.Starts, &e.Ends, &e.RegistrationDeadline, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, 0, wrapDBErr(op, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapDBErr(op, err)
	}

	return events, total, nil
}

// DeleteRows removes all rows for an event id. Compensation helper for the
// seeding flow; not reachable from the HTTP surface.
func (r *EventRepo) DeleteRows(ctx context.Context, id int64) error {
	const op = "postgres.EventRepo.DeleteRows"

	if _, err := r.handle().Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
