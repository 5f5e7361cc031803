package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ImageRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ImageRepo) With(db DB) *ImageRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ImageRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Upsert writes one gallery image row, keyed on (event_id, url) so seeding
// can run repeatedly.
func (r *ImageRepo) Upsert(ctx context.Context, eventID int64, url, category string, position int) error {
	const op = "postgres.ImageRepo.Upsert"

	if _, err := r.handle().Exec(ctx,
		`INSERT INTO fashion_images(event_id, url, category, position)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (event_id, url) DO UPDATE SET
			category = EXCLUDED.category,
			position = EXCLUDED.position`,
		eventID, url, category, position,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// DeleteByEvent removes an event's image rows. Compensation helper for the
// seeding flow.
func (r *ImageRepo) DeleteByEvent(ctx context.Context, eventID int64) error {
	const op = "postgres.ImageRepo.DeleteByEvent"

	if _, err := r.handle().Exec(ctx,
		`DELETE FROM fashion_images WHERE event_id = $1`, eventID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// CountByEvent returns the image row count for one event.
func (r *ImageRepo) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	const op = "postgres.ImageRepo.CountByEvent"

	var n int64
	if err := r.handle().QueryRow(ctx,
		`SELECT count(*) FROM fashion_images WHERE event_id = $1`, eventID,
	).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}
