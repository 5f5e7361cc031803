package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
)

type SponsorRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *SponsorRepo) With(db DB) *SponsorRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SponsorRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// CreateAllocation inserts a sponsor ticket block with nothing used yet.
func (r *SponsorRepo) CreateAllocation(ctx context.Context, a *domain.SponsorTicketAllocation) (int64, error) {
	const op = "postgres.SponsorRepo.CreateAllocation"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO sponsor_ticket_allocations(sponsor_id, event_id, ticket_type,
			quantity_allocated, quantity_used, expires_at)
		 VALUES ($1, $2, $3, $4, 0, $5)
		 RETURNING id`,
		a.SponsorID, a.EventID, a.TicketType, a.QuantityAllocated, a.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// DrawDown takes one ticket off an allocation. Availability check and
// increment are one statement, so quantity_used can never pass
// quantity_allocated no matter how many redemptions race.
func (r *SponsorRepo) DrawDown(ctx context.Context, allocationID int64) error {
	const op = "postgres.SponsorRepo.DrawDown"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE sponsor_ticket_allocations
		 SET quantity_used = quantity_used + 1
		 WHERE id = $1
			AND quantity_used < quantity_allocated
			AND (expires_at IS NULL OR expires_at > now())`,
		allocationID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM sponsor_ticket_allocations WHERE id = $1)`,
			allocationID,
		).Scan(&exists); err != nil {
			return wrapDBErr(op, err)
		}
		if !exists {
			return notFound(op)
		}
		return fmt.Errorf("%s:%w", op, repository.ErrAllocationUnavailable)
	}

	return nil
}

// InsertRedemption records a single-use ticket code against an allocation.
func (r *SponsorRepo) InsertRedemption(ctx context.Context, red *domain.SponsorTicketRedemption) error {
	const op = "postgres.SponsorRepo.InsertRedemption"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO sponsor_ticket_redemptions(id, allocation_id, redeemed_by,
			ticket_code, status, redeemed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		red.ID, red.AllocationID, red.RedeemedBy, red.TicketCode, red.Status, red.RedeemedAt,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// GetAllocation returns one allocation by id.
func (r *SponsorRepo) GetAllocation(ctx context.Context, id int64) (*domain.SponsorTicketAllocation, error) {
	const op = "postgres.SponsorRepo.GetAllocation"

	db := r.handle()

	var a domain.SponsorTicketAllocation
	err := db.QueryRow(ctx,
		`SELECT id, sponsor_id, event_id, ticket_type, quantity_allocated,
			quantity_used, expires_at, created_at
		 FROM sponsor_ticket_allocations WHERE id = $1`,
		id,
	).Scan(
		&a.ID, &a.SponsorID, &a.EventID, &a.TicketType, &a.QuantityAllocated,
		&a.QuantityUsed, &a.ExpiresAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

// ListAllocations returns a sponsor's allocations joined with the owning
// event's title, newest first.
func (r *SponsorRepo) ListAllocations(ctx context.Context, sponsorID int64) ([]domain.SponsorTicketAllocation, error) {
	const op = "postgres.SponsorRepo.ListAllocations"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT a.id, a.sponsor_id, a.event_id, e.title, a.ticket_type,
			a.quantity_allocated, a.quantity_used, a.expires_at, a.created_at
		 FROM sponsor_ticket_allocations a
		 JOIN events e ON e.id = a.event_id
		 WHERE a.sponsor_id = $1
		 ORDER BY a.created_at DESC`,
		sponsorID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var allocs []domain.SponsorTicketAllocation
	for rows.Next() {
		var a domain.SponsorTicketAllocation
		if err := rows.Scan(
			&a.ID, &a.SponsorID, &a.EventID, &a.EventTitle, &a.TicketType,
			&a.QuantityAllocated, &a.QuantityUsed, &a.ExpiresAt, &a.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		allocs = append(allocs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return allocs, nil
}

// ListRedemptions returns an allocation's redemptions, newest first.
func (r *SponsorRepo) ListRedemptions(ctx context.Context, allocationID int64) ([]domain.SponsorTicketRedemption, error) {
	const op = "postgres.SponsorRepo.ListRedemptions"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, allocation_id, redeemed_by, ticket_code, status, redeemed_at
		 FROM sponsor_ticket_redemptions
		 WHERE allocation_id = $1
		 ORDER BY redeemed_at DESC`,
		allocationID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var reds []domain.SponsorTicketRedemption
	for rows.Next() {
		var red domain.SponsorTicketRedemption
		if err := rows.Scan(
			&red.ID, &red.AllocationID, &red.RedeemedBy, &red.TicketCode,
			&red.Status, &red.RedeemedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		reds = append(reds, red)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return reds, nil
}

// UpsertEventSponsor writes an event sponsor row for the seeding flow.
func (r *SponsorRepo) UpsertEventSponsor(ctx context.Context, eventID int64, name, tier string) error {
	const op = "postgres.SponsorRepo.UpsertEventSponsor"

	if _, err := r.handle().Exec(ctx,
		`INSERT INTO event_sponsors(event_id, name, tier)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (event_id, name) DO UPDATE SET tier = EXCLUDED.tier`,
		eventID, name, tier,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// DeleteEventSponsors removes an event's sponsor rows. Compensation helper
// for the seeding flow.
func (r *SponsorRepo) DeleteEventSponsors(ctx context.Context, eventID int64) error {
	const op = "postgres.SponsorRepo.DeleteEventSponsors"

	if _, err := r.handle().Exec(ctx,
		`DELETE FROM event_sponsors WHERE event_id = $1`, eventID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// CountEventSponsors returns the sponsor row count for one event.
func (r *SponsorRepo) CountEventSponsors(ctx context.Context, eventID int64) (int64, error) {
	const op = "postgres.SponsorRepo.CountEventSponsors"

	var n int64
	if err := r.handle().QueryRow(ctx,
		`SELECT count(*) FROM event_sponsors WHERE event_id = $1`, eventID,
	).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}
