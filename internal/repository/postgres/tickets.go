package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
)

type TicketRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *TicketRepo) With(db DB) *TicketRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TicketRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a ticket tier and returns its id.
func (r *TicketRepo) Create(ctx context.Context, t *domain.TicketTier) (int64, error) {
	const op = "postgres.TicketRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO event_tickets(event_id, ticket_type, price, quantity_available,
			early_bird_price, early_bird_deadline, group_threshold,
			group_discount_percent, benefits)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		t.EventID, t.TicketType, t.Price.String(), t.QuantityAvailable,
		decimalPtr(t.EarlyBirdPrice), t.EarlyBirdDeadline, t.GroupThreshold,
		decimalPtr(t.GroupDiscountPercent), t.Benefits,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Upsert writes a tier under a caller-chosen id so the seeding flow can be
// re-run without duplicating tiers.
func (r *TicketRepo) Upsert(ctx context.Context, t *domain.TicketTier) error {
	const op = "postgres.TicketRepo.Upsert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO event_tickets(id, event_id, ticket_type, price, quantity_available,
			early_bird_price, early_bird_deadline, group_threshold,
			group_discount_percent, benefits)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
			ticket_type = EXCLUDED.ticket_type,
			price = EXCLUDED.price,
			quantity_available = EXCLUDED.quantity_available,
			early_bird_price = EXCLUDED.early_bird_price,
			early_bird_deadline = EXCLUDED.early_bird_deadline,
			group_threshold = EXCLUDED.group_threshold,
			group_discount_percent = EXCLUDED.group_discount_percent,
			benefits = EXCLUDED.benefits`,
		t.ID, t.EventID, t.TicketType, t.Price.String(), t.QuantityAvailable,
		decimalPtr(t.EarlyBirdPrice), t.EarlyBirdDeadline, t.GroupThreshold,
		decimalPtr(t.GroupDiscountPercent), t.Benefits,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Update rewrites a tier's pricing and metadata. The available quantity is
// deliberately not touched here; it only moves through Decrement/Increment.
func (r *TicketRepo) Update(ctx context.Context, t *domain.TicketTier) error {
	const op = "postgres.TicketRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_tickets
		 SET ticket_type = $2, price = $3, early_bird_price = $4,
			early_bird_deadline = $5, group_threshold = $6,
			group_discount_percent = $7, benefits = $8
		 WHERE id = $1`,
		t.ID, t.TicketType, t.Price.String(),
		decimalPtr(t.EarlyBirdPrice), t.EarlyBirdDeadline, t.GroupThreshold,
		decimalPtr(t.GroupDiscountPercent), t.Benefits,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(op)
	}

	return nil
}

// Get returns a tier by id.
func (r *TicketRepo) Get(ctx context.Context, id int64) (*domain.TicketTier, error) {
	const op = "postgres.TicketRepo.Get"

	db := r.handle()

	return r.scanTier(op, db.QueryRow(ctx,
		`SELECT id, event_id, ticket_type, price, quantity_available,
			early_bird_price, early_bird_deadline, group_threshold,
			group_discount_percent, benefits
		 FROM event_tickets WHERE id = $1`,
		id,
	))
}

// ListByEvent returns all tiers of one event.
func (r *TicketRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.TicketTier, error) {
	const op = "postgres.TicketRepo.ListByEvent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, event_id, ticket_type, price, quantity_available,
			early_bird_price, early_bird_deadline, group_threshold,
			group_discount_percent, benefits
		 FROM event_tickets WHERE event_id = $1 ORDER BY id`,
		eventID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var tiers []domain.TicketTier
	for rows.Next() {
		t, err := r.scanTier(op, rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return tiers, nil
}

// Decrement atomically takes qty tickets off a tier. The availability check
// and the write are one statement; under concurrent purchases only as many
// calls succeed as there is inventory.
func (r *TicketRepo) Decrement(ctx context.Context, id int64, qty int) error {
	const op = "postgres.TicketRepo.Decrement"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_tickets
		 SET quantity_available = quantity_available - $2
		 WHERE id = $1 AND quantity_available >= $2`,
		id, qty,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing tier from an exhausted one.
		var exists bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM event_tickets WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return wrapDBErr(op, err)
		}
		if !exists {
			return notFound(op)
		}
		return fmt.Errorf("%s:%w", op, repository.ErrInsufficientInventory)
	}

	return nil
}

// Increment gives qty tickets back to a tier (cancellation, refund).
func (r *TicketRepo) Increment(ctx context.Context, id int64, qty int) error {
	const op = "postgres.TicketRepo.Increment"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_tickets
		 SET quantity_available = quantity_available + $2
		 WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(op)
	}

	return nil
}

// InsertPurchase records a completed purchase.
func (r *TicketRepo) InsertPurchase(ctx context.Context, p *domain.Purchase) error {
	const op = "postgres.TicketRepo.InsertPurchase"

	db := r.handle()

	attendees, err := marshalAttendees(p.Attendees)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO ticket_purchases(id, ticket_id, event_id, user_id, quantity,
			total_amount, attendee_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.TicketID, p.EventID, p.UserID, p.Quantity,
		p.TotalAmount.String(), attendees,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// DeleteByEvent removes the tiers of one event. Compensation helper for the
// seeding flow.
func (r *TicketRepo) DeleteByEvent(ctx context.Context, eventID int64) error {
	const op = "postgres.TicketRepo.DeleteByEvent"

	if _, err := r.handle().Exec(ctx,
		`DELETE FROM event_tickets WHERE event_id = $1`, eventID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// CountByEvent returns the number of tiers for one event. Used by seeding
// verification.
func (r *TicketRepo) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	const op = "postgres.TicketRepo.CountByEvent"

	var n int64
	if err := r.handle().QueryRow(ctx,
		`SELECT count(*) FROM event_tickets WHERE event_id = $1`, eventID,
	).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TicketRepo) scanTier(op string, row rowScanner) (*domain.TicketTier, error) {
	var (
		t          domain.TicketTier
		price      string
		earlyPrice *string
		groupPct   *string
	)

	if err := row.Scan(
		&t.ID, &t.EventID, &t.TicketType, &price, &t.QuantityAvailable,
		&earlyPrice, &t.EarlyBirdDeadline, &t.GroupThreshold,
		&groupPct, &t.Benefits,
	); err != nil {
		return nil, wrapDBErr(op, err)
	}

	var err error
	if t.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if t.EarlyBirdPrice, err = decimalFromPtr(earlyPrice); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if t.GroupDiscountPercent, err = decimalFromPtr(groupPct); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &t, nil
}

func decimalPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func decimalFromPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
