package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
)

type RegistrationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *RegistrationRepo) With(db DB) *RegistrationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *RegistrationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const registrationColumns = `id, event_id, ticket_id, user_id, status,
	payment_status, payment_intent_id, attendee_details, created_at`

// Insert records a new registration in pending/pending state.
func (r *RegistrationRepo) Insert(ctx context.Context, reg *domain.Registration) error {
	const op = "postgres.RegistrationRepo.Insert"

	db := r.handle()

	attendees, err := marshalAttendees(reg.Attendees)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO event_registrations(id, event_id, ticket_id, user_id,
			status, payment_status, attendee_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reg.ID, reg.EventID, reg.TicketID, reg.UserID,
		reg.Status, reg.PaymentStatus, attendees,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get returns one registration by id.
func (r *RegistrationRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	const op = "postgres.RegistrationRepo.Get"

	db := r.handle()

	return scanRegistration(op, db.QueryRow(ctx,
		`SELECT `+registrationColumns+`
		 FROM event_registrations WHERE id = $1`,
		id,
	))
}

// ConfirmPending moves pending -> confirmed/paid in one guarded statement.
// Returns repository.ErrInvalidTransition when the row exists but is not
// pending, repository.ErrNotFound when it does not exist.
func (r *RegistrationRepo) ConfirmPending(ctx context.Context, id uuid.UUID, paymentIntentID string) error {
	const op = "postgres.RegistrationRepo.ConfirmPending"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_registrations
		 SET status = 'confirmed', payment_status = 'paid', payment_intent_id = $2
		 WHERE id = $1 AND status = 'pending'`,
		id, paymentIntentID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		var status domain.RegistrationStatus
		var intent *string
		err := db.QueryRow(ctx,
			`SELECT status, payment_intent_id FROM event_registrations WHERE id = $1`, id,
		).Scan(&status, &intent)
		if err != nil {
			return wrapDBErr(op, err)
		}
		// Re-confirming with the same payment intent is a no-op.
		if status == domain.RegistrationConfirmed && intent != nil && *intent == paymentIntentID {
			return nil
		}
		return fmt.Errorf("%s:%w", op, repository.ErrInvalidTransition)
	}

	return nil
}

// MarkCancelled moves a registration to cancelled and reports which ticket to
// restock. The guard makes a repeat cancel match zero rows, so inventory is
// only ever released once per registration.
func (r *RegistrationRepo) MarkCancelled(ctx context.Context, id uuid.UUID) (ticketID, eventID int64, restock bool, err error) {
	const op = "postgres.RegistrationRepo.MarkCancelled"

	db := r.handle()

	err = db.QueryRow(ctx,
		`UPDATE event_registrations
		 SET status = 'cancelled',
			payment_status = CASE WHEN payment_status = 'paid' THEN 'refunded' ELSE 'cancelled' END
		 WHERE id = $1 AND status <> 'cancelled'
		 RETURNING ticket_id, event_id`,
		id,
	).Scan(&ticketID, &eventID)
	if err == nil {
		return ticketID, eventID, true, nil
	}

	if !errors.Is(translateDBErr(err), repository.ErrNotFound) {
		return 0, 0, false, wrapDBErr(op, err)
	}

	// Zero rows: either the registration is gone, or it is already cancelled
	// and the cancel is a no-op.
	err = db.QueryRow(ctx,
		`SELECT event_id FROM event_registrations WHERE id = $1`, id,
	).Scan(&eventID)
	if err != nil {
		if errors.Is(translateDBErr(err), repository.ErrNotFound) {
			return 0, 0, false, notFound(op)
		}
		return 0, 0, false, wrapDBErr(op, err)
	}

	return 0, eventID, false, nil
}

// UpdateAttendees replaces the attendee detail list.
func (r *RegistrationRepo) UpdateAttendees(ctx context.Context, id uuid.UUID, attendees []domain.Attendee) error {
	const op = "postgres.RegistrationRepo.UpdateAttendees"

	db := r.handle()

	b, err := marshalAttendees(attendees)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	tag, err := db.Exec(ctx,
		`UPDATE event_registrations SET attendee_details = $2 WHERE id = $1`,
		id, b,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(op)
	}

	return nil
}

// ListByEvent returns an event's registrations, newest first.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	const op = "postgres.RegistrationRepo.ListByEvent"

	return r.list(ctx, op,
		`SELECT `+registrationColumns+`
		 FROM event_registrations WHERE event_id = $1
		 ORDER BY created_at DESC`,
		eventID,
	)
}

// ListByUser returns a user's registrations, newest first.
func (r *RegistrationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	const op = "postgres.RegistrationRepo.ListByUser"

	return r.list(ctx, op,
		`SELECT `+registrationColumns+`
		 FROM event_registrations WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
}

func (r *RegistrationRepo) list(ctx context.Context, op, sql string, arg any) ([]domain.Registration, error) {
	db := r.handle()

	rows, err := db.Query(ctx, sql, arg)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(op, rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return regs, nil
}

func scanRegistration(op string, row rowScanner) (*domain.Registration, error) {
	var (
		reg       domain.Registration
		intent    *string
		attendees []byte
	)

	if err := row.Scan(
		&reg.ID, &reg.EventID, &reg.TicketID, &reg.UserID, &reg.Status,
		&reg.PaymentStatus, &intent, &attendees, &reg.CreatedAt,
	); err != nil {
		return nil, wrapDBErr(op, err)
	}

	if intent != nil {
		reg.PaymentIntentID = *intent
	}
	if len(attendees) > 0 {
		if err := json.Unmarshal(attendees, &reg.Attendees); err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	return &reg, nil
}

func marshalAttendees(attendees []domain.Attendee) ([]byte, error) {
	if attendees == nil {
		attendees = []domain.Attendee{}
	}
	return json.Marshal(attendees)
}
