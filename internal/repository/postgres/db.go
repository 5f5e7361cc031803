package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

// maxTxAttempts bounds serialization-failure retries in RunTx.
const maxTxAttempts = 3

// RunTx runs fn inside a transaction, serializable unless opts say otherwise.
// Serialization failures (40001, 40P01) abort the losing transaction, so fn is
// re-run from scratch up to maxTxAttempts times; on retry the conditional
// updates re-evaluate against the winner's committed state and report their
// business outcome instead of the aborted attempt. fn must therefore be safe
// to call more than once.
func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	}

	if opts != nil {
		txOpts.IsoLevel = opts.IsoLevel
		txOpts.AccessMode = opts.AccessMode
		txOpts.DeferrableMode = opts.DeferrableMode
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = s.runTxOnce(ctx, txOpts, fn)
		if !shouldRetryTx(err, attempt) {
			return err
		}
	}
}

func (s *Store) runTxOnce(
	ctx context.Context,
	txOpts pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func shouldRetryTx(err error, attempt int) bool {
	return err != nil && attempt < maxTxAttempts && IsRetryable(err)
}

func (s *Store) Events() *EventRepo               { return &EventRepo{pool: s.pool} }
func (s *Store) Tickets() *TicketRepo             { return &TicketRepo{pool: s.pool} }
func (s *Store) Registrations() *RegistrationRepo { return &RegistrationRepo{pool: s.pool} }
func (s *Store) Sponsors() *SponsorRepo           { return &SponsorRepo{pool: s.pool} }
func (s *Store) Applications() *ApplicationRepo   { return &ApplicationRepo{pool: s.pool} }
func (s *Store) Images() *ImageRepo               { return &ImageRepo{pool: s.pool} }
