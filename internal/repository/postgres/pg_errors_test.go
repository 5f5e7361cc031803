package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fashionistas/fashionistas-api/internal/repository"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestIsRetryable(t *testing.T) {
	t.Run("serialization failure", func(t *testing.T) {
		assert.True(t, IsRetryable(pgError("40001")))
	})

	t.Run("deadlock", func(t *testing.T) {
		assert.True(t, IsRetryable(pgError("40P01")))
	})

	t.Run("survives the op and commit wrapping", func(t *testing.T) {
		err := fmt.Errorf("commit: %w", wrapDBErr("postgres.TicketRepo.Decrement", pgError("40001")))
		assert.True(t, IsRetryable(err))
	})

	t.Run("other pg errors are not retryable", func(t *testing.T) {
		assert.False(t, IsRetryable(pgError("23505")))
		assert.False(t, IsRetryable(pgError("23503")))
	})

	t.Run("plain errors are not retryable", func(t *testing.T) {
		assert.False(t, IsRetryable(errors.New("boom")))
		assert.False(t, IsRetryable(nil))
	})
}

func TestShouldRetryTx(t *testing.T) {
	serialization := fmt.Errorf("commit: %w", pgError("40001"))

	t.Run("retries a serialization failure within the bound", func(t *testing.T) {
		assert.True(t, shouldRetryTx(serialization, 1))
		assert.True(t, shouldRetryTx(serialization, maxTxAttempts-1))
	})

	t.Run("stops at the attempt bound", func(t *testing.T) {
		assert.False(t, shouldRetryTx(serialization, maxTxAttempts))
	})

	t.Run("never retries success or business errors", func(t *testing.T) {
		assert.False(t, shouldRetryTx(nil, 1))
		assert.False(t, shouldRetryTx(repository.ErrInsufficientInventory, 1))
		assert.False(t, shouldRetryTx(pgError("23505"), 1))
	})
}

func TestTranslateDBErr(t *testing.T) {
	t.Run("no rows becomes not found", func(t *testing.T) {
		assert.ErrorIs(t, translateDBErr(pgx.ErrNoRows), repository.ErrNotFound)
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		assert.ErrorIs(t, translateDBErr(pgError("23505")), repository.ErrConflict)
	})

	t.Run("fk violation becomes not found", func(t *testing.T) {
		assert.ErrorIs(t, translateDBErr(pgError("23503")), repository.ErrNotFound)
	})

	t.Run("serialization failures pass through for the retry loop", func(t *testing.T) {
		err := translateDBErr(pgError("40001"))
		assert.True(t, IsRetryable(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateDBErr(nil))
	})
}
