package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRegistration() *Registration {
	return &Registration{
		Status:        RegistrationPending,
		PaymentStatus: PaymentPending,
	}
}

func TestRegistrationConfirm(t *testing.T) {
	t.Run("pending becomes confirmed and paid", func(t *testing.T) {
		r := pendingRegistration()

		require.NoError(t, r.Confirm("pi_123"))

		assert.Equal(t, RegistrationConfirmed, r.Status)
		assert.Equal(t, PaymentPaid, r.PaymentStatus)
		assert.Equal(t, "pi_123", r.PaymentIntentID)
	})

	t.Run("requires a payment intent id", func(t *testing.T) {
		r := pendingRegistration()

		err := r.Confirm("")

		assert.ErrorIs(t, err, ErrMissingPaymentIntent)
		assert.Equal(t, RegistrationPending, r.Status)
	})

	t.Run("repeat confirm with same intent is a no-op", func(t *testing.T) {
		r := pendingRegistration()
		require.NoError(t, r.Confirm("pi_123"))

		require.NoError(t, r.Confirm("pi_123"))

		assert.Equal(t, RegistrationConfirmed, r.Status)
		assert.Equal(t, "pi_123", r.PaymentIntentID)
	})

	t.Run("repeat confirm with different intent is rejected", func(t *testing.T) {
		r := pendingRegistration()
		require.NoError(t, r.Confirm("pi_123"))

		err := r.Confirm("pi_456")

		assert.ErrorIs(t, err, ErrNotConfirmable)
		assert.Equal(t, "pi_123", r.PaymentIntentID)
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		r := pendingRegistration()
		_, err := r.Cancel()
		require.NoError(t, err)

		assert.ErrorIs(t, r.Confirm("pi_123"), ErrNotConfirmable)
	})
}

func TestRegistrationCancel(t *testing.T) {
	t.Run("cancelling a pending registration restocks", func(t *testing.T) {
		r := pendingRegistration()

		restock, err := r.Cancel()

		require.NoError(t, err)
		assert.True(t, restock)
		assert.Equal(t, RegistrationCancelled, r.Status)
		assert.Equal(t, PaymentCancelled, r.PaymentStatus)
	})

	t.Run("cancelling a paid registration refunds", func(t *testing.T) {
		r := pendingRegistration()
		require.NoError(t, r.Confirm("pi_123"))

		restock, err := r.Cancel()

		require.NoError(t, err)
		assert.True(t, restock)
		assert.Equal(t, PaymentRefunded, r.PaymentStatus)
	})

	t.Run("repeat cancel succeeds without restocking", func(t *testing.T) {
		r := pendingRegistration()

		restock, err := r.Cancel()
		require.NoError(t, err)
		require.True(t, restock)

		restock, err = r.Cancel()
		require.NoError(t, err)
		assert.False(t, restock)
		assert.Equal(t, RegistrationCancelled, r.Status)
	})
}

func TestValidateAttendees(t *testing.T) {
	valid := Attendee{FirstName: "Mara", LastName: "Lindqvist", Email: "mara@example.com"}

	t.Run("accepts a valid list", func(t *testing.T) {
		assert.NoError(t, ValidateAttendees([]Attendee{valid}))
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		assert.Error(t, ValidateAttendees(nil))
	})

	t.Run("rejects a bad email", func(t *testing.T) {
		bad := valid
		bad.Email = "not-an-email"
		assert.Error(t, ValidateAttendees([]Attendee{valid, bad}))
	})

	t.Run("rejects missing names", func(t *testing.T) {
		bad := valid
		bad.FirstName = ""
		assert.Error(t, ValidateAttendees([]Attendee{bad}))
	})
}
