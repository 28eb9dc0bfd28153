package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentMarksBookingPaid(t *testing.T) {
	svc, repo, payments, _ := newService()

	result, err := svc.SubmitBooking(validRequest())
	require.NoError(t, err)
	id := result.Record.ID

	confirmed, err := svc.ConfirmPayment(id, "txn_123")
	require.NoError(t, err)
	assert.True(t, confirmed.Paid)
	assert.Equal(t, "txn_123", confirmed.TransactionID)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Equal(t, "txn_123", stored.TransactionID)

	// The payment ledger is append-only and gets one entry per confirmation.
	ledger, err := payments.GetByBookingID(id)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "txn_123", ledger[0].TransactionID)
}

func TestConfirmPaymentUnknownBooking(t *testing.T) {
	svc, _, payments, _ := newService()

	_, err := svc.ConfirmPayment("missing", "txn_123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, payments.payments)
}

func TestConfirmPaymentValidatesInput(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.ConfirmPayment("", "txn_123")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.ConfirmPayment("some-id", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
