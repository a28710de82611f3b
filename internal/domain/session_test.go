package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedSession(t *testing.T) *CheckoutSession {
	t.Helper()
	start, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	end, err := ParseDate("2024-06-03")
	require.NoError(t, err)

	dates := DateRange{Start: &start, End: &end}
	return &CheckoutSession{
		ID:        "sess-1",
		State:     StateItemSelected,
		ListingID: "1",
		Dates:     dates,
		Quote:     dates.Quote(4500),
	}
}

func TestResetTransient(t *testing.T) {
	s := selectedSession(t)
	s.Payment = &PaymentInfo{CardholderName: "Ana"}
	s.Receipt = &Receipt{TransactionID: "TXN-ABC123DEF"}
	s.State = StateReceiptIssued

	s.ResetTransient()

	assert.Equal(t, StateBrowsing, s.State)
	assert.Empty(t, s.ListingID)
	assert.Nil(t, s.Dates.Start)
	assert.Nil(t, s.Dates.End)
	assert.Nil(t, s.Quote)
	assert.Nil(t, s.Payment)
	assert.Nil(t, s.Receipt)
	assert.Equal(t, "sess-1", s.ID)
}

func TestCanEnterPayment(t *testing.T) {
	s := selectedSession(t)
	assert.True(t, s.CanEnterPayment())
}

func TestCanEnterPayment_NoQuote(t *testing.T) {
	s := selectedSession(t)
	s.Quote = nil
	assert.False(t, s.CanEnterPayment())
}

func TestCanEnterPayment_WrongState(t *testing.T) {
	s := selectedSession(t)
	s.State = StatePaymentEntry
	assert.False(t, s.CanEnterPayment())

	s.State = StateBrowsing
	assert.False(t, s.CanEnterPayment())
}

func TestIsTerminal(t *testing.T) {
	s := &CheckoutSession{State: StateReceiptIssued}
	assert.True(t, s.IsTerminal())

	assert.False(t, (&CheckoutSession{State: StatePaymentEntry}).IsTerminal())
	assert.False(t, (&CheckoutSession{State: StateBrowsing}).IsTerminal())
}

func TestIsValidState(t *testing.T) {
	for _, state := range ValidStates() {
		assert.True(t, IsValidState(state), state)
	}
	assert.False(t, IsValidState("checked_out"))
	assert.False(t, IsValidState(""))
}

func TestHasSelection(t *testing.T) {
	assert.True(t, selectedSession(t).HasSelection())
	assert.False(t, (&CheckoutSession{State: StateBrowsing}).HasSelection())
}
