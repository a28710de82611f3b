package domain

import (
	"time"
)

// Checkout session state constants. A session walks
// browsing -> item_selected -> (optional) reviewing_item -> payment_entry ->
// receipt_issued, and an explicit close returns it to browsing from any
// state, discarding all transient fields.
const (
	StateBrowsing      = "browsing"
	StateItemSelected  = "item_selected"
	StateReviewingItem = "reviewing_item"
	StatePaymentEntry  = "payment_entry"
	StateReceiptIssued = "receipt_issued"
)

// CheckoutSession represents one visitor's browsing and checkout workflow.
// Everything except ID and timestamps is transient state scoped to the
// currently selected listing.
type CheckoutSession struct {
	ID        string       `json:"id"`
	State     string       `json:"state"`
	ListingID string       `json:"listing_id,omitempty"`
	Dates     DateRange    `json:"dates"`
	Quote     *RentalQuote `json:"quote,omitempty"`
	Payment   *PaymentInfo `json:"-"`
	Receipt   *Receipt     `json:"receipt,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ResetTransient discards the selection, dates, quote, payment form
// contents, and receipt, returning the session to browsing.
func (s *CheckoutSession) ResetTransient() {
	s.State = StateBrowsing
	s.ListingID = ""
	s.Dates = DateRange{}
	s.Quote = nil
	s.Payment = nil
	s.Receipt = nil
}

// HasSelection reports whether a listing is currently selected in any of the
// modal states.
func (s *CheckoutSession) HasSelection() bool {
	return s.State != StateBrowsing && s.ListingID != ""
}

// CanEnterPayment reports whether the session may move to payment entry:
// a listing is selected and the date range yields a positive total.
func (s *CheckoutSession) CanEnterPayment() bool {
	return s.State == StateItemSelected && s.Quote != nil && s.Quote.TotalCost > 0
}

// IsTerminal returns true once a receipt has been issued; the only way out
// is an explicit close.
func (s *CheckoutSession) IsTerminal() bool {
	return s.State == StateReceiptIssued
}

// ValidStates returns the set of valid checkout session states.
func ValidStates() []string {
	return []string{
		StateBrowsing,
		StateItemSelected,
		StateReviewingItem,
		StatePaymentEntry,
		StateReceiptIssued,
	}
}

// IsValidState checks whether the given state string is a valid session state.
func IsValidState(state string) bool {
	for _, s := range ValidStates() {
		if s == state {
			return true
		}
	}
	return false
}
