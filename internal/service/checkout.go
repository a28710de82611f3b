package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/provider"
	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/repository"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// SetDatesInput holds the parameters for selecting rental dates.
type SetDatesInput struct {
	StartDate string
	EndDate   string // optional; empty keeps or clears the stored end date
}

// CheckoutService drives the checkout session state machine: listing
// selection, date selection with derived quote, the mock payment, and
// receipt issuance.
type CheckoutService struct {
	sessions repository.SessionRepository
	listings repository.ListingRepository
	payments provider.PaymentProvider
	currency string
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sessions repository.SessionRepository,
	listings repository.ListingRepository,
	payments provider.PaymentProvider,
	currency string,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		listings: listings,
		payments: payments,
		currency: currency,
		logger:   logger,
	}
}

// StartSession creates a new session in the browsing state.
func (s *CheckoutService) StartSession(ctx context.Context) (*domain.CheckoutSession, error) {
	now := time.Now().UTC()
	sess := &domain.CheckoutSession{
		ID:        uuid.New().String(),
		State:     domain.StateBrowsing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "session started", slog.String("session_id", sess.ID))
	return sess, nil
}

// GetSession returns the current session snapshot.
func (s *CheckoutService) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// SelectListing moves the session to item_selected. Picking a listing is
// allowed from any state and discards any previous selection, dates, payment
// form contents, and receipt.
func (s *CheckoutService) SelectListing(ctx context.Context, sessionID, listingID string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("verify listing: %w", err)
	}

	sess.ResetTransient()
	sess.State = domain.StateItemSelected
	sess.ListingID = listingID
	sess.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "listing selected",
		slog.String("session_id", sess.ID),
		slog.String("listing_id", listingID),
	)
	return sess, nil
}

// SetDates stores the rental dates and recomputes the quote. If the new
// start date lands after the currently stored end date, the end date is
// cleared to force re-selection. The quote is present only when the range
// yields a valid day count.
func (s *CheckoutService) SetDates(ctx context.Context, sessionID string, input *SetDatesInput) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.State != domain.StateItemSelected {
		return nil, apperrors.InvalidState("dates can only be selected while an item is selected")
	}

	start, err := domain.ParseDate(input.StartDate)
	if err != nil {
		return nil, apperrors.InvalidInput("start_date must be a date in 2006-01-02 format")
	}
	sess.Dates.Start = &start

	if input.EndDate != "" {
		end, err := domain.ParseDate(input.EndDate)
		if err != nil {
			return nil, apperrors.InvalidInput("end_date must be a date in 2006-01-02 format")
		}
		sess.Dates.End = &end
	}

	if sess.Dates.End != nil && start.After(*sess.Dates.End) {
		sess.Dates.End = nil
	}

	listing, err := s.listings.GetByID(ctx, sess.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get selected listing: %w", err)
	}
	sess.Quote = sess.Dates.Quote(listing.PricePerDay)
	sess.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// OpenReviews moves the session from item_selected to reviewing_item.
func (s *CheckoutService) OpenReviews(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	return s.transition(ctx, sessionID, domain.StateItemSelected, domain.StateReviewingItem,
		"reviews can only be opened while an item is selected")
}

// CloseReviews moves the session from reviewing_item back to item_selected.
func (s *CheckoutService) CloseReviews(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	return s.transition(ctx, sessionID, domain.StateReviewingItem, domain.StateItemSelected,
		"reviews are not open")
}

// OpenPayment moves the session to payment_entry. Allowed only when the
// selected date range yields a positive total.
func (s *CheckoutService) OpenPayment(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !sess.CanEnterPayment() {
		return nil, apperrors.InvalidState("payment requires a selected item with a valid date range")
	}

	sess.State = domain.StatePaymentEntry
	sess.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// SubmitPayment charges the mock provider and issues the receipt. The form
// is presence-checked only; the simulated payment cannot fail.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, payment *domain.PaymentInfo) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.State != domain.StatePaymentEntry {
		return nil, apperrors.InvalidState("payment form is not open")
	}
	if !payment.Complete() {
		return nil, apperrors.InvalidInput("all payment fields are required")
	}

	listing, err := s.listings.GetByID(ctx, sess.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get selected listing: %w", err)
	}

	result, err := s.payments.Charge(ctx, &provider.ChargeInput{
		Amount:         sess.Quote.TotalCost,
		Currency:       s.currency,
		CardholderName: payment.CardholderName,
		Description:    fmt.Sprintf("rental of %s for %d days", listing.Name, sess.Quote.Days),
	})
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}

	now := time.Now().UTC()
	sess.Payment = payment
	sess.Receipt = &domain.Receipt{
		TransactionID:  newTransactionID(),
		ListingID:      listing.ID,
		ListingName:    listing.Name,
		StartDate:      *sess.Dates.Start,
		EndDate:        *sess.Dates.End,
		Days:           sess.Quote.Days,
		TotalCost:      sess.Quote.TotalCost,
		CustomerName:   payment.CardholderName,
		BillingAddress: payment.BillingAddress,
		IssuedAt:       now,
	}
	sess.State = domain.StateReceiptIssued
	sess.UpdatedAt = now

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "payment submitted",
		slog.String("session_id", sess.ID),
		slog.String("listing_id", listing.ID),
		slog.String("transaction_id", sess.Receipt.TransactionID),
		slog.String("provider", s.payments.Name()),
		slog.String("provider_payment_id", result.ProviderPaymentID),
		slog.Int64("total_cost", sess.Quote.TotalCost),
	)
	return sess, nil
}

// Receipt returns the issued receipt for the session.
func (s *CheckoutService) Receipt(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.Receipt == nil {
		return nil, apperrors.NotFound("receipt", sessionID)
	}
	return sess.Receipt, nil
}

// CloseSession returns the session to browsing from any state, discarding
// all transient state.
func (s *CheckoutService) CloseSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess.ResetTransient()
	sess.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "session closed", slog.String("session_id", sess.ID))
	return sess, nil
}

// transition performs a simple guarded state change.
func (s *CheckoutService) transition(ctx context.Context, sessionID, from, to, rejection string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.State != from {
		return nil, apperrors.InvalidState(rejection)
	}

	sess.State = to
	sess.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// newTransactionID generates a receipt transaction id in the TXN-XXXXXXXXX
// format.
func newTransactionID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TXN-" + id[:9]
}
