package provider

import (
	"context"
)

// ChargeInput holds the parameters for charging a rental payment.
type ChargeInput struct {
	Amount         int64
	Currency       string
	CardholderName string
	Description    string
}

// ChargeResult holds the result of a charge operation.
type ChargeResult struct {
	ProviderPaymentID string
	Status            string // "succeeded" or "failed"
	FailureReason     string
}

// PaymentProvider defines the interface for payment processing. The service
// only ships the mock implementation; real processing is out of scope.
type PaymentProvider interface {
	// Name returns the provider name (e.g., "mock").
	Name() string

	// Charge processes a payment charge.
	Charge(ctx context.Context, input *ChargeInput) (*ChargeResult, error)
}
