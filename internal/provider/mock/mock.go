package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/provider"
)

// Provider is a mock payment provider that always succeeds. The simulated
// checkout has no failure path.
type Provider struct{}

// NewProvider creates a new mock payment provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "mock"
}

// Charge simulates a payment charge that always succeeds.
func (p *Provider) Charge(_ context.Context, _ *provider.ChargeInput) (*provider.ChargeResult, error) {
	return &provider.ChargeResult{
		ProviderPaymentID: "mock_pay_" + uuid.New().String(),
		Status:            "succeeded",
		FailureReason:     "",
	}, nil
}
