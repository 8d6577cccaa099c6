// Package billing provides the payment-authorization adapter. The production
// billing backend is mocked: authorizations succeed except for a configurable
// random decline rate, mirroring the behavior of the carrier billing sandbox.
package billing

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/ports"
)

// DefaultDeclineRate is the fraction of authorizations the mocked backend
// refuses.
const DefaultDeclineRate = 0.05

// MockAuthorizer implements ports.PaymentAuthorizer against the mocked
// billing backend. The randomness source is injected so tests can force both
// outcomes.
type MockAuthorizer struct {
	declineRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockAuthorizer creates an authorizer with the given decline rate.
// A nil source defaults to a time-seeded one.
func NewMockAuthorizer(declineRate float64, src rand.Source) *MockAuthorizer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &MockAuthorizer{
		declineRate: declineRate,
		rng:         rand.New(src),
	}
}

// Authorize validates the payment section and rolls the decline dice.
// Returns ports.ErrPaymentDeclined (wrapped) on refusal.
func (a *MockAuthorizer) Authorize(_ context.Context, info payment.Info, amount float64) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount %.2f is not chargeable", ports.ErrPaymentDeclined, amount)
	}

	a.mu.Lock()
	roll := a.rng.Float64()
	a.mu.Unlock()

	if roll < a.declineRate {
		return fmt.Errorf("%w: %s authorization refused by billing backend",
			ports.ErrPaymentDeclined, info.Method())
	}
	return nil
}
