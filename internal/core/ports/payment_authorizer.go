package ports

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/payment"
)

// ErrPaymentDeclined indicates the payment backend refused to authorize the
// charge. The decline is retryable from the shipper's point of view.
var ErrPaymentDeclined = errors.New("payment authorization was declined")

// PaymentAuthorizer is the capability that decides whether a payment method
// covers a charge. The production implementation fronts the mocked carrier
// billing backend; tests supply a deterministic implementation to force both
// outcomes.
type PaymentAuthorizer interface {
	// Authorize attempts to authorize the given amount against the payment
	// section. Returns ErrPaymentDeclined (possibly wrapped) on refusal.
	Authorize(ctx context.Context, info payment.Info, amount float64) error
}
