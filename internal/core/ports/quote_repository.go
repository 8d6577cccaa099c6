package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pricing"
)

// QuoteRepository defines the persistence contract for quote snapshots.
// Every computed quote batch is stored so that a later submission can be
// checked against the prices actually offered, and so expired batches can be
// purged in the background.
type QuoteRepository interface {
	// Add persists a freshly computed quote batch.
	Add(ctx context.Context, response pricing.QuoteResponse) error

	// Get retrieves a quote batch by its request identifier.
	// Returns errs.ObjectNotFoundError when no such batch exists.
	Get(ctx context.Context, requestID kernel.UUID) (pricing.QuoteResponse, error)

	// DeleteExpired removes every quote batch whose validity window ended
	// before the cutoff. Returns the number of batches removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
