package ports

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/pickup"
)

// ErrPickupUnavailable indicates the carrier cannot serve the requested
// pickup window. The shipper can retry with a different slot.
var ErrPickupUnavailable = errors.New("requested pickup window is unavailable")

// PickupScheduler is the capability that books a pickup with the carrier.
type PickupScheduler interface {
	// Schedule books the pickup with the named carrier. Returns
	// ErrPickupUnavailable (possibly wrapped) when the window cannot be
	// served.
	Schedule(ctx context.Context, carrier string, details pickup.Details) error
}
