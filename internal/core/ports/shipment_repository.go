// Package ports defines the outbound contracts of the shipping core:
// repositories for persisted aggregates and capabilities for the external
// carrier-facing services. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// SubmittedShipment is the persisted record of one confirmed submission:
// the transaction's final state plus the identifiers issued at confirmation.
type SubmittedShipment struct {
	Transaction  *shipment.ShippingTransaction
	Confirmation shipment.Confirmation
}

// ShipmentRepository defines the persistence contract for confirmed
// shipments.
type ShipmentRepository interface {
	// Add persists a newly confirmed shipment.
	// The transaction must be in confirmed status and not already exist.
	Add(ctx context.Context, submitted SubmittedShipment) error

	// Get retrieves a submitted shipment by its transaction identifier.
	// Returns errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (SubmittedShipment, error)

	// GetByConfirmationNumber retrieves a submitted shipment by the
	// confirmation number issued at submission time.
	GetByConfirmationNumber(ctx context.Context, number string) (SubmittedShipment, error)
}
