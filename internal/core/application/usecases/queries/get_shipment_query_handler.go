package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryResponse represents one confirmed shipment in the read
// model: the identifiers issued at submission plus the cost summary.
type GetShipmentQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	ConfirmationNumber string
	TrackingNumber     string
	Carrier            string
	ServiceType        string
	TotalCost          float64
	EstimatedDelivery  time.Time
	SubmittedAt        time.Time
}

// GetShipmentQueryHandler retrieves shipment submission summaries from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no
// shipment with the given identifier has been submitted.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			confirmation_number,
			tracking_number,
			carrier,
			service_type,
			total_cost,
			estimated_delivery,
			submitted_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	var response GetShipmentQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.Status,
		&response.ConfirmationNumber,
		&response.TrackingNumber,
		&response.Carrier,
		&response.ServiceType,
		&response.TotalCost,
		&response.EstimatedDelivery,
		&response.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
		}
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.ID = shipmentID

	return response, nil
}
