package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly submitted shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, submitted ports.SubmittedShipment) error {
	if err := submitted.Transaction.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(submitted)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(submitted.Transaction.ID(), submitted.Transaction)
	return nil
}

// Get retrieves a submitted shipment by its transaction identifier.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (ports.SubmittedShipment, error) {
	if err := id.Validate(); err != nil {
		return ports.SubmittedShipment{}, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SubmittedShipment{}, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return ports.SubmittedShipment{}, err
	}

	return toDomain(dto)
}

// GetByConfirmationNumber retrieves a submitted shipment by its confirmation
// number.
func (r *GormShipmentRepository) GetByConfirmationNumber(
	ctx context.Context,
	number string,
) (ports.SubmittedShipment, error) {
	if number == "" {
		return ports.SubmittedShipment{}, errs.NewValueIsRequiredError("confirmation number")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "confirmation_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SubmittedShipment{}, errs.NewObjectNotFoundError("shipment", number)
		}
		return ports.SubmittedShipment{}, err
	}

	return toDomain(dto)
}
