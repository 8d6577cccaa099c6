// Package shipmentrepo provides data transfer objects and mapping functions
// for submitted-shipment persistence. This package implements the repository
// pattern for the shipping transaction aggregate, handling the conversion
// between domain entities and database representations.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting submitted
// shipments. The scalar confirmation fields are indexed columns for lookup;
// the workflow sections are stored as JSONB documents since they are only
// read back whole.
type ShipmentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status             string    `gorm:"index"`
	ConfirmationNumber string    `gorm:"uniqueIndex"`
	TrackingNumber     string
	Carrier            string
	ServiceType        string
	TotalCost          float64
	EstimatedDelivery  time.Time
	SubmittedAt        time.Time `gorm:"index"`
	Details            []byte    `gorm:"type:jsonb"`
	SelectedOption     []byte    `gorm:"type:jsonb"`
	PaymentInfo        []byte    `gorm:"type:jsonb"`
	PickupDetails      []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for submitted shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a submitted shipment to its database representation.
func fromDomain(submitted ports.SubmittedShipment) (ShipmentDTO, error) {
	tx := submitted.Transaction

	details, err := json.Marshal(tx.Details())
	if err != nil {
		return ShipmentDTO{}, err
	}
	option, err := json.Marshal(tx.SelectedOption())
	if err != nil {
		return ShipmentDTO{}, err
	}
	paymentInfo, err := json.Marshal(tx.PaymentInfo())
	if err != nil {
		return ShipmentDTO{}, err
	}
	pickupDetails, err := json.Marshal(tx.PickupDetails())
	if err != nil {
		return ShipmentDTO{}, err
	}

	return ShipmentDTO{
		ID:                 tx.ID().Bytes(),
		Status:             tx.Status().String(),
		ConfirmationNumber: submitted.Confirmation.ConfirmationNumber,
		TrackingNumber:     submitted.Confirmation.TrackingNumber,
		Carrier:            submitted.Confirmation.Carrier,
		ServiceType:        submitted.Confirmation.ServiceType,
		TotalCost:          submitted.Confirmation.TotalCost,
		EstimatedDelivery:  submitted.Confirmation.EstimatedDelivery,
		SubmittedAt:        submitted.Confirmation.SubmittedAt,
		Details:            details,
		SelectedOption:     option,
		PaymentInfo:        paymentInfo,
		PickupDetails:      pickupDetails,
	}, nil
}

// toDomain converts a database DTO back into a submitted shipment,
// reconstructing the aggregate through RestoreShippingTransaction.
func toDomain(dto ShipmentDTO) (ports.SubmittedShipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.SubmittedShipment{}, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return ports.SubmittedShipment{}, err
	}

	var details *shipment.ShipmentDetails
	if err = unmarshalSection(dto.Details, &details); err != nil {
		return ports.SubmittedShipment{}, err
	}
	var option *pricing.Option
	if err = unmarshalSection(dto.SelectedOption, &option); err != nil {
		return ports.SubmittedShipment{}, err
	}
	var paymentInfo *payment.Info
	if err = unmarshalSection(dto.PaymentInfo, &paymentInfo); err != nil {
		return ports.SubmittedShipment{}, err
	}
	var pickupDetails *pickup.Details
	if err = unmarshalSection(dto.PickupDetails, &pickupDetails); err != nil {
		return ports.SubmittedShipment{}, err
	}

	tx, err := shipment.RestoreShippingTransaction(id, status, details, option, paymentInfo, pickupDetails)
	if err != nil {
		return ports.SubmittedShipment{}, err
	}

	return ports.SubmittedShipment{
		Transaction: tx,
		Confirmation: shipment.Confirmation{
			ConfirmationNumber: dto.ConfirmationNumber,
			TrackingNumber:     dto.TrackingNumber,
			EstimatedDelivery:  dto.EstimatedDelivery,
			Carrier:            dto.Carrier,
			ServiceType:        dto.ServiceType,
			TotalCost:          dto.TotalCost,
			SubmittedAt:        dto.SubmittedAt,
		},
	}, nil
}

// unmarshalSection decodes a JSONB column into the given pointer target,
// leaving it nil when the column holds no document.
func unmarshalSection[T any](raw []byte, target **T) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	*target = &value
	return nil
}
