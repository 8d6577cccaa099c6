package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// SubmitShipmentCommandHandler handles the business logic for final
// submission: the status gate, the six-check validation pipeline, quote
// expiry, payment authorization, pickup booking, and persistence of the
// confirmed shipment.
//
// Failure modes are distinguishable by error type so the transport layer can
// map them to the right response:
//   - *InvalidStatusError: transaction is not at the review stage
//   - *SubmissionRejectedError: validation pipeline found blocking defects
//   - ErrQuoteExpired: the selected option's validity window passed
//   - ports.ErrPaymentDeclined: the payment backend refused the charge
//   - ports.ErrPickupUnavailable: the carrier cannot serve the pickup window
type SubmitShipmentCommandHandler struct {
	uowFactory    ShipmentUoWFactory
	validator     services.SubmissionValidator
	authorizer    ports.PaymentAuthorizer
	scheduler     ports.PickupScheduler
	confirmations services.ConfirmationGenerator
	now           func() time.Time
}

// NewSubmitShipmentCommandHandler creates a handler for shipment submission.
// A nil clock defaults to time.Now.
func NewSubmitShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	validator services.SubmissionValidator,
	authorizer ports.PaymentAuthorizer,
	scheduler ports.PickupScheduler,
	confirmations services.ConfirmationGenerator,
	now func() time.Time,
) SubmitShipmentCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SubmitShipmentCommandHandler{
		uowFactory:    uowFactory,
		validator:     validator,
		authorizer:    authorizer,
		scheduler:     scheduler,
		confirmations: confirmations,
		now:           now,
	}
}

// Handle processes the submission command and returns the confirmation the
// shipper receives. The transaction is confirmed and persisted only after
// every gate has passed; any failure leaves it unchanged at the review stage.
func (h *SubmitShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitShipmentCommand,
) (shipment.Confirmation, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Confirmation{}, err
	}

	tx := cmd.Transaction()
	if !tx.Status().CanSubmit() {
		return shipment.Confirmation{}, &InvalidStatusError{
			Current:  tx.Status(),
			Required: shipment.StatusReview,
		}
	}

	result := h.validator.Validate(tx, cmd.Acknowledgment())
	if !result.IsValid {
		return shipment.Confirmation{}, &SubmissionRejectedError{Result: result}
	}

	option := tx.SelectedOption()
	submittedAt := h.now()
	if option.IsExpired(submittedAt) {
		return shipment.Confirmation{}, ErrQuoteExpired
	}

	if err := h.authorizer.Authorize(ctx, *tx.PaymentInfo(), option.Pricing.Total); err != nil {
		return shipment.Confirmation{}, err
	}

	if err := h.scheduler.Schedule(ctx, option.Carrier, *tx.PickupDetails()); err != nil {
		return shipment.Confirmation{}, err
	}

	if err := tx.Confirm(); err != nil {
		return shipment.Confirmation{}, err
	}

	confirmation := shipment.Confirmation{
		ConfirmationNumber: h.confirmations.ConfirmationNumber(),
		TrackingNumber:     h.confirmations.TrackingNumber(option.Carrier),
		EstimatedDelivery:  option.EstimatedDelivery,
		Carrier:            option.Carrier,
		ServiceType:        option.ServiceType,
		TotalCost:          option.Pricing.Total,
		SubmittedAt:        submittedAt,
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Confirmation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	submitted := ports.SubmittedShipment{
		Transaction:  tx,
		Confirmation: confirmation,
	}
	if err := uow.ShipmentRepository().Add(ctx, submitted); err != nil {
		return shipment.Confirmation{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return shipment.Confirmation{}, err
	}

	return confirmation, nil
}
