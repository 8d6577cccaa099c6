package commands

import (
	"errors"

	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrSubmitShipmentCommandIsNotConstructed = errors.New(
		"SubmitShipmentCommand must be created via NewSubmitShipmentCommand constructor",
	)
)

// SubmitShipmentCommand represents a request to submit a completed shipping
// transaction. Carries the transaction aggregate and the acknowledgment flags
// collected at the review step.
type SubmitShipmentCommand struct { //nolint:recvcheck //using for validation
	transaction *shipment.ShippingTransaction
	ack         review.TermsAcknowledgment

	guard guard.ConstructorGuard
}

// NewSubmitShipmentCommand creates a command to submit a transaction.
// Validates that the transaction was properly constructed; completeness and
// business rules are checked by the handler's validation pipeline so the
// caller receives the full defect set rather than the first constructor
// failure.
func NewSubmitShipmentCommand(
	transaction *shipment.ShippingTransaction,
	ack review.TermsAcknowledgment,
) (SubmitShipmentCommand, error) {
	submitCommand := SubmitShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := submitCommand.setTransaction(transaction); err != nil {
		return SubmitShipmentCommand{}, err
	}
	submitCommand.ack = ack

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitShipmentCommandIsNotConstructed if validation fails.
func (c SubmitShipmentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShipmentCommandIsNotConstructed)
}

// Transaction returns the transaction to submit.
func (c SubmitShipmentCommand) Transaction() *shipment.ShippingTransaction {
	return c.transaction
}

// Acknowledgment returns the terms-acknowledgment flags from the review step.
func (c SubmitShipmentCommand) Acknowledgment() review.TermsAcknowledgment {
	return c.ack
}

func (c *SubmitShipmentCommand) setTransaction(transaction *shipment.ShippingTransaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	c.transaction = transaction
	return nil
}
