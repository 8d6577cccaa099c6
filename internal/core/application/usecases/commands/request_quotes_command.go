package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrRequestQuotesCommandIsNotConstructed = errors.New(
		"RequestQuotesCommand must be created via NewRequestQuotesCommand constructor",
	)
)

// RequestQuotesCommand represents a request to price a shipment across all
// applicable carrier tiers. Encapsulates the full shipment description:
// endpoints, package, and delivery preferences.
//
// Example:
//
//	cmd, err := NewRequestQuotesCommand(details)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment details: %w", err)
//	}
//
//	handler := NewRequestQuotesCommandHandler(engine, uowFactory)
//	response, err := handler.Handle(ctx, cmd)
type RequestQuotesCommand struct { //nolint:recvcheck //using for validation
	details shipment.ShipmentDetails

	guard guard.ConstructorGuard
}

// NewRequestQuotesCommand creates a command to price a shipment.
// Validates the structural completeness of the shipment details.
// Returns an error if any validation fails.
func NewRequestQuotesCommand(details shipment.ShipmentDetails) (RequestQuotesCommand, error) {
	quotesCommand := RequestQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := quotesCommand.setDetails(details); err != nil {
		return RequestQuotesCommand{}, err
	}

	return quotesCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestQuotesCommandIsNotConstructed if validation fails.
func (c RequestQuotesCommand) Validate() error {
	return c.guard.Validate(ErrRequestQuotesCommandIsNotConstructed)
}

// Details returns the shipment description to price.
func (c RequestQuotesCommand) Details() shipment.ShipmentDetails {
	return c.details
}

func (c *RequestQuotesCommand) setDetails(details shipment.ShipmentDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
