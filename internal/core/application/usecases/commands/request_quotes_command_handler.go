package commands

import (
	"context"

	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/services"
)

// RequestQuotesCommandHandler handles the business logic for quote requests.
// Prices the shipment through the quote engine and stores a snapshot of the
// batch so later submissions can be checked against the offered prices.
//
// Example:
//
//	handler := NewRequestQuotesCommandHandler(engine, uowFactory)
//	cmd, _ := NewRequestQuotesCommand(details)
//
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var rejected *services.QuoteRejectedError
//	    if errors.As(err, &rejected) {
//	        // business-rule violations, not a system failure
//	    }
//	}
type RequestQuotesCommandHandler struct {
	engine     services.QuoteEngine
	uowFactory QuoteUoWFactory
}

// NewRequestQuotesCommandHandler creates a handler for quote requests.
// Requires the pricing engine and a QuoteUoWFactory for snapshot persistence.
func NewRequestQuotesCommandHandler(
	engine services.QuoteEngine,
	uowFactory QuoteUoWFactory,
) RequestQuotesCommandHandler {
	return RequestQuotesCommandHandler{
		engine:     engine,
		uowFactory: uowFactory,
	}
}

// Handle processes the quote request command.
// Business-rule violations from the engine (*services.QuoteRejectedError)
// are returned as-is; the quote batch is only persisted when pricing
// succeeded.
func (h *RequestQuotesCommandHandler) Handle(
	ctx context.Context,
	cmd RequestQuotesCommand,
) (pricing.QuoteResponse, error) {
	if err := cmd.Validate(); err != nil {
		return pricing.QuoteResponse{}, err
	}

	response, err := h.engine.Quote(cmd.Details())
	if err != nil {
		return pricing.QuoteResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return pricing.QuoteResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.QuoteRepository().Add(ctx, response); err != nil {
		return pricing.QuoteResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return pricing.QuoteResponse{}, err
	}

	return response, nil
}
