package commands

import (
	"context"
)

// PurgeExpiredQuotesCommandHandler deletes expired quote snapshots.
// Invoked periodically by the background purge job.
type PurgeExpiredQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewPurgeExpiredQuotesCommandHandler creates a handler for quote purging.
func NewPurgeExpiredQuotesCommandHandler(uowFactory QuoteUoWFactory) PurgeExpiredQuotesCommandHandler {
	return PurgeExpiredQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of quote batches
// removed.
func (h *PurgeExpiredQuotesCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredQuotesCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.QuoteRepository().DeleteExpired(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
