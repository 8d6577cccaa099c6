package commands

import (
	"errors"
	"time"

	"shipping/internal/pkg/guard"
)

var (
	ErrPurgeExpiredQuotesCommandIsNotConstructed = errors.New(
		"PurgeExpiredQuotesCommand must be created via NewPurgeExpiredQuotesCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must not be zero")
)

// PurgeExpiredQuotesCommand represents a request to delete quote snapshots
// whose validity window ended before the cutoff.
type PurgeExpiredQuotesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeExpiredQuotesCommand creates a command to purge expired quote
// snapshots. The cutoff must be a non-zero timestamp.
func NewPurgeExpiredQuotesCommand(cutoff time.Time) (PurgeExpiredQuotesCommand, error) {
	purgeCommand := PurgeExpiredQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setCutoff(cutoff); err != nil {
		return PurgeExpiredQuotesCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredQuotesCommandIsNotConstructed if validation fails.
func (c PurgeExpiredQuotesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredQuotesCommandIsNotConstructed)
}

// Cutoff returns the expiry cutoff timestamp.
func (c PurgeExpiredQuotesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeExpiredQuotesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
