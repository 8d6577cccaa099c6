// Package carrier provides the pickup-scheduling adapter. The carrier
// dispatch API is mocked: bookings succeed whenever the window is one a
// carrier actually serves.
package carrier

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/ports"
)

// MockScheduler implements ports.PickupScheduler against the mocked carrier
// dispatch backend. Carriers do not run Sunday pickups.
type MockScheduler struct{}

// NewMockScheduler creates a scheduler for the mocked dispatch backend.
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Schedule books the pickup. Returns ports.ErrPickupUnavailable (wrapped)
// when no carrier serves the requested window.
func (s *MockScheduler) Schedule(_ context.Context, carrier string, details pickup.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	if details.Date.Weekday() == time.Sunday {
		return fmt.Errorf("%w: %s does not run Sunday pickups", ports.ErrPickupUnavailable, carrier)
	}
	return nil
}
