package commands_test

import (
	"context"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, submitted ports.SubmittedShipment) error {
	args := m.Called(ctx, submitted)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(_ context.Context, _ kernel.UUID) (ports.SubmittedShipment, error) {
	return ports.SubmittedShipment{}, nil
}
func (m *MockShipmentRepository) GetByConfirmationNumber(_ context.Context, _ string) (ports.SubmittedShipment, error) {
	return ports.SubmittedShipment{}, nil
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, response pricing.QuoteResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}
func (m *MockQuoteRepository) Get(_ context.Context, _ kernel.UUID) (pricing.QuoteResponse, error) {
	return pricing.QuoteResponse{}, nil
}
func (m *MockQuoteRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockPaymentAuthorizer struct{ mock.Mock }

func (m *MockPaymentAuthorizer) Authorize(ctx context.Context, info payment.Info, amount float64) error {
	args := m.Called(ctx, info, amount)
	return args.Error(0)
}

type MockPickupScheduler struct{ mock.Mock }

func (m *MockPickupScheduler) Schedule(ctx context.Context, carrier string, details pickup.Details) error {
	args := m.Called(ctx, carrier, details)
	return args.Error(0)
}
