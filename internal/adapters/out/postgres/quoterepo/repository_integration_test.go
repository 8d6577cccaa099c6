package quoterepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/quoterepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QuoteRepositoryIntegrationTestSuite provides integration tests for
// QuoteRepository using PostgreSQL containers to verify quote snapshot
// persistence and the expiry purge.
type QuoteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *quoterepo.GormQuoteRepository
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&quoterepo.QuoteDTO{}))
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE quotes").Error)

	suite.repository = quoterepo.NewGormQuoteRepository(suite.db)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestAdd_ValidQuoteBatch_Success() {
	ctx := context.Background()
	response := suite.createQuoteBatch(time.Now().UTC())

	err := suite.repository.Add(ctx, response)
	suite.Require().NoError(err)

	suite.assertQuoteCount(1)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestAdd_InvalidRequestID_ReturnsError() {
	ctx := context.Background()
	response := suite.createQuoteBatch(time.Now().UTC())
	response.RequestID = kernel.UUID{}

	err := suite.repository.Add(ctx, response)
	suite.Require().Error(err)

	suite.assertQuoteCount(0)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGet_ExistingBatch_RoundtripsAllGroups() {
	ctx := context.Background()
	calculatedAt := time.Now().UTC().Truncate(time.Microsecond)
	response := suite.createQuoteBatch(calculatedAt)

	suite.Require().NoError(suite.repository.Add(ctx, response))

	retrieved, err := suite.repository.Get(ctx, response.RequestID)
	suite.Require().NoError(err)

	suite.Equal(response.RequestID, retrieved.RequestID)
	suite.Require().Len(retrieved.Ground, 2)
	suite.Require().Len(retrieved.Air, 1)
	suite.Empty(retrieved.Freight)

	// Cheapest ground option first, breakdown intact
	suite.Equal("Summit Express", retrieved.Ground[0].Carrier)
	suite.InDelta(76.11, retrieved.Ground[0].Pricing.Total, 0.001)
	suite.True(retrieved.Ground[0].Pricing.Reconciles(pricing.BreakdownTolerance))
	suite.Equal("AeroLink", retrieved.Air[0].Carrier)
	suite.Equal(1, retrieved.Air[0].TransitDays)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGet_NonExistentBatch_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestDeleteExpired_RemovesOnlyExpiredBatches() {
	ctx := context.Background()
	now := time.Now().UTC()

	expired1 := suite.createQuoteBatch(now.Add(-2 * time.Hour))
	expired2 := suite.createQuoteBatch(now.Add(-1 * time.Hour))
	fresh := suite.createQuoteBatch(now)

	suite.Require().NoError(suite.repository.Add(ctx, expired1))
	suite.Require().NoError(suite.repository.Add(ctx, expired2))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	removed, err := suite.repository.DeleteExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	// Fresh batch survives the purge
	suite.assertQuoteCount(1)
	_, err = suite.repository.Get(ctx, fresh.RequestID)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, expired1.RequestID)
	suite.Require().Error(err)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestDeleteExpired_EmptyTable_ReturnsZero() {
	ctx := context.Background()

	removed, err := suite.repository.DeleteExpired(ctx, time.Now().UTC())

	suite.Require().NoError(err)
	suite.Zero(removed)
}

// createQuoteBatch builds a quote batch calculated at the given instant with
// the standard 30-minute validity window.
func (suite *QuoteRepositoryIntegrationTestSuite) createQuoteBatch(calculatedAt time.Time) pricing.QuoteResponse {
	option := func(id, carrier, serviceType string, category pricing.Category, total float64, transitDays int) pricing.Option {
		return pricing.Option{
			ID:          id,
			Category:    category,
			ServiceType: serviceType,
			Carrier:     carrier,
			Pricing: pricing.Breakdown{
				BaseRate:             total - 16.11,
				FuelSurcharge:        5.70,
				FuelSurchargePct:     9.5,
				Insurance:            3.00,
				InsurancePct:         0.75,
				DeliveryConfirmation: 4.50,
				Taxes:                2.91,
				TaxPct:               7.25,
				Total:                total,
			},
			EstimatedDelivery: calculatedAt.AddDate(0, 0, transitDays),
			TransitDays:       transitDays,
			ExpiresAt:         calculatedAt.Add(30 * time.Minute),
		}
	}

	return pricing.QuoteResponse{
		RequestID: kernel.NewUUID(),
		Ground: []pricing.Option{
			option(kernel.NewUUID().String(), "Summit Express", "Ground", pricing.CategoryGround, 76.11, 3),
			option(kernel.NewUUID().String(), "Pacific Cargo", "Ground Economy", pricing.CategoryGround, 81.40, 5),
		},
		Air: []pricing.Option{
			option(kernel.NewUUID().String(), "AeroLink", "Next Day Air", pricing.CategoryAir, 194.22, 1),
		},
		CalculatedAt: calculatedAt,
		ExpiresAt:    calculatedAt.Add(30 * time.Minute),
	}
}

// assertQuoteCount verifies the number of quote batches in the database.
func (suite *QuoteRepositoryIntegrationTestSuite) assertQuoteCount(expected int) {
	var count int64
	err := suite.db.Model(&quoterepo.QuoteDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestQuoteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRepositoryIntegrationTestSuite))
}
