package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentQueryHandler
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipmentQueryHandler(db)
}

func (suite *GetShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments").Error
	suite.Require().NoError(err)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ExistingShipment_ReturnsSummary() {
	submitted := suite.saveSubmittedShipment()

	query, err := queries.NewGetShipmentQuery(submitted.Transaction.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(submitted.Transaction.ID(), result.ID)
	suite.Equal("confirmed", result.Status)
	suite.Equal(submitted.Confirmation.ConfirmationNumber, result.ConfirmationNumber)
	suite.Equal(submitted.Confirmation.TrackingNumber, result.TrackingNumber)
	suite.Equal("Summit Express", result.Carrier)
	suite.Equal("Ground", result.ServiceType)
	suite.InDelta(76.11, result.TotalCost, 0.001)
	suite.WithinDuration(submitted.Confirmation.SubmittedAt, result.SubmittedAt, time.Second)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_NonExistentShipment_ReturnsNotFoundError() {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetShipmentQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetShipmentQuery constructor")
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveSubmittedShipment()

	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

// saveSubmittedShipment persists one confirmed transaction through the write
// side so the read model query sees exactly what the repository stores.
func (suite *GetShipmentQueryHandlerTestSuite) saveSubmittedShipment() ports.SubmittedShipment {
	submittedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	details := shipment.ShipmentDetails{
		Origin: shipment.Address{
			Street:  "450 Harbor Blvd",
			City:    "Los Angeles",
			State:   "CA",
			Zip:     "90001",
			Country: "US",
			Contact: kernel.Contact{
				Name:  "Dana Reyes",
				Phone: "310-555-0142",
				Email: "dana.reyes@example.com",
			},
			LocationType: shipment.LocationWarehouse,
		},
		Destination: shipment.Address{
			Street:  "88 Hudson St",
			City:    "New York",
			State:   "NY",
			Zip:     "10013",
			Country: "US",
			Contact: kernel.Contact{
				Name:  "Marcus Webb",
				Phone: "212-555-0177",
				Email: "m.webb@example.com",
			},
			LocationType: shipment.LocationBusiness,
		},
		Package: shipment.PackageInfo{
			Type:          shipment.PackageBox,
			Dimensions:    shipment.Dimensions{Length: 12, Width: 10, Height: 8, Unit: shipment.DimensionInches},
			Weight:        shipment.Weight{Value: 10, Unit: shipment.WeightPounds},
			DeclaredValue: 500,
			Currency:      "USD",
			Contents:      "Network switches",
			Category:      shipment.CategoryElectronics,
		},
		Preferences: shipment.DeliveryPreferences{
			SignatureRequired: true,
			ServiceLevel:      shipment.ServiceStandard,
		},
	}

	option := pricing.Option{
		ID:          "opt-ground-1",
		Category:    pricing.CategoryGround,
		ServiceType: "Ground",
		Carrier:     "Summit Express",
		Pricing: pricing.Breakdown{
			BaseRate:             60.00,
			FuelSurcharge:        5.70,
			FuelSurchargePct:     9.5,
			Insurance:            3.00,
			InsurancePct:         0.75,
			DeliveryConfirmation: 4.50,
			Taxes:                2.91,
			TaxPct:               7.25,
			Total:                76.11,
		},
		EstimatedDelivery: submittedAt.AddDate(0, 0, 3),
		TransitDays:       3,
		ExpiresAt:         submittedAt.Add(30 * time.Minute),
	}

	paymentInfo := payment.Info{
		Details: payment.PurchaseOrder{
			Number:         "PO-88412",
			Amount:         80.00,
			ExpirationDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		BillingContact: kernel.Contact{
			Name:  "Priya Nair",
			Phone: "415-555-0109",
			Email: "ap@example.com",
		},
		CompanyName: "Coastline Components Inc",
	}

	pickupDetails := pickup.Details{
		Date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		TimeSlot: pickup.TimeSlot{StartTime: "09:00", EndTime: "12:00"},
		PrimaryContact: pickup.Contact{
			Name:        "Dana Reyes",
			MobilePhone: "310-555-0142",
		},
		ReadyTime: "08:00",
	}

	id := kernel.NewUUID()
	tx, err := shipment.RestoreShippingTransaction(
		id, shipment.StatusConfirmed, &details, &option, &paymentInfo, &pickupDetails)
	suite.Require().NoError(err)

	submitted := ports.SubmittedShipment{
		Transaction: tx,
		Confirmation: shipment.Confirmation{
			ConfirmationNumber: "SHP-2025-" + id.String()[:6],
			TrackingNumber:     "SE0123456789",
			EstimatedDelivery:  option.EstimatedDelivery,
			Carrier:            option.Carrier,
			ServiceType:        option.ServiceType,
			TotalCost:          option.Pricing.Total,
			SubmittedAt:        submittedAt,
		},
	}

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, &noopAggregateTracker{})
	err = repo.Add(context.Background(), submitted)
	suite.Require().NoError(err)

	return submitted
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency; query
// tests do not care about aggregate tracking.
type noopAggregateTracker struct{}

func (m *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
