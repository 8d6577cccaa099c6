package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

// testNow is a Monday at noon; all clock-sensitive assertions pin against it.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func shipmentDetailsFixture() shipment.ShipmentDetails {
	return shipment.ShipmentDetails{
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
}

func optionFixture() pricing.Option {
	return pricing.Option{
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
		EstimatedDelivery: testNow.AddDate(0, 0, 3),
		TransitDays:       3,
		ExpiresAt:         testNow.Add(30 * time.Minute),
	}
}

func paymentFixture() payment.Info {
	return payment.Info{
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
}

func pickupFixture() pickup.Details {
	return pickup.Details{
		Date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		TimeSlot: pickup.TimeSlot{StartTime: "09:00", EndTime: "12:00"},
		PrimaryContact: pickup.Contact{
			Name:        "Dana Reyes",
			MobilePhone: "310-555-0142",
		},
		ReadyTime: "08:00",
	}
}

func ackFixture() review.TermsAcknowledgment {
	return review.TermsAcknowledgment{
		DeclaredValueAccuracy:     true,
		InsuranceRequirements:     true,
		PackageContentsCompliance: true,
		CarrierAuthorization:      true,
	}
}

func reviewTransactionFixture(t *testing.T) *shipment.ShippingTransaction {
	t.Helper()

	details := shipmentDetailsFixture()
	option := optionFixture()
	pay := paymentFixture()
	pick := pickupFixture()

	tx, err := shipment.RestoreShippingTransaction(
		kernel.NewUUID(), shipment.StatusReview, &details, &option, &pay, &pick)
	require.NoError(t, err)
	return tx
}
