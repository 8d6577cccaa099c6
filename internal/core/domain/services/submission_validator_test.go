package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Monday at noon; date-sensitive rules are pinned against it.
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func validDetails() shipment.ShipmentDetails {
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

// validOption carries a breakdown whose components sum exactly to the total.
func validOption() pricing.Option {
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
			SpecialHandling:      0,
			DeliveryConfirmation: 4.50,
			Taxes:                2.91,
			TaxPct:               7.25,
			Total:                76.11,
		},
		EstimatedDelivery: fixedNow.AddDate(0, 0, 3),
		TransitDays:       3,
		ExpiresAt:         fixedNow.Add(30 * time.Minute),
	}
}

func validPayment() payment.Info {
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

func validPickup() pickup.Details {
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

func fullAck() review.TermsAcknowledgment {
	return review.TermsAcknowledgment{
		DeclaredValueAccuracy:     true,
		InsuranceRequirements:     true,
		PackageContentsCompliance: true,
		CarrierAuthorization:      true,
	}
}

// reviewTransaction assembles a complete transaction at the review stage,
// applying any mutations to the sections before restoring.
func reviewTransaction(
	t *testing.T,
	mutate func(*shipment.ShipmentDetails, *pricing.Option, *payment.Info, *pickup.Details),
) *shipment.ShippingTransaction {
	t.Helper()

	details := validDetails()
	option := validOption()
	pay := validPayment()
	pick := validPickup()
	if mutate != nil {
		mutate(&details, &option, &pay, &pick)
	}

	tx, err := shipment.RestoreShippingTransaction(
		kernel.NewUUID(), shipment.StatusReview, &details, &option, &pay, &pick)
	require.NoError(t, err)
	return tx
}

func newValidator() services.SubmissionValidator {
	return services.NewSubmissionValidator(services.DefaultValidatorConfig(), fixedClock)
}

func TestSubmissionValidator_Validate(t *testing.T) {
	t.Run("should accept a complete review-stage transaction", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, nil)

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
		assert.Empty(t, result.MissingAcknowledgments)
		assert.Equal(t, "No issues found", result.Summary())
	})

	t.Run("should report an insufficient purchase order amount", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			po := pay.Details.(payment.PurchaseOrder)
			po.Amount = 50.00
			pay.Details = po
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t,
			"Purchase order amount ($50.00) is insufficient for total cost ($76.11)",
			result.Errors[0].Message)
	})

	t.Run("should warn on an over-authorized purchase order", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			po := pay.Details.(payment.PurchaseOrder)
			po.Amount = 200.00
			pay.Details = po
		})

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid, "over-authorization is only a warning")
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "paymentInfo.poAmount", result.Warnings[0].Field)
	})

	t.Run("should reject an expired purchase order", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			po := pay.Details.(payment.PurchaseOrder)
			po.ExpirationDate = fixedNow // expires today, not strictly in the future
			pay.Details = po
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "paymentInfo.poExpirationDate", result.Errors[0].Field)
	})

	t.Run("should reject a purchase order without an expiration date", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			po := pay.Details.(payment.PurchaseOrder)
			po.ExpirationDate = time.Time{}
			pay.Details = po
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "paymentInfo.poExpirationDate", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].Message, "expiration date")
	})

	t.Run("should require a complete billing contact", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			pay.BillingContact.Email = ""
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "paymentInfo.billingContact", result.Errors[0].Field)
	})

	t.Run("should flag conflicting temperature-controlled and hazmat handling", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			details.Package.SpecialHandling = []shipment.HandlingFlag{
				shipment.HandlingTemperatureControlled,
				shipment.HandlingHazmat,
			}
		})
		ack := fullAck()
		ack.HazmatCertification = true

		result := validator.Validate(tx, ack)

		assert.False(t, result.IsValid)
		require.Len(t, result.ConflictingRequirements, 1)
		found := false
		for _, e := range result.Errors {
			if e.Field == "package.specialHandling" {
				found = true
			}
		}
		assert.True(t, found, "conflict must appear in errors as well")
	})

	t.Run("should require hazmat certification with a resolution hint", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			details.Package.SpecialHandling = []shipment.HandlingFlag{shipment.HandlingHazmat}
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.MissingAcknowledgments, 1)
		assert.Equal(t, review.AckHazmatCertification, result.MissingAcknowledgments[0])
		require.Len(t, result.Errors, 1)
		assert.NotEmpty(t, result.Errors[0].ResolutionHint)
	})

	t.Run("should require both international acknowledgments for a non-US destination", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			details.Destination.Country = "CA"
			details.Destination.Zip = "M5V 2T6"
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		assert.Equal(t, []review.AckName{
			review.AckInternationalCompliance,
			review.AckCustomsDocumentation,
		}, result.MissingAcknowledgments)
	})

	t.Run("should reject a pickup date in the past", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, pick *pickup.Details) {
			pick.Date = fixedNow.AddDate(0, 0, -1)
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Pickup date must be in the future", result.Errors[0].Message)
	})

	t.Run("should warn when the freight is not ready before the pickup window", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, pick *pickup.Details) {
			pick.ReadyTime = "10:30" // window opens at 09:00
		})

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "pickupDetails.readyTime", result.Warnings[0].Field)
	})

	t.Run("should warn on a staging lead under thirty minutes", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, pick *pickup.Details) {
			pick.ReadyTime = "08:45"
		})

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0].Message, "30 minutes")
	})

	t.Run("should require authorized personnel when ID verification is on", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, pick *pickup.Details) {
			pick.Authorization.IDVerificationRequired = true
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "pickupDetails.authorizedPersonnel", result.Errors[0].Field)
	})

	t.Run("should warn on high declared value without signature confirmation", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			details.Package.DeclaredValue = 2500
			details.Preferences.SignatureRequired = false
		})

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "package.declaredValue", result.Warnings[0].Field)
	})

	t.Run("should reject a breakdown that does not reconcile", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(_ *shipment.ShipmentDetails, option *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			option.Pricing.Total = 90.00 // components still sum to 76.11
		})

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		// The tampered total also breaks the PO coverage check downstream;
		// the reconciliation error must be among them.
		found := false
		for _, e := range result.Errors {
			if e.Field == "selectedOption.pricing" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("should warn when cost per pound is implausible", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, _ *payment.Info, _ *pickup.Details) {
			details.Package.Weight = shipment.Weight{Value: 1, Unit: shipment.WeightPounds}
		})

		result := validator.Validate(tx, fullAck())

		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "selectedOption.pricing", result.Warnings[0].Field)
	})

	t.Run("should report every missing section with its navigation path", func(t *testing.T) {
		validator := newValidator()
		tx, err := shipment.RestoreShippingTransaction(
			kernel.NewUUID(), shipment.StatusDraft, nil, nil, nil, nil)
		require.NoError(t, err)

		result := validator.Validate(tx, fullAck())

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 4)
		paths := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			paths = append(paths, e.NavigationPath)
		}
		assert.Equal(t, []string{
			"/shipping",
			"/shipping/pricing",
			"/shipping/payment",
			"/shipping/pickup",
		}, paths)
	})

	t.Run("should record every missing base acknowledgment", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, nil)

		result := validator.Validate(tx, review.TermsAcknowledgment{})

		assert.False(t, result.IsValid)
		assert.Len(t, result.MissingAcknowledgments, 4)
		assert.Len(t, result.Errors, 4)
	})

	t.Run("should be idempotent for an unchanged transaction", func(t *testing.T) {
		validator := newValidator()
		tx := reviewTransaction(t, func(details *shipment.ShipmentDetails, _ *pricing.Option, pay *payment.Info, _ *pickup.Details) {
			details.Package.SpecialHandling = []shipment.HandlingFlag{shipment.HandlingHazmat}
			pay.BillingContact.Phone = ""
		})
		ack := fullAck()

		first := validator.Validate(tx, ack)
		second := validator.Validate(tx, ack)

		assert.Equal(t, first, second)
	})
}

func TestSubmissionResult_Summary(t *testing.T) {
	t.Run("should count findings in one sentence", func(t *testing.T) {
		result := services.SubmissionResult{
			Errors: []services.SubmissionError{
				{Message: "a"}, {Message: "b"},
			},
			Warnings: []services.SubmissionError{
				{Message: "c"}, {Message: "d"}, {Message: "e"},
			},
			MissingAcknowledgments: []review.AckName{review.AckCarrierAuthorization},
		}

		assert.Equal(t,
			"Found: 2 critical errors, 1 missing acknowledgment, 3 warnings",
			result.Summary())
	})

	t.Run("should report a clean result", func(t *testing.T) {
		assert.Equal(t, "No issues found", services.SubmissionResult{}.Summary())
	})
}
