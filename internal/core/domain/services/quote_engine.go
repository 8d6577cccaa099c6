package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/shipment"
)

// EngineConfig carries the tunable rating parameters of the quote engine.
type EngineConfig struct {
	// QuoteValidity is how long a computed quote batch stays usable.
	QuoteValidity time.Duration

	// DimensionalDivisor converts cubic inches into dimensional pounds.
	DimensionalDivisor float64

	// FreightThresholdLb is the billing weight above which freight tiers are
	// quoted for non-freight package types.
	FreightThresholdLb float64

	// DeliveryConfirmationFee is the flat fee added when any proof-of-delivery
	// preference is enabled.
	DeliveryConfirmationFee float64

	// TaxPct is the tax percentage applied to the pre-tax subtotal.
	TaxPct float64

	// InternationalDistanceMi is the distance assumed for any route with a
	// non-US endpoint, where postal-code geometry does not apply.
	InternationalDistanceMi float64

	// HandlingFees maps each special-handling flag to its flat fee.
	HandlingFees map[shipment.HandlingFlag]float64
}

// DefaultEngineConfig returns the production rating parameters.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		QuoteValidity:           30 * time.Minute,
		DimensionalDivisor:      166,
		FreightThresholdLb:      150,
		DeliveryConfirmationFee: 4.50,
		TaxPct:                  7.25,
		InternationalDistanceMi: 4200,
		HandlingFees: map[shipment.HandlingFlag]float64{
			shipment.HandlingFragile:               15.00,
			shipment.HandlingHazmat:                45.00,
			shipment.HandlingTemperatureControlled: 35.00,
			shipment.HandlingLiquid:                20.00,
			shipment.HandlingOversized:             25.00,
		},
	}
}

// QuoteEngine prices a shipment across every applicable carrier/service tier
// and groups the results by transport category.
//
// The engine is a pure function of the shipment details, its configuration,
// and its injected clock and ID source: quoting the same shipment twice with
// a pinned clock and ID source yields identical results. Business-rule
// violations (identical endpoints, over-limit weight, malformed fields) are
// returned as a *QuoteRejectedError before any pricing runs.
type QuoteEngine struct {
	cfg   EngineConfig
	now   func() time.Time
	newID func() kernel.UUID
}

// NewQuoteEngine creates an engine with the given rating parameters, clock,
// and ID source. A nil clock defaults to time.Now and a nil ID source to
// kernel.NewUUID; tests inject both to pin outputs.
func NewQuoteEngine(cfg EngineConfig, now func() time.Time, newID func() kernel.UUID) QuoteEngine {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = kernel.NewUUID
	}
	return QuoteEngine{cfg: cfg, now: now, newID: newID}
}

// Quote prices the shipment and returns its options grouped by category,
// each group sorted ascending by total. The whole batch shares one validity
// window starting at the calculation time.
func (e QuoteEngine) Quote(details shipment.ShipmentDetails) (pricing.QuoteResponse, error) {
	if err := e.checkBusinessRules(details); err != nil {
		return pricing.QuoteResponse{}, err
	}

	calculatedAt := e.now()
	distance := e.routeDistanceMiles(details.Origin, details.Destination)
	billed := e.billingWeightLb(details.Package)

	response := pricing.QuoteResponse{
		RequestID:    e.newID(),
		CalculatedAt: calculatedAt,
		ExpiresAt:    calculatedAt.Add(e.cfg.QuoteValidity),
	}

	for _, tier := range rateCatalog() {
		if !e.tierApplies(tier, details.Package, billed) {
			continue
		}
		option := e.priceTier(tier, details, distance, billed, calculatedAt, response.ExpiresAt)
		switch tier.category {
		case pricing.CategoryAir:
			response.Air = append(response.Air, option)
		case pricing.CategoryFreight:
			response.Freight = append(response.Freight, option)
		default:
			response.Ground = append(response.Ground, option)
		}
	}

	for _, group := range [][]pricing.Option{response.Ground, response.Air, response.Freight} {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Pricing.Total < group[j].Pricing.Total
		})
	}

	return response, nil
}

// checkBusinessRules runs the pre-pricing rejection rules and collects every
// violation before returning.
func (e QuoteEngine) checkBusinessRules(details shipment.ShipmentDetails) error {
	var violations []BusinessRuleViolation

	if details.Origin.IsSameLocation(details.Destination) {
		violations = append(violations, BusinessRuleViolation{
			Code:    ViolationIdenticalAddresses,
			Field:   "destination",
			Message: "Origin and destination addresses must differ",
		})
	}

	if details.Package.ExceedsTypeLimit() {
		violations = append(violations, BusinessRuleViolation{
			Code:  ViolationWeightExceedsType,
			Field: "package.weight",
			Message: fmt.Sprintf(
				"Weight of %.1f lb exceeds the %.0f lb limit for package type %q",
				details.Package.Weight.Pounds(),
				details.Package.Type.WeightLimitLb(),
				details.Package.Type),
		})
	}

	for field, addr := range map[string]shipment.Address{
		"origin":      details.Origin,
		"destination": details.Destination,
	} {
		if !addr.HasValidZip() {
			violations = append(violations, BusinessRuleViolation{
				Code:    ViolationInvalidZip,
				Field:   field + ".zip",
				Message: fmt.Sprintf("%q is not a valid postal code", addr.Zip),
			})
		}
		if err := addr.Contact.Validate(); err != nil {
			violations = append(violations, BusinessRuleViolation{
				Code:    ViolationInvalidContact,
				Field:   field + ".contact",
				Message: err.Error(),
			})
		}
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			return violations[i].Field < violations[j].Field
		})
		return &QuoteRejectedError{Violations: violations}
	}
	return nil
}

// tierApplies reports whether a catalog tier should be quoted for the
// package. Pallet and crate types are freight-only; parcel types pick up
// freight tiers once the billing weight crosses the freight threshold.
func (e QuoteEngine) tierApplies(tier carrierTier, pkg shipment.PackageInfo, billedLb float64) bool {
	if pkg.Type.IsFreight() {
		return tier.category == pricing.CategoryFreight
	}
	if tier.category == pricing.CategoryFreight {
		return billedLb >= e.cfg.FreightThresholdLb
	}
	return true
}

// billingWeightLb returns the greater of actual and dimensional weight.
func (e QuoteEngine) billingWeightLb(pkg shipment.PackageInfo) float64 {
	actual := pkg.Weight.Pounds()
	dimensional := pkg.Dimensions.VolumeCubicInches() / e.cfg.DimensionalDivisor
	return math.Max(actual, dimensional)
}

// routeDistanceMiles derives a rating distance from the two endpoints.
// Domestic routes use the spread between three-digit ZIP prefixes as a
// coarse geography proxy; any non-US endpoint falls back to a fixed
// international distance.
func (e QuoteEngine) routeDistanceMiles(origin, destination shipment.Address) float64 {
	if !origin.IsUS() || !destination.IsUS() {
		return e.cfg.InternationalDistanceMi
	}
	o, okO := zipPrefix(origin.Zip)
	d, okD := zipPrefix(destination.Zip)
	if !okO || !okD {
		return e.cfg.InternationalDistanceMi
	}
	diff := o - d
	if diff < 0 {
		diff = -diff
	}
	return 50 + float64(diff)*4.1
}

func zipPrefix(zip string) (int, bool) {
	z := strings.TrimSpace(zip)
	if len(z) < 3 {
		return 0, false
	}
	n, err := strconv.Atoi(z[:3])
	if err != nil {
		return 0, false
	}
	return n, true
}

// priceTier computes one fully itemized option for a catalog tier. Every
// component is rounded to cents before summing, so the stored total always
// reconciles with the breakdown.
func (e QuoteEngine) priceTier(
	tier carrierTier,
	details shipment.ShipmentDetails,
	distance, billedLb float64,
	calculatedAt, expiresAt time.Time,
) pricing.Option {
	pkg := details.Package

	base := billedLb*tier.ratePerLb + distance*tier.ratePerMile
	if base < tier.minimumCharge {
		base = tier.minimumCharge
	}
	base = roundCents(base)

	fuel := roundCents(base * tier.fuelSurchargePct / 100)

	insPct := insurancePct(tier.category)
	insurance := roundCents(pkg.DeclaredValue * insPct / 100)

	var handling float64
	for _, flag := range pkg.SpecialHandling {
		handling += e.cfg.HandlingFees[flag]
	}
	handling = roundCents(handling)

	var confirmation float64
	if details.Preferences.WantsDeliveryConfirmation() {
		confirmation = roundCents(e.cfg.DeliveryConfirmationFee)
	}

	subtotal := base + fuel + insurance + handling + confirmation
	taxes := roundCents(subtotal * e.cfg.TaxPct / 100)
	total := roundCents(subtotal + taxes)

	transitDays := tier.baseTransitDays
	if tier.transitMilesPerDay > 0 {
		transitDays += int(distance / tier.transitMilesPerDay)
	}

	return pricing.Option{
		ID:          e.newID().String(),
		Category:    tier.category,
		ServiceType: tier.serviceType,
		Carrier:     tier.carrier,
		Pricing: pricing.Breakdown{
			BaseRate:             base,
			FuelSurcharge:        fuel,
			FuelSurchargePct:     tier.fuelSurchargePct,
			Insurance:            insurance,
			InsurancePct:         insPct,
			SpecialHandling:      handling,
			DeliveryConfirmation: confirmation,
			Taxes:                taxes,
			TaxPct:               e.cfg.TaxPct,
			Total:                total,
		},
		EstimatedDelivery: calculatedAt.AddDate(0, 0, transitDays),
		TransitDays:       transitDays,
		Features:          tier.features,
		CarbonFootprintKg: math.Round(billedLb*distance*carbonKgPerLbMile(tier.category)*100) / 100,
		ExpiresAt:         expiresAt,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
