package services

import "shipping/internal/core/domain/model/pricing"

// carrierTier is one carrier/service-tier combination the engine can quote.
// Rates are mocked but shaped like real tariffs: a per-mile linehaul
// component, a per-pound weight component, and a floor charge.
type carrierTier struct {
	carrier          string
	serviceType      string
	category         pricing.Category
	ratePerMile      float64
	ratePerLb        float64
	minimumCharge    float64
	fuelSurchargePct float64
	baseTransitDays  int
	// transitMilesPerDay stretches transit for longer routes. Zero means the
	// tier has a committed delivery day regardless of distance.
	transitMilesPerDay float64
	features           []string
}

// rateCatalog returns every tier the engine knows. Air tiers commit to fixed
// transit days; ground and freight transit grows with distance, so air always
// beats ground on the same route.
func rateCatalog() []carrierTier {
	return []carrierTier{
		{
			carrier:            "Summit Express",
			serviceType:        "Ground",
			category:           pricing.CategoryGround,
			ratePerMile:        0.012,
			ratePerLb:          0.42,
			minimumCharge:      12.50,
			fuelSurchargePct:   9.5,
			baseTransitDays:    3,
			transitMilesPerDay: 700,
			features:           []string{"tracking", "residential-delivery"},
		},
		{
			carrier:            "Pacific Cargo",
			serviceType:        "Ground Economy",
			category:           pricing.CategoryGround,
			ratePerMile:        0.009,
			ratePerLb:          0.35,
			minimumCharge:      9.95,
			fuelSurchargePct:   8.5,
			baseTransitDays:    4,
			transitMilesPerDay: 600,
			features:           []string{"tracking"},
		},
		{
			carrier:          "AeroLink",
			serviceType:      "Next Day Air",
			category:         pricing.CategoryAir,
			ratePerMile:      0.045,
			ratePerLb:        1.85,
			minimumCharge:    38.00,
			fuelSurchargePct: 14.0,
			baseTransitDays:  1,
			features:         []string{"tracking", "morning-delivery", "money-back-guarantee"},
		},
		{
			carrier:          "AeroLink",
			serviceType:      "Second Day Air",
			category:         pricing.CategoryAir,
			ratePerMile:      0.028,
			ratePerLb:        1.10,
			minimumCharge:    24.00,
			fuelSurchargePct: 12.5,
			baseTransitDays:  2,
			features:         []string{"tracking"},
		},
		{
			carrier:            "Velocity Freight",
			serviceType:        "LTL Standard",
			category:           pricing.CategoryFreight,
			ratePerMile:        0.085,
			ratePerLb:          0.22,
			minimumCharge:      145.00,
			fuelSurchargePct:   11.0,
			baseTransitDays:    4,
			transitMilesPerDay: 500,
			features:           []string{"tracking", "liftgate-available", "appointment-delivery"},
		},
		{
			carrier:            "Pacific Cargo",
			serviceType:        "Pallet Freight",
			category:           pricing.CategoryFreight,
			ratePerMile:        0.070,
			ratePerLb:          0.18,
			minimumCharge:      120.00,
			fuelSurchargePct:   10.0,
			baseTransitDays:    5,
			transitMilesPerDay: 450,
			features:           []string{"tracking", "dock-to-dock"},
		},
	}
}

// insurancePct returns the declared-value insurance percentage per category.
// Faster and heavier modes carry a higher premium.
func insurancePct(category pricing.Category) float64 {
	switch category {
	case pricing.CategoryAir:
		return 1.25
	case pricing.CategoryFreight:
		return 1.5
	default:
		return 0.75
	}
}

// carbonKgPerLbMile is the emission factor per billed pound-mile. Air is the
// most carbon-intensive mode; consolidated freight the least.
func carbonKgPerLbMile(category pricing.Category) float64 {
	switch category {
	case pricing.CategoryAir:
		return 0.0025
	case pricing.CategoryFreight:
		return 0.0004
	default:
		return 0.0005
	}
}
