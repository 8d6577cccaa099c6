// Package pricing contains the quoted-offer value objects: one Option per
// carrier and service tier, its itemized cost Breakdown, and the
// QuoteResponse grouping options by category with a validity window.
package pricing

import (
	"fmt"
	"math"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Category classifies a quoted service by transport mode.
type Category string

const (
	// CategoryGround is road transport.
	CategoryGround Category = "ground"
	// CategoryAir is air transport.
	CategoryAir Category = "air"
	// CategoryFreight is LTL/FTL freight transport.
	CategoryFreight Category = "freight"
)

// Validate checks that the category is one of the defined values.
func (c Category) Validate() error {
	switch c {
	case CategoryGround, CategoryAir, CategoryFreight:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a valid pricing category", c))
	}
}

// BreakdownTolerance is the maximum absolute difference permitted between an
// option's Total and the sum of its additive components. Options whose
// breakdown drifts further than this are considered corrupted.
const BreakdownTolerance = 0.02

// Breakdown itemizes the cost of one quoted option. Total is not derived on
// read: it is set at quote time and must reconcile with the sum of the
// additive components, which the submission validator re-checks before a
// transaction is accepted.
type Breakdown struct {
	BaseRate             float64
	FuelSurcharge        float64
	FuelSurchargePct     float64
	Insurance            float64
	InsurancePct         float64
	SpecialHandling      float64
	DeliveryConfirmation float64
	Taxes                float64
	TaxPct               float64
	Total                float64
}

// Sum returns the total of all additive cost components.
func (b Breakdown) Sum() float64 {
	return b.BaseRate + b.FuelSurcharge + b.Insurance +
		b.SpecialHandling + b.DeliveryConfirmation + b.Taxes
}

// Reconciles reports whether Total matches the component sum within the
// given absolute tolerance.
func (b Breakdown) Reconciles(tolerance float64) bool {
	return math.Abs(b.Total-b.Sum()) <= tolerance
}

// Validate checks the breakdown invariants: a strictly positive total that
// reconciles with its components within BreakdownTolerance.
func (b Breakdown) Validate() error {
	if b.Total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%.2f is not greater than 0", b.Total))
	}
	if !b.Reconciles(BreakdownTolerance) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("total %.2f does not match component sum %.2f", b.Total, b.Sum()))
	}
	return nil
}

// Option is one quoted carrier/service-tier offer for a shipment.
type Option struct {
	ID                string
	Category          Category
	ServiceType       string
	Carrier           string
	Pricing           Breakdown
	EstimatedDelivery time.Time
	TransitDays       int
	Features          []string
	CarbonFootprintKg float64
	ExpiresAt         time.Time
}

// IsExpired reports whether the option's validity window has passed.
func (o Option) IsExpired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && now.After(o.ExpiresAt)
}

// Validate checks the option's structural and pricing invariants.
func (o Option) Validate() error {
	if o.ID == "" {
		return errs.NewValueIsRequiredError("option id")
	}
	if err := o.Category.Validate(); err != nil {
		return err
	}
	if o.Carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	if o.ServiceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}
	return o.Pricing.Validate()
}

// QuoteResponse is the complete result of one pricing calculation: options
// grouped by category, each group sorted ascending by total, valid until
// ExpiresAt.
type QuoteResponse struct {
	RequestID    kernel.UUID
	Ground       []Option
	Air          []Option
	Freight      []Option
	CalculatedAt time.Time
	ExpiresAt    time.Time
}

// Options returns every quoted option across all categories.
func (q QuoteResponse) Options() []Option {
	all := make([]Option, 0, len(q.Ground)+len(q.Air)+len(q.Freight))
	all = append(all, q.Ground...)
	all = append(all, q.Air...)
	all = append(all, q.Freight...)
	return all
}

// IsExpired reports whether the whole quote batch has passed its validity window.
func (q QuoteResponse) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}
