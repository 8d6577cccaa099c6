package services

import (
	"time"

	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"
)

// ValidatorConfig carries the tunable thresholds of the submission rule
// pipeline. The defaults reproduce the established business limits; change
// them only with product sign-off.
type ValidatorConfig struct {
	// CostPerPoundWarning is the cost-per-billed-pound above which a quote is
	// flagged as a possible misconfiguration.
	CostPerPoundWarning float64

	// POOverAuthorizationFactor is the multiple of the shipment total above
	// which a purchase-order amount draws an over-authorization warning.
	POOverAuthorizationFactor float64

	// MinReadyLeadTime is the minimum gap expected between the freight-ready
	// time and the start of the pickup window.
	MinReadyLeadTime time.Duration

	// BreakdownTolerance is the maximum absolute drift allowed between a
	// pricing total and the sum of its components at submission time.
	BreakdownTolerance float64
}

// DefaultValidatorConfig returns the production thresholds.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		CostPerPoundWarning:       50,
		POOverAuthorizationFactor: 1.2,
		MinReadyLeadTime:          30 * time.Minute,
		BreakdownTolerance:        0.01,
	}
}

// checkEnv is the read-only context handed to each pipeline check.
type checkEnv struct {
	cfg ValidatorConfig
	now time.Time
	tx  *shipment.ShippingTransaction
	ack review.TermsAcknowledgment
}

// submissionCheck is one independent rule check in the pipeline. Checks never
// mutate the transaction and never short-circuit each other; each returns its
// own findings and the validator concatenates them in pipeline order.
type submissionCheck func(env checkEnv) checkOutcome

// SubmissionValidator runs the fixed six-stage rule pipeline that decides
// whether a shipping transaction may be submitted:
//
//  1. Acknowledgment completeness (base and conditional acknowledgments)
//  2. Transaction completeness (all four sections present)
//  3. Payment authorization (PO coverage, expiration, billing contact)
//  4. Pickup feasibility (date, ready-time lead, contact, site access)
//  5. Business-rule conflicts (handling exclusions, service fit)
//  6. Cost consistency (positive, reconciled pricing breakdown)
//
// The validator is a pure function of its inputs: no I/O, no shared state,
// and expected business violations are reported as result entries rather
// than returned errors. Validating the same transaction twice yields an
// identical result.
type SubmissionValidator struct {
	cfg    ValidatorConfig
	now    func() time.Time
	checks []submissionCheck
}

// NewSubmissionValidator creates a validator with the given thresholds and
// clock. A nil clock defaults to time.Now; tests inject a fixed clock to pin
// the date-sensitive rules.
func NewSubmissionValidator(cfg ValidatorConfig, now func() time.Time) SubmissionValidator {
	if now == nil {
		now = time.Now
	}
	return SubmissionValidator{
		cfg: cfg,
		now: now,
		checks: []submissionCheck{
			checkAcknowledgments,
			checkCompleteness,
			checkPaymentAuthorization,
			checkPickupFeasibility,
			checkBusinessConflicts,
			checkCostConsistency,
		},
	}
}

// Validate runs every check in pipeline order and aggregates their findings
// into a single result. Warnings never affect validity; the transaction is
// valid when no check produced an error and no acknowledgment is missing.
func (v SubmissionValidator) Validate(
	tx *shipment.ShippingTransaction,
	ack review.TermsAcknowledgment,
) SubmissionResult {
	env := checkEnv{
		cfg: v.cfg,
		now: v.now(),
		tx:  tx,
		ack: ack,
	}

	result := SubmissionResult{
		Errors:                  make([]SubmissionError, 0),
		Warnings:                make([]SubmissionError, 0),
		MissingAcknowledgments:  make([]review.AckName, 0),
		ConflictingRequirements: make([]string, 0),
	}
	for _, check := range v.checks {
		result.merge(check(env))
	}

	result.IsValid = len(result.Errors) == 0 && len(result.MissingAcknowledgments) == 0
	return result
}
