package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the workflow stage of a shipping transaction.
// It implements a strictly linear state machine:
//
//	Draft ──> Pricing ──> Payment ──> Pickup ──> Review ──> Confirmed
//
// Each stage unlocks one transaction section; submission is only permitted
// from Review, and Confirmed is the final state with no further transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the HTTP surface.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial stage: shipment details are being entered.
	StatusDraft

	// StatusPricing means details are complete and quotes are being compared.
	StatusPricing

	// StatusPayment means a quote was selected and payment is being collected.
	StatusPayment

	// StatusPickup means payment is set and pickup is being scheduled.
	StatusPickup

	// StatusReview means all sections are present and the transaction awaits
	// terms acknowledgment and submission.
	StatusReview

	// StatusConfirmed means the shipment was submitted and accepted.
	// This is a final state with no further transitions allowed.
	StatusConfirmed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusPricing:   "pricing",
		StatusPayment:   "payment",
		StatusPickup:    "pickup",
		StatusReview:    "review",
		StatusConfirmed: "confirmed",
	}
}

// String returns the wire name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: draft, pricing, payment, pickup, review, confirmed.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < StatusDraft || s > StatusConfirmed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus converts a wire name into a Status.
func ParseStatus(str string) (Status, error) {
	for s, name := range getStatusStrings() {
		if name == str && s != StatusUnknown {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", str))
}

// Section names one of the four transaction sections accumulated across the
// workflow. Section values double as navigation anchors on the HTTP surface.
type Section string

const (
	// SectionShipmentDetails is the addresses/package/preferences section.
	SectionShipmentDetails Section = "shipmentDetails"
	// SectionSelectedOption is the chosen pricing quote.
	SectionSelectedOption Section = "selectedOption"
	// SectionPaymentInfo is the payment method and billing data.
	SectionPaymentInfo Section = "paymentInfo"
	// SectionPickupDetails is the pickup scheduling data.
	SectionPickupDetails Section = "pickupDetails"
)

// NavigationPath returns the workflow route where the section is edited.
func (s Section) NavigationPath() string {
	switch s {
	case SectionShipmentDetails:
		return "/shipping"
	case SectionSelectedOption:
		return "/shipping/pricing"
	case SectionPaymentInfo:
		return "/shipping/payment"
	case SectionPickupDetails:
		return "/shipping/pickup"
	default:
		return "/shipping"
	}
}

// RequiredSections returns the transaction sections that must be present for
// a transaction to legitimately hold this status. The set grows monotonically
// along the workflow: pricing requires details, payment additionally requires
// the selected option, and so on.
func (s Status) RequiredSections() []Section {
	switch s {
	case StatusPricing:
		return []Section{SectionShipmentDetails}
	case StatusPayment:
		return []Section{SectionShipmentDetails, SectionSelectedOption}
	case StatusPickup:
		return []Section{SectionShipmentDetails, SectionSelectedOption, SectionPaymentInfo}
	case StatusReview, StatusConfirmed:
		return []Section{
			SectionShipmentDetails,
			SectionSelectedOption,
			SectionPaymentInfo,
			SectionPickupDetails,
		}
	default:
		return nil
	}
}

// Next returns the stage that follows this one in the workflow.
//
// Returns an error for Confirmed (final state) and for invalid statuses.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s == StatusConfirmed {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is a final status with no further transitions", s))
	}
	return s + 1, nil
}

// CanTransitionTo reports whether moving from this status to next is a legal
// single step forward in the workflow.
func (s Status) CanTransitionTo(next Status) bool {
	n, err := s.Next()
	return err == nil && n == next
}

// CanSubmit reports whether a transaction in this status may be submitted.
// Submission is only permitted at the review stage.
func (s Status) CanSubmit() bool {
	return s == StatusReview
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Review -> Confirmed (successful submission)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transaction is not at the review stage
func (s Status) Confirm() (Status, error) {
	if s != StatusReview {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to confirm, transaction must be in review", s))
	}
	return StatusConfirmed, nil
}
