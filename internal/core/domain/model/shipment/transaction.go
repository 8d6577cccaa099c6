package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a ShippingTransaction was
	// not created through NewShippingTransaction or RestoreShippingTransaction.
	ErrTransactionIsNotConstructed = errors.New(
		"ShippingTransaction must be created via NewShippingTransaction or RestoreShippingTransaction")
)

// ShippingTransaction is the aggregate root for one shipment workflow
// instance, from draft entry through confirmed submission.
//
// The aggregate accumulates four sections as the workflow progresses:
// shipment details, the selected pricing option, payment information, and
// pickup details. Section attachment drives the status state machine forward;
// a transaction is submission-eligible only at StatusReview with all four
// sections present.
//
// ShippingTransaction follows these invariants:
//   - Must have a valid unique identifier
//   - Status transitions are strictly linear (see Status)
//   - Each status holds the sections Status.RequiredSections names
//   - Can only be created through its constructors
type ShippingTransaction struct {
	id      kernel.UUID
	status  Status
	details *ShipmentDetails
	option  *pricing.Option
	payment *payment.Info
	pickup  *pickup.Details

	isConstructed bool
}

// NewShippingTransaction creates a transaction at the draft stage with no
// sections attached.
//
// Parameters:
//   - id: Unique identifier for the transaction (must be valid UUID)
//
// Returns:
//   - *ShippingTransaction: the created transaction in draft status
//   - error: validation error if the identifier is invalid
func NewShippingTransaction(id kernel.UUID) (*ShippingTransaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &ShippingTransaction{
		id:            id,
		status:        StatusDraft,
		isConstructed: true,
	}, nil
}

// RestoreShippingTransaction reconstructs a transaction from externally held
// state (an HTTP submission or persistence). The status must be valid and
// consistent with the sections present: every section the status requires
// must be attached.
//
// Section completeness beyond the status requirement is intentionally not
// enforced here; the submission validator reports completeness defects as
// itemized errors rather than refusing to construct the aggregate.
func RestoreShippingTransaction(
	id kernel.UUID,
	status Status,
	details *ShipmentDetails,
	option *pricing.Option,
	paymentInfo *payment.Info,
	pickupDetails *pickup.Details,
) (*ShippingTransaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	tx := &ShippingTransaction{
		id:            id,
		status:        status,
		details:       details,
		option:        option,
		payment:       paymentInfo,
		pickup:        pickupDetails,
		isConstructed: true,
	}
	return tx, nil
}

// Validate ensures the transaction was properly constructed through one of
// the constructors. Call this when receiving aggregates across boundaries.
func (t *ShippingTransaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *ShippingTransaction) ID() kernel.UUID {
	return t.id
}

// Status returns the current workflow stage.
func (t *ShippingTransaction) Status() Status {
	return t.status
}

// Details returns the shipment details section, or nil before it is attached.
func (t *ShippingTransaction) Details() *ShipmentDetails {
	return t.details
}

// SelectedOption returns the chosen pricing option, or nil before pricing.
func (t *ShippingTransaction) SelectedOption() *pricing.Option {
	return t.option
}

// PaymentInfo returns the payment section, or nil before payment.
func (t *ShippingTransaction) PaymentInfo() *payment.Info {
	return t.payment
}

// PickupDetails returns the pickup section, or nil before scheduling.
func (t *ShippingTransaction) PickupDetails() *pickup.Details {
	return t.pickup
}

// HasSection reports whether the named transaction section is attached.
func (t *ShippingTransaction) HasSection(section Section) bool {
	switch section {
	case SectionShipmentDetails:
		return t.details != nil
	case SectionSelectedOption:
		return t.option != nil
	case SectionPaymentInfo:
		return t.payment != nil
	case SectionPickupDetails:
		return t.pickup != nil
	default:
		return false
	}
}

// MissingSections returns the sections required by the current status that
// are not attached, in workflow order.
func (t *ShippingTransaction) MissingSections() []Section {
	var missing []Section
	for _, section := range t.status.RequiredSections() {
		if !t.HasSection(section) {
			missing = append(missing, section)
		}
	}
	return missing
}

// IsSubmissionEligible reports whether the transaction is at the review stage
// with all four sections attached.
func (t *ShippingTransaction) IsSubmissionEligible() bool {
	return t.status.CanSubmit() && len(t.MissingSections()) == 0
}

// AttachDetails sets the shipment details section and advances draft to pricing.
//
// Returns an error if the details fail structural validation or the
// transaction is past the draft stage.
func (t *ShippingTransaction) AttachDetails(details ShipmentDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if t.status != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to attach shipment details", t.status))
	}

	t.details = &details
	t.status = StatusPricing
	return nil
}

// SelectOption sets the chosen pricing option and advances pricing to payment.
//
// Returns an error if the option fails validation or the transaction is not
// at the pricing stage.
func (t *ShippingTransaction) SelectOption(option pricing.Option) error {
	if err := option.Validate(); err != nil {
		return err
	}
	if t.status != StatusPricing {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to select a pricing option", t.status))
	}

	t.option = &option
	t.status = StatusPayment
	return nil
}

// AttachPayment sets the payment section and advances payment to pickup.
func (t *ShippingTransaction) AttachPayment(info payment.Info) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if t.status != StatusPayment {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to attach payment information", t.status))
	}

	t.payment = &info
	t.status = StatusPickup
	return nil
}

// AttachPickup sets the pickup section and advances pickup to review.
func (t *ShippingTransaction) AttachPickup(details pickup.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if t.status != StatusPickup {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to attach pickup details", t.status))
	}

	t.pickup = &details
	t.status = StatusReview
	return nil
}

// Confirm marks the transaction as submitted and accepted.
//
// This method enforces the following business rules:
//   - The transaction must be at the review stage
//   - All four sections must be attached
//
// After successful confirmation the transaction is in its final state.
func (t *ShippingTransaction) Confirm() error {
	if missing := t.MissingSections(); len(missing) > 0 {
		return errs.NewValueIsRequiredErrorWithCause("transaction sections",
			fmt.Errorf("missing %v", missing))
	}

	newStatus, err := t.status.Confirm()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Confirmation is the value object produced by a successful submission:
// the identifiers and summary the shipper receives back.
type Confirmation struct {
	ConfirmationNumber string
	TrackingNumber     string
	EstimatedDelivery  time.Time
	Carrier            string
	ServiceType        string
	TotalCost          float64
	SubmittedAt        time.Time
}
