// Package payment contains the payment method value objects for B2B
// settlement: purchase orders, bills of lading, third-party billing, net
// terms, and corporate accounts, modeled as a closed tagged union.
package payment

import (
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Method is the closed enumeration of supported B2B payment methods.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// MethodPurchaseOrder bills against a customer purchase order.
	MethodPurchaseOrder

	// MethodBillOfLading settles via bill-of-lading freight terms.
	MethodBillOfLading

	// MethodThirdParty bills a third-party account.
	MethodThirdParty

	// MethodNetTerms invoices on net payment terms.
	MethodNetTerms

	// MethodCorporate bills an established corporate account.
	MethodCorporate
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:       "unknown",
		MethodPurchaseOrder: "po",
		MethodBillOfLading:  "bol",
		MethodThirdParty:    "thirdparty",
		MethodNetTerms:      "net",
		MethodCorporate:     "corporate",
	}
}

// String returns the wire name of the payment method.
func (m Method) String() string {
	if s, ok := getMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the method is one of the defined values.
func (m Method) Validate() error {
	if m <= MethodUnknown || m > MethodCorporate {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// ParseMethod converts a wire name into a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range getMethodStrings() {
		if name == s && m != MethodUnknown {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Details is the method-specific payment data. Exactly one concrete variant
// exists per Method value; the interface is closed by the unexported marker.
type Details interface {
	// Method returns the payment method this detail variant belongs to.
	Method() Method

	isPaymentDetails()
}

// PurchaseOrder holds purchase-order billing data. The authorized amount
// must cover the shipment total, and the PO must not be expired at
// submission time.
type PurchaseOrder struct {
	Number         string
	Amount         float64
	ExpirationDate time.Time
}

// Method returns MethodPurchaseOrder.
func (PurchaseOrder) Method() Method { return MethodPurchaseOrder }

func (PurchaseOrder) isPaymentDetails() {}

// BillOfLading holds bill-of-lading settlement data.
type BillOfLading struct {
	Number       string
	FreightTerms string
}

// Method returns MethodBillOfLading.
func (BillOfLading) Method() Method { return MethodBillOfLading }

func (BillOfLading) isPaymentDetails() {}

// ThirdParty holds third-party billing account data.
type ThirdParty struct {
	AccountNumber string
	CompanyName   string
}

// Method returns MethodThirdParty.
func (ThirdParty) Method() Method { return MethodThirdParty }

func (ThirdParty) isPaymentDetails() {}

// NetTerms holds net-terms invoicing data.
type NetTerms struct {
	Days           int
	CreditApproved bool
}

// Method returns MethodNetTerms.
func (NetTerms) Method() Method { return MethodNetTerms }

func (NetTerms) isPaymentDetails() {}

// CorporateAccount holds corporate account billing data.
type CorporateAccount struct {
	AccountNumber string
	CostCenter    string
}

// Method returns MethodCorporate.
func (CorporateAccount) Method() Method { return MethodCorporate }

func (CorporateAccount) isPaymentDetails() {}

// BillingAddress is the invoice mailing address.
type BillingAddress struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// InvoicePreferences collects how the customer wants invoices delivered.
type InvoicePreferences struct {
	Email            bool
	Paper            bool
	ConsolidatedCopy bool
}

// Info is the complete payment section of a shipping transaction: the
// method-specific details, who to bill, and how to invoice.
type Info struct {
	Details        Details
	BillingContact kernel.Contact
	CompanyName    string
	BillingAddress BillingAddress
	Invoice        InvoicePreferences
}

// Method returns the payment method carried by the details variant,
// or MethodUnknown when no details are attached.
func (i Info) Method() Method {
	if i.Details == nil {
		return MethodUnknown
	}
	return i.Details.Method()
}

// Validate checks the structural validity of the payment section.
// Billing-contact completeness is a submission rule, not a structural one,
// so it is left to the submission validator.
func (i Info) Validate() error {
	if i.Details == nil {
		return errs.NewValueIsRequiredError("paymentDetails")
	}
	if err := i.Method().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.CompanyName) == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	return nil
}
