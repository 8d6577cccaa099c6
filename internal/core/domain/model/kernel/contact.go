package kernel

import (
	"errors"
	"strings"

	"shipping/internal/pkg/errs"
)

// Contact represents a named point of contact with communication details.
// It is shared between shipment addresses and billing information.
//
// Contact is a plain value object: the zero value is a valid empty contact,
// and completeness requirements differ by context, so callers decide which
// fields are mandatory via Validate or their own checks.
type Contact struct {
	Name    string
	Company string
	Phone   string
	Email   string
}

// IsComplete reports whether name, phone, and email are all present.
// Billing contacts must be complete before submission.
func (c Contact) IsComplete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Phone) != "" &&
		strings.TrimSpace(c.Email) != ""
}

// Validate checks the minimum contact requirements for an address:
// a name and at least one way to reach the person.
func (c Contact) Validate() error {
	var err error
	if strings.TrimSpace(c.Name) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("contact name"))
	}
	if strings.TrimSpace(c.Phone) == "" && strings.TrimSpace(c.Email) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("contact phone or email"))
	}
	return err
}
