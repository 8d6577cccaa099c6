package services

import (
	"fmt"
	"strings"
)

// Business-rule violation codes raised by quote pre-validation. These are
// distinct from structural schema errors: the request parsed fine, but the
// shipment it describes cannot be priced.
const (
	ViolationIdenticalAddresses = "IDENTICAL_ADDRESSES"
	ViolationWeightExceedsType  = "WEIGHT_EXCEEDS_TYPE_LIMIT"
	ViolationInvalidZip         = "INVALID_ZIP"
	ViolationInvalidContact     = "INVALID_CONTACT"
)

// BusinessRuleViolation is one itemized reason a shipment cannot be priced.
type BusinessRuleViolation struct {
	Code    string
	Field   string
	Message string
}

// QuoteRejectedError aggregates every business-rule violation found in a
// quote request. Pre-validation never stops at the first violation, so the
// caller receives the complete set in one pass.
type QuoteRejectedError struct {
	Violations []BusinessRuleViolation
}

func (e *QuoteRejectedError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Code, v.Message))
	}
	return "quote rejected: " + strings.Join(msgs, "; ")
}
