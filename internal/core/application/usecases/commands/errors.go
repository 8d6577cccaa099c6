package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

// ErrQuoteExpired indicates the selected option's validity window passed
// before submission. The shipper must request a fresh quote.
var ErrQuoteExpired = errors.New("selected quote has expired, request new pricing")

// InvalidStatusError indicates a submission was attempted outside the review
// stage. It names both the current and the required status.
type InvalidStatusError struct {
	Current  shipment.Status
	Required shipment.Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("transaction status is %s, submission requires %s", e.Current, e.Required)
}

// SubmissionRejectedError carries the full validation verdict of a rejected
// submission. The embedded result itemizes every defect so the caller can
// surface them all in one response.
type SubmissionRejectedError struct {
	Result services.SubmissionResult
}

func (e *SubmissionRejectedError) Error() string {
	return "submission rejected: " + e.Result.Summary()
}
