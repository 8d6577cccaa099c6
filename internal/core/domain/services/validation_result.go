package services

import (
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/review"
)

// Severity classifies a submission finding. Errors block submission;
// warnings are informational and never change the validation verdict.
type Severity string

const (
	// SeverityError marks a finding that blocks submission.
	SeverityError Severity = "error"
	// SeverityWarning marks an informational finding.
	SeverityWarning Severity = "warning"
)

// SubmissionError is one itemized finding from the submission rule pipeline.
// NavigationPath, when set, points at the workflow step where the problem is
// fixed; ResolutionHint, when set, explains what triggered a conditional rule.
type SubmissionError struct {
	Field          string
	Message        string
	Severity       Severity
	NavigationPath string
	ResolutionHint string
}

// SubmissionResult is the complete verdict of one validation pass. It is a
// transient value recomputed on demand: the pipeline never short-circuits, so
// a single result carries every defect found.
type SubmissionResult struct {
	IsValid                 bool
	Errors                  []SubmissionError
	Warnings                []SubmissionError
	MissingAcknowledgments  []review.AckName
	ConflictingRequirements []string
}

// Summary renders the result as one human-readable sentence counting the
// findings, e.g. "Found: 2 critical errors, 1 missing acknowledgment, 3 warnings".
func (r SubmissionResult) Summary() string {
	parts := make([]string, 0, 4)
	if n := len(r.Errors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d critical %s", n, pluralize(n, "error", "errors")))
	}
	if n := len(r.MissingAcknowledgments); n > 0 {
		parts = append(parts, fmt.Sprintf("%d missing %s", n, pluralize(n, "acknowledgment", "acknowledgments")))
	}
	if n := len(r.Warnings); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize(n, "warning", "warnings")))
	}
	if n := len(r.ConflictingRequirements); n > 0 {
		parts = append(parts, fmt.Sprintf("%d conflicting %s", n, pluralize(n, "requirement", "requirements")))
	}
	if len(parts) == 0 {
		return "No issues found"
	}
	return "Found: " + strings.Join(parts, ", ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// checkOutcome is the contribution of one pipeline check.
type checkOutcome struct {
	errors                  []SubmissionError
	warnings                []SubmissionError
	missingAcknowledgments  []review.AckName
	conflictingRequirements []string
}

// merge appends the outcome of one check onto the accumulated result,
// preserving check order.
func (r *SubmissionResult) merge(out checkOutcome) {
	r.Errors = append(r.Errors, out.errors...)
	r.Warnings = append(r.Warnings, out.warnings...)
	r.MissingAcknowledgments = append(r.MissingAcknowledgments, out.missingAcknowledgments...)
	r.ConflictingRequirements = append(r.ConflictingRequirements, out.conflictingRequirements...)
}
