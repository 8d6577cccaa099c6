package services

import (
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"
)

const envelopeDimensionLimitIn = 12

// startOfDay truncates a timestamp to its calendar date. Date rules compare
// at day granularity in the clock's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// checkAcknowledgments verifies that every required acknowledgment is
// confirmed. The four base acknowledgments are always required; hazmat
// certification and the two international acknowledgments are required
// conditionally, and their findings carry a resolution hint naming the
// condition that triggered them.
func checkAcknowledgments(env checkEnv) checkOutcome {
	var out checkOutcome

	hints := map[review.AckName]string{
		review.AckHazmatCertification:     "Required because the package carries the hazmat special-handling flag",
		review.AckInternationalCompliance: "Required because the destination country is outside the US",
		review.AckCustomsDocumentation:    "Required because the destination country is outside the US",
	}

	var details *shipment.ShipmentDetails
	if env.tx != nil {
		details = env.tx.Details()
	}

	for _, name := range env.ack.Missing(review.RequiredAcknowledgments(details)) {
		out.missingAcknowledgments = append(out.missingAcknowledgments, name)
		out.errors = append(out.errors, SubmissionError{
			Field:          "acknowledgments." + string(name),
			Message:        fmt.Sprintf("The %s acknowledgment must be confirmed before submission", name),
			Severity:       SeverityError,
			NavigationPath: "/shipping/review",
			ResolutionHint: hints[name],
		})
	}

	return out
}

// checkCompleteness verifies that all four transaction sections are present.
// Each absence is a distinct error pointing at the workflow step where the
// section is completed.
func checkCompleteness(env checkEnv) checkOutcome {
	var out checkOutcome
	if env.tx == nil {
		out.errors = append(out.errors, SubmissionError{
			Field:          "transaction",
			Message:        "No shipping transaction was provided",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionShipmentDetails.NavigationPath(),
		})
		return out
	}

	messages := map[shipment.Section]string{
		shipment.SectionShipmentDetails: "Shipment details are missing",
		shipment.SectionSelectedOption:  "No shipping option has been selected",
		shipment.SectionPaymentInfo:     "Payment information is missing",
		shipment.SectionPickupDetails:   "Pickup has not been scheduled",
	}

	for _, section := range []shipment.Section{
		shipment.SectionShipmentDetails,
		shipment.SectionSelectedOption,
		shipment.SectionPaymentInfo,
		shipment.SectionPickupDetails,
	} {
		if env.tx.HasSection(section) {
			continue
		}
		out.errors = append(out.errors, SubmissionError{
			Field:          string(section),
			Message:        messages[section],
			Severity:       SeverityError,
			NavigationPath: section.NavigationPath(),
		})
	}

	return out
}

// checkPaymentAuthorization verifies purchase-order coverage and billing
// contact completeness. PO rules need the selected option's total, so they
// only run when both the payment section and the option are present.
func checkPaymentAuthorization(env checkEnv) checkOutcome {
	var out checkOutcome
	if env.tx == nil {
		return out
	}

	info := env.tx.PaymentInfo()
	if info == nil {
		return out
	}

	if option := env.tx.SelectedOption(); option != nil {
		if po, ok := info.Details.(payment.PurchaseOrder); ok {
			total := option.Pricing.Total
			if po.Amount < total {
				out.errors = append(out.errors, SubmissionError{
					Field: "paymentInfo.poAmount",
					Message: fmt.Sprintf(
						"Purchase order amount ($%.2f) is insufficient for total cost ($%.2f)",
						po.Amount, total),
					Severity:       SeverityError,
					NavigationPath: shipment.SectionPaymentInfo.NavigationPath(),
				})
			} else if po.Amount > total*env.cfg.POOverAuthorizationFactor {
				out.warnings = append(out.warnings, SubmissionError{
					Field: "paymentInfo.poAmount",
					Message: fmt.Sprintf(
						"Purchase order amount ($%.2f) significantly exceeds total cost ($%.2f); consider reducing the authorization",
						po.Amount, total),
					Severity: SeverityWarning,
				})
			}

			if po.ExpirationDate.IsZero() {
				out.errors = append(out.errors, SubmissionError{
					Field:          "paymentInfo.poExpirationDate",
					Message:        "Purchase order must state an expiration date",
					Severity:       SeverityError,
					NavigationPath: shipment.SectionPaymentInfo.NavigationPath(),
				})
			} else if today := startOfDay(env.now); !startOfDay(po.ExpirationDate).After(today) {
				out.errors = append(out.errors, SubmissionError{
					Field:          "paymentInfo.poExpirationDate",
					Message:        "Purchase order has expired or expires today; an unexpired PO is required",
					Severity:       SeverityError,
					NavigationPath: shipment.SectionPaymentInfo.NavigationPath(),
				})
			}
		}
	}

	if !info.BillingContact.IsComplete() {
		out.errors = append(out.errors, SubmissionError{
			Field:          "paymentInfo.billingContact",
			Message:        "Billing contact requires a name, email, and phone number",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionPaymentInfo.NavigationPath(),
		})
	}

	return out
}

// checkPickupFeasibility verifies the pickup date, ready-time lead, on-site
// contact, and site authorization requirements.
func checkPickupFeasibility(env checkEnv) checkOutcome {
	var out checkOutcome
	if env.tx == nil {
		return out
	}

	details := env.tx.PickupDetails()
	if details == nil {
		return out
	}

	today := startOfDay(env.now)
	if !details.Date.IsZero() && startOfDay(details.Date).Before(today) {
		out.errors = append(out.errors, SubmissionError{
			Field:          "pickupDetails.date",
			Message:        "Pickup date must be in the future",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionPickupDetails.NavigationPath(),
		})
	}

	if details.ReadyTime != "" && details.TimeSlot.StartTime != "" {
		ready, readyErr := pickup.MinutesOfDay(details.ReadyTime)
		slotStart, slotErr := pickup.MinutesOfDay(details.TimeSlot.StartTime)
		if readyErr == nil && slotErr == nil {
			lead := int(env.cfg.MinReadyLeadTime / time.Minute)
			switch {
			case ready > slotStart:
				out.warnings = append(out.warnings, SubmissionError{
					Field: "pickupDetails.readyTime",
					Message: fmt.Sprintf(
						"Freight ready time (%s) is after the pickup window opens (%s)",
						details.ReadyTime, details.TimeSlot.StartTime),
					Severity: SeverityWarning,
				})
			case slotStart-ready < lead:
				out.warnings = append(out.warnings, SubmissionError{
					Field: "pickupDetails.readyTime",
					Message: fmt.Sprintf(
						"Less than %d minutes between freight ready time and the pickup window; the driver may arrive before the freight is staged",
						lead),
					Severity: SeverityWarning,
				})
			}
		}
	}

	if !details.PrimaryContact.HasNameAndMobile() {
		out.errors = append(out.errors, SubmissionError{
			Field:          "pickupDetails.primaryContact",
			Message:        "Primary pickup contact requires a name and mobile phone",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionPickupDetails.NavigationPath(),
		})
	}

	if details.Authorization.IDVerificationRequired && len(details.Authorization.AuthorizedPersonnel) == 0 {
		out.errors = append(out.errors, SubmissionError{
			Field:          "pickupDetails.authorizedPersonnel",
			Message:        "ID verification is required but no authorized personnel are listed",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionPickupDetails.NavigationPath(),
		})
	}

	return out
}

// checkBusinessConflicts verifies cross-field business rules: handling-flag
// exclusions, service-tier fit, and delivery-option feasibility.
func checkBusinessConflicts(env checkEnv) checkOutcome {
	var out checkOutcome
	if env.tx == nil {
		return out
	}

	details := env.tx.Details()
	option := env.tx.SelectedOption()

	if details != nil {
		pkg := details.Package
		if pkg.HasHandling(shipment.HandlingTemperatureControlled) && pkg.HasHandling(shipment.HandlingHazmat) {
			conflict := "temperature-controlled and hazmat special handling are mutually exclusive"
			out.conflictingRequirements = append(out.conflictingRequirements, conflict)
			out.errors = append(out.errors, SubmissionError{
				Field:          "package.specialHandling",
				Message:        "Temperature-controlled and hazmat handling cannot be combined on one shipment",
				Severity:       SeverityError,
				NavigationPath: shipment.SectionShipmentDetails.NavigationPath(),
			})
		}

		if option != nil && strings.Contains(strings.ToLower(option.ServiceType), "envelope") &&
			pkg.Dimensions.LongestSideInches() > envelopeDimensionLimitIn {
			out.warnings = append(out.warnings, SubmissionError{
				Field: "selectedOption.serviceType",
				Message: fmt.Sprintf(
					"Package dimensions exceed %d inches; an envelope service may not fit, consider a box-rate service",
					envelopeDimensionLimitIn),
				Severity: SeverityWarning,
			})
		}

		if pkg.DeclaredValue > 1000 && !details.Preferences.SignatureRequired {
			out.warnings = append(out.warnings, SubmissionError{
				Field: "package.declaredValue",
				Message: fmt.Sprintf(
					"Declared value of $%.2f without signature confirmation; signature on delivery is recommended for high-value shipments",
					pkg.DeclaredValue),
				Severity: SeverityWarning,
			})
		}

		if details.Preferences.SaturdayDelivery && option != nil && option.Category == pricing.CategoryGround {
			if pd := env.tx.PickupDetails(); pd != nil && !pd.Date.IsZero() &&
				pd.Date.Weekday() >= time.Wednesday && pd.Date.Weekday() <= time.Saturday {
				out.warnings = append(out.warnings, SubmissionError{
					Field:    "deliveryPreferences.saturdayDelivery",
					Message:  "Saturday delivery with a ground service may not be feasible for a pickup this late in the week",
					Severity: SeverityWarning,
				})
			}
		}
	}

	return out
}

// checkCostConsistency verifies the selected option's pricing: a strictly
// positive total, a plausible cost per billed pound, and a breakdown that
// still reconciles. The reconciliation guards against corrupted or tampered
// pricing data reaching submission.
func checkCostConsistency(env checkEnv) checkOutcome {
	var out checkOutcome
	if env.tx == nil {
		return out
	}

	option := env.tx.SelectedOption()
	if option == nil {
		return out
	}

	if option.Pricing.Total <= 0 {
		out.errors = append(out.errors, SubmissionError{
			Field:          "selectedOption.pricing.total",
			Message:        "Selected option total must be greater than zero",
			Severity:       SeverityError,
			NavigationPath: shipment.SectionSelectedOption.NavigationPath(),
		})
	}

	if details := env.tx.Details(); details != nil {
		weight := details.Package.Weight.Pounds()
		if weight < 1 {
			weight = 1
		}
		if perPound := option.Pricing.Total / weight; perPound > env.cfg.CostPerPoundWarning {
			out.warnings = append(out.warnings, SubmissionError{
				Field: "selectedOption.pricing",
				Message: fmt.Sprintf(
					"Cost per pound ($%.2f) exceeds $%.2f; the quote may be misconfigured",
					perPound, env.cfg.CostPerPoundWarning),
				Severity: SeverityWarning,
			})
		}
	}

	if !option.Pricing.Reconciles(env.cfg.BreakdownTolerance) {
		out.errors = append(out.errors, SubmissionError{
			Field: "selectedOption.pricing",
			Message: fmt.Sprintf(
				"Pricing breakdown does not reconcile: components sum to $%.2f but total is $%.2f",
				option.Pricing.Sum(), option.Pricing.Total),
			Severity:       SeverityError,
			NavigationPath: shipment.SectionSelectedOption.NavigationPath(),
		})
	}

	return out
}
