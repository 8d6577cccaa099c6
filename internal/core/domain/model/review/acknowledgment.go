// Package review contains the terms-acknowledgment value object collected at
// the review step: the compliance checkboxes a shipper must confirm before a
// transaction may be submitted.
package review

import "shipping/internal/core/domain/model/shipment"

// AckName identifies one acknowledgment checkbox. The wire names match the
// review-form field names.
type AckName string

const (
	// AckDeclaredValueAccuracy confirms the declared value is accurate.
	AckDeclaredValueAccuracy AckName = "declaredValueAccuracy"
	// AckInsuranceRequirements confirms insurance requirements were reviewed.
	AckInsuranceRequirements AckName = "insuranceRequirements"
	// AckPackageContentsCompliance confirms the contents comply with carrier rules.
	AckPackageContentsCompliance AckName = "packageContentsCompliance"
	// AckCarrierAuthorization authorizes the carrier to transport the shipment.
	AckCarrierAuthorization AckName = "carrierAuthorization"
	// AckHazmatCertification certifies hazmat training and proper declaration.
	// Required only when the package carries the hazmat handling flag.
	AckHazmatCertification AckName = "hazmatCertification"
	// AckInternationalCompliance confirms export compliance.
	// Required only for non-US destinations.
	AckInternationalCompliance AckName = "internationalCompliance"
	// AckCustomsDocumentation confirms customs paperwork is complete.
	// Required only for non-US destinations.
	AckCustomsDocumentation AckName = "customsDocumentation"
)

// TermsAcknowledgment is the set of confirmation flags gathered at the review
// step. It is created empty when the shipper reaches review, mutated by the
// form, consumed once by submission validation, and discarded after a
// successful submission.
type TermsAcknowledgment struct {
	DeclaredValueAccuracy     bool
	InsuranceRequirements     bool
	PackageContentsCompliance bool
	CarrierAuthorization      bool
	HazmatCertification       bool
	InternationalCompliance   bool
	CustomsDocumentation      bool
}

// IsSet reports whether the named acknowledgment flag is confirmed.
// Unrecognized names are treated as unset.
func (a TermsAcknowledgment) IsSet(name AckName) bool {
	switch name {
	case AckDeclaredValueAccuracy:
		return a.DeclaredValueAccuracy
	case AckInsuranceRequirements:
		return a.InsuranceRequirements
	case AckPackageContentsCompliance:
		return a.PackageContentsCompliance
	case AckCarrierAuthorization:
		return a.CarrierAuthorization
	case AckHazmatCertification:
		return a.HazmatCertification
	case AckInternationalCompliance:
		return a.InternationalCompliance
	case AckCustomsDocumentation:
		return a.CustomsDocumentation
	default:
		return false
	}
}

// BaseAcknowledgments returns the four acknowledgments required for every
// submission regardless of shipment characteristics.
func BaseAcknowledgments() []AckName {
	return []AckName{
		AckDeclaredValueAccuracy,
		AckInsuranceRequirements,
		AckPackageContentsCompliance,
		AckCarrierAuthorization,
	}
}

// RequiredAcknowledgments derives the full set of acknowledgments a shipment
// demands: the four base acknowledgments, plus hazmat certification when the
// package carries the hazmat flag, plus the two international acknowledgments
// when the destination is outside the US. A nil details value yields only the
// base set.
func RequiredAcknowledgments(details *shipment.ShipmentDetails) []AckName {
	required := BaseAcknowledgments()
	if details == nil {
		return required
	}
	if details.Package.HasHandling(shipment.HandlingHazmat) {
		required = append(required, AckHazmatCertification)
	}
	if details.IsInternational() {
		required = append(required, AckInternationalCompliance, AckCustomsDocumentation)
	}
	return required
}

// Missing returns the subset of required acknowledgments that are not set,
// preserving the required order.
func (a TermsAcknowledgment) Missing(required []AckName) []AckName {
	missing := make([]AckName, 0, len(required))
	for _, name := range required {
		if !a.IsSet(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
