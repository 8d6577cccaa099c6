package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
)

// ServiceLevel expresses the shipper's speed preference. It is recorded with
// the delivery preferences; pricing quotes every service regardless.
type ServiceLevel int

const (
	// ServiceUnknown represents an invalid or undefined service level.
	ServiceUnknown ServiceLevel = iota

	// ServiceEconomy prefers the cheapest available option.
	ServiceEconomy

	// ServiceStandard is the default balanced option.
	ServiceStandard

	// ServiceExpress prefers expedited transit.
	ServiceExpress

	// ServicePriority prefers the fastest available option.
	ServicePriority
)

func getServiceLevelStrings() map[ServiceLevel]string {
	return map[ServiceLevel]string{
		ServiceUnknown:  "unknown",
		ServiceEconomy:  "economy",
		ServiceStandard: "standard",
		ServiceExpress:  "express",
		ServicePriority: "priority",
	}
}

// String returns the wire name of the service level.
func (s ServiceLevel) String() string {
	if str, ok := getServiceLevelStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseServiceLevel converts a wire name into a ServiceLevel.
func ParseServiceLevel(s string) (ServiceLevel, error) {
	for l, name := range getServiceLevelStrings() {
		if name == s && l != ServiceUnknown {
			return l, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause("serviceLevel",
		fmt.Errorf("%q is not a valid service level", s))
}

// DeliveryPreferences collects the boolean delivery options the shipper chose
// plus the preferred service level. All fields default to off.
type DeliveryPreferences struct {
	SignatureRequired bool
	PhotoProof        bool
	SaturdayDelivery  bool
	InsideDelivery    bool
	LiftgateRequired  bool
	ServiceLevel      ServiceLevel
}

// WantsDeliveryConfirmation reports whether any proof-of-delivery option is
// enabled, which adds a flat confirmation fee during pricing.
func (p DeliveryPreferences) WantsDeliveryConfirmation() bool {
	return p.SignatureRequired || p.PhotoProof
}

// ShipmentDetails is the complete description of what is being shipped and
// where: both endpoints, the package, and the delivery preferences. It is the
// input to the quote engine and the first section of a ShippingTransaction.
type ShipmentDetails struct {
	Origin      Address
	Destination Address
	Package     PackageInfo
	Preferences DeliveryPreferences
}

// IsInternational reports whether the destination is outside the United
// States, which triggers additional compliance acknowledgments at review.
func (d ShipmentDetails) IsInternational() bool {
	return !d.Destination.IsUS()
}

// Validate checks the structural validity of the full shipment description.
// All problems are joined so callers see every defect at once.
func (d ShipmentDetails) Validate() error {
	var err error
	if originErr := d.Origin.Validate(); originErr != nil {
		err = errors.Join(err, fmt.Errorf("origin: %w", originErr))
	}
	if destErr := d.Destination.Validate(); destErr != nil {
		err = errors.Join(err, fmt.Errorf("destination: %w", destErr))
	}
	if pkgErr := d.Package.Validate(); pkgErr != nil {
		err = errors.Join(err, fmt.Errorf("package: %w", pkgErr))
	}
	return err
}
