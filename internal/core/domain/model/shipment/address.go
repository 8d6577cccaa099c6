package shipment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// LocationType classifies the kind of facility at a pickup or delivery address.
// It affects carrier accessorial handling (liftgates, appointment windows)
// downstream, and is a closed enumeration.
type LocationType int

const (
	// LocationUnknown represents an invalid or undefined location type.
	LocationUnknown LocationType = iota

	// LocationBusiness is a commercial address with a dock or receiving area.
	LocationBusiness

	// LocationResidential is a home address.
	LocationResidential

	// LocationWarehouse is a distribution or storage facility.
	LocationWarehouse

	// LocationConstruction is a construction site, typically without a dock.
	LocationConstruction
)

func getLocationTypeStrings() map[LocationType]string {
	return map[LocationType]string{
		LocationUnknown:      "unknown",
		LocationBusiness:     "business",
		LocationResidential:  "residential",
		LocationWarehouse:    "warehouse",
		LocationConstruction: "construction",
	}
}

// String returns the wire name of the location type.
func (t LocationType) String() string {
	if s, ok := getLocationTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the location type is one of the defined values.
func (t LocationType) Validate() error {
	if t == LocationUnknown {
		return errs.NewValueIsInvalidErrorWithCause("locationType",
			fmt.Errorf("%d is not a valid location type", t))
	}
	if _, ok := getLocationTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("locationType",
			fmt.Errorf("%d is not a valid location type", t))
	}
	return nil
}

// ParseLocationType converts a wire name into a LocationType.
func ParseLocationType(s string) (LocationType, error) {
	for t, name := range getLocationTypeStrings() {
		if name == s && t != LocationUnknown {
			return t, nil
		}
	}
	return LocationUnknown, errs.NewValueIsInvalidErrorWithCause("locationType",
		fmt.Errorf("%q is not a valid location type", s))
}

// usZipPattern matches 5-digit and ZIP+4 United States postal codes.
var usZipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// Address is one endpoint of a shipment: the street location plus the contact
// responsible for handing off or receiving the freight.
//
// Address is carried by value inside ShipmentDetails. Validate enforces the
// structural requirements (all location fields present, a well-formed postal
// code for US addresses, and a reachable contact); business rules such as
// "origin and destination must differ" belong to the quote engine.
type Address struct {
	Street       string
	City         string
	State        string
	Zip          string
	Country      string
	Residential  bool
	Contact      kernel.Contact
	LocationType LocationType
}

// IsUS reports whether the address is in the United States.
// Country comparison is case-insensitive; an empty country defaults to US
// to match the domestic-first form flow.
func (a Address) IsUS() bool {
	c := strings.ToUpper(strings.TrimSpace(a.Country))
	return c == "" || c == "US" || c == "USA"
}

// IsSameLocation reports whether two addresses point at the same physical
// place. Comparison covers street, city, state, and postal code,
// ignoring case and surrounding whitespace.
func (a Address) IsSameLocation(other Address) bool {
	norm := func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return norm(a.Street) == norm(other.Street) &&
		norm(a.City) == norm(other.City) &&
		norm(a.State) == norm(other.State) &&
		norm(a.Zip) == norm(other.Zip)
}

// HasValidZip reports whether the postal code is well formed for the
// address's country. Only US postal codes are format-checked.
func (a Address) HasValidZip() bool {
	z := strings.TrimSpace(a.Zip)
	if z == "" {
		return false
	}
	if !a.IsUS() {
		return true
	}
	return usZipPattern.MatchString(z)
}

// Validate checks structural completeness of the address.
// US postal codes must match the 5-digit or ZIP+4 format.
func (a Address) Validate() error {
	var err error
	if strings.TrimSpace(a.Street) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("street"))
	}
	if strings.TrimSpace(a.City) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if strings.TrimSpace(a.State) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("state"))
	}
	if strings.TrimSpace(a.Zip) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("zip"))
	} else if a.IsUS() && !usZipPattern.MatchString(strings.TrimSpace(a.Zip)) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("zip",
			fmt.Errorf("%q is not a valid US postal code", a.Zip)))
	}
	if contactErr := a.Contact.Validate(); contactErr != nil {
		err = errors.Join(err, contactErr)
	}
	return err
}
