package shipment

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// PackageType is the closed enumeration of supported package form factors.
// Each type carries a weight ceiling used both by quote rejection rules and
// by freight-tier eligibility.
type PackageType int

const (
	// PackageUnknown represents an invalid or undefined package type.
	PackageUnknown PackageType = iota

	// PackageEnvelope is a flat document envelope, capped near one pound.
	PackageEnvelope

	// PackageBox is a standard corrugated box.
	PackageBox

	// PackageTube is a rigid cylindrical container for drawings or rods.
	PackageTube

	// PackagePallet is palletized freight, always quoted as freight class.
	PackagePallet

	// PackageCrate is crated freight, always quoted as freight class.
	PackageCrate
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		PackageUnknown:  "unknown",
		PackageEnvelope: "envelope",
		PackageBox:      "box",
		PackageTube:     "tube",
		PackagePallet:   "pallet",
		PackageCrate:    "crate",
	}
}

// String returns the wire name of the package type.
func (t PackageType) String() string {
	if s, ok := getPackageTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the package type is one of the defined values.
func (t PackageType) Validate() error {
	if t == PackageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%d is not a valid package type", t))
	}
	if _, ok := getPackageTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%d is not a valid package type", t))
	}
	return nil
}

// ParsePackageType converts a wire name into a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	for t, name := range getPackageTypeStrings() {
		if name == s && t != PackageUnknown {
			return t, nil
		}
	}
	return PackageUnknown, errs.NewValueIsInvalidErrorWithCause("packageType",
		fmt.Errorf("%q is not a valid package type", s))
}

// WeightLimitLb returns the maximum allowed actual weight in pounds for the
// package type. Shipments above the limit are rejected before pricing.
func (t PackageType) WeightLimitLb() float64 {
	switch t {
	case PackageEnvelope:
		return 1
	case PackageBox:
		return 150
	case PackageTube:
		return 70
	case PackagePallet:
		return 2200
	case PackageCrate:
		return 5000
	default:
		return 0
	}
}

// IsFreight reports whether the package type is always rated as freight.
func (t PackageType) IsFreight() bool {
	return t == PackagePallet || t == PackageCrate
}

// DimensionUnit is the unit of the package dimensions.
type DimensionUnit string

const (
	// DimensionInches measures dimensions in inches.
	DimensionInches DimensionUnit = "in"
	// DimensionCentimeters measures dimensions in centimeters.
	DimensionCentimeters DimensionUnit = "cm"
)

// WeightUnit is the unit of the package weight.
type WeightUnit string

const (
	// WeightPounds measures weight in pounds.
	WeightPounds WeightUnit = "lb"
	// WeightKilograms measures weight in kilograms.
	WeightKilograms WeightUnit = "kg"
)

const (
	cmPerInch   = 2.54
	lbPerKg     = 2.20462
	poundsEps   = 1e-9
	maxSideInch = 999
)

// Dimensions holds the package measurements in the unit the shipper entered.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Unit   DimensionUnit
}

// Inches returns the dimensions normalized to inches.
func (d Dimensions) Inches() Dimensions {
	if d.Unit != DimensionCentimeters {
		return Dimensions{Length: d.Length, Width: d.Width, Height: d.Height, Unit: DimensionInches}
	}
	return Dimensions{
		Length: d.Length / cmPerInch,
		Width:  d.Width / cmPerInch,
		Height: d.Height / cmPerInch,
		Unit:   DimensionInches,
	}
}

// VolumeCubicInches returns the package volume in cubic inches.
func (d Dimensions) VolumeCubicInches() float64 {
	in := d.Inches()
	return in.Length * in.Width * in.Height
}

// LongestSideInches returns the longest single dimension in inches.
func (d Dimensions) LongestSideInches() float64 {
	in := d.Inches()
	longest := in.Length
	if in.Width > longest {
		longest = in.Width
	}
	if in.Height > longest {
		longest = in.Height
	}
	return longest
}

// Validate checks that all dimensions are positive and within sane bounds.
func (d Dimensions) Validate() error {
	for name, v := range map[string]float64{"length": d.Length, "width": d.Width, "height": d.Height} {
		if v <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%.2f is not greater than 0", v))
		}
		if v > maxSideInch {
			return errs.NewValueIsOutOfRangeError(name, v, 0, maxSideInch)
		}
	}
	if d.Unit != DimensionInches && d.Unit != DimensionCentimeters {
		return errs.NewValueIsInvalidErrorWithCause("dimensionUnit",
			fmt.Errorf("%q is not a valid dimension unit", d.Unit))
	}
	return nil
}

// Weight holds the declared package weight in the unit the shipper entered.
type Weight struct {
	Value float64
	Unit  WeightUnit
}

// Pounds returns the weight normalized to pounds.
func (w Weight) Pounds() float64 {
	if w.Unit == WeightKilograms {
		return w.Value * lbPerKg
	}
	return w.Value
}

// Validate checks that the weight is positive and carries a known unit.
func (w Weight) Validate() error {
	if w.Value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%.2f is not greater than 0", w.Value))
	}
	if w.Unit != WeightPounds && w.Unit != WeightKilograms {
		return errs.NewValueIsInvalidErrorWithCause("weightUnit",
			fmt.Errorf("%q is not a valid weight unit", w.Unit))
	}
	return nil
}

// ContentsCategory is the closed enumeration of declared contents classes.
type ContentsCategory int

const (
	// CategoryUnknown represents an invalid or undefined contents category.
	CategoryUnknown ContentsCategory = iota

	// CategoryGeneral is general merchandise.
	CategoryGeneral

	// CategoryElectronics is electronic equipment.
	CategoryElectronics

	// CategoryMachinery is industrial machinery or parts.
	CategoryMachinery

	// CategoryDocuments is paper documents.
	CategoryDocuments

	// CategoryPerishable is perishable goods.
	CategoryPerishable

	// CategoryChemicals is chemical products, which typically also carry
	// the hazmat handling flag.
	CategoryChemicals
)

func getContentsCategoryStrings() map[ContentsCategory]string {
	return map[ContentsCategory]string{
		CategoryUnknown:     "unknown",
		CategoryGeneral:     "general",
		CategoryElectronics: "electronics",
		CategoryMachinery:   "machinery",
		CategoryDocuments:   "documents",
		CategoryPerishable:  "perishable",
		CategoryChemicals:   "chemicals",
	}
}

// String returns the wire name of the contents category.
func (c ContentsCategory) String() string {
	if s, ok := getContentsCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// ParseContentsCategory converts a wire name into a ContentsCategory.
func ParseContentsCategory(s string) (ContentsCategory, error) {
	for c, name := range getContentsCategoryStrings() {
		if name == s && c != CategoryUnknown {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("contentsCategory",
		fmt.Errorf("%q is not a valid contents category", s))
}

// HandlingFlag marks a special-handling requirement on a package.
// Flags are additive: each one contributes a flat fee during pricing, and
// some combinations are rejected by submission validation.
type HandlingFlag string

const (
	// HandlingFragile requests fragile-goods handling.
	HandlingFragile HandlingFlag = "fragile"
	// HandlingHazmat marks hazardous materials, requiring certification.
	HandlingHazmat HandlingFlag = "hazmat"
	// HandlingTemperatureControlled requests refrigerated transport.
	// Mutually exclusive with hazmat.
	HandlingTemperatureControlled HandlingFlag = "temperature-controlled"
	// HandlingLiquid marks liquid contents.
	HandlingLiquid HandlingFlag = "liquid"
	// HandlingOversized marks freight exceeding standard dimensions.
	HandlingOversized HandlingFlag = "oversized"
)

// KnownHandlingFlags lists every recognized special-handling flag.
func KnownHandlingFlags() []HandlingFlag {
	return []HandlingFlag{
		HandlingFragile,
		HandlingHazmat,
		HandlingTemperatureControlled,
		HandlingLiquid,
		HandlingOversized,
	}
}

// Validate checks that the flag is one of the recognized values.
func (f HandlingFlag) Validate() error {
	for _, known := range KnownHandlingFlags() {
		if f == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("specialHandling",
		fmt.Errorf("%q is not a recognized handling flag", f))
}

// PackageInfo describes the physical package and its declared contents.
type PackageInfo struct {
	Type            PackageType
	Dimensions      Dimensions
	Weight          Weight
	DeclaredValue   float64
	Currency        string
	Contents        string
	Category        ContentsCategory
	SpecialHandling []HandlingFlag
}

// HasHandling reports whether the package carries the given handling flag.
func (p PackageInfo) HasHandling(flag HandlingFlag) bool {
	for _, f := range p.SpecialHandling {
		if f == flag {
			return true
		}
	}
	return false
}

// ExceedsTypeLimit reports whether the actual weight exceeds the ceiling of
// the declared package type.
func (p PackageInfo) ExceedsTypeLimit() bool {
	limit := p.Type.WeightLimitLb()
	return limit > 0 && p.Weight.Pounds() > limit+poundsEps
}

// Validate checks the structural validity of the package description.
func (p PackageInfo) Validate() error {
	if err := p.Type.Validate(); err != nil {
		return err
	}
	if err := p.Dimensions.Validate(); err != nil {
		return err
	}
	if err := p.Weight.Validate(); err != nil {
		return err
	}
	if p.DeclaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue",
			fmt.Errorf("%.2f is negative", p.DeclaredValue))
	}
	if strings.TrimSpace(p.Contents) == "" {
		return errs.NewValueIsRequiredError("contents")
	}
	for _, f := range p.SpecialHandling {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
