package http

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/core/domain/model/review"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	openapitypes "github.com/oapi-codegen/runtime/types"
)

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope wraps every failure response body.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody is the machine-readable failure payload: a stable code, a
// human-readable message, and optional structured details.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ContactDTO is the wire form of a general-purpose contact.
type ContactDTO struct {
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
	Email openapitypes.Email `json:"email"`
}

func (d ContactDTO) toDomain() kernel.Contact {
	return kernel.Contact{
		Name:  d.Name,
		Phone: d.Phone,
		Email: string(d.Email),
	}
}

// AddressDTO is the wire form of a shipment endpoint.
type AddressDTO struct {
	Street       string     `json:"street"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Zip          string     `json:"zip"`
	Country      string     `json:"country,omitempty"`
	Residential  bool       `json:"residential,omitempty"`
	Contact      ContactDTO `json:"contact"`
	LocationType string     `json:"locationType"`
}

func (d AddressDTO) toDomain() (shipment.Address, error) {
	locationType, err := shipment.ParseLocationType(d.LocationType)
	if err != nil {
		return shipment.Address{}, err
	}

	return shipment.Address{
		Street:       d.Street,
		City:         d.City,
		State:        d.State,
		Zip:          d.Zip,
		Country:      d.Country,
		Residential:  d.Residential,
		Contact:      d.Contact.toDomain(),
		LocationType: locationType,
	}, nil
}

// DimensionsDTO is the wire form of the package measurements.
type DimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// WeightDTO is the wire form of the package weight.
type WeightDTO struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// PackageDTO is the wire form of the package description.
type PackageDTO struct {
	Type            string        `json:"type"`
	Dimensions      DimensionsDTO `json:"dimensions"`
	Weight          WeightDTO     `json:"weight"`
	DeclaredValue   float64       `json:"declaredValue"`
	Currency        string        `json:"currency,omitempty"`
	Contents        string        `json:"contents"`
	Category        string        `json:"category,omitempty"`
	SpecialHandling []string      `json:"specialHandling,omitempty"`
}

func (d PackageDTO) toDomain() (shipment.PackageInfo, error) {
	packageType, err := shipment.ParsePackageType(d.Type)
	if err != nil {
		return shipment.PackageInfo{}, err
	}

	category := shipment.CategoryGeneral
	if d.Category != "" {
		if category, err = shipment.ParseContentsCategory(d.Category); err != nil {
			return shipment.PackageInfo{}, err
		}
	}

	handling := make([]shipment.HandlingFlag, 0, len(d.SpecialHandling))
	for _, flag := range d.SpecialHandling {
		handling = append(handling, shipment.HandlingFlag(flag))
	}

	return shipment.PackageInfo{
		Type: packageType,
		Dimensions: shipment.Dimensions{
			Length: d.Dimensions.Length,
			Width:  d.Dimensions.Width,
			Height: d.Dimensions.Height,
			Unit:   shipment.DimensionUnit(d.Dimensions.Unit),
		},
		Weight: shipment.Weight{
			Value: d.Weight.Value,
			Unit:  shipment.WeightUnit(d.Weight.Unit),
		},
		DeclaredValue:   d.DeclaredValue,
		Currency:        d.Currency,
		Contents:        d.Contents,
		Category:        category,
		SpecialHandling: handling,
	}, nil
}

// PreferencesDTO is the wire form of the delivery preferences.
type PreferencesDTO struct {
	SignatureRequired bool   `json:"signatureRequired,omitempty"`
	PhotoProof        bool   `json:"photoProof,omitempty"`
	SaturdayDelivery  bool   `json:"saturdayDelivery,omitempty"`
	InsideDelivery    bool   `json:"insideDelivery,omitempty"`
	LiftgateRequired  bool   `json:"liftgateRequired,omitempty"`
	ServiceLevel      string `json:"serviceLevel,omitempty"`
}

func (d PreferencesDTO) toDomain() (shipment.DeliveryPreferences, error) {
	serviceLevel := shipment.ServiceStandard
	if d.ServiceLevel != "" {
		var err error
		if serviceLevel, err = shipment.ParseServiceLevel(d.ServiceLevel); err != nil {
			return shipment.DeliveryPreferences{}, err
		}
	}

	return shipment.DeliveryPreferences{
		SignatureRequired: d.SignatureRequired,
		PhotoProof:        d.PhotoProof,
		SaturdayDelivery:  d.SaturdayDelivery,
		InsideDelivery:    d.InsideDelivery,
		LiftgateRequired:  d.LiftgateRequired,
		ServiceLevel:      serviceLevel,
	}, nil
}

// ShipmentDetailsDTO is the wire form of the full shipment description.
type ShipmentDetailsDTO struct {
	Origin      AddressDTO     `json:"origin"`
	Destination AddressDTO     `json:"destination"`
	Package     PackageDTO     `json:"package"`
	Preferences PreferencesDTO `json:"deliveryPreferences"`
}

func (d ShipmentDetailsDTO) toDomain() (shipment.ShipmentDetails, error) {
	origin, err := d.Origin.toDomain()
	if err != nil {
		return shipment.ShipmentDetails{}, err
	}
	destination, err := d.Destination.toDomain()
	if err != nil {
		return shipment.ShipmentDetails{}, err
	}
	pkg, err := d.Package.toDomain()
	if err != nil {
		return shipment.ShipmentDetails{}, err
	}
	preferences, err := d.Preferences.toDomain()
	if err != nil {
		return shipment.ShipmentDetails{}, err
	}

	return shipment.ShipmentDetails{
		Origin:      origin,
		Destination: destination,
		Package:     pkg,
		Preferences: preferences,
	}, nil
}

// QuoteRequest is the body of POST /api/v1/quote.
type QuoteRequest struct {
	ShipmentDetails ShipmentDetailsDTO `json:"shipmentDetails"`
}

// BreakdownDTO is the wire form of an itemized option price.
type BreakdownDTO struct {
	BaseRate             float64 `json:"baseRate"`
	FuelSurcharge        float64 `json:"fuelSurcharge"`
	FuelSurchargePct     float64 `json:"fuelSurchargePct"`
	Insurance            float64 `json:"insurance"`
	InsurancePct         float64 `json:"insurancePct"`
	SpecialHandling      float64 `json:"specialHandling"`
	DeliveryConfirmation float64 `json:"deliveryConfirmation"`
	Taxes                float64 `json:"taxes"`
	TaxPct               float64 `json:"taxPct"`
	Total                float64 `json:"total"`
}

func (d BreakdownDTO) toDomain() pricing.Breakdown {
	return pricing.Breakdown(d)
}

func breakdownFromDomain(b pricing.Breakdown) BreakdownDTO {
	return BreakdownDTO(b)
}

// OptionDTO is the wire form of one quoted carrier offer.
type OptionDTO struct {
	ID                string       `json:"id"`
	Category          string       `json:"category"`
	ServiceType       string       `json:"serviceType"`
	Carrier           string       `json:"carrier"`
	Pricing           BreakdownDTO `json:"pricing"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
	TransitDays       int          `json:"transitDays"`
	Features          []string     `json:"features,omitempty"`
	CarbonFootprintKg float64      `json:"carbonFootprintKg"`
	ExpiresAt         time.Time    `json:"expiresAt"`
}

func (d OptionDTO) toDomain() pricing.Option {
	return pricing.Option{
		ID:                d.ID,
		Category:          pricing.Category(d.Category),
		ServiceType:       d.ServiceType,
		Carrier:           d.Carrier,
		Pricing:           d.Pricing.toDomain(),
		EstimatedDelivery: d.EstimatedDelivery,
		TransitDays:       d.TransitDays,
		Features:          d.Features,
		CarbonFootprintKg: d.CarbonFootprintKg,
		ExpiresAt:         d.ExpiresAt,
	}
}

func optionFromDomain(o pricing.Option) OptionDTO {
	return OptionDTO{
		ID:                o.ID,
		Category:          string(o.Category),
		ServiceType:       o.ServiceType,
		Carrier:           o.Carrier,
		Pricing:           breakdownFromDomain(o.Pricing),
		EstimatedDelivery: o.EstimatedDelivery,
		TransitDays:       o.TransitDays,
		Features:          o.Features,
		CarbonFootprintKg: o.CarbonFootprintKg,
		ExpiresAt:         o.ExpiresAt,
	}
}

func optionsFromDomain(options []pricing.Option) []OptionDTO {
	dtos := make([]OptionDTO, len(options))
	for i, o := range options {
		dtos[i] = optionFromDomain(o)
	}
	return dtos
}

// QuoteGroupsDTO holds the quoted options grouped by transport mode.
type QuoteGroupsDTO struct {
	Ground  []OptionDTO `json:"ground"`
	Air     []OptionDTO `json:"air"`
	Freight []OptionDTO `json:"freight"`
}

// QuoteData is the data payload of a successful quote response.
type QuoteData struct {
	Quotes       QuoteGroupsDTO    `json:"quotes"`
	RequestID    openapitypes.UUID `json:"requestId"`
	CalculatedAt time.Time         `json:"calculatedAt"`
	ExpiresAt    time.Time         `json:"expiresAt"`
}

func quoteDataFromDomain(response pricing.QuoteResponse) QuoteData {
	return QuoteData{
		Quotes: QuoteGroupsDTO{
			Ground:  optionsFromDomain(response.Ground),
			Air:     optionsFromDomain(response.Air),
			Freight: optionsFromDomain(response.Freight),
		},
		RequestID:    response.RequestID.Bytes(),
		CalculatedAt: response.CalculatedAt,
		ExpiresAt:    response.ExpiresAt,
	}
}

// TimeSlotDTO is the wire form of a pickup window.
type TimeSlotDTO struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PickupContactDTO is the wire form of the on-site pickup contact.
type PickupContactDTO struct {
	Name        string `json:"name"`
	MobilePhone string `json:"mobilePhone"`
	BackupPhone string `json:"backupPhone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// NotificationsDTO is the wire form of the pickup notification choices.
type NotificationsDTO struct {
	ConfirmationEmail bool `json:"confirmationEmail,omitempty"`
	ReminderSMS       bool `json:"reminderSms,omitempty"`
	DriverArrivalCall bool `json:"driverArrivalCall,omitempty"`
}

// AuthorizationDTO is the wire form of the site access requirements.
type AuthorizationDTO struct {
	IDVerificationRequired bool     `json:"idVerificationRequired,omitempty"`
	AuthorizedPersonnel    []string `json:"authorizedPersonnel,omitempty"`
}

// PickupDTO is the wire form of the pickup section.
type PickupDTO struct {
	Date               openapitypes.Date `json:"date"`
	TimeSlot           TimeSlotDTO       `json:"timeSlot"`
	PrimaryContact     PickupContactDTO  `json:"primaryContact"`
	AccessInstructions string            `json:"accessInstructions,omitempty"`
	Equipment          []string          `json:"equipment,omitempty"`
	Notifications      NotificationsDTO  `json:"notifications,omitempty"`
	ReadyTime          string            `json:"readyTime,omitempty"`
	Authorization      AuthorizationDTO  `json:"specialAuthorization,omitempty"`
}

func (d PickupDTO) toDomain() pickup.Details {
	return pickup.Details{
		Date: d.Date.Time,
		TimeSlot: pickup.TimeSlot{
			StartTime: d.TimeSlot.StartTime,
			EndTime:   d.TimeSlot.EndTime,
		},
		PrimaryContact: pickup.Contact{
			Name:        d.PrimaryContact.Name,
			MobilePhone: d.PrimaryContact.MobilePhone,
			BackupPhone: d.PrimaryContact.BackupPhone,
			Email:       d.PrimaryContact.Email,
		},
		AccessInstructions: d.AccessInstructions,
		Equipment:          d.Equipment,
		Notifications: pickup.NotificationPreferences{
			ConfirmationEmail: d.Notifications.ConfirmationEmail,
			ReminderSMS:       d.Notifications.ReminderSMS,
			DriverArrivalCall: d.Notifications.DriverArrivalCall,
		},
		ReadyTime: d.ReadyTime,
		Authorization: pickup.SpecialAuthorization{
			IDVerificationRequired: d.Authorization.IDVerificationRequired,
			AuthorizedPersonnel:    d.Authorization.AuthorizedPersonnel,
		},
	}
}

// AcknowledgmentsDTO is the wire form of the review-step acknowledgment flags.
type AcknowledgmentsDTO struct {
	DeclaredValueAccuracy     bool `json:"declaredValueAccuracy"`
	InsuranceRequirements     bool `json:"insuranceRequirements"`
	PackageContentsCompliance bool `json:"packageContentsCompliance"`
	CarrierAuthorization      bool `json:"carrierAuthorization"`
	HazmatCertification       bool `json:"hazmatCertification,omitempty"`
	InternationalCompliance   bool `json:"internationalCompliance,omitempty"`
	CustomsDocumentation      bool `json:"customsDocumentation,omitempty"`
}

func (d AcknowledgmentsDTO) toDomain() review.TermsAcknowledgment {
	return review.TermsAcknowledgment(d)
}

// TransactionDTO is the wire form of a full shipping transaction as the
// multi-step form assembled it. The payment section uses the payment package's
// own tagged-union codec.
type TransactionDTO struct {
	TransactionID   openapitypes.UUID   `json:"transactionId"`
	Status          string              `json:"status,omitempty"`
	ShipmentDetails *ShipmentDetailsDTO `json:"shipmentDetails,omitempty"`
	SelectedOption  *OptionDTO          `json:"selectedOption,omitempty"`
	PaymentInfo     *payment.Info       `json:"paymentInfo,omitempty"`
	PickupDetails   *PickupDTO          `json:"pickupDetails,omitempty"`
}

func (d TransactionDTO) toDomain() (*shipment.ShippingTransaction, error) {
	id, err := kernel.UUIDFromBytes(d.TransactionID[:])
	if err != nil {
		return nil, err
	}

	status := shipment.StatusReview
	if d.Status != "" {
		if status, err = shipment.ParseStatus(d.Status); err != nil {
			return nil, err
		}
	}

	var details *shipment.ShipmentDetails
	if d.ShipmentDetails != nil {
		parsed, detailsErr := d.ShipmentDetails.toDomain()
		if detailsErr != nil {
			return nil, detailsErr
		}
		details = &parsed
	}

	var option *pricing.Option
	if d.SelectedOption != nil {
		parsed := d.SelectedOption.toDomain()
		option = &parsed
	}

	var pickupDetails *pickup.Details
	if d.PickupDetails != nil {
		parsed := d.PickupDetails.toDomain()
		pickupDetails = &parsed
	}

	return shipment.RestoreShippingTransaction(id, status, details, option, d.PaymentInfo, pickupDetails)
}

// SubmitShipmentRequest is the body of POST /api/v1/submit-shipment.
type SubmitShipmentRequest struct {
	Transaction     TransactionDTO     `json:"transaction"`
	Acknowledgments AcknowledgmentsDTO `json:"acknowledgments"`
}

// CarrierInfoDTO identifies the carrier and tier a confirmed shipment uses.
type CarrierInfoDTO struct {
	Carrier     string `json:"carrier"`
	ServiceType string `json:"serviceType"`
}

// ConfirmationData is the data payload of a successful submission.
type ConfirmationData struct {
	ConfirmationNumber string         `json:"confirmationNumber"`
	TrackingNumber     string         `json:"trackingNumber"`
	EstimatedDelivery  time.Time      `json:"estimatedDelivery"`
	Status             string         `json:"status"`
	CarrierInfo        CarrierInfoDTO `json:"carrierInfo"`
	TotalCost          float64        `json:"totalCost"`
	Timestamp          time.Time      `json:"timestamp"`
}

func confirmationFromDomain(c shipment.Confirmation) ConfirmationData {
	return ConfirmationData{
		ConfirmationNumber: c.ConfirmationNumber,
		TrackingNumber:     c.TrackingNumber,
		EstimatedDelivery:  c.EstimatedDelivery,
		Status:             shipment.StatusConfirmed.String(),
		CarrierInfo: CarrierInfoDTO{
			Carrier:     c.Carrier,
			ServiceType: c.ServiceType,
		},
		TotalCost: c.TotalCost,
		Timestamp: c.SubmittedAt,
	}
}

// ShipmentData is the data payload of GET /shipments/:id.
type ShipmentData struct {
	ID                 openapitypes.UUID `json:"id"`
	Status             string            `json:"status"`
	ConfirmationNumber string            `json:"confirmationNumber"`
	TrackingNumber     string            `json:"trackingNumber"`
	CarrierInfo        CarrierInfoDTO    `json:"carrierInfo"`
	TotalCost          float64           `json:"totalCost"`
	EstimatedDelivery  time.Time         `json:"estimatedDelivery"`
	SubmittedAt        time.Time         `json:"submittedAt"`
}

// ValidationIssueDTO is the wire form of one submission finding.
type ValidationIssueDTO struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	Severity       string `json:"severity"`
	NavigationPath string `json:"navigationPath,omitempty"`
	ResolutionHint string `json:"resolutionHint,omitempty"`
}

// ValidationDetailsDTO is the details payload of a rejected submission: the
// complete verdict of the six-check pipeline.
type ValidationDetailsDTO struct {
	Summary                 string               `json:"summary"`
	Errors                  []ValidationIssueDTO `json:"errors"`
	Warnings                []ValidationIssueDTO `json:"warnings"`
	MissingAcknowledgments  []string             `json:"missingAcknowledgments"`
	ConflictingRequirements []string             `json:"conflictingRequirements"`
}

func validationDetailsFromDomain(result services.SubmissionResult) ValidationDetailsDTO {
	issues := func(found []services.SubmissionError) []ValidationIssueDTO {
		dtos := make([]ValidationIssueDTO, len(found))
		for i, e := range found {
			dtos[i] = ValidationIssueDTO{
				Field:          e.Field,
				Message:        e.Message,
				Severity:       string(e.Severity),
				NavigationPath: e.NavigationPath,
				ResolutionHint: e.ResolutionHint,
			}
		}
		return dtos
	}

	missing := make([]string, len(result.MissingAcknowledgments))
	for i, name := range result.MissingAcknowledgments {
		missing[i] = string(name)
	}

	return ValidationDetailsDTO{
		Summary:                 result.Summary(),
		Errors:                  issues(result.Errors),
		Warnings:                issues(result.Warnings),
		MissingAcknowledgments:  missing,
		ConflictingRequirements: result.ConflictingRequirements,
	}
}

// ViolationDTO is the wire form of one quote business-rule violation.
type ViolationDTO struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func violationsFromDomain(violations []services.BusinessRuleViolation) []ViolationDTO {
	dtos := make([]ViolationDTO, len(violations))
	for i, v := range violations {
		dtos[i] = ViolationDTO{
			Code:    v.Code,
			Field:   v.Field,
			Message: v.Message,
		}
	}
	return dtos
}
