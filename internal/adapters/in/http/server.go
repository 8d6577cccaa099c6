// Package http is the inbound HTTP adapter: the REST surface of the shipping
// submission workflow. It translates wire DTOs into commands and queries,
// and maps the application's typed failures onto the documented status codes.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the failure envelope. Clients branch on these, not
// on messages, so they are part of the API contract.
const (
	CodeValidationError       = "VALIDATION_ERROR"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodePaymentDeclined       = "PAYMENT_DECLINED"
	CodePickupUnavailable     = "PICKUP_UNAVAILABLE"
	CodeQuoteExpired          = "QUOTE_EXPIRED"
	CodeNotFound              = "NOT_FOUND"
	CodeSubmissionFailed      = "SUBMISSION_FAILED"
	CodeInternalError         = "INTERNAL_SERVER_ERROR"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestQuotesHandler  commands.RequestQuotesCommandHandler
	submitShipmentHandler commands.SubmitShipmentCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestQuotesHandler commands.RequestQuotesCommandHandler,
	submitShipmentHandler commands.SubmitShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
) *Server {
	return &Server{
		requestQuotesHandler:  requestQuotesHandler,
		submitShipmentHandler: submitShipmentHandler,
		getShipmentHandler:    getShipmentHandler,
	}
}

// RegisterRoutes mounts the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/quote", s.RequestQuote)
	api.POST("/submit-shipment", s.SubmitShipment)
	api.GET("/shipments/:id", s.GetShipment)
}

// RequestQuote handles POST /api/v1/quote - prices a shipment across all
// applicable carrier tiers.
func (s *Server) RequestQuote(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, "Invalid request body", nil)
	}

	details, err := request.ShipmentDetails.toDomain()
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
	}

	cmd, err := commands.NewRequestQuotesCommand(details)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
	}

	response, err := s.requestQuotesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var rejected *services.QuoteRejectedError
		if errors.As(err, &rejected) {
			return fail(ctx, http.StatusBadRequest, CodeBusinessRuleViolation,
				"Shipment cannot be priced", violationsFromDomain(rejected.Violations))
		}
		return fail(ctx, http.StatusInternalServerError, CodeInternalError, "Failed to calculate quotes", nil)
	}

	return ok(ctx, quoteDataFromDomain(response))
}

// SubmitShipment handles POST /api/v1/submit-shipment - runs the submission
// pipeline against a fully assembled transaction.
func (s *Server) SubmitShipment(ctx echo.Context) error {
	var request SubmitShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, "Invalid request body", nil)
	}

	tx, err := request.Transaction.toDomain()
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
	}

	cmd, err := commands.NewSubmitShipmentCommand(tx, request.Acknowledgments.toDomain())
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
	}

	confirmation, err := s.submitShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return submissionFailure(ctx, err)
	}

	return ok(ctx, confirmationFromDomain(confirmation))
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves the submission
// summary of a confirmed shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, "Invalid shipment id", nil)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
	}

	summary, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return fail(ctx, http.StatusNotFound, CodeNotFound, "Shipment not found", nil)
		}
		return fail(ctx, http.StatusInternalServerError, CodeInternalError, "Failed to retrieve shipment", nil)
	}

	return ok(ctx, ShipmentData{
		ID:                 summary.ID.Bytes(),
		Status:             summary.Status,
		ConfirmationNumber: summary.ConfirmationNumber,
		TrackingNumber:     summary.TrackingNumber,
		CarrierInfo: CarrierInfoDTO{
			Carrier:     summary.Carrier,
			ServiceType: summary.ServiceType,
		},
		TotalCost:         summary.TotalCost,
		EstimatedDelivery: summary.EstimatedDelivery,
		SubmittedAt:       summary.SubmittedAt,
	})
}

// submissionFailure maps the submission pipeline's typed failures onto the
// documented status codes. Payment, pickup, and expiry failures are retryable;
// validation failures carry the complete defect set in the details payload.
func submissionFailure(ctx echo.Context, err error) error {
	var invalidStatus *commands.InvalidStatusError
	if errors.As(err, &invalidStatus) {
		return fail(ctx, http.StatusBadRequest, CodeInvalidStatus, invalidStatus.Error(), nil)
	}

	var rejected *commands.SubmissionRejectedError
	if errors.As(err, &rejected) {
		return fail(ctx, http.StatusBadRequest, CodeValidationError,
			"Submission validation failed", validationDetailsFromDomain(rejected.Result))
	}

	switch {
	case errors.Is(err, commands.ErrQuoteExpired):
		return fail(ctx, http.StatusGone, CodeQuoteExpired, err.Error(), nil)
	case errors.Is(err, ports.ErrPaymentDeclined):
		return fail(ctx, http.StatusPaymentRequired, CodePaymentDeclined, err.Error(), nil)
	case errors.Is(err, ports.ErrPickupUnavailable):
		return fail(ctx, http.StatusConflict, CodePickupUnavailable, err.Error(), nil)
	default:
		return fail(ctx, http.StatusInternalServerError, CodeSubmissionFailed, "Failed to submit shipment", nil)
	}
}

func ok(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

func fail(ctx echo.Context, status int, code, message string, details any) error {
	return ctx.JSON(status, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
