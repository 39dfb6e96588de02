package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "quotely/internal/adapter/http/dto/request"
	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/adapter/http/middleware"
	"quotely/internal/domain/entities"
	"quotely/internal/usecase"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotationPaymentHandler handles payments of approved quotations.
type QuotationPaymentHandler struct {
	usecase usecase.IQuotationPaymentUseCase
	logger  *zap.Logger
}

func NewQuotationPaymentHandler(uc usecase.IQuotationPaymentUseCase, logger *zap.Logger) *QuotationPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationPaymentHandler{usecase: uc, logger: logger}
}

// CreatePayment charges the quotation in the path. The body is a Mercado Pago
// payment payload, bare or wrapped in {"mp_payload": ...}.
func (h *QuotationPaymentHandler) CreatePayment(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log := h.logger.With(zap.String("quotation_id", quotationID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Info("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), quotationID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] create failed", zap.Error(err))
		appErr := mapQuotationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationPayment(created))
}

// GetLatestPayment returns the most recent payment of a quotation.
func (h *QuotationPaymentHandler) GetLatestPayment(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), quotationID)
	if err != nil {
		appErr := mapQuotationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromQuotationPayment(latest))
}

// GetPayment returns one payment, scoped to the quotation in the path.
func (h *QuotationPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), c.Param("payment_id"))
	if err == nil && p.QuotationID != strings.TrimSpace(c.Param("quotation_id")) {
		err = usecase.ErrPaymentNotFound
	}
	if err != nil {
		appErr := mapQuotationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var payload request.QuotationPaymentCreateRequest
			if err := json.Unmarshal(raw, &payload); err != nil {
				return nil, err
			}
			if w := strings.TrimSpace(string(payload.MPPayload)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return payload.MPPayload, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapQuotationPaymentError(err error) *pkg.AppError {
	var missing *entities.MissingClaimError
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to pay quotations", http.StatusUnauthorized)
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_CLAIM", "Session token has no "+missing.Claim, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrQuotationRepoUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENTS_UNAVAILABLE", "Payments are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_APPROVED", "Quotation not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
