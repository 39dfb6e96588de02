package handlers

import (
	"context"
	"errors"
	"net/http"

	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/adapter/http/middleware"
	"quotely/internal/domain/entities"
	"quotely/internal/usecase"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles saved quotations and their approval lifecycle.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// SaveDraft snapshots the session draft with its totals.
func (h *QuotationHandler) SaveDraft(c *gin.Context) {
	q, err := h.usecase.SaveDraft(c.Request.Context(), middleware.SessionID(c), middleware.CurrentSession(c), middleware.Tenant(c))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSavedQuotation(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSavedQuotation(q))
}

func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.ApproveByID)
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.RejectByID)
}

func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.CancelByID)
}

type statusUpdater func(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error)

func (h *QuotationHandler) patchStatus(c *gin.Context, updater statusUpdater) {
	q, err := updater(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSavedQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	var missing *entities.MissingClaimError
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to save quotations", http.StatusUnauthorized)
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_CLAIM", "Session token has no "+missing.Claim, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only factory admins can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEmptyQuotation):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTATION", "Add at least one product first", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_PENDING", "Quotation is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationRepoUnavailable):
		return pkg.NewDomainErrorSimple("QUOTATIONS_UNAVAILABLE", "Saved quotations are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
