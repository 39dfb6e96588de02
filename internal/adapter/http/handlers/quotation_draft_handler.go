package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	request "quotely/internal/adapter/http/dto/request"
	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/adapter/http/middleware"
	"quotely/internal/domain/pricing"
	"quotely/internal/usecase"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidLinePayload    = pkg.NewDomainErrorSimple("INVALID_LINE_INPUT", "Invalid quotation line payload", http.StatusBadRequest)
	errInvalidDetailsPayload = pkg.NewDomainErrorSimple("INVALID_DETAILS_INPUT", "Invalid quotation details payload", http.StatusBadRequest)
	errInvalidLineIndex      = pkg.NewDomainErrorSimple("INVALID_LINE_INDEX", "Line index must be a non-negative integer", http.StatusBadRequest)
)

// QuotationDraftHandler edits the quotation being built in the current session.
type QuotationDraftHandler struct {
	usecase usecase.IQuotationDraftUseCase
	logger  *zap.Logger
}

func NewQuotationDraftHandler(uc usecase.IQuotationDraftUseCase, logger *zap.Logger) *QuotationDraftHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationDraftHandler{usecase: uc, logger: logger}
}

func (h *QuotationDraftHandler) GetDraft(c *gin.Context) {
	view, err := h.usecase.View(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, http.StatusOK, view, err)
}

func (h *QuotationDraftHandler) AddLine(c *gin.Context) {
	var payload request.AddLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.AddLine(
		c.Request.Context(),
		middleware.SessionID(c),
		middleware.CurrentSession(c),
		middleware.Tenant(c),
		payload.ProductID,
		payload.Variation,
	)
	h.respond(c, http.StatusCreated, view, err)
}

func (h *QuotationDraftHandler) RemoveLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	view, err := h.usecase.RemoveLine(c.Request.Context(), middleware.SessionID(c), index)
	h.respond(c, http.StatusOK, view, err)
}

func (h *QuotationDraftHandler) IncrementLine(c *gin.Context) {
	h.step(c, true)
}

func (h *QuotationDraftHandler) DecrementLine(c *gin.Context) {
	h.step(c, false)
}

func (h *QuotationDraftHandler) step(c *gin.Context, up bool) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	view, err := h.usecase.StepQuantity(c.Request.Context(), middleware.SessionID(c), index, up)
	h.respond(c, http.StatusOK, view, err)
}

func (h *QuotationDraftHandler) UpdateDetails(c *gin.Context) {
	var payload request.QuotationDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDetailsPayload.HTTPStatus, errInvalidDetailsPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.UpdateDetails(c.Request.Context(), middleware.SessionID(c), payload.ToEntity())
	h.respond(c, http.StatusOK, view, err)
}

func (h *QuotationDraftHandler) ClearDraft(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportPDF streams the rendered quotation as an attachment. An empty body is
// accepted and falls back to the default factory name.
func (h *QuotationDraftHandler) ExportPDF(c *gin.Context) {
	var payload request.ExportPDFRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(errInvalidDetailsPayload.HTTPStatus, errInvalidDetailsPayload.ToHTTPError())
			return
		}
	}

	pdf, err := h.usecase.ExportPDF(c.Request.Context(), middleware.SessionID(c), middleware.CurrentSession(c), payload.FactoryName)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer pdf.Close()

	c.Header("Content-Disposition", `attachment; filename="quotation.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, pdf); err != nil {
		h.logger.Warn("[quotation][handler] pdf stream interrupted", zap.Error(err))
	}
}

func (h *QuotationDraftHandler) respond(c *gin.Context, status int, view usecase.DraftView, err error) {
	if err != nil {
		appErr := mapDraftError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[quotation][handler] draft operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromDraftView(view))
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidLineIndex.HTTPStatus, errInvalidLineIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Quotation line not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrValidation):
		return pkg.NewDomainError("INVALID_QUOTATION", "Quotation change rejected", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Session cookie missing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to export quotations", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmptyQuotation):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTATION", "Add at least one product first", http.StatusConflict)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "The quotely service is unavailable", err, http.StatusBadGateway)
	default:
		return mapCatalogError(err)
	}
}
