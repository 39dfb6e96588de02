package handlers

import (
	"errors"
	"net/http"

	response "quotely/internal/adapter/http/dto/response"
	"quotely/internal/adapter/http/middleware"
	"quotely/internal/domain/entities"
	"quotely/internal/usecase"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewProductHandler(uc usecase.ICatalogUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts answers 200 with a notice when the backend is down; the shell
// shows an empty state instead of an error page.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	listing, err := h.usecase.ListProducts(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductListing(listing))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.FindProduct(c.Request.Context(), middleware.CurrentSession(c), middleware.Tenant(c), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// mapCatalogError is shared by every route that reads the catalog.
func mapCatalogError(err error) *pkg.AppError {
	var missing *entities.MissingClaimError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_CLAIM", "Session token has no "+missing.Claim, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrTenantRequired):
		return pkg.NewDomainErrorSimple("TENANT_REQUIRED", "Open a tenant storefront first", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVariationNotFound):
		return pkg.NewDomainErrorSimple("VARIATION_NOT_FOUND", "Variation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Products could not be loaded", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
