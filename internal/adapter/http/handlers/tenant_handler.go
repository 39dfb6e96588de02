package handlers

import (
	"net/http"

	"quotely/internal/adapter/http/dto/response"
	"quotely/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// TenantHandler reports the access decision for the request host.
type TenantHandler struct {
	rootDomainURL string
}

func NewTenantHandler(rootDomainURL string) *TenantHandler {
	return &TenantHandler{rootDomainURL: rootDomainURL}
}

// GetTenant returns the resolved tenant. It is always 200: an invalid tenant is
// a valid answer, not a request failure.
func (h *TenantHandler) GetTenant(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTenantContext(middleware.Tenant(c), h.rootDomainURL))
}
