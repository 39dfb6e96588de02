package routes

import (
	"quotely/internal/adapter/http/handlers"
	"quotely/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathTenant   = "/tenant"
	PathSession  = "/session"
	PathProducts = "/products"
)

func addStorefrontRoutes(rg *gin.RouterGroup, tenantHandler *handlers.TenantHandler, sessionHandler *handlers.SessionHandler, productHandler *handlers.ProductHandler) {
	rg.GET(PathTenant, tenantHandler.GetTenant)

	session := rg.Group(PathSession)
	{
		session.GET("", sessionHandler.GetSession)
		session.PUT("", sessionHandler.SignIn)
		session.DELETE("", sessionHandler.SignOut)
	}

	products := rg.Group(PathProducts, middleware.RequireTenant())
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}
