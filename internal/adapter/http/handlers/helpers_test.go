package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"quotely/internal/adapter/http/middleware"
	"quotely/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const testSessionID = "0b6c2c1e-8a43-4d47-9f3a-6c1f4f0e1a10"

var (
	acmeTenant = entities.TenantContext{Hostname: "acme.quotely.shop", Subdomain: "acme", State: entities.ValidationValid, Title: "acme - Dashboard"}
	adminUser  = entities.Session{RawToken: "h.p.s", Claims: &entities.Claims{FactoryID: "f-1", Role: entities.RoleAdmin}}
)

// seed stands in for the session and tenant middlewares.
func seed(s entities.Session, t entities.TenantContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.WithSession(c, testSessionID, s)
		middleware.WithTenant(c, t)
		c.Next()
	}
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
