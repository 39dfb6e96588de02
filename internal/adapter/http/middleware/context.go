package middleware

import (
	"quotely/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	sessionIDKey = "quotely.session_id"
	sessionKey   = "quotely.session"
	tenantKey    = "quotely.tenant"
)

func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// CurrentSession returns an unauthenticated session when the middleware did not run.
func CurrentSession(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}

// Tenant returns a pending context when the middleware did not run.
func Tenant(c *gin.Context) entities.TenantContext {
	if v, ok := c.Get(tenantKey); ok {
		if t, ok := v.(entities.TenantContext); ok {
			return t
		}
	}
	return entities.TenantContext{State: entities.ValidationPending}
}

// WithSession and WithTenant let tests and handlers seed the request context.
func WithSession(c *gin.Context, sessionID string, s entities.Session) {
	c.Set(sessionIDKey, sessionID)
	c.Set(sessionKey, s)
}

func WithTenant(c *gin.Context, t entities.TenantContext) {
	c.Set(tenantKey, t)
}
