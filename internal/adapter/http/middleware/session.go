package middleware

import (
	"net/http"
	"strings"
	"time"

	"quotely/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session issues an HTTP-only session cookie on first contact and decodes the
// stored bearer token into the request context.
func Session(uc usecase.ISessionUseCase, opts SessionOptions) gin.HandlerFunc {
	if opts.CookieName == "" {
		opts.CookieName = "quotely_sid"
	}
	return func(c *gin.Context) {
		sid, err := c.Cookie(opts.CookieName)
		if _, parseErr := uuid.Parse(sid); err != nil || parseErr != nil {
			sid = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, sid, int(opts.TTL/time.Second), "/", "", opts.Secure, true)

		WithSession(c, sid, uc.Current(c.Request.Context(), sid))
		c.Next()
	}
}

// hostname strips the port from a Host header, keeping IPv6 literals intact.
func hostname(host string) string {
	host = strings.TrimSpace(strings.ToLower(host))
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return host[1:end]
		}
		return host
	}
	if i := strings.LastIndex(host, ":"); i >= 0 && strings.Count(host, ":") == 1 {
		return host[:i]
	}
	return host
}
