package middleware

import (
	"net/http"
	"sync"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase"
	"quotely/internal/usecase/interfaces"
	"quotely/pkg"

	"github.com/gin-gonic/gin"
)

// ResolveTenant validates the request host once per session and stores the
// decision. Terminal decisions are reused for ttl; a zero ttl resolves on every
// request. It must run after Session.
func ResolveTenant(resolver usecase.ITenantResolverUseCase, ttl time.Duration) gin.HandlerFunc {
	decisions := newTenantDecisions(ttl, time.Now)
	return func(c *gin.Context) {
		host := hostname(c.Request.Host)
		key := SessionID(c) + "|" + host

		tenant, ok := decisions.get(key)
		if !ok {
			tenant = resolver.Resolve(c.Request.Context(), interfaces.HostProviderFunc(func() string { return host }))
			decisions.put(key, tenant)
		}
		WithTenant(c, tenant)
		c.Next()
	}
}

// RequireTenant lets the request through only on a confirmed tenant host.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Tenant(c).State != entities.ValidationValid {
			appErr := pkg.NewDomainErrorSimple("INVALID_TENANT", "This storefront does not exist", http.StatusNotFound)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

type tenantDecision struct {
	tenant  entities.TenantContext
	expires time.Time
}

type tenantDecisions struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]tenantDecision
	swept   time.Time
}

func newTenantDecisions(ttl time.Duration, now func() time.Time) *tenantDecisions {
	return &tenantDecisions{ttl: ttl, now: now, entries: make(map[string]tenantDecision)}
}

func (d *tenantDecisions) get(key string) (entities.TenantContext, bool) {
	if d.ttl <= 0 {
		return entities.TenantContext{}, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[key]
	if !ok || !d.now().Before(e.expires) {
		return entities.TenantContext{}, false
	}
	return e.tenant, true
}

// put sweeps expired entries at most once per ttl.
func (d *tenantDecisions) put(key string, tenant entities.TenantContext) {
	if d.ttl <= 0 || tenant.State == entities.ValidationPending {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.swept) >= d.ttl {
		for k, e := range d.entries {
			if !now.Before(e.expires) {
				delete(d.entries, k)
			}
		}
		d.swept = now
	}
	d.entries[key] = tenantDecision{tenant: tenant, expires: now.Add(d.ttl)}
}
