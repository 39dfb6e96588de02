package entities

import "fmt"

// ValidationState is the tenant resolution state for one page load.
type ValidationState string

const (
	ValidationPending       ValidationState = "pending"
	ValidationValid         ValidationState = "valid"
	ValidationInvalid       ValidationState = "invalid"
	ValidationNotApplicable ValidationState = "not_applicable"
)

// AccessView is the route tree the shell must mount for a tenant decision.
type AccessView string

const (
	ViewLoading         AccessView = "loading"
	ViewTenantDashboard AccessView = "tenant-dashboard"
	ViewInvalidTenant   AccessView = "invalid-tenant"
	ViewPublic          AccessView = "public"
)

// PublicRoutes is the marketing/support route set mounted for non-tenant hosts.
var PublicRoutes = []string{"/", "/support", "/contact", "/terms", "/privacy", "/refund"}

// TenantContext is created once per page load. State moves from Pending to exactly
// one terminal state and is never reset.
type TenantContext struct {
	Hostname  string
	Subdomain string
	State     ValidationState
	Title     string
}

func (t TenantContext) HasCandidate() bool {
	return t.Subdomain != ""
}

func (t TenantContext) View() AccessView {
	switch t.State {
	case ValidationValid:
		return ViewTenantDashboard
	case ValidationInvalid:
		if t.HasCandidate() {
			return ViewInvalidTenant
		}
		return ViewPublic
	case ValidationNotApplicable:
		return ViewPublic
	default:
		return ViewLoading
	}
}

// DashboardTitle is the document title shown once a tenant is confirmed.
func DashboardTitle(subdomain string) string {
	return fmt.Sprintf("%s - Dashboard", subdomain)
}
