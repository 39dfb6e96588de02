package entities

import "fmt"

// Role selects one of two disjoint UI capability sets.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Capability names a UI feature the shell may expose.
type Capability string

const (
	CapabilityBrowseProducts  Capability = "products:browse"
	CapabilityBuildQuotation  Capability = "quotations:build"
	CapabilityManageProducts  Capability = "products:manage"
	CapabilityExportQuotation Capability = "quotations:export"
	CapabilitySaveQuotation   Capability = "quotations:save"
	CapabilityViewDashboard   Capability = "dashboard:view"
)

var (
	adminCapabilities = []Capability{
		CapabilityManageProducts,
		CapabilityExportQuotation,
		CapabilitySaveQuotation,
		CapabilityViewDashboard,
	}
	customerCapabilities = []Capability{
		CapabilityBrowseProducts,
		CapabilityBuildQuotation,
	}
)

// Claims are the decoded fields of a bearer token payload.
//
// They are NOT verified: the signature is never checked here. Claims only steer
// which UI the shell shows; every request that touches data is authorized by the
// quotely backend, which receives the raw bearer token.
type Claims struct {
	FactoryID string `json:"factoryId,omitempty"`
	Role      Role   `json:"role,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Session is the decoded view of the stored bearer token.
//
// Claims is nil when unauthenticated. Notice is set once, when a malformed token
// was purged while building this session.
type Session struct {
	RawToken string
	Claims   *Claims
	Notice   string
}

func (s Session) Authenticated() bool {
	return s.Claims != nil
}

// Role defaults to the least privileged role when the claim is absent or unknown.
func (s Session) Role() Role {
	if s.Claims != nil && s.Claims.Role == RoleAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

func (s Session) Capabilities() []Capability {
	src := customerCapabilities
	if s.Role() == RoleAdmin {
		src = adminCapabilities
	}
	out := make([]Capability, len(src))
	copy(out, src)
	return out
}

func (s Session) Can(c Capability) bool {
	for _, have := range s.Capabilities() {
		if have == c {
			return true
		}
	}
	return false
}

// RequireFactoryID returns the factory id claim needed by admin-scoped operations.
func (s Session) RequireFactoryID() (string, error) {
	if s.Claims == nil || s.Claims.FactoryID == "" {
		return "", &MissingClaimError{Claim: "factoryId"}
	}
	return s.Claims.FactoryID, nil
}

// MissingClaimError fails the one operation that needed the claim; the session
// itself stays valid.
type MissingClaimError struct {
	Claim string
}

func (e *MissingClaimError) Error() string {
	return fmt.Sprintf("missing claim %q in session token", e.Claim)
}
