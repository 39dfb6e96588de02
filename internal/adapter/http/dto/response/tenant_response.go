package response

import "quotely/internal/domain/entities"

type TenantResponse struct {
	Hostname     string   `json:"hostname"`
	Subdomain    string   `json:"subdomain,omitempty"`
	State        string   `json:"state"`
	View         string   `json:"view"`
	Title        string   `json:"title,omitempty"`
	RecoveryURL  string   `json:"recoveryUrl,omitempty"`
	PublicRoutes []string `json:"publicRoutes,omitempty"`
}

// FromTenantContext adds the single recovery action to an invalid-tenant view
// and the public route set to a public one.
func FromTenantContext(t entities.TenantContext, rootDomainURL string) TenantResponse {
	res := TenantResponse{
		Hostname:  t.Hostname,
		Subdomain: t.Subdomain,
		State:     string(t.State),
		View:      string(t.View()),
		Title:     t.Title,
	}
	switch t.View() {
	case entities.ViewInvalidTenant:
		res.RecoveryURL = rootDomainURL
	case entities.ViewPublic:
		res.PublicRoutes = append([]string(nil), entities.PublicRoutes...)
	}
	return res
}
