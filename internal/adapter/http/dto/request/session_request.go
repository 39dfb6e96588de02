package request

import "strings"

// SignInRequest hands a bearer token obtained from the login flow to the session.
type SignInRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResolveToken accepts the token with or without a "Bearer " prefix.
func (r SignInRequest) ResolveToken() string {
	t := strings.TrimSpace(r.Token)
	if len(t) > 7 && strings.EqualFold(t[:7], "bearer ") {
		t = strings.TrimSpace(t[7:])
	}
	return t
}
