package response

import "quotely/internal/domain/entities"

type SessionResponse struct {
	Authenticated bool     `json:"authenticated"`
	Role          string   `json:"role"`
	Capabilities  []string `json:"capabilities"`
	FactoryID     string   `json:"factoryId,omitempty"`
	Subject       string   `json:"sub,omitempty"`
	Email         string   `json:"email,omitempty"`
	Notice        string   `json:"notice,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	caps := s.Capabilities()
	res := SessionResponse{
		Authenticated: s.Authenticated(),
		Role:          string(s.Role()),
		Capabilities:  make([]string, 0, len(caps)),
		Notice:        s.Notice,
	}
	for _, c := range caps {
		res.Capabilities = append(res.Capabilities, string(c))
	}
	if s.Claims != nil {
		res.FactoryID = s.Claims.FactoryID
		res.Subject = s.Claims.Subject
		res.Email = s.Claims.Email
	}
	return res
}
