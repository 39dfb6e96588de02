package interfaces

import "context"

// ITenantRegistry validates tenant subdomains against the quotely backend.
//
// Any transport failure, non-2xx status or malformed body is returned as an error;
// callers treat errors exactly like an invalid subdomain.
type ITenantRegistry interface {
	CheckSubdomain(ctx context.Context, subdomain string) (bool, error)
}

// HostProvider supplies the bare host name (no port) of the current request.
type HostProvider interface {
	Hostname() string
}

// HostProviderFunc adapts a function to HostProvider.
type HostProviderFunc func() string

func (f HostProviderFunc) Hostname() string {
	return f()
}
