package tenancy

import "strings"

const localhost = "localhost"

// ResolveCandidate derives the tenant subdomain from a bare host name.
//
// "localhost" never yields a candidate. Any other host with more than one
// dot-separated label yields its first label, so "acme.quotely.shop" gives "acme"
// and the apex "quotely.shop" gives "quotely".
func ResolveCandidate(hostname string) (string, bool) {
	if hostname == localhost {
		return "", false
	}
	labels := strings.Split(hostname, ".")
	if len(labels) > 1 {
		return labels[0], true
	}
	return "", false
}
