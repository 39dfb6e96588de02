package tenancy

import "testing"

func TestResolveCandidate(t *testing.T) {
	cases := []struct {
		host string
		want string
		ok   bool
	}{
		{host: "localhost", ok: false},
		{host: "acme.quotely.shop", want: "acme", ok: true},
		{host: "quotely.shop", want: "quotely", ok: true},
		{host: "acme.localhost", want: "acme", ok: true},
		{host: "a.b.c.d.example.com", want: "a", ok: true},
		{host: "intranet", ok: false},
		{host: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			got, ok := ResolveCandidate(tc.host)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ResolveCandidate(%q) = %q, %v; want %q, %v", tc.host, got, ok, tc.want, tc.ok)
			}
		})
	}
}
