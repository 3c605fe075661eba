package tenant

import (
	"net/http/httptest"
	"testing"
)

func TestResolver_HeaderOverride(t *testing.T) {
	res := NewResolver(Options{HeaderKey: "X-Tenant", DefaultTenant: "local"})

	r := httptest.NewRequest("GET", "http://any.example.com/items", nil)
	r.Header.Set("X-Tenant", "Acme-District")
	id, err := res.Resolve(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != "acme-district" {
		t.Fatalf("expected acme-district, got %q", id)
	}

	r.Header.Set("X-Tenant", "not valid!")
	if _, err := res.Resolve(r); err == nil {
		t.Fatal("expected error for invalid tenant token")
	}
}

func TestResolver_HostBased(t *testing.T) {
	res := NewResolver(Options{BaseDomain: "exams.examforge.io", HostIsTenant: true})

	tests := []struct {
		host string
		want string
		ok   bool
	}{
		{"northside.exams.examforge.io", "northside", true},
		{"northside.exams.examforge.io:8443", "northside", true},
		{"exams.examforge.io", "", false},     // bare base domain
		{"other.example.com", "", false},      // wrong domain
		{"a.b.exams.examforge.io", "a", true}, // leftmost label wins
	}
	for _, tc := range tests {
		t.Run(tc.host, func(t *testing.T) {
			r := httptest.NewRequest("GET", "http://"+tc.host+"/items", nil)
			r.Host = tc.host
			id, err := res.Resolve(r)
			if tc.ok {
				if err != nil {
					t.Fatalf("resolve: %v", err)
				}
				if id != tc.want {
					t.Fatalf("expected %q, got %q", tc.want, id)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got %q", id)
			}
		})
	}
}

func TestResolver_PathBased(t *testing.T) {
	res := NewResolver(Options{PathPrefix: "t"}) // normalized to "/t"

	r := httptest.NewRequest("GET", "http://host.example.com/t/westview/items", nil)
	id, err := res.Resolve(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != "westview" {
		t.Fatalf("expected westview, got %q", id)
	}
}

func TestResolver_DefaultFallback(t *testing.T) {
	res := NewResolver(Options{DefaultTenant: "local"})
	r := httptest.NewRequest("GET", "http://localhost:8080/items", nil)
	id, err := res.Resolve(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != "local" {
		t.Fatalf("expected local, got %q", id)
	}
}
