package tenant

import (
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Resolver resolves the current tenant from an HTTP request.
type Resolver interface {
	Resolve(r *http.Request) (tenantID string, err error)
}

// Options controls multi-tenant resolution.
//
// Typical host-based setup:
//
//	BaseDomain:   "exams.examforge.io"
//	HostIsTenant: true               // {tenant}.exams.examforge.io
//
// Path-based alternative (single host):
//
//	PathPrefix:   "/t"               // /t/{tenant}/...
//
// Header override (for tests/internal routing):
//
//	HeaderKey:    "X-Tenant"         // if present, takes precedence
type Options struct {
	BaseDomain    string // e.g. "exams.examforge.io" (no scheme)
	HostIsTenant  bool   // true => {tenant}.{BaseDomain}
	PathPrefix    string // e.g. "/t" when HostIsTenant == false
	HeaderKey     string // optional override header for tenant id
	DefaultTenant string // optional fallback when tenant could not be inferred
}

// NewResolver returns a Resolver that resolves the tenant from header (if
// set), host (subdomain), or path prefix, depending on Options.
func NewResolver(opts Options) Resolver {
	if opts.PathPrefix != "" && !strings.HasPrefix(opts.PathPrefix, "/") {
		opts.PathPrefix = "/" + opts.PathPrefix
	}
	return &universalResolver{opts: opts}
}

type universalResolver struct {
	opts Options
}

func (u *universalResolver) Resolve(r *http.Request) (string, error) {
	// 1) Header override (highest priority)
	if u.opts.HeaderKey != "" {
		if v := strings.TrimSpace(r.Header.Get(u.opts.HeaderKey)); v != "" {
			t := sanitizeTenant(v)
			if t == "" {
				return "", errBadTenantToken
			}
			return t, nil
		}
	}

	// 2) Host-based tenant, e.g. {tenant}.exams.examforge.io
	if u.opts.HostIsTenant {
		if t := u.tenantFromHost(r); t != "" {
			return t, nil
		}
	}

	// 3) Path-based tenant, e.g. /t/{tenant}/...
	if u.opts.PathPrefix != "" {
		if t := u.tenantFromPath(r); t != "" {
			return t, nil
		}
	}

	// 4) Fallback default
	if u.opts.DefaultTenant != "" {
		t := sanitizeTenant(u.opts.DefaultTenant)
		if t == "" {
			return "", errBadTenantToken
		}
		return t, nil
	}

	return "", errNoTenant
}

// tenantFromHost extracts {tenant} from {tenant}.{BaseDomain}.
func (u *universalResolver) tenantFromHost(r *http.Request) string {
	host := hostWithoutPort(r.Host)
	base := strings.ToLower(strings.TrimSpace(u.opts.BaseDomain))
	if host == "" || base == "" {
		return ""
	}
	if strings.EqualFold(host, base) {
		return ""
	}
	suffix := "." + base
	if !strings.HasSuffix(strings.ToLower(host), suffix) {
		return ""
	}
	rest := host[:len(host)-len(suffix)]
	if rest == "" {
		return ""
	}
	labels := strings.Split(rest, ".")
	return sanitizeTenant(labels[0])
}

// tenantFromPath extracts {tenant} from {PathPrefix}/{tenant}/...
func (u *universalResolver) tenantFromPath(r *http.Request) string {
	path := r.URL.Path
	if !strings.HasPrefix(path, u.opts.PathPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(path, u.opts.PathPrefix)
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return ""
	}
	segEnd := strings.IndexByte(rest, '/')
	if segEnd == -1 {
		segEnd = len(rest)
	}
	return sanitizeTenant(rest[:segEnd])
}

var (
	errNoTenant       = errors.New("tenant: could not resolve tenant from request")
	errBadTenantToken = errors.New("tenant: invalid tenant token")
)

var tenantToken = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,61}$`)

// sanitizeTenant lowercases and validates the tenant token. DNS-friendly:
// [a-z0-9] first char, then [a-z0-9-], up to 62 chars total.
func sanitizeTenant(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !tenantToken.MatchString(s) {
		return ""
	}
	return s
}

func hostWithoutPort(h string) string {
	if h == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(h); err == nil {
		return host
	}
	return h
}
