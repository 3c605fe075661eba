package config

import (
	"os"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	BlobBasePath string // item media (hotspot images)

	AuthSecret string

	// Multi-tenant resolution
	TenantBaseDomain string // e.g. "exams.examforge.io" => {tenant}.exams.examforge.io
	TenantHeader     string // override header, e.g. "X-Tenant"
	TenantPathPrefix string // path alternative, e.g. "/t"
	DefaultTenant    string // fallback for single-tenant installs

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,
		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		BlobBasePath: envOr("BLOB_BASE_PATH", "./data"),

		AuthSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		TenantBaseDomain: os.Getenv("TENANT_BASE_DOMAIN"),
		TenantHeader:     envOr("TENANT_HEADER", "X-Tenant"),
		TenantPathPrefix: os.Getenv("TENANT_PATH_PREFIX"),
		DefaultTenant:    envOr("DEFAULT_TENANT", "local"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://app.examforge.io"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:3010"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
