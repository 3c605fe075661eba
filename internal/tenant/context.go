package tenant

import (
	"context"
	"net/http"
)

type ctxKey struct{}

var ctxKeyTenant = ctxKey{}

func WithTenant(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyTenant, id)
}

func FromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyTenant); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Middleware resolves the tenant for every request and stores it in the
// request context. Requests with no resolvable tenant are rejected.
func Middleware(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := res.Resolve(r)
			if err != nil {
				http.Error(w, "unknown tenant", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), id)))
		})
	}
}
