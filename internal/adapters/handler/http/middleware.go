package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type contextKey string

const identityKey contextKey = "identity"

// authenticate verifies the bearer token of the request and attaches the
// resulting identity to the context. Requests without a verifiable token
// are rejected before any downstream handler runs.
func authenticate(tokens ports.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				respondError(w, http.StatusUnauthorized, "You must login to access this page.")
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "You must login to access this page.")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFrom(ctx context.Context) (ports.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(ports.Identity)
	return identity, ok
}

// corsHeaders mirrors the permissive cross-origin policy of the previous
// deployment: any origin, with preflight handled inline.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
