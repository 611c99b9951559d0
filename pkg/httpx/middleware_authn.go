package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

// AuthnMiddleware resolves a bearer token to a subject and injects it into
// the request context. A missing, malformed or unverifiable token ends the
// request with 401; whether the subject still exists in the store is the
// handler's concern, not this middleware's.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "Missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, "Invalid bearer token")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "Token expired")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeBearerError(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, struct {
		Status     string `json:"status"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	}{
		Status:     "Bad request",
		Message:    msg,
		StatusCode: http.StatusUnauthorized,
	})
}
