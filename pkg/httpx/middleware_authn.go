package httpx

import (
	"net/http"
	"strings"

	"github.com/agi-health/medfleet/pkg/jwtx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and resolves the caller identity
// (user id, organization, role name, flattened permission set) into context.
func AuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "No token, authorization denied")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "Token is not valid")
				return
			}

			ctx = ContextWithIdentity(ctx, Identity{
				UserID:      claims.Subject,
				OrgID:       claims.OrgID,
				Role:        claims.Role,
				Permissions: claims.Permissions,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth, with the JSON body the
// API promises for 401s.
func writeBearerError(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"msg": msg})
}
