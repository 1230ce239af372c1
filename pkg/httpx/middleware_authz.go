package httpx

import (
	"net/http"
	"strings"
)

// RequirePermission denies the request unless the caller holds at least one
// of the listed permissions (logical OR, matching how role checks compose:
// several roles may each grant a different permission that unlocks the same
// operation).
func RequirePermission(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, p := range required {
		want[p] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := permissionsFromCtx(r.Context())

			for _, p := range have {
				if _, ok := want[p]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"msg": "Forbidden: Requires one of the following permissions: " +
					strings.Join(required, ", "),
			})
		})
	}
}
