package httpx

import (
	"net/http"

	"github.com/agi-health/medfleet/pkg/cryptox"
)

// APIKeyHeader is the header discovery agents present their shared secret in.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey authenticates external device/agent traffic with a shared
// secret. This is a separate credential channel from user bearer tokens:
// agents are not users and carry no permission set.
func RequireAPIKey(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"msg": "No API key, authorization denied",
				})
				return
			}

			if !cryptox.ConstantTimeEquals(key, secret) {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"msg": "Invalid API key",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
