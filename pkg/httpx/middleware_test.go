package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithIdentity(t *testing.T, id Identity) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(ContextWithIdentity(r.Context(), id))
}

func TestRequirePermissionAllowsAnyMatch(t *testing.T) {
	t.Parallel()

	h := Chain(okHandler(), RequirePermission("manage_users", "manage_organizations"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithIdentity(t, Identity{
		UserID:      "u1",
		Permissions: []string{"manage_organizations"},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionDeniesWithoutMatch(t *testing.T) {
	t.Parallel()

	h := Chain(okHandler(), RequirePermission("manage_roles"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithIdentity(t, Identity{
		UserID:      "u1",
		Permissions: []string{"view_equipment_status", "manage_equipment_status"},
	}))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "manage_roles")
}

func TestRequirePermissionDeniesAnonymous(t *testing.T) {
	t.Parallel()

	h := Chain(okHandler(), RequirePermission("manage_roles"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAPIKey(t *testing.T) {
	t.Parallel()

	h := Chain(okHandler(), RequireAPIKey("agent-secret"))

	t.Run("missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(APIKeyHeader, "nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(APIKeyHeader, "agent-secret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitByIPBlocksAfterBurst(t *testing.T) {
	h := Chain(okHandler(), RateLimitByIP(RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}))

	for range 2 {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:4567"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different IP still has its own bucket.
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.9.9.9:4567"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	r := requestWithIdentity(t, Identity{
		UserID:      "u1",
		OrgID:       "org1",
		Role:        "technician",
		Permissions: []string{"manage_equipment_status"},
	})

	id, ok := IdentityFromContext(r.Context())
	require.True(t, ok)
	require.Equal(t, "org1", id.OrgID)
	require.True(t, id.Has("manage_equipment_status"))
	require.False(t, id.Has("manage_users"))

	_, ok = IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}
