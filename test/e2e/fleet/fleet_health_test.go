package fleet_test

import (
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies readiness reports the database and signer checks.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	t.Logf("Readyz endpoint is healthy")
}

// TestJWKSEndpoint verifies signing keys are published.
func TestJWKSEndpoint(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	jwks, err := client.JWKS(t.Context())
	require.NoError(t, err)
	require.NotNil(t, jwks)
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

	for _, key := range jwks.Keys {
		require.Equal(t, "OKP", key.Kty)
		require.Equal(t, "EdDSA", key.Alg)
		t.Logf("Key ID: %s, Algorithm: %s, Use: %s", key.Kid, key.Alg, key.Use)
	}
}
