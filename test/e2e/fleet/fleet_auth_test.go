package fleet_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestAdminLogin verifies the seeded platform operator can authenticate.
func TestAdminLogin(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	orgs, err := admin.ListOrganizations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 1, "Only the root organization should exist")
	require.Equal(t, rootOrgName, orgs[0].Name)
}

// TestRegisterAndLogin walks the self-registration flow end to end.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "St Example Hospital")

	user := registerUser(t, baseURL, org.ID, "nurse@example.org", "Secret123")

	// The fresh token works against an authenticated endpoint.
	roles, err := user.ListRoles(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, roles)

	// Login again with the same credentials.
	relogin := fleetsdk.New(baseURL)
	tok, err := relogin.Login(t.Context(), fleetsdk.LoginRequest{
		Email:    "nurse@example.org",
		Password: "Secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
}

// TestRegisterValidation checks field-level validation messages.
func TestRegisterValidation(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	_, err := client.Register(t.Context(), fleetsdk.RegisterRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "123",
	})
	requireStatus(t, err, http.StatusBadRequest, "Invalid registration should fail")
	require.Contains(t, err.Error(), "errors", "Validation failures use the errors array format")
}

// TestRegisterUnknownOrganization rejects registration into a missing org.
func TestRegisterUnknownOrganization(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	_, err := client.Register(t.Context(), fleetsdk.RegisterRequest{
		Name:           "Ghost",
		Email:          "ghost@example.org",
		Password:       "Secret123",
		OrganizationID: "01HZZZZZZZZZZZZZZZZZZZZZZZ",
	})
	requireStatus(t, err, http.StatusBadRequest, "Unknown organization should be rejected")
}

// TestRegisterDuplicateEmail rejects a second registration with the same email.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Duplicate Email Hospital")

	registerUser(t, baseURL, org.ID, "dupe@example.org", "Secret123")

	client := fleetsdk.New(baseURL)
	_, err := client.Register(t.Context(), fleetsdk.RegisterRequest{
		Name:           "Second",
		Email:          "dupe@example.org",
		Password:       "Secret123",
		OrganizationID: org.ID,
	})
	requireStatus(t, err, http.StatusBadRequest, "Duplicate email should be rejected")
	require.Contains(t, err.Error(), "already exists")
}

// TestLoginInvalidCredentials never reveals whether the account exists.
func TestLoginInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	_, err := client.Login(t.Context(), fleetsdk.LoginRequest{
		Email:    "nobody@example.org",
		Password: "WrongPass1",
	})
	requireStatus(t, err, http.StatusBadRequest, "Unknown account should fail")
	require.Contains(t, err.Error(), "Invalid Credentials")

	_, err = client.Login(t.Context(), fleetsdk.LoginRequest{
		Email:    adminEmail,
		Password: "WrongPass1",
	})
	requireStatus(t, err, http.StatusBadRequest, "Wrong password should fail")
	require.Contains(t, err.Error(), "Invalid Credentials")
}

// TestProtectedEndpointWithoutToken checks the 401 wire format.
func TestProtectedEndpointWithoutToken(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)

	_, err := client.ListOrganizations(t.Context())
	requireStatus(t, err, http.StatusUnauthorized, "Missing token should 401")
	require.True(t, strings.Contains(err.Error(), "No token, authorization denied"))
}

// TestProtectedEndpointWithGarbageToken checks token validation.
func TestProtectedEndpointWithGarbageToken(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.New(baseURL)
	client.Token = "not.a.jwt"

	_, err := client.ListOrganizations(t.Context())
	requireStatus(t, err, http.StatusUnauthorized, "Garbage token should 401")
	require.Contains(t, err.Error(), "Token is not valid")
}
