package fleet_test

import (
	"net/http"
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestOrganizationCRUD covers create, get, list and partial update.
func TestOrganizationCRUD(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	org, err := admin.CreateOrganization(t.Context(), fleetsdk.CreateOrganizationRequest{
		Name:      "Northside Clinic",
		Address:   "12 North St",
		Locations: []string{"Theatre 1", "Recovery"},
		Branding: &fleetsdk.Branding{
			LogoURL:      "https://cdn.example.org/northside.png",
			PrimaryColor: "#0055aa",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, org.ID)
	require.NotNil(t, org.Branding)
	require.Equal(t, "#0055aa", org.Branding.PrimaryColor)

	fetched, err := admin.GetOrganization(t.Context(), org.ID)
	require.NoError(t, err)
	require.Equal(t, "Northside Clinic", fetched.Name)
	require.ElementsMatch(t, []string{"Theatre 1", "Recovery"}, fetched.Locations)

	// Partial update: only the address changes.
	newAddr := "14 North St"
	updated, err := admin.UpdateOrganization(t.Context(), org.ID, fleetsdk.UpdateOrganizationRequest{
		Address: &newAddr,
	})
	require.NoError(t, err)
	require.Equal(t, "14 North St", updated.Address)
	require.Equal(t, "Northside Clinic", updated.Name, "Untouched fields survive")
	require.NotNil(t, updated.Branding)

	orgs, err := admin.ListOrganizations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 2, "Root org plus the new clinic")
}

// TestOrganizationDuplicateName rejects a second org with the same name.
func TestOrganizationDuplicateName(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	createOrganization(t, admin, "Same Name Hospital")

	_, err := admin.CreateOrganization(t.Context(), fleetsdk.CreateOrganizationRequest{
		Name:    "Same Name Hospital",
		Address: "elsewhere",
	})
	requireStatus(t, err, http.StatusBadRequest, "Duplicate name should be rejected")
}

// TestOrganizationGetUnknown returns the single-message 404 body.
func TestOrganizationGetUnknown(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	_, err := admin.GetOrganization(t.Context(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	requireStatus(t, err, http.StatusNotFound, "Unknown organization should 404")
	require.Contains(t, err.Error(), "Organization not found")
}

// TestOrganizationForbiddenForStaff verifies manage_organizations gates the
// CRUD surface while branding stays reachable.
func TestOrganizationForbiddenForStaff(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Staff Hospital")

	staff := registerUser(t, baseURL, org.ID, "staff@example.org", "Secret123")

	_, err := staff.ListOrganizations(t.Context())
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot list organizations")
	require.Contains(t, err.Error(), "Requires one of the following permissions")

	_, err = staff.CreateOrganization(t.Context(), fleetsdk.CreateOrganizationRequest{
		Name:    "Rogue Org",
		Address: "nowhere",
	})
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot create organizations")
}

// TestMyBranding returns the caller's own organization theme.
func TestMyBranding(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	org, err := admin.CreateOrganization(t.Context(), fleetsdk.CreateOrganizationRequest{
		Name:    "Branded Hospital",
		Address: "1 Brand Way",
		Branding: &fleetsdk.Branding{
			LogoURL:      "https://cdn.example.org/brand.png",
			PrimaryColor: "#ff2200",
		},
	})
	require.NoError(t, err)

	staff := registerUser(t, baseURL, org.ID, "branded@example.org", "Secret123")

	branding, err := staff.MyBranding(t.Context())
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.org/brand.png", branding.LogoURL)
	require.Equal(t, "#ff2200", branding.PrimaryColor)
}
