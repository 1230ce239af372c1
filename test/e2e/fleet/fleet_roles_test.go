package fleet_test

import (
	"net/http"
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestSeededRoles verifies the default role catalogue exists on first boot.
func TestSeededRoles(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	roles, err := admin.ListRoles(t.Context())
	require.NoError(t, err)

	names := make(map[string]bool, len(roles))
	for _, r := range roles {
		names[r.Name] = true
	}
	for _, want := range []string{
		"agi_admin", "hospital_admin", "doctor", "nurse",
		"technician", "ward_clerk", "read_only", "hospital_user",
	} {
		require.True(t, names[want], "Seeded role %s should exist", want)
	}
}

// TestRoleCRUD covers create, update and delete.
func TestRoleCRUD(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	role, err := admin.CreateRole(t.Context(), fleetsdk.RoleRequest{
		Name:        "biomed_engineer",
		Description: "Biomedical engineering staff",
		Permissions: []string{"manage_equipment_status", "view_equipment_status"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, role.ID)

	updated, err := admin.UpdateRole(t.Context(), role.ID, fleetsdk.RoleRequest{
		Name:        "biomed_engineer",
		Description: "Biomedical engineering staff, extended",
		Permissions: []string{"manage_equipment_status", "view_equipment_status", "enroll_equipment"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Permissions, 3)

	require.NoError(t, admin.DeleteRole(t.Context(), role.ID))

	_, err = admin.UpdateRole(t.Context(), role.ID, fleetsdk.RoleRequest{
		Name:        "biomed_engineer",
		Permissions: []string{"view_equipment_status"},
	})
	requireStatus(t, err, http.StatusNotFound, "Deleted role should be gone")
}

// TestRoleUnknownPermission rejects permissions outside the registry.
func TestRoleUnknownPermission(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	_, err := admin.CreateRole(t.Context(), fleetsdk.RoleRequest{
		Name:        "bad_role",
		Permissions: []string{"launch_rockets"},
	})
	requireStatus(t, err, http.StatusBadRequest, "Unknown permission should be rejected")
}

// TestRoleDeleteInUse blocks deleting a role that users still hold.
func TestRoleDeleteInUse(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Role Use Hospital")

	registerUser(t, baseURL, org.ID, "holder@example.org", "Secret123")

	roleID := findRoleByName(t, admin, "hospital_user")
	err := admin.DeleteRole(t.Context(), roleID)
	requireStatus(t, err, http.StatusBadRequest, "Role held by users cannot be deleted")
	require.Contains(t, err.Error(), "still assigned")
}

// TestUserRoleChangeGuards covers the self-change and agi_admin-assignment
// protections.
func TestUserRoleChangeGuards(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Guard Hospital")

	registerUser(t, baseURL, org.ID, "target@example.org", "Secret123")

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)

	var adminID, targetID string
	for _, u := range users {
		switch u.Email {
		case adminEmail:
			adminID = u.ID
		case "target@example.org":
			targetID = u.ID
		}
	}
	require.NotEmpty(t, adminID)
	require.NotEmpty(t, targetID)

	// A normal promotion works.
	doctorID := findRoleByName(t, admin, "doctor")
	promoted, err := admin.UpdateUserRole(t.Context(), targetID, doctorID)
	require.NoError(t, err)
	require.Equal(t, "doctor", promoted.Role)

	// Nobody may change their own role.
	_, err = admin.UpdateUserRole(t.Context(), adminID, doctorID)
	requireStatus(t, err, http.StatusForbidden, "Self role change should be forbidden")
	require.Contains(t, err.Error(), "your own role")

	// The platform operator role cannot be handed out.
	agiID := findRoleByName(t, admin, "agi_admin")
	_, err = admin.UpdateUserRole(t.Context(), targetID, agiID)
	requireStatus(t, err, http.StatusForbidden, "Assigning agi_admin should be forbidden")
}

// TestUserManagementRequiresPermission gates the users surface.
func TestUserManagementRequiresPermission(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "User Perm Hospital")

	staff := registerUser(t, baseURL, org.ID, "lowpriv@example.org", "Secret123")

	_, err := staff.ListUsers(t.Context())
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot list users")
}

// TestUserListIsTenantScoped verifies hospital admins only see their own org.
func TestUserListIsTenantScoped(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	orgA := createOrganization(t, admin, "Tenant A Hospital")
	orgB := createOrganization(t, admin, "Tenant B Hospital")

	adminA := registerUser(t, baseURL, orgA.ID, "admina@example.org", "Secret123")
	promoteUser(t, admin, "admina@example.org", "hospital_admin")
	tok, err := adminA.Login(t.Context(), fleetsdk.LoginRequest{Email: "admina@example.org", Password: "Secret123"})
	require.NoError(t, err)
	adminA.Token = tok.Token

	registerUser(t, baseURL, orgB.ID, "userb@example.org", "Secret123")

	users, err := adminA.ListUsers(t.Context())
	require.NoError(t, err)
	for _, u := range users {
		require.Equal(t, orgA.ID, u.OrganizationID, "Hospital admin must only see own org users")
	}
}
