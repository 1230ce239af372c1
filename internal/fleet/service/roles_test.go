package service

import (
	"context"
	"testing"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateRoleValidatesPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleAGIAdmin)

	t.Run("accepts registered permissions", func(t *testing.T) {
		role, err := env.Roles.CreateRole(ctx, admin, RoleParams{
			Name:        "night_shift",
			Description: "Night shift staff",
			Permissions: []string{domain.PermViewEquipmentStatus, domain.PermManageEquipmentStatus},
		})
		require.NoError(t, err)
		require.Equal(t, "night_shift", role.Name)
		require.Len(t, role.Permissions, 2)
	})

	t.Run("rejects unknown permission", func(t *testing.T) {
		_, err := env.Roles.CreateRole(ctx, admin, RoleParams{
			Name:        "bad_role",
			Permissions: []string{"launch_missiles"},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Violations[0].Msg, "launch_missiles")
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := env.Roles.CreateRole(ctx, admin, RoleParams{
			Name:        domain.RoleTechnician,
			Permissions: []string{domain.PermViewEquipmentStatus},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleAGIAdmin)

	role, err := env.Roles.CreateRole(ctx, admin, RoleParams{
		Name:        "auditor",
		Permissions: []string{domain.PermViewEquipmentStatus},
	})
	require.NoError(t, err)

	updated, err := env.Roles.UpdateRole(ctx, admin, role.ID, RoleParams{
		Description: "Compliance auditor",
		Permissions: []string{domain.PermViewEquipmentStatus, domain.PermViewAllData},
	})
	require.NoError(t, err)
	require.Equal(t, "Compliance auditor", updated.Description)
	require.Contains(t, updated.Permissions, domain.PermViewAllData)

	_, err = env.Roles.UpdateRole(ctx, admin, role.ID, RoleParams{
		Permissions: []string{"nope"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteRoleInUse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleAGIAdmin)

	role, err := env.Roles.CreateRole(ctx, admin, RoleParams{
		Name:        "temp_role",
		Permissions: []string{domain.PermViewEquipmentStatus},
	})
	require.NoError(t, err)

	user, _ := env.makeUser(t, org.ID, domain.RoleTechnician)
	require.NoError(t, env.Store.Users().UpdateUserRole(ctx, user.ID, role.ID))

	require.ErrorIs(t, env.Roles.DeleteRole(ctx, admin, role.ID), ErrRoleInUse)

	// Once unassigned, deletion goes through.
	tech, err := env.Store.Roles().GetRoleByName(ctx, domain.RoleTechnician)
	require.NoError(t, err)
	require.NoError(t, env.Store.Users().UpdateUserRole(ctx, user.ID, tech.ID))
	require.NoError(t, env.Roles.DeleteRole(ctx, admin, role.ID))
}
