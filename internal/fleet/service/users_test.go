package service

import (
	"context"
	"testing"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/stretchr/testify/require"
)

func TestListUsersScopedToOrganization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")

	_, adminA := env.makeUser(t, orgA.ID, domain.RoleHospitalAdmin)
	env.makeUser(t, orgA.ID, domain.RoleNurse)
	env.makeUser(t, orgB.ID, domain.RoleNurse)

	users, err := env.Users.ListUsers(ctx, adminA)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Equal(t, orgA.ID, u.OrganizationID)
		require.NotEmpty(t, u.RoleName)
	}

	_, agiAdmin := env.makeUser(t, orgB.ID, domain.RoleAGIAdmin)
	all, err := env.Users.ListUsers(ctx, agiAdmin)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestUpdateUserRoleGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")

	adminUser, admin := env.makeUser(t, orgA.ID, domain.RoleHospitalAdmin)
	nurse, _ := env.makeUser(t, orgA.ID, domain.RoleNurse)
	outsider, _ := env.makeUser(t, orgB.ID, domain.RoleNurse)

	techRole, err := env.Store.Roles().GetRoleByName(ctx, domain.RoleTechnician)
	require.NoError(t, err)
	agiRole, err := env.Store.Roles().GetRoleByName(ctx, domain.RoleAGIAdmin)
	require.NoError(t, err)

	t.Run("reassigns within own organization", func(t *testing.T) {
		updated, err := env.Users.UpdateUserRole(ctx, admin, nurse.ID, techRole.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleTechnician, updated.RoleName)
	})

	t.Run("cannot change own role", func(t *testing.T) {
		_, err := env.Users.UpdateUserRole(ctx, admin, adminUser.ID, techRole.ID)
		require.ErrorIs(t, err, ErrSelfRoleChange)
	})

	t.Run("cannot reach other organizations", func(t *testing.T) {
		_, err := env.Users.UpdateUserRole(ctx, admin, outsider.ID, techRole.ID)
		require.ErrorIs(t, err, ErrCrossTenant)
	})

	t.Run("cannot assign the global operator role", func(t *testing.T) {
		_, err := env.Users.UpdateUserRole(ctx, admin, nurse.ID, agiRole.ID)
		require.ErrorIs(t, err, ErrProtectedRole)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := env.Users.UpdateUserRole(ctx, admin, nurse.ID, "missing")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
