package service

import (
	"context"
	"testing"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/stretchr/testify/require"
)

func TestEnrollStartsOffline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	unit, err := env.Equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-001",
		ModuleID:   env.moduleID(t, "ECG"),
		Location:   "Ward 3",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOffline, unit.Status)
	require.NotNil(t, unit.EnrolledAt)
	require.Equal(t, org.ID, unit.OrganizationID)
}

func TestEnrollRejectsDuplicateLicenseKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	params := EnrollEquipmentParams{LicenseKey: "LIC-001", ModuleID: env.moduleID(t, "ECG")}
	_, err := env.Equipment.Enroll(ctx, admin, params)
	require.NoError(t, err)

	_, err = env.Equipment.Enroll(ctx, admin, params)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Violations[0].Msg, "already exists")
}

func TestDiscoverThenApprove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	unit, err := env.Equipment.Discover(ctx, DiscoverEquipmentParams{
		OrganizationID: org.ID,
		LicenseKey:     "LIC-D1",
		ModuleID:       env.moduleID(t, "Patient Monitor"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPendingApproval, unit.Status)
	require.Nil(t, unit.EnrolledAt)

	// Re-discovering the same license key conflicts.
	_, err = env.Equipment.Discover(ctx, DiscoverEquipmentParams{
		OrganizationID: org.ID,
		LicenseKey:     "LIC-D1",
		ModuleID:       env.moduleID(t, "Patient Monitor"),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	approved, err := env.Equipment.Approve(ctx, admin, unit.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOffline, approved.Status)
	require.NotNil(t, approved.EnrolledAt)

	// Approving twice is an invalid state transition.
	_, err = env.Equipment.Approve(ctx, admin, unit.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSetStatusRequiresApprovedState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, tech := env.makeUser(t, org.ID, domain.RoleTechnician)

	pending, err := env.Equipment.Discover(ctx, DiscoverEquipmentParams{
		OrganizationID: org.ID,
		LicenseKey:     "LIC-P1",
		ModuleID:       env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	_, err = env.Equipment.SetStatus(ctx, tech, pending.ID, domain.StatusOnline)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSetStatusTogglesAndStampsLastSeen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)
	_, tech := env.makeUser(t, org.ID, domain.RoleTechnician)

	unit, err := env.Equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-T1", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	online, err := env.Equipment.SetStatus(ctx, tech, unit.ID, domain.StatusOnline)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOnline, online.Status)
	require.NotNil(t, online.LastSeen)

	offline, err := env.Equipment.SetStatus(ctx, tech, unit.ID, domain.StatusOffline)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOffline, offline.Status)

	_, err = env.Equipment.SetStatus(ctx, tech, unit.ID, "retired")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEquipmentCrossTenantIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")
	_, adminA := env.makeUser(t, orgA.ID, domain.RoleHospitalAdmin)
	_, techB := env.makeUser(t, orgB.ID, domain.RoleTechnician)

	unit, err := env.Equipment.Enroll(ctx, adminA, EnrollEquipmentParams{
		LicenseKey: "LIC-X1", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	_, err = env.Equipment.SetStatus(ctx, techB, unit.ID, domain.StatusOnline)
	require.ErrorIs(t, err, ErrCrossTenant)

	_, err = env.Equipment.Get(ctx, techB, unit.ID)
	require.ErrorIs(t, err, ErrCrossTenant)

	listB, err := env.Equipment.List(ctx, techB)
	require.NoError(t, err)
	require.Empty(t, listB)

	// Global operators see across tenants.
	_, agiAdmin := env.makeUser(t, orgB.ID, domain.RoleAGIAdmin)
	got, err := env.Equipment.Get(ctx, agiAdmin, unit.ID)
	require.NoError(t, err)
	require.Equal(t, unit.ID, got.ID)
}

func TestHandleAgentEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	unit, err := env.Equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-W1", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	t.Run("known key updates status", func(t *testing.T) {
		require.NoError(t, env.Equipment.HandleAgentEvent(ctx, "equipment_online", "LIC-W1"))

		got, err := env.Store.Equipment().GetEquipmentByID(ctx, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusOnline, got.Status)
		require.NotNil(t, got.LastSeen)
	})

	t.Run("unknown key is a silent no-op", func(t *testing.T) {
		require.NoError(t, env.Equipment.HandleAgentEvent(ctx, "equipment_offline", "LIC-NOPE"))
	})

	t.Run("pending equipment is not updated", func(t *testing.T) {
		pending, err := env.Equipment.Discover(ctx, DiscoverEquipmentParams{
			OrganizationID: org.ID,
			LicenseKey:     "LIC-W2",
			ModuleID:       env.moduleID(t, "ECG"),
		})
		require.NoError(t, err)

		require.NoError(t, env.Equipment.HandleAgentEvent(ctx, "equipment_online", "LIC-W2"))

		got, err := env.Store.Equipment().GetEquipmentByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusPendingApproval, got.Status)
	})

	t.Run("unknown event is rejected", func(t *testing.T) {
		require.ErrorIs(t, env.Equipment.HandleAgentEvent(ctx, "equipment_exploded", "LIC-W1"), ErrUnknownEvent)
	})
}

func TestUpdateEquipmentLicenseKeyUniqueness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	_, err := env.Equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-A", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)
	unitB, err := env.Equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-B", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	taken := "LIC-A"
	_, err = env.Equipment.Update(ctx, admin, unitB.ID, domain.EquipmentUpdate{LicenseKey: &taken})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	loc := "Ward 9"
	updated, err := env.Equipment.Update(ctx, admin, unitB.ID, domain.EquipmentUpdate{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "Ward 9", updated.Location)
	require.Equal(t, "LIC-B", updated.LicenseKey)
}

func TestGetEquipmentNotFound(t *testing.T) {
	env := newTestEnv(t)
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	_, err := env.Equipment.Get(context.Background(), admin, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}
