package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/stretchr/testify/require"
)

func TestSummaryReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")
	_, adminA := env.makeUser(t, orgA.ID, domain.RoleHospitalAdmin)
	_, adminB := env.makeUser(t, orgB.ID, domain.RoleHospitalAdmin)
	_, agiAdmin := env.makeUser(t, orgA.ID, domain.RoleAGIAdmin)

	u1, err := env.Equipment.Enroll(ctx, adminA, EnrollEquipmentParams{
		LicenseKey: "LIC-1", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)
	_, err = env.Equipment.Enroll(ctx, adminA, EnrollEquipmentParams{
		LicenseKey: "LIC-2", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)
	_, err = env.Equipment.Enroll(ctx, adminB, EnrollEquipmentParams{
		LicenseKey: "LIC-3", ModuleID: env.moduleID(t, "Patient Monitor"),
	})
	require.NoError(t, err)

	_, err = env.Equipment.SetStatus(ctx, agiAdmin, u1.ID, domain.StatusOnline)
	require.NoError(t, err)

	t.Run("global operator sees everything", func(t *testing.T) {
		summary, err := env.Reports.SummaryReport(ctx, agiAdmin)
		require.NoError(t, err)
		require.Equal(t, int64(2), summary.TotalOrganizations)
		require.Equal(t, int64(3), summary.TotalEquipment)
		require.Equal(t, int64(1), summary.OnlineEquipment)
		require.Equal(t, int64(2), summary.OfflineEquipment)
	})

	t.Run("hospital staff see their own organization", func(t *testing.T) {
		summary, err := env.Reports.SummaryReport(ctx, adminB)
		require.NoError(t, err)
		require.Equal(t, int64(1), summary.TotalEquipment)
		require.Equal(t, int64(1), summary.OfflineEquipment)
	})
}

func TestEquipmentReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")
	_, adminA := env.makeUser(t, orgA.ID, domain.RoleHospitalAdmin)
	_, adminB := env.makeUser(t, orgB.ID, domain.RoleHospitalAdmin)
	_, agiAdmin := env.makeUser(t, orgA.ID, domain.RoleAGIAdmin)

	_, err := env.Equipment.Enroll(ctx, adminA, EnrollEquipmentParams{
		LicenseKey: "LIC-1", ModuleID: env.moduleID(t, "ECG"), Location: "Ward 1",
	})
	require.NoError(t, err)
	_, err = env.Equipment.Enroll(ctx, adminB, EnrollEquipmentParams{
		LicenseKey: "LIC-2", ModuleID: env.moduleID(t, "Patient Monitor"), Location: "ICU",
	})
	require.NoError(t, err)

	t.Run("names are joined", func(t *testing.T) {
		rows, err := env.Reports.EquipmentReport(ctx, agiAdmin, domain.EquipmentFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Hospital A", rows[0].OrganizationName)
		require.Equal(t, "ECG", rows[0].ModuleName)
	})

	t.Run("non-global callers are pinned to their org", func(t *testing.T) {
		rows, err := env.Reports.EquipmentReport(ctx, adminB, domain.EquipmentFilter{
			OrganizationID: orgA.ID, // ignored for non-global callers
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, orgB.ID, rows[0].OrganizationID)
	})

	t.Run("location filter", func(t *testing.T) {
		rows, err := env.Reports.EquipmentReport(ctx, agiAdmin, domain.EquipmentFilter{Location: "ICU"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "LIC-2", rows[0].LicenseKey)
	})
}

func TestAuditReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleHospitalAdmin)

	// Use a dedicated recorder so it can be stopped to flush its buffer
	// before querying.
	audit := NewAuditRecorder(env.Store, slog.Default(), 8)
	audit.Start()
	equipment := &EquipmentService{Store: env.Store, Audit: audit}

	_, err := equipment.Enroll(ctx, admin, EnrollEquipmentParams{
		LicenseKey: "LIC-1", ModuleID: env.moduleID(t, "ECG"),
	})
	require.NoError(t, err)

	audit.Stop()

	entries, err := env.Reports.AuditReport(ctx, admin, domain.AuditFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.Equal(t, domain.ActionEquipmentEnrolled, entries[0].Action)
	require.Equal(t, org.ID, entries[0].OrganizationID)

	filtered, err := env.Reports.AuditReport(ctx, admin, domain.AuditFilter{
		Action: domain.ActionEquipmentEnrolled,
	})
	require.NoError(t, err)
	require.Len(t, filtered, len(entries))
}
