package fleet_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestEquipmentReportFilters exercises the joined report with filters.
func TestEquipmentReportFilters(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Report Hospital")
	monitorID := findModuleByName(t, admin, "Patient Monitor")
	ecgID := findModuleByName(t, admin, "ECG")

	agent := fleetsdk.New(baseURL)
	agent.AgentKey = agentAPIKey

	for _, seed := range []struct {
		key      string
		moduleID string
		location string
	}{
		{"LIC-REP-001", monitorID, "Ward A"},
		{"LIC-REP-002", monitorID, "Ward B"},
		{"LIC-REP-003", ecgID, "Ward A"},
	} {
		_, err := agent.DiscoverEquipment(t.Context(), fleetsdk.DiscoverEquipmentRequest{
			OrganizationID: org.ID,
			LicenseKey:     seed.key,
			ModuleID:       seed.moduleID,
			Location:       seed.location,
		})
		require.NoError(t, err)
	}

	rows, err := admin.EquipmentReport(t.Context(), "organization_id="+org.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Report Hospital", rows[0].Organization, "Report joins the organization name")

	rows, err = admin.EquipmentReport(t.Context(),
		"organization_id="+org.ID+"&module_id="+monitorID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = admin.EquipmentReport(t.Context(),
		"organization_id="+org.ID+"&location="+url.QueryEscape("Ward A"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = admin.EquipmentReport(t.Context(),
		"organization_id="+org.ID+"&status=pending_approval")
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

// TestEquipmentReportPinsTenants verifies non-global callers cannot widen the
// report beyond their own organization.
func TestEquipmentReportPinsTenants(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	orgA := createOrganization(t, admin, "Pin A Hospital")
	orgB := createOrganization(t, admin, "Pin B Hospital")
	moduleID := findModuleByName(t, admin, "ECG")

	agent := fleetsdk.New(baseURL)
	agent.AgentKey = agentAPIKey
	_, err := agent.DiscoverEquipment(t.Context(), fleetsdk.DiscoverEquipmentRequest{
		OrganizationID: orgB.ID,
		LicenseKey:     "LIC-PIN-B",
		ModuleID:       moduleID,
	})
	require.NoError(t, err)

	staffA := registerUser(t, baseURL, orgA.ID, "pina@example.org", "Secret123")

	// Asking for org B's data gets silently pinned back to org A.
	rows, err := staffA.EquipmentReport(t.Context(), "organization_id="+orgB.ID)
	require.NoError(t, err)
	require.Empty(t, rows, "Non-global callers are pinned to their own organization")
}

// TestAuditReport verifies privileged mutations leave audit entries.
func TestAuditReport(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Audit Hospital")
	monitorID := findModuleByName(t, admin, "Patient Monitor")

	_, err := admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules:        []fleetsdk.SubscriptionModule{{ModuleID: monitorID, Quantity: 1}},
	})
	require.NoError(t, err)

	// The recorder is asynchronous; fetch until the entry shows up or the
	// retry budget runs out.
	var rows []fleetsdk.AuditReportRow
	require.Eventually(t, func() bool {
		rows, err = admin.AuditReport(t.Context(), "action=subscription_upserted")
		return err == nil && len(rows) > 0
	}, 5*time.Second, 200*time.Millisecond, "Subscription upsert should be audited")

	require.Equal(t, "subscription_upserted", rows[0].Action)
	require.Equal(t, "subscription", rows[0].TargetType)
	require.NotEmpty(t, rows[0].UserID)
}

// TestAuditReportRequiresPermission gates the audit surface.
func TestAuditReportRequiresPermission(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Audit Perm Hospital")

	staff := registerUser(t, baseURL, org.ID, "auditless@example.org", "Secret123")

	_, err := staff.AuditReport(t.Context(), "")
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot read audit logs")
}

// TestAuditReportBadTimeRange rejects malformed date filters.
func TestAuditReportBadTimeRange(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	_, err := admin.AuditReport(t.Context(), "from=yesterday")
	requireStatus(t, err, http.StatusBadRequest, "Non-RFC3339 dates should 400")
}

// TestSummaryReport checks the platform-wide counts.
func TestSummaryReport(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	createOrganization(t, admin, "Summary Hospital")
	moduleID := findModuleByName(t, admin, "Patient Monitor")

	unit, err := admin.EnrollEquipment(t.Context(), fleetsdk.EnrollEquipmentRequest{
		LicenseKey: "LIC-SUM-001",
		ModuleID:   moduleID,
	})
	require.NoError(t, err)
	_, err = admin.UpdateEquipmentStatus(t.Context(), unit.ID, "online")
	require.NoError(t, err)

	summary, err := admin.SummaryReport(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.TotalOrganizations, "Root org plus the new hospital")
	require.EqualValues(t, 1, summary.TotalEquipment)
	require.EqualValues(t, 1, summary.OnlineEquipment)
	require.EqualValues(t, 0, summary.OfflineEquipment)
}

// TestSummaryReportRequiresViewAllData gates the summary.
func TestSummaryReportRequiresViewAllData(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Summary Perm Hospital")

	staff := registerUser(t, baseURL, org.ID, "nosummary@example.org", "Secret123")

	_, err := staff.SummaryReport(t.Context())
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot read the summary")
}
