package fleet_test

import (
	"net/http"
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestSubscriptionUpsertIsIdempotent verifies repeated upserts replace the
// module lines instead of stacking subscriptions.
func TestSubscriptionUpsertIsIdempotent(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Subscription Hospital")
	monitorID := findModuleByName(t, admin, "Patient Monitor")
	ecgID := findModuleByName(t, admin, "ECG")

	first, err := admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.True(t, first.IsActive)
	require.Len(t, first.Modules, 1)

	second, err := admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 10},
			{ModuleID: ecgID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "Upsert reuses the existing subscription")
	require.Len(t, second.Modules, 2, "Module lines are replaced, not appended")

	current, err := admin.OrganizationSubscription(t.Context(), org.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, current.ID)

	// The organization carries the back-reference.
	fetched, err := admin.GetOrganization(t.Context(), org.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, fetched.SubscriptionID)
}

// TestSubscriptionValidation rejects unknown modules and bad quantities.
func TestSubscriptionValidation(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Validation Hospital")
	monitorID := findModuleByName(t, admin, "Patient Monitor")

	_, err := admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: "01HZZZZZZZZZZZZZZZZZZZZZZZ", Quantity: 1},
		},
	})
	requireStatus(t, err, http.StatusBadRequest, "Unknown module should be rejected")

	_, err = admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 0},
		},
	})
	requireStatus(t, err, http.StatusBadRequest, "Zero quantity should be rejected")

	_, err = admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 1},
		},
	})
	requireStatus(t, err, http.StatusNotFound, "Unknown organization should 404")
}

// TestSubscriptionAccess verifies the permission split between managing and
// viewing subscriptions.
func TestSubscriptionAccess(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Access Hospital")
	monitorID := findModuleByName(t, admin, "Patient Monitor")

	_, err := admin.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// hospital_user holds view_organization_dashboard, so reading works.
	staff := registerUser(t, baseURL, org.ID, "subviewer@example.org", "Secret123")
	sub, err := staff.OrganizationSubscription(t.Context(), org.ID)
	require.NoError(t, err)
	require.Len(t, sub.Modules, 1)

	// But writing requires manage_subscriptions.
	_, err = staff.UpsertSubscription(t.Context(), fleetsdk.UpsertSubscriptionRequest{
		OrganizationID: org.ID,
		Modules: []fleetsdk.SubscriptionModule{
			{ModuleID: monitorID, Quantity: 99},
		},
	})
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot upsert subscriptions")
}

// TestSubscriptionNotFound covers the missing-subscription read.
func TestSubscriptionNotFound(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "No Subscription Hospital")

	_, err := admin.OrganizationSubscription(t.Context(), org.ID)
	requireStatus(t, err, http.StatusNotFound, "Organization without a subscription should 404")
	require.Contains(t, err.Error(), "Subscription not found")
}
