package service

import (
	"context"
	"testing"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleAGIAdmin)

	ecg := env.moduleID(t, "ECG")
	monitor := env.moduleID(t, "Patient Monitor")

	first, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
		OrganizationID: org.ID,
		Modules:        []domain.SubscriptionModule{{ModuleID: ecg, Quantity: 5}},
	})
	require.NoError(t, err)
	require.True(t, first.IsActive)
	require.Len(t, first.Modules, 1)

	// The organization carries the back-reference.
	gotOrg, err := env.Store.Organizations().GetOrganizationByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, gotOrg.SubscriptionID)

	// A second upsert replaces the module lines on the same subscription.
	second, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
		OrganizationID: org.ID,
		Modules: []domain.SubscriptionModule{
			{ModuleID: ecg, Quantity: 2},
			{ModuleID: monitor, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Len(t, second.Modules, 2)
}

func TestSubscriptionUpsertValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	org := env.makeOrg(t, "Hospital A")
	_, admin := env.makeUser(t, org.ID, domain.RoleAGIAdmin)

	t.Run("requires modules", func(t *testing.T) {
		_, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
			OrganizationID: org.ID,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
			OrganizationID: org.ID,
			Modules:        []domain.SubscriptionModule{{ModuleID: env.moduleID(t, "ECG"), Quantity: 0}},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects unknown module", func(t *testing.T) {
		_, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
			OrganizationID: org.ID,
			Modules:        []domain.SubscriptionModule{{ModuleID: "missing", Quantity: 1}},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown organization", func(t *testing.T) {
		_, err := env.Subscriptions.Upsert(ctx, admin, UpsertSubscriptionParams{
			OrganizationID: "missing",
			Modules:        []domain.SubscriptionModule{{ModuleID: env.moduleID(t, "ECG"), Quantity: 1}},
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSubscriptionReadIsTenantScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgA := env.makeOrg(t, "Hospital A")
	orgB := env.makeOrg(t, "Hospital B")
	_, agiAdmin := env.makeUser(t, orgA.ID, domain.RoleAGIAdmin)
	_, staffB := env.makeUser(t, orgB.ID, domain.RoleHospitalAdmin)

	_, err := env.Subscriptions.Upsert(ctx, agiAdmin, UpsertSubscriptionParams{
		OrganizationID: orgA.ID,
		Modules:        []domain.SubscriptionModule{{ModuleID: env.moduleID(t, "ECG"), Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = env.Subscriptions.GetByOrganization(ctx, staffB, orgA.ID)
	require.ErrorIs(t, err, ErrCrossTenant)

	sub, err := env.Subscriptions.GetByOrganization(ctx, agiAdmin, orgA.ID)
	require.NoError(t, err)
	require.Equal(t, orgA.ID, sub.OrganizationID)
}
