package fleet_test

import (
	"net/http"
	"testing"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

// TestSeededModules verifies the default catalogue.
func TestSeededModules(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	modules, err := admin.ListModules(t.Context())
	require.NoError(t, err)

	names := make(map[string]bool, len(modules))
	for _, m := range modules {
		names[m.Name] = true
	}
	for _, want := range []string{"Patient Monitor", "Fetal Monitor", "ECG"} {
		require.True(t, names[want], "Seeded module %s should exist", want)
	}
}

// TestCreateModule adds a new module type and enrolls against it.
func TestCreateModule(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	module, err := admin.CreateModule(t.Context(), fleetsdk.ModuleRequest{
		Name:        "Ventilator",
		Description: "Mechanical ventilators",
	})
	require.NoError(t, err)
	require.NotEmpty(t, module.ID)

	unit, err := admin.EnrollEquipment(t.Context(), fleetsdk.EnrollEquipmentRequest{
		LicenseKey: "LIC-VENT-001",
		ModuleID:   module.ID,
	})
	require.NoError(t, err)
	require.Equal(t, module.ID, unit.ModuleID)
}

// TestCreateModuleRequiresPermission gates catalogue writes.
func TestCreateModuleRequiresPermission(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)
	org := createOrganization(t, admin, "Module Perm Hospital")

	staff := registerUser(t, baseURL, org.ID, "nomodules@example.org", "Secret123")

	_, err := staff.CreateModule(t.Context(), fleetsdk.ModuleRequest{Name: "Rogue Module"})
	requireStatus(t, err, http.StatusForbidden, "hospital_user cannot create modules")

	// But the catalogue itself is readable.
	modules, err := staff.ListModules(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, modules)
}

// TestCreateModuleDuplicateName rejects duplicates.
func TestCreateModuleDuplicateName(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	admin := newAdminClient(t, baseURL)

	_, err := admin.CreateModule(t.Context(), fleetsdk.ModuleRequest{Name: "ECG"})
	requireStatus(t, err, http.StatusBadRequest, "Duplicate module name should be rejected")
	require.Contains(t, err.Error(), "already exists")
}
