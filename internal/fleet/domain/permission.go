package domain

import "fmt"

// Permission names are a closed registry. Roles may only reference
// permissions listed here; anything else is rejected at validation time.
const (
	PermManageOrganizations       = "manage_organizations"
	PermManageSubscriptions       = "manage_subscriptions"
	PermManageRoles               = "manage_roles"
	PermManageUsers               = "manage_users"
	PermEnrollEquipment           = "enroll_equipment"
	PermManageEquipmentStatus     = "manage_equipment_status"
	PermViewEquipmentStatus       = "view_equipment_status"
	PermViewOrganizationDashboard = "view_organization_dashboard"
	PermViewPatientData           = "view_patient_data"
	PermViewAllData               = "view_all_data"
	PermCreateModules             = "create_modules"
	PermAddLicenses               = "add_licenses"
)

// AllPermissions is the full registry in presentation order.
var AllPermissions = []string{
	PermManageOrganizations,
	PermManageSubscriptions,
	PermManageRoles,
	PermManageUsers,
	PermEnrollEquipment,
	PermManageEquipmentStatus,
	PermViewEquipmentStatus,
	PermViewOrganizationDashboard,
	PermViewPatientData,
	PermViewAllData,
	PermCreateModules,
	PermAddLicenses,
}

var permissionSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(AllPermissions))
	for _, p := range AllPermissions {
		s[p] = struct{}{}
	}
	return s
}()

// IsPermission reports whether name is a registered permission.
func IsPermission(name string) bool {
	_, ok := permissionSet[name]
	return ok
}

// ValidatePermissions checks every entry against the registry and rejects
// duplicates. Returns the first offending entry in the error.
func ValidatePermissions(perms []string) error {
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		if !IsPermission(p) {
			return fmt.Errorf("unknown permission %q", p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("duplicate permission %q", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
