package domain

import "time"

// Well-known role names. RoleAGIAdmin is the platform operator role and the
// only role whose holders see across organization boundaries.
const (
	RoleAGIAdmin      = "agi_admin"
	RoleHospitalAdmin = "hospital_admin"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleTechnician    = "technician"
	RoleWardClerk     = "ward_clerk"
	RoleReadOnly      = "read_only"
	RoleHospitalUser  = "hospital_user"
)

type Role struct {
	ID          string
	Name        string
	Description string
	Permissions []string // Parsed from space-delimited storage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoleDefinition is a seed-time role description.
type RoleDefinition struct {
	Name        string
	Description string
	Permissions []string
}

// DefaultRoles are seeded on first boot. Seeding is idempotent; an existing
// role with the same name is left untouched. agi_admin holds the entire
// registry so role and user management never locks itself out.
var DefaultRoles = []RoleDefinition{
	{
		Name:        RoleAGIAdmin,
		Description: "Super administrator for the entire system.",
		Permissions: AllPermissions,
	},
	{
		Name:        RoleHospitalAdmin,
		Description: "Administrator for a specific hospital/clinic.",
		Permissions: []string{PermManageUsers, PermEnrollEquipment, PermViewOrganizationDashboard},
	},
	{
		Name:        RoleDoctor,
		Description: "Clinical role with access to detailed patient data.",
		Permissions: []string{PermViewPatientData, PermViewEquipmentStatus},
	},
	{
		Name:        RoleNurse,
		Description: "Clinical role for patient monitoring.",
		Permissions: []string{PermViewPatientData, PermViewEquipmentStatus},
	},
	{
		Name:        RoleTechnician,
		Description: "Role focused on hardware management.",
		Permissions: []string{PermManageEquipmentStatus, PermViewEquipmentStatus},
	},
	{
		Name:        RoleWardClerk,
		Description: "Administrative role with limited access.",
		Permissions: []string{PermViewEquipmentStatus},
	},
	{
		Name:        RoleReadOnly,
		Description: "Generic viewer role with no edit permissions.",
		Permissions: []string{PermViewOrganizationDashboard, PermViewEquipmentStatus},
	},
	{
		Name:        RoleHospitalUser,
		Description: "Default role for self-registered hospital staff.",
		Permissions: []string{PermViewOrganizationDashboard, PermViewEquipmentStatus},
	},
}
