package domain

import "time"

// AuditEntry records a mutating action for compliance reporting. Entries are
// written best-effort in the background and never block the operation that
// produced them.
type AuditEntry struct {
	ID             string
	UserID         string
	OrganizationID string
	Action         string
	TargetType     string
	TargetID       string
	Details        map[string]any
	Timestamp      time.Time
}

// Audit actions.
const (
	ActionUserRegistered     = "user_registered"
	ActionUserRoleChanged    = "user_role_changed"
	ActionOrgCreated         = "organization_created"
	ActionOrgUpdated         = "organization_updated"
	ActionRoleCreated        = "role_created"
	ActionRoleUpdated        = "role_updated"
	ActionRoleDeleted        = "role_deleted"
	ActionEquipmentEnrolled  = "equipment_enrolled"
	ActionEquipmentDiscover  = "equipment_discovered"
	ActionEquipmentApproved  = "equipment_approved"
	ActionEquipmentStatusSet = "equipment_status_changed"
	ActionEquipmentUpdated   = "equipment_updated"
	ActionEquipmentDeleted   = "equipment_deleted"
	ActionSubscriptionUpsert = "subscription_upserted"
	ActionWebhookEvent       = "webhook_event"
	ActionModuleCreated      = "module_created"
)

// Audit target types.
const (
	TargetUser         = "user"
	TargetOrganization = "organization"
	TargetRole         = "role"
	TargetEquipment    = "equipment"
	TargetSubscription = "subscription"
	TargetModule       = "module"
)

// AuditFilter narrows audit report queries. Zero values match everything.
type AuditFilter struct {
	OrganizationID string
	UserID         string
	Action         string
	TargetType     string
	From           *time.Time
	To             *time.Time
	Limit          int
}
