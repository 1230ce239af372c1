package domain

import "time"

// EquipmentStatus is the lifecycle state of a unit.
//
// Agent-discovered units start in StatusPendingApproval and move to
// StatusOffline once an operator approves them. Operator-enrolled units skip
// approval and start offline. Online and offline flip freely; nothing ever
// returns to pending.
type EquipmentStatus string

const (
	StatusPendingApproval EquipmentStatus = "pending_approval"
	StatusOffline         EquipmentStatus = "offline"
	StatusOnline          EquipmentStatus = "online"
)

// Valid reports whether s is a known status.
func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusOffline, StatusOnline:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next via the
// operator status endpoint. Approval is a separate operation.
func (s EquipmentStatus) CanTransitionTo(next EquipmentStatus) bool {
	switch s {
	case StatusOffline:
		return next == StatusOnline
	case StatusOnline:
		return next == StatusOffline
	}
	return false
}

type Equipment struct {
	ID             string
	OrganizationID string
	ModuleID       string
	LicenseKey     string
	Status         EquipmentStatus
	Location       string
	EnrolledAt     *time.Time // Set when enrolled or approved (nullable while pending)
	LastSeen       *time.Time // Updated on agent webhook events (nullable)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EquipmentUpdate carries a partial update of mutable metadata.
type EquipmentUpdate struct {
	LicenseKey *string
	ModuleID   *string
	Location   *string
}

// EquipmentWithNames joins organization and module names for reporting.
type EquipmentWithNames struct {
	Equipment
	OrganizationName string
	ModuleName       string
}

// EquipmentFilter narrows report queries. Zero values match everything.
type EquipmentFilter struct {
	OrganizationID string
	ModuleID       string
	Status         EquipmentStatus
	Location       string
}
