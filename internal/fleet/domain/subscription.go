package domain

import "time"

// Subscription is an organization's licensing agreement. Each organization
// has at most one; writes go through an upsert that replaces the module
// lines wholesale.
type Subscription struct {
	ID             string
	OrganizationID string
	Modules        []SubscriptionModule
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubscriptionModule is one licensed line: a module and the number of units
// the organization may run.
type SubscriptionModule struct {
	ModuleID string
	Quantity int
}
