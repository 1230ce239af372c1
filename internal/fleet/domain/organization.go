package domain

import "time"

type Organization struct {
	ID             string
	Name           string
	Address        string
	Locations      []string
	LogoURL        string
	PrimaryColor   string
	SubscriptionID string // Back-reference to the active subscription (nullable)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrganizationUpdate carries a partial update. Nil fields are left untouched;
// Locations replaces the whole set when non-nil.
type OrganizationUpdate struct {
	Name         *string
	Address      *string
	Locations    []string
	LogoURL      *string
	PrimaryColor *string
}
