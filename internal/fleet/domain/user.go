package domain

import "time"

type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string // argon2 encoded
	OrganizationID string
	RoleID         string // Foreign key to roles table
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserWithRole joins the role name and permissions onto the user, as needed
// for token minting and listings.
type UserWithRole struct {
	User
	RoleName    string
	Permissions []string
}
