// Package fleetsdk holds the wire types for the fleet API plus a thin HTTP
// client used by integration tests and external tooling. It deliberately
// depends only on the standard library so consumers don't inherit our stack.
package fleetsdk

import "time"

// MsgResponse is the single-message body used for 401/403/404 and
// invalid-state responses.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// FieldError is one validation failure.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationErrorResponse is the body for 400 responses: an array of
// field-level messages, uniqueness conflicts included.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

/* Auth */

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	OrganizationID string `json:"organization_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

/* Organizations */

type Branding struct {
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
}

type CreateOrganizationRequest struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Locations []string  `json:"locations,omitempty"`
	Branding  *Branding `json:"branding,omitempty"`
}

// UpdateOrganizationRequest carries a partial update; nil fields are left
// untouched.
type UpdateOrganizationRequest struct {
	Name      *string   `json:"name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Locations []string  `json:"locations,omitempty"`
	Branding  *Branding `json:"branding,omitempty"`
}

type OrganizationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Locations      []string  `json:"locations,omitempty"`
	Branding       *Branding `json:"branding,omitempty"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

/* Roles */

type RoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

/* Modules */

type ModuleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ModuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

/* Users */

type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

type UpdateUserRoleRequest struct {
	RoleID string `json:"role_id"`
}

/* Equipment */

type EnrollEquipmentRequest struct {
	LicenseKey string `json:"license_key"`
	ModuleID   string `json:"module_id"`
	Location   string `json:"location,omitempty"`
}

type DiscoverEquipmentRequest struct {
	OrganizationID string `json:"organization_id"`
	LicenseKey     string `json:"license_key"`
	ModuleID       string `json:"module_id"`
	Location       string `json:"location,omitempty"`
}

type UpdateEquipmentRequest struct {
	LicenseKey *string `json:"license_key,omitempty"`
	ModuleID   *string `json:"module_id,omitempty"`
	Location   *string `json:"location,omitempty"`
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status"` // "online" or "offline"
}

type EquipmentResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	ModuleID       string     `json:"module_id"`
	Module         string     `json:"module,omitempty"`
	LicenseKey     string     `json:"license_key"`
	Status         string     `json:"status"`
	Location       string     `json:"location,omitempty"`
	EnrolledAt     *time.Time `json:"enrolled_at,omitempty"`
	LastSeen       *time.Time `json:"last_seen,omitempty"`
}

/* Subscriptions */

type SubscriptionModule struct {
	ModuleID string `json:"module_id"`
	Quantity int    `json:"quantity"`
}

type UpsertSubscriptionRequest struct {
	OrganizationID string               `json:"organization_id"`
	Modules        []SubscriptionModule `json:"modules"`
	StartDate      *time.Time           `json:"start_date,omitempty"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	IsActive       *bool                `json:"is_active,omitempty"`
}

type SubscriptionResponse struct {
	ID             string               `json:"id"`
	OrganizationID string               `json:"organization_id"`
	Modules        []SubscriptionModule `json:"modules"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	IsActive       bool                 `json:"is_active"`
}

/* Webhooks */

type WebhookEventRequest struct {
	Event      string `json:"event"` // equipment_online | equipment_offline
	LicenseKey string `json:"license_key"`
}

/* Reports */

type EquipmentReportRow struct {
	ID           string     `json:"id"`
	LicenseKey   string     `json:"license_key"`
	Status       string     `json:"status"`
	Location     string     `json:"location,omitempty"`
	Organization string     `json:"organization"`
	Module       string     `json:"module"`
	EnrolledAt   *time.Time `json:"enrolled_at,omitempty"`
	LastSeen     *time.Time `json:"last_seen,omitempty"`
}

type AuditReportRow struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	UserName       string         `json:"user_name,omitempty"`
	OrganizationID string         `json:"organization_id"`
	Action         string         `json:"action"`
	TargetType     string         `json:"target_type"`
	TargetID       string         `json:"target_id"`
	Details        map[string]any `json:"details,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}

type SummaryReport struct {
	TotalOrganizations int64 `json:"total_organizations"`
	TotalEquipment     int64 `json:"total_equipment"`
	OnlineEquipment    int64 `json:"online_equipment"`
	OfflineEquipment   int64 `json:"offline_equipment"`
}

/* JWKS */

type JWKResponse struct {
	Kty string `json:"kty"`
	Crv string `json:"crv,omitempty"`
	Kid string `json:"kid"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	X   string `json:"x,omitempty"`
}

type JWKSResponse struct {
	Keys []JWKResponse `json:"keys"`
}

/* Health */

type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
