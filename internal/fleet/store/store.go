package store

import (
	"context"
	"errors"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Organizations() Organizations
	Users() Users
	Roles() Roles
	Modules() Modules
	Equipment() Equipment
	Subscriptions() Subscriptions
	AuditLogs() AuditLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// GetOrganizationByID returns an organization by id.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// ListOrganizations returns all organizations ordered by creation date.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// CreateOrganization inserts a new organization (id is ULID). Fails with
	// ErrAlreadyExists when the name is taken.
	CreateOrganization(ctx context.Context, o domain.Organization) error

	// UpdateOrganization applies a partial update and bumps updated_at.
	UpdateOrganization(ctx context.Context, id string, upd domain.OrganizationUpdate) error

	// SetSubscriptionID sets the back-reference to the active subscription.
	SetSubscriptionID(ctx context.Context, orgID, subscriptionID string) error

	// CountOrganizations returns the total number of organizations.
	CountOrganizations(ctx context.Context) (int64, error)
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email comparison is
	// case-insensitive per schema collation.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserWithRole joins the role name and permissions onto the user.
	GetUserWithRole(ctx context.Context, id string) (domain.UserWithRole, error)

	// ListUsersByOrganization returns an organization's users with their
	// role names, ordered by creation date.
	ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.UserWithRole, error)

	// ListAllUsers returns every user with role names (operator scope).
	ListAllUsers(ctx context.Context) ([]domain.UserWithRole, error)

	// CreateUser inserts a new user (id is ULID). Fails with
	// ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserRole sets role_id and bumps updated_at.
	UpdateUserRole(ctx context.Context, userID, roleID string) error

	// CountUsersByRole returns how many users hold a role. Used to block
	// deleting roles that are still referenced.
	CountUsersByRole(ctx context.Context, roleID string) (int64, error)
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName fetches a role by its name (for seeding and defaults).
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListRoles returns all roles in the system.
	ListRoles(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID). Fails with
	// ErrAlreadyExists when the name is taken.
	CreateRole(ctx context.Context, r domain.Role) error

	// UpdateRole modifies description and permissions, bumps updated_at.
	UpdateRole(ctx context.Context, roleID, description string, permissions []string) error

	// DeleteRole removes a role. Callers must check it is unreferenced.
	DeleteRole(ctx context.Context, roleID string) error
}

type Modules interface {
	// GetModuleByID fetches a module by its ID.
	GetModuleByID(ctx context.Context, id string) (domain.Module, error)

	// GetModuleByName fetches a module by name (for seeding).
	GetModuleByName(ctx context.Context, name string) (domain.Module, error)

	// ListModules returns all modules.
	ListModules(ctx context.Context) ([]domain.Module, error)

	// CreateModule inserts a new module (id is ULID).
	CreateModule(ctx context.Context, m domain.Module) error
}

type Equipment interface {
	// GetEquipmentByID returns a unit by id.
	GetEquipmentByID(ctx context.Context, id string) (domain.Equipment, error)

	// GetEquipmentByLicenseKey returns a unit by its license key.
	GetEquipmentByLicenseKey(ctx context.Context, licenseKey string) (domain.Equipment, error)

	// ListEquipmentByOrganization returns an organization's fleet.
	ListEquipmentByOrganization(ctx context.Context, orgID string) ([]domain.Equipment, error)

	// ListEquipment returns the whole fleet (operator scope).
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)

	// CreateEquipment inserts a unit (id is ULID). Fails with
	// ErrAlreadyExists when the license key is taken.
	CreateEquipment(ctx context.Context, e domain.Equipment) error

	// UpdateEquipment applies a partial metadata update.
	UpdateEquipment(ctx context.Context, id string, upd domain.EquipmentUpdate) error

	// UpdateEquipmentStatus sets status, optionally stamping enrolled_at.
	UpdateEquipmentStatus(ctx context.Context, id string, status domain.EquipmentStatus, enrolledAt *time.Time) error

	// TouchLastSeen stamps last_seen and sets status from an agent event.
	TouchLastSeen(ctx context.Context, id string, status domain.EquipmentStatus) error

	// DeleteEquipment removes a unit.
	DeleteEquipment(ctx context.Context, id string) error

	// QueryEquipmentReport joins organization and module names, applying the
	// filter. Used by reporting.
	QueryEquipmentReport(ctx context.Context, f domain.EquipmentFilter) ([]domain.EquipmentWithNames, error)

	// CountEquipmentByStatus returns fleet counts grouped by status. The
	// orgID narrows to one organization; empty means global.
	CountEquipmentByStatus(ctx context.Context, orgID string) (map[domain.EquipmentStatus]int64, error)

	// CountActiveEquipment counts non-pending units for an org and module,
	// for subscription quantity enforcement.
	CountActiveEquipment(ctx context.Context, orgID, moduleID string) (int64, error)
}

type Subscriptions interface {
	// GetSubscriptionByID returns a subscription with its module lines.
	GetSubscriptionByID(ctx context.Context, id string) (domain.Subscription, error)

	// GetSubscriptionByOrganization returns the organization's subscription.
	GetSubscriptionByOrganization(ctx context.Context, orgID string) (domain.Subscription, error)

	// CreateSubscription inserts a subscription and its module lines. Fails
	// with ErrAlreadyExists if the organization already has one.
	CreateSubscription(ctx context.Context, s domain.Subscription) error

	// ReplaceSubscription overwrites dates, active flag and module lines.
	ReplaceSubscription(ctx context.Context, s domain.Subscription) error
}

type AuditLogs interface {
	// CreateAuditEntry appends an audit record (id is ULID).
	CreateAuditEntry(ctx context.Context, e domain.AuditEntry) error

	// QueryAuditEntries returns entries matching the filter, newest first.
	QueryAuditEntries(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}
