package service

import "github.com/agi-health/medfleet/internal/fleet/domain"

// Identity is the authenticated caller as seen by the service layer. Handlers
// build it from verified token claims.
type Identity struct {
	UserID      string
	OrgID       string
	Role        string
	Permissions []string
}

// Global reports whether the caller sees across organization boundaries.
func (id Identity) Global() bool {
	return id.Role == domain.RoleAGIAdmin
}

// ScopeTo enforces tenant isolation: access to a resource owned by ownerOrg
// is allowed for the owning organization or a global operator, nothing else.
func (id Identity) ScopeTo(ownerOrg string) error {
	if id.Global() || id.OrgID == ownerOrg {
		return nil
	}
	return ErrCrossTenant
}

// Has reports whether the caller holds the permission.
func (id Identity) Has(permission string) bool {
	for _, p := range id.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
