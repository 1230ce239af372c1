package service

import (
	"context"
	"errors"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/slogx"
)

type UsersService struct {
	Store store.Store
	Audit *AuditRecorder
}

// ListUsers returns the caller's organization's users with their role names.
// Global operators see everyone.
func (s *UsersService) ListUsers(ctx context.Context, actor Identity) ([]domain.UserWithRole, error) {
	if actor.Global() {
		return s.Store.Users().ListAllUsers(ctx)
	}
	return s.Store.Users().ListUsersByOrganization(ctx, actor.OrgID)
}

// GetUser returns a user with role info, tenant-scoped.
func (s *UsersService) GetUser(ctx context.Context, actor Identity, userID string) (domain.UserWithRole, error) {
	user, err := s.Store.Users().GetUserWithRole(ctx, userID)
	if err != nil {
		return domain.UserWithRole{}, err
	}
	if err := actor.ScopeTo(user.OrganizationID); err != nil {
		return domain.UserWithRole{}, err
	}
	return user, nil
}

// UpdateUserRole reassigns a user's role. The target must be in the actor's
// organization, the actor cannot change their own role, and agi_admin cannot
// be assigned this way.
func (s *UsersService) UpdateUserRole(ctx context.Context, actor Identity, userID, roleID string) (domain.UserWithRole, error) {
	if roleID == "" {
		return domain.UserWithRole{}, Invalid("Role ID is required", "role_id")
	}
	if actor.UserID == userID {
		return domain.UserWithRole{}, ErrSelfRoleChange
	}

	target, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserWithRole{}, err
	}
	if err := actor.ScopeTo(target.OrganizationID); err != nil {
		return domain.UserWithRole{}, err
	}

	newRole, err := s.Store.Roles().GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserWithRole{}, Invalid("Target role not found", "role_id")
		}
		return domain.UserWithRole{}, err
	}
	if newRole.Name == domain.RoleAGIAdmin {
		return domain.UserWithRole{}, ErrProtectedRole
	}

	if err := s.Store.Users().UpdateUserRole(ctx, userID, roleID); err != nil {
		return domain.UserWithRole{}, err
	}

	slogx.FromContext(ctx).Info("user role changed",
		"user_id", userID, "previous_role_id", target.RoleID, "new_role_id", roleID)
	s.Audit.Record(actor, domain.ActionUserRoleChanged, domain.TargetUser, userID,
		map[string]any{
			"previous_role_id": target.RoleID,
			"new_role_id":      roleID,
		})

	return s.Store.Users().GetUserWithRole(ctx, userID)
}
