package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/idx"
)

type RolesService struct {
	Store store.Store
	Audit *AuditRecorder
}

// ListRoles returns all roles in the system.
func (s *RolesService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx)
}

// GetRoleByID fetches a role by its ID.
func (s *RolesService) GetRoleByID(ctx context.Context, roleID string) (domain.Role, error) {
	return s.Store.Roles().GetRoleByID(ctx, roleID)
}

type RoleParams struct {
	Name        string
	Description string
	Permissions []string
}

func validateRoleParams(p *RoleParams) error {
	p.Name = strings.TrimSpace(p.Name)

	var violations []FieldViolation
	if p.Name == "" {
		violations = append(violations, FieldViolation{Msg: "Name is required", Param: "name"})
	}
	if err := domain.ValidatePermissions(p.Permissions); err != nil {
		violations = append(violations, FieldViolation{
			Msg:   fmt.Sprintf("Invalid permissions: %v", err),
			Param: "permissions",
		})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// CreateRole adds a role with a validated permission set.
func (s *RolesService) CreateRole(ctx context.Context, actor Identity, p RoleParams) (domain.Role, error) {
	if err := validateRoleParams(&p); err != nil {
		return domain.Role{}, err
	}

	role := domain.Role{
		ID:          idx.New().String(),
		Name:        p.Name,
		Description: p.Description,
		Permissions: p.Permissions,
	}
	if err := s.Store.Roles().CreateRole(ctx, role); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Role{}, Invalid("Role already exists", "name")
		}
		return domain.Role{}, err
	}

	s.Audit.Record(actor, domain.ActionRoleCreated, domain.TargetRole, role.ID,
		map[string]any{"name": role.Name, "permissions": role.Permissions})

	return s.Store.Roles().GetRoleByID(ctx, role.ID)
}

// UpdateRole replaces a role's description and permission set.
func (s *RolesService) UpdateRole(ctx context.Context, actor Identity, roleID string, p RoleParams) (domain.Role, error) {
	if err := domain.ValidatePermissions(p.Permissions); err != nil {
		return domain.Role{}, Invalid(fmt.Sprintf("Invalid permissions: %v", err), "permissions")
	}

	prev, err := s.Store.Roles().GetRoleByID(ctx, roleID)
	if err != nil {
		return domain.Role{}, err
	}

	if err := s.Store.Roles().UpdateRole(ctx, roleID, p.Description, p.Permissions); err != nil {
		return domain.Role{}, err
	}

	s.Audit.Record(actor, domain.ActionRoleUpdated, domain.TargetRole, roleID,
		map[string]any{
			"previous_permissions": prev.Permissions,
			"new_permissions":      p.Permissions,
		})

	return s.Store.Roles().GetRoleByID(ctx, roleID)
}

// DeleteRole removes a role that no user still holds.
func (s *RolesService) DeleteRole(ctx context.Context, actor Identity, roleID string) error {
	count, err := s.Store.Users().CountUsersByRole(ctx, roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}

	if err := s.Store.Roles().DeleteRole(ctx, roleID); err != nil {
		return err
	}

	s.Audit.Record(actor, domain.ActionRoleDeleted, domain.TargetRole, roleID, nil)
	return nil
}
