package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/cryptox"
	"github.com/agi-health/medfleet/pkg/idx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// SeedService installs the default roles and module types on startup, plus an
// optional platform operator account. Seeding is idempotent: anything that
// already exists by name is skipped, so operator edits to seeded roles survive
// restarts.
type SeedService struct {
	Store store.Store

	// When AdminEmail is set, a root organization and an agi_admin user are
	// created on first boot. Without it a fresh database has no way to mint
	// its first privileged token.
	AdminEmail    string
	AdminPassword string
	AdminName     string
	RootOrgName   string
}

func (s *SeedService) Seed(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, def := range domain.DefaultRoles {
			_, err := tx.Roles().GetRoleByName(ctx, def.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			role := domain.Role{
				ID:          idx.New().String(),
				Name:        def.Name,
				Description: def.Description,
				Permissions: def.Permissions,
			}
			if err := tx.Roles().CreateRole(ctx, role); err != nil {
				return err
			}
			l.Info("seeded role", slog.String("role", def.Name))
		}

		for _, def := range domain.DefaultModules {
			_, err := tx.Modules().GetModuleByName(ctx, def.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			module := domain.Module{
				ID:          idx.New().String(),
				Name:        def.Name,
				Description: def.Description,
			}
			if err := tx.Modules().CreateModule(ctx, module); err != nil {
				return err
			}
			l.Info("seeded module", slog.String("module", def.Name))
		}

		return nil
	})
	if err != nil {
		return err
	}

	if s.AdminEmail != "" {
		if err := s.seedAdmin(ctx); err != nil {
			return err
		}
	}

	l.Info("seed completed")
	return nil
}

// seedAdmin creates the root organization and the platform operator user if
// they do not exist yet.
func (s *SeedService) seedAdmin(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByEmail(ctx, s.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleAGIAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	orgName := s.RootOrgName
	if orgName == "" {
		orgName = "AGI Health"
	}

	org := domain.Organization{
		ID:   idx.New().String(),
		Name: orgName,
	}
	if err := s.Store.Organizations().CreateOrganization(ctx, org); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("seed root organization: %w", err)
		}
		existing, err := s.Store.Organizations().ListOrganizations(ctx)
		if err != nil {
			return err
		}
		for _, o := range existing {
			if o.Name == orgName {
				org = o
				break
			}
		}
	}

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	name := s.AdminName
	if name == "" {
		name = "Platform Admin"
	}
	user := domain.User{
		ID:             idx.New().String(),
		Name:           name,
		Email:          s.AdminEmail,
		PasswordHash:   hash,
		OrganizationID: org.ID,
		RoleID:         role.ID,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	l.Info("seeded platform admin", slog.String("email", s.AdminEmail), slog.String("org", orgName))
	return nil
}
