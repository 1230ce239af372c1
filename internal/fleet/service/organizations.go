package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/idx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

type OrganizationsService struct {
	Store store.Store
	Audit *AuditRecorder
}

type CreateOrganizationParams struct {
	Name         string
	Address      string
	Locations    []string
	LogoURL      string
	PrimaryColor string
}

// CreateOrganization creates an organization. Name uniqueness is enforced by
// the store constraint.
func (s *OrganizationsService) CreateOrganization(ctx context.Context, actor Identity, p CreateOrganizationParams) (domain.Organization, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)

	var violations []FieldViolation
	if p.Name == "" {
		violations = append(violations, FieldViolation{Msg: "Name is required", Param: "name"})
	}
	if p.Address == "" {
		violations = append(violations, FieldViolation{Msg: "Address is required", Param: "address"})
	}
	if len(violations) > 0 {
		return domain.Organization{}, &ValidationError{Violations: violations}
	}

	org := domain.Organization{
		ID:           idx.New().String(),
		Name:         p.Name,
		Address:      p.Address,
		Locations:    p.Locations,
		LogoURL:      p.LogoURL,
		PrimaryColor: p.PrimaryColor,
	}
	if err := s.Store.Organizations().CreateOrganization(ctx, org); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Organization{}, Invalid("Organization already exists", "name")
		}
		return domain.Organization{}, err
	}

	slogx.FromContext(ctx).Info("organization created", "org_id", org.ID, "name", org.Name)
	s.Audit.Record(actor, domain.ActionOrgCreated, domain.TargetOrganization, org.ID, nil)

	return s.Store.Organizations().GetOrganizationByID(ctx, org.ID)
}

// ListOrganizations returns every organization. Operator scope only; the
// router guards this with manage_organizations.
func (s *OrganizationsService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.Store.Organizations().ListOrganizations(ctx)
}

// GetOrganization returns one organization by id.
func (s *OrganizationsService) GetOrganization(ctx context.Context, id string) (domain.Organization, error) {
	return s.Store.Organizations().GetOrganizationByID(ctx, id)
}

// UpdateOrganization applies a partial update.
func (s *OrganizationsService) UpdateOrganization(ctx context.Context, actor Identity, id string, upd domain.OrganizationUpdate) (domain.Organization, error) {
	if err := s.Store.Organizations().UpdateOrganization(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Organization{}, Invalid("Organization already exists", "name")
		}
		return domain.Organization{}, err
	}

	s.Audit.Record(actor, domain.ActionOrgUpdated, domain.TargetOrganization, id, nil)

	return s.Store.Organizations().GetOrganizationByID(ctx, id)
}

// MyBranding returns the branding of the caller's organization.
func (s *OrganizationsService) MyBranding(ctx context.Context, actor Identity) (domain.Organization, error) {
	return s.Store.Organizations().GetOrganizationByID(ctx, actor.OrgID)
}
