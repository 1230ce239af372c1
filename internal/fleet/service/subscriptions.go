package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/idx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

type SubscriptionsService struct {
	Store store.Store
	Audit *AuditRecorder
}

type UpsertSubscriptionParams struct {
	OrganizationID string
	Modules        []domain.SubscriptionModule
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       *bool
}

func (p *UpsertSubscriptionParams) validate() error {
	var violations []FieldViolation
	if p.OrganizationID == "" {
		violations = append(violations, FieldViolation{Msg: "Organization ID is required", Param: "organization_id"})
	}
	if len(p.Modules) == 0 {
		violations = append(violations, FieldViolation{Msg: "Modules are required and must be an array", Param: "modules"})
	}
	for i, m := range p.Modules {
		if m.ModuleID == "" {
			violations = append(violations, FieldViolation{
				Msg:   fmt.Sprintf("Module Type ID is required for module %d", i),
				Param: "modules",
			})
		}
		if m.Quantity < 1 {
			violations = append(violations, FieldViolation{
				Msg:   fmt.Sprintf("Quantity must be at least 1 for module %d", i),
				Param: "modules",
			})
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Upsert creates or replaces the organization's single subscription. The
// subscription row, its module lines and the organization's back-reference
// are written in one transaction so a crash can never leave them split.
func (s *SubscriptionsService) Upsert(ctx context.Context, actor Identity, p UpsertSubscriptionParams) (domain.Subscription, error) {
	if err := p.validate(); err != nil {
		return domain.Subscription{}, err
	}

	var result domain.Subscription
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Organizations().GetOrganizationByID(ctx, p.OrganizationID); err != nil {
			return err
		}

		for _, m := range p.Modules {
			if _, err := tx.Modules().GetModuleByID(ctx, m.ModuleID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return Invalid("Module type not found", "modules")
				}
				return err
			}
		}

		existing, err := tx.Subscriptions().GetSubscriptionByOrganization(ctx, p.OrganizationID)
		switch {
		case err == nil:
			sub := existing
			sub.Modules = p.Modules
			if p.StartDate != nil {
				sub.StartDate = *p.StartDate
			}
			sub.EndDate = p.EndDate
			if p.IsActive != nil {
				sub.IsActive = *p.IsActive
			}
			if err := tx.Subscriptions().ReplaceSubscription(ctx, sub); err != nil {
				return err
			}
			result = sub

		case errors.Is(err, store.ErrNotFound):
			sub := domain.Subscription{
				ID:             idx.New().String(),
				OrganizationID: p.OrganizationID,
				Modules:        p.Modules,
				StartDate:      time.Now().UTC(),
				EndDate:        p.EndDate,
				IsActive:       true,
			}
			if p.StartDate != nil {
				sub.StartDate = *p.StartDate
			}
			if p.IsActive != nil {
				sub.IsActive = *p.IsActive
			}
			if err := tx.Subscriptions().CreateSubscription(ctx, sub); err != nil {
				return err
			}
			if err := tx.Organizations().SetSubscriptionID(ctx, p.OrganizationID, sub.ID); err != nil {
				return err
			}
			result = sub

		default:
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Subscription{}, err
	}

	slogx.FromContext(ctx).Info("subscription upserted",
		"subscription_id", result.ID, "org_id", result.OrganizationID)
	s.Audit.Record(actor, domain.ActionSubscriptionUpsert, domain.TargetSubscription, result.ID,
		map[string]any{"organization_id": result.OrganizationID})

	return s.Store.Subscriptions().GetSubscriptionByID(ctx, result.ID)
}

// GetByOrganization returns the organization's subscription, tenant-scoped.
func (s *SubscriptionsService) GetByOrganization(ctx context.Context, actor Identity, orgID string) (domain.Subscription, error) {
	if err := actor.ScopeTo(orgID); err != nil {
		return domain.Subscription{}, err
	}
	return s.Store.Subscriptions().GetSubscriptionByOrganization(ctx, orgID)
}
