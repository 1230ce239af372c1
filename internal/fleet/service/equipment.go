package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/idx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

type EquipmentService struct {
	Store store.Store
	Audit *AuditRecorder
}

type EnrollEquipmentParams struct {
	LicenseKey string
	ModuleID   string
	Location   string
}

func (p *EnrollEquipmentParams) validate() error {
	p.LicenseKey = strings.TrimSpace(p.LicenseKey)

	var violations []FieldViolation
	if p.LicenseKey == "" {
		violations = append(violations, FieldViolation{Msg: "License key is required", Param: "license_key"})
	}
	if p.ModuleID == "" {
		violations = append(violations, FieldViolation{Msg: "Module type ID is required", Param: "module_id"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (s *EquipmentService) checkModule(ctx context.Context, moduleID string) error {
	if _, err := s.Store.Modules().GetModuleByID(ctx, moduleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Invalid("Module type not found", "module_id")
		}
		return err
	}
	return nil
}

// Enroll registers a unit under the actor's organization. Operator-enrolled
// units skip discovery approval and start offline with enrolled_at stamped.
func (s *EquipmentService) Enroll(ctx context.Context, actor Identity, p EnrollEquipmentParams) (domain.Equipment, error) {
	if err := p.validate(); err != nil {
		return domain.Equipment{}, err
	}
	if err := s.checkModule(ctx, p.ModuleID); err != nil {
		return domain.Equipment{}, err
	}

	now := time.Now().UTC()
	unit := domain.Equipment{
		ID:             idx.New().String(),
		OrganizationID: actor.OrgID,
		ModuleID:       p.ModuleID,
		LicenseKey:     p.LicenseKey,
		Status:         domain.StatusOffline,
		Location:       p.Location,
		EnrolledAt:     &now,
	}
	if err := s.Store.Equipment().CreateEquipment(ctx, unit); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Equipment{}, Invalid("Equipment with this license key already exists", "license_key")
		}
		return domain.Equipment{}, err
	}

	slogx.FromContext(ctx).Info("equipment enrolled",
		"equipment_id", unit.ID, "org_id", unit.OrganizationID)
	s.Audit.Record(actor, domain.ActionEquipmentEnrolled, domain.TargetEquipment, unit.ID,
		map[string]any{"license_key": unit.LicenseKey})

	return s.Store.Equipment().GetEquipmentByID(ctx, unit.ID)
}

type DiscoverEquipmentParams struct {
	OrganizationID string
	LicenseKey     string
	ModuleID       string
	Location       string
}

// Discover registers an agent-reported unit in pending_approval. The agent
// channel authenticates with the shared API key, not a user identity.
func (s *EquipmentService) Discover(ctx context.Context, p DiscoverEquipmentParams) (domain.Equipment, error) {
	enroll := EnrollEquipmentParams{LicenseKey: p.LicenseKey, ModuleID: p.ModuleID, Location: p.Location}
	if err := enroll.validate(); err != nil {
		return domain.Equipment{}, err
	}
	if p.OrganizationID == "" {
		return domain.Equipment{}, Invalid("Organization ID is required", "organization_id")
	}
	if _, err := s.Store.Organizations().GetOrganizationByID(ctx, p.OrganizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Equipment{}, Invalid("Organization not found", "organization_id")
		}
		return domain.Equipment{}, err
	}
	if err := s.checkModule(ctx, p.ModuleID); err != nil {
		return domain.Equipment{}, err
	}

	unit := domain.Equipment{
		ID:             idx.New().String(),
		OrganizationID: p.OrganizationID,
		ModuleID:       p.ModuleID,
		LicenseKey:     enroll.LicenseKey,
		Status:         domain.StatusPendingApproval,
		Location:       p.Location,
	}
	if err := s.Store.Equipment().CreateEquipment(ctx, unit); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Equipment{}, Invalid("Equipment with this license key already exists", "license_key")
		}
		return domain.Equipment{}, err
	}

	slogx.FromContext(ctx).Info("equipment discovered",
		"equipment_id", unit.ID, "org_id", unit.OrganizationID)

	return s.Store.Equipment().GetEquipmentByID(ctx, unit.ID)
}

// Approve moves a discovered unit from pending_approval to offline and
// stamps enrolled_at. Any other starting state is rejected.
func (s *EquipmentService) Approve(ctx context.Context, actor Identity, id string) (domain.Equipment, error) {
	unit, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
	if err != nil {
		return domain.Equipment{}, err
	}
	if err := actor.ScopeTo(unit.OrganizationID); err != nil {
		return domain.Equipment{}, err
	}
	if unit.Status != domain.StatusPendingApproval {
		return domain.Equipment{}, ErrInvalidState
	}

	now := time.Now().UTC()
	if err := s.Store.Equipment().UpdateEquipmentStatus(ctx, id, domain.StatusOffline, &now); err != nil {
		return domain.Equipment{}, err
	}

	s.Audit.Record(actor, domain.ActionEquipmentApproved, domain.TargetEquipment, id, nil)

	return s.Store.Equipment().GetEquipmentByID(ctx, id)
}

// SetStatus toggles an approved unit between online and offline and stamps
// last_seen. Pending units must be approved first.
func (s *EquipmentService) SetStatus(ctx context.Context, actor Identity, id string, status domain.EquipmentStatus) (domain.Equipment, error) {
	if status != domain.StatusOnline && status != domain.StatusOffline {
		return domain.Equipment{}, Invalid(`Status is required and must be "online" or "offline"`, "status")
	}

	unit, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
	if err != nil {
		return domain.Equipment{}, err
	}
	if err := actor.ScopeTo(unit.OrganizationID); err != nil {
		return domain.Equipment{}, err
	}
	if unit.Status == domain.StatusPendingApproval {
		return domain.Equipment{}, ErrInvalidState
	}

	if err := s.Store.Equipment().TouchLastSeen(ctx, id, status); err != nil {
		return domain.Equipment{}, err
	}

	s.Audit.Record(actor, domain.ActionEquipmentStatusSet, domain.TargetEquipment, id,
		map[string]any{"previous_status": string(unit.Status), "new_status": string(status)})

	return s.Store.Equipment().GetEquipmentByID(ctx, id)
}

// Update applies a partial metadata update. License key changes re-check
// global uniqueness through the store constraint.
func (s *EquipmentService) Update(ctx context.Context, actor Identity, id string, upd domain.EquipmentUpdate) (domain.Equipment, error) {
	unit, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
	if err != nil {
		return domain.Equipment{}, err
	}
	if err := actor.ScopeTo(unit.OrganizationID); err != nil {
		return domain.Equipment{}, err
	}
	if upd.ModuleID != nil {
		if err := s.checkModule(ctx, *upd.ModuleID); err != nil {
			return domain.Equipment{}, err
		}
	}

	if err := s.Store.Equipment().UpdateEquipment(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Equipment{}, Invalid("Equipment with this license key already exists", "license_key")
		}
		return domain.Equipment{}, err
	}

	s.Audit.Record(actor, domain.ActionEquipmentUpdated, domain.TargetEquipment, id, nil)

	return s.Store.Equipment().GetEquipmentByID(ctx, id)
}

// List returns the actor's organization's fleet. Global operators see all.
func (s *EquipmentService) List(ctx context.Context, actor Identity) ([]domain.Equipment, error) {
	if actor.Global() {
		return s.Store.Equipment().ListEquipment(ctx)
	}
	return s.Store.Equipment().ListEquipmentByOrganization(ctx, actor.OrgID)
}

// Get returns one unit, tenant-scoped.
func (s *EquipmentService) Get(ctx context.Context, actor Identity, id string) (domain.Equipment, error) {
	unit, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
	if err != nil {
		return domain.Equipment{}, err
	}
	if err := actor.ScopeTo(unit.OrganizationID); err != nil {
		return domain.Equipment{}, err
	}
	return unit, nil
}

// HandleAgentEvent applies an equipment_online/equipment_offline event from
// the agent channel. Unknown license keys and internal failures are swallowed
// after logging so the agent never learns which keys exist.
func (s *EquipmentService) HandleAgentEvent(ctx context.Context, event, licenseKey string) error {
	l := slogx.FromContext(ctx)

	var status domain.EquipmentStatus
	switch event {
	case "equipment_online":
		status = domain.StatusOnline
	case "equipment_offline":
		status = domain.StatusOffline
	default:
		return ErrUnknownEvent
	}

	unit, err := s.Store.Equipment().GetEquipmentByLicenseKey(ctx, licenseKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("webhook event for unknown license key")
			return nil
		}
		return err
	}

	if unit.Status == domain.StatusPendingApproval {
		l.Warn("webhook event for unapproved equipment", "equipment_id", unit.ID)
		return nil
	}

	if err := s.Store.Equipment().TouchLastSeen(ctx, unit.ID, status); err != nil {
		return err
	}

	l.Info("webhook event processed", "event", event, "equipment_id", unit.ID)
	return nil
}
