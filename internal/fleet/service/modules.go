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

// ModulesService manages the equipment module catalogue. The catalogue is
// platform-wide, so listing needs no tenant scoping.
type ModulesService struct {
	Store store.Store
	Audit *AuditRecorder
}

type ModuleParams struct {
	Name        string
	Description string
}

func (s *ModulesService) ListModules(ctx context.Context) ([]domain.Module, error) {
	return s.Store.Modules().ListModules(ctx)
}

// CreateModule adds a new module type to the catalogue.
func (s *ModulesService) CreateModule(ctx context.Context, actor Identity, p ModuleParams) (domain.Module, error) {
	l := slogx.FromContext(ctx)

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.Module{}, Invalid("Module name is required", "name")
	}

	module := domain.Module{
		ID:          idx.New().String(),
		Name:        p.Name,
		Description: p.Description,
	}
	if err := s.Store.Modules().CreateModule(ctx, module); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Module{}, Invalid("Module already exists", "name")
		}
		return domain.Module{}, err
	}

	l.Info("module created", "module_id", module.ID, "name", module.Name)
	s.Audit.Record(actor, domain.ActionModuleCreated, domain.TargetModule, module.ID,
		map[string]any{"name": module.Name})

	return module, nil
}
