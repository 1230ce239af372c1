package service

import (
	"context"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
)

type ReportsService struct {
	Store store.Store
}

// EquipmentReport joins organization and module names onto the fleet. Global
// operators may filter by organization; everyone else is pinned to their own.
func (s *ReportsService) EquipmentReport(ctx context.Context, actor Identity, f domain.EquipmentFilter) ([]domain.EquipmentWithNames, error) {
	if !actor.Global() {
		f.OrganizationID = actor.OrgID
	}
	return s.Store.Equipment().QueryEquipmentReport(ctx, f)
}

// AuditReport returns audit entries, newest first, scoped to the actor's
// organization unless they are a global operator.
func (s *ReportsService) AuditReport(ctx context.Context, actor Identity, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if !actor.Global() {
		f.OrganizationID = actor.OrgID
	}
	return s.Store.AuditLogs().QueryAuditEntries(ctx, f)
}

// SummaryReport aggregates platform-wide counts for global operators, or a
// single organization's counts otherwise.
type Summary struct {
	TotalOrganizations int64
	TotalEquipment     int64
	OnlineEquipment    int64
	OfflineEquipment   int64
}

func (s *ReportsService) SummaryReport(ctx context.Context, actor Identity) (Summary, error) {
	orgScope := ""
	if !actor.Global() {
		orgScope = actor.OrgID
	}

	counts, err := s.Store.Equipment().CountEquipmentByStatus(ctx, orgScope)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for status, count := range counts {
		summary.TotalEquipment += count
		switch status {
		case domain.StatusOnline:
			summary.OnlineEquipment = count
		case domain.StatusOffline:
			summary.OfflineEquipment = count
		}
	}

	if orgScope == "" {
		summary.TotalOrganizations, err = s.Store.Organizations().CountOrganizations(ctx)
		if err != nil {
			return Summary{}, err
		}
	} else {
		summary.TotalOrganizations = 1
	}

	return summary, nil
}
