package http

import (
	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
)

func toOrganizationResponse(o domain.Organization) fleetsdk.OrganizationResponse {
	resp := fleetsdk.OrganizationResponse{
		ID:             o.ID,
		Name:           o.Name,
		Address:        o.Address,
		Locations:      o.Locations,
		SubscriptionID: o.SubscriptionID,
		CreatedAt:      o.CreatedAt,
	}
	if o.LogoURL != "" || o.PrimaryColor != "" {
		resp.Branding = &fleetsdk.Branding{LogoURL: o.LogoURL, PrimaryColor: o.PrimaryColor}
	}
	return resp
}

func toRoleResponse(r domain.Role) fleetsdk.RoleResponse {
	return fleetsdk.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
	}
}

func toModuleResponse(m domain.Module) fleetsdk.ModuleResponse {
	return fleetsdk.ModuleResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

func toUserResponse(u domain.UserWithRole) fleetsdk.UserResponse {
	return fleetsdk.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		OrganizationID: u.OrganizationID,
		Role:           u.RoleName,
		CreatedAt:      u.CreatedAt,
	}
}

func toEquipmentResponse(e domain.Equipment) fleetsdk.EquipmentResponse {
	return fleetsdk.EquipmentResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		ModuleID:       e.ModuleID,
		LicenseKey:     e.LicenseKey,
		Status:         string(e.Status),
		Location:       e.Location,
		EnrolledAt:     e.EnrolledAt,
		LastSeen:       e.LastSeen,
	}
}

func toSubscriptionResponse(s domain.Subscription) fleetsdk.SubscriptionResponse {
	resp := fleetsdk.SubscriptionResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Modules:        make([]fleetsdk.SubscriptionModule, len(s.Modules)),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		IsActive:       s.IsActive,
	}
	for i, m := range s.Modules {
		resp.Modules[i] = fleetsdk.SubscriptionModule{ModuleID: m.ModuleID, Quantity: m.Quantity}
	}
	return resp
}

func toEquipmentReportRow(e domain.EquipmentWithNames) fleetsdk.EquipmentReportRow {
	return fleetsdk.EquipmentReportRow{
		ID:           e.ID,
		LicenseKey:   e.LicenseKey,
		Status:       string(e.Status),
		Location:     e.Location,
		Organization: e.OrganizationName,
		Module:       e.ModuleName,
		EnrolledAt:   e.EnrolledAt,
		LastSeen:     e.LastSeen,
	}
}

func toAuditReportRow(e domain.AuditEntry) fleetsdk.AuditReportRow {
	return fleetsdk.AuditReportRow{
		ID:             e.ID,
		UserID:         e.UserID,
		OrganizationID: e.OrganizationID,
		Action:         e.Action,
		TargetType:     e.TargetType,
		TargetID:       e.TargetID,
		Details:        e.Details,
		Timestamp:      e.Timestamp,
	}
}

func toSummaryResponse(s service.Summary) fleetsdk.SummaryReport {
	return fleetsdk.SummaryReport{
		TotalOrganizations: s.TotalOrganizations,
		TotalEquipment:     s.TotalEquipment,
		OnlineEquipment:    s.OnlineEquipment,
		OfflineEquipment:   s.OfflineEquipment,
	}
}
