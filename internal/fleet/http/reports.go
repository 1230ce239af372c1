package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// ReportsHandler handles reporting endpoints.
type ReportsHandler struct {
	ReportsService *service.ReportsService
}

// HandleEquipment handles GET /v1/reports/equipment
//
//	@Summary		Equipment Report
//	@Description	Returns the fleet with organization and module names joined. The organization_id filter is honoured for global operators only; everyone else is pinned to their own organization.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			organization_id	query		string	false	"Filter by organization (global operators only)"
//	@Param			module_id		query		string	false	"Filter by module type"
//	@Param			status			query		string	false	"Filter by status"
//	@Param			location		query		string	false	"Filter by location"
//	@Success		200				{array}		fleetsdk.EquipmentReportRow
//	@Failure		401				{object}	fleetsdk.MsgResponse
//	@Router			/v1/reports/equipment [get].
func (h *ReportsHandler) HandleEquipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	q := r.URL.Query()
	rows, err := h.ReportsService.EquipmentReport(ctx, actor, domain.EquipmentFilter{
		OrganizationID: q.Get("organization_id"),
		ModuleID:       q.Get("module_id"),
		Status:         domain.EquipmentStatus(q.Get("status")),
		Location:       q.Get("location"),
	})
	if err != nil {
		writeServiceError(w, log, err, "Report not found")
		return
	}

	out := make([]fleetsdk.EquipmentReportRow, len(rows))
	for i, row := range rows {
		out[i] = toEquipmentReportRow(row)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAudit handles GET /v1/reports/audit
//
//	@Summary		Audit Report
//	@Description	Returns audit entries newest first, scoped to the caller's organization unless they are a global operator.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user_id		query		string	false	"Filter by acting user"
//	@Param			action		query		string	false	"Filter by action"
//	@Param			target_type	query		string	false	"Filter by target type"
//	@Param			from		query		string	false	"RFC3339 lower bound"
//	@Param			to			query		string	false	"RFC3339 upper bound"
//	@Param			limit		query		int		false	"Maximum entries (default 100, cap 1000)"
//	@Success		200			{array}		fleetsdk.AuditReportRow
//	@Failure		401			{object}	fleetsdk.MsgResponse
//	@Failure		403			{object}	fleetsdk.MsgResponse
//	@Router			/v1/reports/audit [get].
func (h *ReportsHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	q := r.URL.Query()
	filter := domain.AuditFilter{
		UserID:     q.Get("user_id"),
		Action:     q.Get("action"),
		TargetType: q.Get("target_type"),
	}
	if v := q.Get("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.ValidationErrorResponse{
				Errors: []fleetsdk.FieldError{{Msg: "Invalid from timestamp", Param: "from"}},
			})
			return
		}
		filter.From = &ts
	}
	if v := q.Get("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.ValidationErrorResponse{
				Errors: []fleetsdk.FieldError{{Msg: "Invalid to timestamp", Param: "to"}},
			})
			return
		}
		filter.To = &ts
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	entries, err := h.ReportsService.AuditReport(ctx, actor, filter)
	if err != nil {
		writeServiceError(w, log, err, "Report not found")
		return
	}

	out := make([]fleetsdk.AuditReportRow, len(entries))
	for i, e := range entries {
		out[i] = toAuditReportRow(e)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSummary handles GET /v1/reports/summary
//
//	@Summary		Summary Report
//	@Description	Aggregated organization and equipment counts. Platform-wide for global operators, single-organization otherwise.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	fleetsdk.SummaryReport
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Router			/v1/reports/summary [get].
func (h *ReportsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	summary, err := h.ReportsService.SummaryReport(ctx, actor)
	if err != nil {
		writeServiceError(w, log, err, "Report not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSummaryResponse(summary))
}
