package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// EquipmentHandler handles equipment lifecycle endpoints. Listing goes through
// the reports service so organization and module names come back joined.
type EquipmentHandler struct {
	EquipmentService *service.EquipmentService
	ReportsService   *service.ReportsService
}

// HandleEnroll handles POST /v1/equipment
//
//	@Summary		Enroll Equipment
//	@Description	Registers a unit under the caller's organization. Enrolled units skip discovery approval and start offline.
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		fleetsdk.EnrollEquipmentRequest		true	"Enrollment request"
//	@Success		201		{object}	fleetsdk.EquipmentResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors, duplicate license key included"
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment [post].
func (h *EquipmentHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.EnrollEquipmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	unit, err := h.EquipmentService.Enroll(ctx, actor, service.EnrollEquipmentParams{
		LicenseKey: req.LicenseKey,
		ModuleID:   req.ModuleID,
		Location:   req.Location,
	})
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toEquipmentResponse(unit))
}

// HandleDiscover handles POST /v1/equipment/discover
//
//	@Summary		Discover Equipment
//	@Description	Agent channel: registers a unit in pending_approval for later operator approval. Authenticated with the shared agent API key, not a user token.
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Param			X-API-Key	header		string								true	"Agent API key"
//	@Param			request		body		fleetsdk.DiscoverEquipmentRequest	true	"Discovery request"
//	@Success		201				{object}	fleetsdk.EquipmentResponse
//	@Failure		400				{object}	fleetsdk.ValidationErrorResponse
//	@Failure		401				{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment/discover [post].
func (h *EquipmentHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fleetsdk.DiscoverEquipmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	unit, err := h.EquipmentService.Discover(ctx, service.DiscoverEquipmentParams{
		OrganizationID: req.OrganizationID,
		LicenseKey:     req.LicenseKey,
		ModuleID:       req.ModuleID,
		Location:       req.Location,
	})
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toEquipmentResponse(unit))
}

// HandleApprove handles PATCH /v1/equipment/{id}/approve
//
//	@Summary		Approve Equipment
//	@Description	Moves a discovered unit from pending_approval to offline and stamps its enrollment time.
//	@Tags			Equipment
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Equipment ID (ULID)"
//	@Success		200	{object}	fleetsdk.EquipmentResponse
//	@Failure		400	{object}	fleetsdk.MsgResponse	"Not pending approval"
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment/{id}/approve [patch].
func (h *EquipmentHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	unit, err := h.EquipmentService.Approve(ctx, actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEquipmentResponse(unit))
}

// HandleSetStatus handles PATCH /v1/equipment/status/{id}
//
//	@Summary		Set Equipment Status
//	@Description	Toggles an approved unit between online and offline and stamps last_seen. Pending units must be approved first.
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string									true	"Equipment ID (ULID)"
//	@Param			request	body		fleetsdk.UpdateEquipmentStatusRequest	true	"New status"
//	@Success		200		{object}	fleetsdk.EquipmentResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment/status/{id} [patch].
func (h *EquipmentHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.UpdateEquipmentStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	unit, err := h.EquipmentService.SetStatus(ctx, actor, r.PathValue("id"),
		domain.EquipmentStatus(req.Status))
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEquipmentResponse(unit))
}

// HandleUpdate handles PUT /v1/equipment/{id}
//
//	@Summary		Update Equipment
//	@Description	Applies a partial metadata update. License key changes re-check global uniqueness.
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Equipment ID (ULID)"
//	@Param			request	body		fleetsdk.UpdateEquipmentRequest	true	"Partial update"
//	@Success		200		{object}	fleetsdk.EquipmentResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment/{id} [put].
func (h *EquipmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.UpdateEquipmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	unit, err := h.EquipmentService.Update(ctx, actor, r.PathValue("id"), domain.EquipmentUpdate{
		LicenseKey: req.LicenseKey,
		ModuleID:   req.ModuleID,
		Location:   req.Location,
	})
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEquipmentResponse(unit))
}

// HandleList handles GET /v1/equipment
//
//	@Summary		List Equipment
//	@Description	Returns the caller's organization's fleet with organization and module names joined. Global operators see all units.
//	@Tags			Equipment
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		fleetsdk.EquipmentResponse
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment [get].
func (h *EquipmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	units, err := h.ReportsService.EquipmentReport(ctx, actor, domain.EquipmentFilter{})
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	out := make([]fleetsdk.EquipmentResponse, len(units))
	for i, u := range units {
		resp := toEquipmentResponse(u.Equipment)
		resp.Module = u.ModuleName
		out[i] = resp
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/equipment/{id}
//
//	@Summary		Get Equipment
//	@Tags			Equipment
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Equipment ID (ULID)"
//	@Success		200	{object}	fleetsdk.EquipmentResponse
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/equipment/{id} [get].
func (h *EquipmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	unit, err := h.EquipmentService.Get(ctx, actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err, "Equipment not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEquipmentResponse(unit))
}
