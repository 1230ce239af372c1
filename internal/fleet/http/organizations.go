package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// OrganizationsHandler handles organization management endpoints.
type OrganizationsHandler struct {
	OrganizationsService *service.OrganizationsService
}

// HandleCreate handles POST /v1/organizations
//
//	@Summary		Create Organization
//	@Description	Creates an organization with optional locations and branding. Names are globally unique.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		fleetsdk.CreateOrganizationRequest	true	"Organization creation request"
//	@Success		201		{object}	fleetsdk.OrganizationResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors, duplicate name included"
//	@Failure		401		{object}	fleetsdk.MsgResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.CreateOrganizationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	params := service.CreateOrganizationParams{
		Name:      req.Name,
		Address:   req.Address,
		Locations: req.Locations,
	}
	if req.Branding != nil {
		params.LogoURL = req.Branding.LogoURL
		params.PrimaryColor = req.Branding.PrimaryColor
	}

	org, err := h.OrganizationsService.CreateOrganization(ctx, actor, params)
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrganizationResponse(org))
}

// HandleList handles GET /v1/organizations
//
//	@Summary		List Organizations
//	@Description	Returns every organization on the platform.
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		fleetsdk.OrganizationResponse
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orgs, err := h.OrganizationsService.ListOrganizations(ctx)
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	out := make([]fleetsdk.OrganizationResponse, len(orgs))
	for i, o := range orgs {
		out[i] = toOrganizationResponse(o)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/organizations/{id}
//
//	@Summary		Get Organization
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID (ULID)"
//	@Success		200	{object}	fleetsdk.OrganizationResponse
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/organizations/{id} [get].
func (h *OrganizationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	org, err := h.OrganizationsService.GetOrganization(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrganizationResponse(org))
}

// HandleUpdate handles PUT /v1/organizations/{id}
//
//	@Summary		Update Organization
//	@Description	Applies a partial update; omitted fields are left untouched.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Organization ID (ULID)"
//	@Param			request	body		fleetsdk.UpdateOrganizationRequest	true	"Partial update"
//	@Success		200		{object}	fleetsdk.OrganizationResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/organizations/{id} [put].
func (h *OrganizationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.UpdateOrganizationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	upd := domain.OrganizationUpdate{
		Name:      req.Name,
		Address:   req.Address,
		Locations: req.Locations,
	}
	if req.Branding != nil {
		upd.LogoURL = &req.Branding.LogoURL
		upd.PrimaryColor = &req.Branding.PrimaryColor
	}

	org, err := h.OrganizationsService.UpdateOrganization(ctx, actor, r.PathValue("id"), upd)
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrganizationResponse(org))
}

// HandleMyBranding handles GET /v1/organizations/my/branding
//
//	@Summary		My Organization Branding
//	@Description	Returns the caller's organization branding for UI theming. Open to any authenticated user.
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	fleetsdk.Branding
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/organizations/my/branding [get].
func (h *OrganizationsHandler) HandleMyBranding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	org, err := h.OrganizationsService.MyBranding(ctx, actor)
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.Branding{
		LogoURL:      org.LogoURL,
		PrimaryColor: org.PrimaryColor,
	})
}
