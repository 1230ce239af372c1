package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// RolesHandler handles role management endpoints.
type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List Roles
//	@Description	Returns all roles with their permission sets. Open to any authenticated user.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		fleetsdk.RoleResponse
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListRoles(ctx)
	if err != nil {
		writeServiceError(w, log, err, "Role not found")
		return
	}

	out := make([]fleetsdk.RoleResponse, len(roles))
	for i, role := range roles {
		out[i] = toRoleResponse(role)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Create Role
//	@Description	Creates a role. Every permission must come from the registered permission set.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		fleetsdk.RoleRequest				true	"Role creation request"
//	@Success		201		{object}	fleetsdk.RoleResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors, unknown permissions included"
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.RoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	role, err := h.RolesService.CreateRole(ctx, actor, service.RoleParams{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeServiceError(w, log, err, "Role not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRoleResponse(role))
}

// HandleUpdate handles PUT /v1/roles/{id}
//
//	@Summary		Update Role
//	@Description	Replaces a role's description and permission set.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Role ID (ULID)"
//	@Param			request	body		fleetsdk.RoleRequest	true	"Role update request"
//	@Success		200		{object}	fleetsdk.RoleResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.RoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	role, err := h.RolesService.UpdateRole(ctx, actor, r.PathValue("id"), service.RoleParams{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeServiceError(w, log, err, "Role not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleDelete handles DELETE /v1/roles/{id}
//
//	@Summary		Delete Role
//	@Description	Removes a role. Roles still assigned to users cannot be deleted.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Role ID (ULID)"
//	@Success		204	"Role deleted"
//	@Failure		400	{object}	fleetsdk.MsgResponse	"Role still in use"
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	if err := h.RolesService.DeleteRole(ctx, actor, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err, "Role not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
