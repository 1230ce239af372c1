package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// UsersHandler handles user management endpoints.
type UsersHandler struct {
	UsersService *service.UsersService
}

// HandleList handles GET /v1/users
//
//	@Summary		List Users
//	@Description	Returns the caller's organization's users with role names. Global operators see everyone. Password hashes are never included.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		fleetsdk.UserResponse
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	users, err := h.UsersService.ListUsers(ctx, actor)
	if err != nil {
		writeServiceError(w, log, err, "User not found")
		return
	}

	out := make([]fleetsdk.UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"User ID (ULID)"
//	@Success		200	{object}	fleetsdk.UserResponse
//	@Failure		403	{object}	fleetsdk.MsgResponse
//	@Failure		404	{object}	fleetsdk.MsgResponse
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	user, err := h.UsersService.GetUser(ctx, actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUpdateRole handles PUT /v1/users/{id}/role
//
//	@Summary		Change User Role
//	@Description	Reassigns a user's role within the caller's organization. Callers cannot change their own role or assign the global operator role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User ID (ULID)"
//	@Param			request	body		fleetsdk.UpdateUserRoleRequest	true	"Role assignment"
//	@Success		200		{object}	fleetsdk.UserResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/users/{id}/role [put].
func (h *UsersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.UpdateUserRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	user, err := h.UsersService.UpdateUserRole(ctx, actor, r.PathValue("id"), req.RoleID)
	if err != nil {
		writeServiceError(w, log, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
