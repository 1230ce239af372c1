package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register User
//	@Description	Creates a user in an existing organization with the default role and returns a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.RegisterRequest			true	"Registration request"
//	@Success		200		{object}	fleetsdk.TokenResponse				"Signed access token"
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors, duplicate email included"
//	@Failure		500		{object}	fleetsdk.MsgResponse				"Server Error"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fleetsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	token, err := h.AuthService.Register(ctx, service.RegisterParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.TokenResponse{Token: token})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Login
//	@Description	Verifies credentials and returns a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.LoginRequest				true	"Login request"
//	@Success		200		{object}	fleetsdk.TokenResponse				"Signed access token"
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors or invalid credentials"
//	@Failure		500		{object}	fleetsdk.MsgResponse				"Server Error"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fleetsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.TokenResponse{Token: token})
}
