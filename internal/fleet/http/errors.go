package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
)

// identityFromRequest bridges the transport identity into the service layer.
func identityFromRequest(r *http.Request) (service.Identity, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		return service.Identity{}, false
	}
	return service.Identity{
		UserID:      id.UserID,
		OrgID:       id.OrgID,
		Role:        id.Role,
		Permissions: id.Permissions,
	}, true
}

func writeBadBody(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.ValidationErrorResponse{
		Errors: []fleetsdk.FieldError{{Msg: "Invalid JSON in request body"}},
	})
}

func writeNoIdentity(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, fleetsdk.MsgResponse{
		Msg: "No token, authorization denied",
	})
}

// writeServiceError maps service and store errors onto the wire format.
// notFoundMsg customizes the 404 body per resource.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error, notFoundMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		out := fleetsdk.ValidationErrorResponse{
			Errors: make([]fleetsdk.FieldError, len(verr.Violations)),
		}
		for i, v := range verr.Violations {
			out.Errors[i] = fleetsdk.FieldError{Msg: v.Msg, Param: v.Param}
		}
		httpx.WriteJSON(w, http.StatusBadRequest, out)

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.ValidationErrorResponse{
			Errors: []fleetsdk.FieldError{{Msg: "Invalid Credentials"}},
		})

	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, fleetsdk.MsgResponse{Msg: notFoundMsg})

	case errors.Is(err, service.ErrCrossTenant):
		httpx.WriteJSON(w, http.StatusForbidden, fleetsdk.MsgResponse{
			Msg: "Forbidden: You can only access resources in your own organization.",
		})

	case errors.Is(err, service.ErrSelfRoleChange):
		httpx.WriteJSON(w, http.StatusForbidden, fleetsdk.MsgResponse{
			Msg: "Forbidden: You cannot change your own role.",
		})

	case errors.Is(err, service.ErrProtectedRole):
		httpx.WriteJSON(w, http.StatusForbidden, fleetsdk.MsgResponse{
			Msg: "Forbidden: Cannot assign AGI admin role.",
		})

	case errors.Is(err, service.ErrInvalidState):
		httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.MsgResponse{
			Msg: "Equipment is not in a valid state for this operation",
		})

	case errors.Is(err, service.ErrRoleInUse):
		httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.MsgResponse{
			Msg: "Role is still assigned to users",
		})

	default:
		log.Error("request failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, fleetsdk.MsgResponse{Msg: "Server Error"})
	}
}
