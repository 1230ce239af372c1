package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// ModulesHandler handles the module catalogue endpoints.
type ModulesHandler struct {
	ModulesService *service.ModulesService
}

// HandleList handles GET /v1/modules
//
//	@Summary		List Modules
//	@Description	Returns the module catalogue. Open to any authenticated user so enrollment forms can resolve module IDs.
//	@Tags			Modules
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		fleetsdk.ModuleResponse
//	@Failure		401	{object}	fleetsdk.MsgResponse
//	@Router			/v1/modules [get].
func (h *ModulesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	modules, err := h.ModulesService.ListModules(ctx)
	if err != nil {
		writeServiceError(w, log, err, "Module not found")
		return
	}

	out := make([]fleetsdk.ModuleResponse, len(modules))
	for i, m := range modules {
		out[i] = toModuleResponse(m)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/modules
//
//	@Summary		Create Module
//	@Description	Adds a new module type to the catalogue.
//	@Tags			Modules
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		fleetsdk.ModuleRequest				true	"Module creation request"
//	@Success		201		{object}	fleetsdk.ModuleResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse	"Field errors, duplicate name included"
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Router			/v1/modules [post].
func (h *ModulesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.ModuleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	module, err := h.ModulesService.CreateModule(ctx, actor, service.ModuleParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, log, err, "Module not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toModuleResponse(module))
}
