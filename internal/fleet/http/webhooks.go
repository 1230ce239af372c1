package http

import (
	"errors"
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// WebhooksHandler ingests status events from monitoring agents.
type WebhooksHandler struct {
	EquipmentService *service.EquipmentService
}

// HandleEvent handles POST /v1/webhooks/events
//
// Once the API key has passed, the endpoint acknowledges with 200 no matter
// what happened internally. Responding differently for unknown license keys
// would let the webhook source probe which keys exist.
//
//	@Summary		Ingest Agent Event
//	@Description	Applies an equipment_online/equipment_offline event reported by a monitoring agent. Always returns 200 once the API key is accepted.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-API-Key	header		string							true	"Agent API key"
//	@Param			request		body		fleetsdk.WebhookEventRequest	true	"Event payload"
//	@Success		200			{object}	fleetsdk.MsgResponse
//	@Failure		400			{object}	fleetsdk.ValidationErrorResponse	"Unknown event type"
//	@Failure		401			{object}	fleetsdk.MsgResponse
//	@Router			/v1/webhooks/events [post].
func (h *WebhooksHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fleetsdk.WebhookEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := h.EquipmentService.HandleAgentEvent(ctx, req.Event, req.LicenseKey); err != nil {
		if errors.Is(err, service.ErrUnknownEvent) {
			httpx.WriteJSON(w, http.StatusBadRequest, fleetsdk.ValidationErrorResponse{
				Errors: []fleetsdk.FieldError{{Msg: "Unknown event type", Param: "event"}},
			})
			return
		}
		// Internal failures are acknowledged anyway; the event is lost but the
		// agent should not retry into the same failure.
		log.Error("webhook event failed", "error", err, "event", req.Event)
	}

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.MsgResponse{Msg: "Event received"})
}
