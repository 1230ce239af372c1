package http

import (
	"net/http"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

// SubscriptionsHandler handles subscription endpoints.
type SubscriptionsHandler struct {
	SubscriptionsService *service.SubscriptionsService
}

// HandleUpsert handles POST /v1/subscriptions
//
//	@Summary		Upsert Subscription
//	@Description	Creates or replaces the organization's single subscription. The subscription, its module lines and the organization's back-reference are written in one transaction.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		fleetsdk.UpsertSubscriptionRequest	true	"Upsert request"
//	@Success		200		{object}	fleetsdk.SubscriptionResponse
//	@Failure		400		{object}	fleetsdk.ValidationErrorResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse	"Organization not found"
//	@Router			/v1/subscriptions [post].
func (h *SubscriptionsHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	var req fleetsdk.UpsertSubscriptionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w)
		return
	}

	modules := make([]domain.SubscriptionModule, len(req.Modules))
	for i, m := range req.Modules {
		modules[i] = domain.SubscriptionModule{ModuleID: m.ModuleID, Quantity: m.Quantity}
	}

	sub, err := h.SubscriptionsService.Upsert(ctx, actor, service.UpsertSubscriptionParams{
		OrganizationID: req.OrganizationID,
		Modules:        modules,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeServiceError(w, log, err, "Organization not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

// HandleGetByOrganization handles GET /v1/subscriptions/organization/{org_id}
//
//	@Summary		Get Organization Subscription
//	@Description	Returns the organization's subscription. Tenant-scoped: hospital staff can only read their own.
//	@Tags			Subscriptions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			org_id	path		string	true	"Organization ID (ULID)"
//	@Success		200		{object}	fleetsdk.SubscriptionResponse
//	@Failure		403		{object}	fleetsdk.MsgResponse
//	@Failure		404		{object}	fleetsdk.MsgResponse
//	@Router			/v1/subscriptions/organization/{org_id} [get].
func (h *SubscriptionsHandler) HandleGetByOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := identityFromRequest(r)
	if !ok {
		writeNoIdentity(w)
		return
	}

	sub, err := h.SubscriptionsService.GetByOrganization(ctx, actor, r.PathValue("org_id"))
	if err != nil {
		writeServiceError(w, log, err, "Subscription not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}
