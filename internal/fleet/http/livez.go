package http

import (
	"net/http"
	"time"

	"github.com/agi-health/medfleet/pkg/fleetsdk"
	"github.com/agi-health/medfleet/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Check
//	@Description	Always returns 200 while the process is running, with uptime and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	fleetsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
