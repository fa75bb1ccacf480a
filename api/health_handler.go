package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/omie-site-backend/content"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	prober      Prober
	degraded    *content.DegradedCounter
	mock        bool
	startupTime time.Time
}

func newHealthHandler(prober Prober, degraded *content.DegradedCounter, mock bool, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		prober:      prober,
		degraded:    degraded,
		mock:        mock,
		startupTime: startupTime,
	}
}

// liveness reports that the process is serving
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LivenessResponse
// @Router /healthz [get]
func (h healthHandler) liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, LivenessResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
			Mock:   h.mock,
		})
	}
}

// strapiHealth checks the content API configuration and connectivity.
// The response never contains the API token.
// @Summary Content API diagnostics
// @Tags Health
// @Produce json
// @Success 200 {object} StrapiHealthResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid diagnostics token"
// @Router /api/strapi-health [get]
func (h healthHandler) strapiHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var response StrapiHealthResponse
		if h.prober != nil {
			response.HealthReport = h.prober.Probe(r.Context(), h.mock)
		} else {
			response.HealthReport.Hint = "No content API client is configured."
		}
		if h.degraded != nil {
			stats := h.degraded.Snapshot()
			response.Degraded = &stats
		}

		h.logger.Info().
			Str("subject", ctxGetDiagnosticsSubject(r.Context())).
			Bool("ok", response.OK).
			Msg("Strapi health probe")

		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}
