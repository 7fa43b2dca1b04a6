package httpserver

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
}

// health handles GET /health.
//
// On success: 200 and {"status":"ok","database":"connected"}.
// On storage failure: 503 and {"status":"error","database":"disconnected",...}.
// The ping error is logged only; the body never carries it.
func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := s.storage.Ping(ctx); err != nil {
		s.logger.Error(r.Context(), "health-check: storage ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected"})
}
