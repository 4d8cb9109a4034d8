package portal

import (
	"context"
	"net/http"
	"runtime"
	"time"
)

// backendProbeTimeout bounds the upstream health probe so a hung backend
// cannot hang the portal's own health endpoint.
const backendProbeTimeout = 3 * time.Second

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Backend   string `json:"backend"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	backendStatus := "reachable"
	ctx, cancel := context.WithTimeout(r.Context(), backendProbeTimeout)
	defer cancel()
	if _, err := s.backend.Health(ctx); err != nil {
		backendStatus = "unreachable"
	}

	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Backend:   backendStatus,
	})
}
