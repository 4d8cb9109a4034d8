package portal

import "net/http"

// clientConfig is the subset of configuration the frontend needs at runtime.
type clientConfig struct {
	GoogleClientID string `json:"google_client_id"`
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	respondOK(w, reqID, clientConfig{
		GoogleClientID: s.config.GoogleClientID,
	})
}
