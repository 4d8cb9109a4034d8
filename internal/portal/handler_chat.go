package portal

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// handleChat forwards a chat message to the backend. Public: the website
// chat widget works without a login.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "message is required",
		})
		return
	}

	resp, err := s.backend.Chat(r.Context(), req)
	if err != nil {
		s.logger.Error("chat relay failed", "error", err, "request_id", reqID)
		respondError(w, reqID, http.StatusBadGateway, &model.APIError{
			Code: model.ErrUpstream, Message: "chatbot unavailable",
		})
		return
	}
	respondOK(w, reqID, resp)
}
