package portal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// handleAnalyticsOverview proxies the dashboard overview through the
// resilient fetcher. With mock fallback enabled this never fails on
// backend outages — the widgets stay populated.
func (s *Server) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())

	overview, err := s.backend.WithToken(sess.Token).AnalyticsOverview(r.Context())
	if err != nil {
		s.respondUpstreamFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, overview)
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())
	skip, limit := pagination(r)

	page, err := s.backend.WithToken(sess.Token).Documents(r.Context(), skip, limit)
	if err != nil {
		s.respondUpstreamFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, page)
}

func (s *Server) handleQueries(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())
	skip, limit := pagination(r)

	page, err := s.backend.WithToken(sess.Token).Queries(r.Context(), skip, limit)
	if err != nil {
		s.respondUpstreamFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, page)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())
	skip, limit := pagination(r)

	page, err := s.backend.WithToken(sess.Token).Users(r.Context(), skip, limit)
	if err != nil {
		s.respondUpstreamFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, page)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "missing file field",
		})
		return
	}
	defer file.Close()

	resp, err := s.backend.WithToken(sess.Token).UploadDocument(r.Context(), header.Filename, file)
	if err != nil {
		s.respondUpstreamFailure(w, reqID, err)
		return
	}
	respondOK(w, reqID, resp)
}

// respondUpstreamFailure relays backend HTTP errors with their original
// status and descriptive message; transport failures become 502.
func (s *Server) respondUpstreamFailure(w http.ResponseWriter, reqID string, err error) {
	var httpErr *backend.HTTPError
	if errors.As(err, &httpErr) {
		respondError(w, reqID, httpErr.StatusCode, &model.APIError{
			Code: model.ErrUpstream, Message: httpErr.Error(),
		})
		return
	}

	s.logger.Error("backend call failed", "error", err, "request_id", reqID)
	respondError(w, reqID, http.StatusBadGateway, &model.APIError{
		Code: model.ErrUpstream, Message: "backend unavailable",
	})
}

// pagination parses skip/limit query parameters with backend defaults.
func pagination(r *http.Request) (skip, limit int) {
	skip, limit = 0, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return skip, limit
}
