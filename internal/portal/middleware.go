package portal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeySession   ctxKey = "session"
)

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// SessionFromContext retrieves the authenticated session from context.
// Returns nil on public routes.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(ctxKeySession).(*model.Session)
	return sess
}

// requestIDMiddleware generates a request_id and stores it in context.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := requestID()
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs HTTP requests at INFO level (method, path, status, duration).
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

// authMiddleware validates the session cookie and adds the session to the
// request context. Requests without a valid session get 401.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := RequestIDFromContext(r.Context())

		sess, err := s.sessions.GetSessionFromRequest(r)
		if err != nil {
			s.logger.Error("session lookup failed", "error", err, "request_id", reqID)
			respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
				Code:    model.ErrInternal,
				Message: "session lookup failed",
			})
			return
		}
		if sess == nil {
			respondError(w, reqID, http.StatusUnauthorized, &model.APIError{
				Code:    model.ErrUnauthorized,
				Message: "authentication required",
			})
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeySession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminMiddleware ensures the session user has admin role.
// Must be used after authMiddleware.
func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := RequestIDFromContext(r.Context())

		sess := SessionFromContext(r.Context())
		if sess == nil || !sess.IsAdmin() {
			respondError(w, reqID, http.StatusForbidden, &model.APIError{
				Code:    model.ErrForbidden,
				Message: "admin access required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
