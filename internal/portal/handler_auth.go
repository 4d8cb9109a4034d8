package portal

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

const minPasswordLength = 6

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginBody struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "invalid request body",
		})
		return
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "invalid email address",
		})
		return
	}
	if len(body.Password) < minPasswordLength {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "password too short",
		})
		return
	}

	resp, err := s.backend.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		s.respondAuthFailure(w, reqID, err)
		return
	}

	s.establishSession(w, r, reqID, resp)
}

func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body googleLoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "missing id token",
		})
		return
	}

	resp, err := s.backend.LoginWithGoogle(r.Context(), body.Token)
	if err != nil {
		s.respondAuthFailure(w, reqID, err)
		return
	}

	s.establishSession(w, r, reqID, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "invalid request body",
		})
		return
	}
	if strings.TrimSpace(body.Username) == "" {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "username is required",
		})
		return
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "invalid email address",
		})
		return
	}
	if len(body.Password) < minPasswordLength {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code: model.ErrBadRequest, Message: "password too short",
		})
		return
	}

	resp, err := s.backend.Register(r.Context(), body)
	if err != nil {
		s.respondAuthFailure(w, reqID, err)
		return
	}

	// Registration does not log the user in.
	respondOK(w, reqID, resp)
}

// handleLogout deletes the server-side session and clears the cookie.
// Logging out without a session is fine.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := s.sessions.DeleteSession(r.Context(), cookie.Value); err != nil {
			s.logger.Error("session delete failed", "error", err, "request_id", reqID)
		}
	}
	ClearSessionCookie(w)

	respondOK(w, reqID, map[string]string{"status": "logged_out"})
}

// handleMe returns the current session's user, so the frontend can restore
// its auth state on reload.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	sess := SessionFromContext(r.Context())
	respondOK(w, reqID, sess.User)
}

// establishSession stores a fresh session and sets the cookie.
func (s *Server) establishSession(w http.ResponseWriter, r *http.Request, reqID string, login *model.LoginResponse) {
	sess, err := s.sessions.CreateSession(r.Context(), login.User, login.AccessToken)
	if err != nil {
		s.logger.Error("session create failed", "error", err, "request_id", reqID)
		respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
			Code: model.ErrInternal, Message: "could not create session",
		})
		return
	}

	SetSessionCookie(w, sess, r.TLS != nil)
	respondOK(w, reqID, login.User)
}

// respondAuthFailure distinguishes backend rejections from transport errors.
func (s *Server) respondAuthFailure(w http.ResponseWriter, reqID string, err error) {
	if backend.IsAuthError(err) {
		respondError(w, reqID, http.StatusUnauthorized, &model.APIError{
			Code: model.ErrUnauthorized, Message: err.Error(),
		})
		return
	}

	s.logger.Error("backend auth call failed", "error", err, "request_id", reqID)
	respondError(w, reqID, http.StatusBadGateway, &model.APIError{
		Code: model.ErrUpstream, Message: "authentication service unavailable",
	})
}
