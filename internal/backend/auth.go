package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// loginRequest is the credential payload for the admin login endpoint.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// googleAuthRequest carries a Google ID token for exchange.
type googleAuthRequest struct {
	Token string `json:"token"`
}

// authErrorBody is the backend's error shape for auth endpoints.
type authErrorBody struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Login exchanges email/password credentials for a bearer token.
// HTTP-level rejections surface as *AuthError carrying the backend's
// detail message; transport failures propagate as wrapped errors.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	return c.authExchange(ctx, "/api/auth/admin-login",
		loginRequest{Email: email, Password: password}, "Login failed")
}

// LoginWithGoogle exchanges a Google ID token for a bearer token.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*model.LoginResponse, error) {
	return c.authExchange(ctx, "/api/auth/google",
		googleAuthRequest{Token: idToken}, "Google authentication failed")
}

func (c *Client) authExchange(ctx context.Context, path string, body any, fallbackDetail string) (*model.LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, path, body, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthError{Detail: readAuthDetail(resp.Body, fallbackDetail)}
	}

	var out model.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse login response: %w", err)
	}
	return &out, nil
}

// Register creates a new account. Success does not log the user in.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.RegisterResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/register", req, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthError{Detail: readAuthDetail(resp.Body, "Registration failed")}
	}

	var out model.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse register response: %w", err)
	}
	if out.Message == "" {
		out.Message = "Registration successful"
	}
	return &out, nil
}

// readAuthDetail extracts the backend's detail message from an error body,
// returning fallback when the body is empty or not the expected shape.
func readAuthDetail(r io.Reader, fallback string) string {
	var body authErrorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Detail == "" {
		return fallback
	}
	return body.Detail
}
