package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// startStubBackend starts a fake chatbot backend and returns its URL.
func startStubBackend(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/admin-login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "admin@college.edu" || body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid credentials"}`))
			return
		}
		w.Write([]byte(`{
			"access_token": "tok-abc",
			"token_type": "bearer",
			"user": {"id":"1","username":"admin","email":"admin@college.edu","role":"admin","is_active":true,"created_at":"2024-01-01T00:00:00Z"}
		}`))
	})
	mux.HandleFunc("/api/analytics/overview", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}
		w.Write([]byte(`{"users":{"total":42,"active":7},"documents":{"total":3,"processed":2},"queries":{"total":99,"langchain":90},"recent_documents":[],"recent_queries":[]}`))
	})
	mux.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[{"id":"d1","filename":"handbook.pdf","file_type":"pdf","file_size":2048,"uploaded_at":"2024-03-01T00:00:00Z","is_processed":true}],"total":1,"skip":0,"limit":20}`))
	})
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"The library opens at 8 AM.","lang":"en","mode_used":"rasa"}`))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy"}`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL
}

// runCLI executes chatctl with a temp credentials file and captures stdout.
func runCLI(t *testing.T, credPath, serverURL string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(append([]string{"--server", serverURL, "--credentials", credPath, "--log-level", "error"}, args...))

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := root.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestLoginCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	output, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "secret123")
	if err != nil {
		t.Fatalf("login error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Logged in as admin (admin)") {
		t.Errorf("unexpected login output: %s", output)
	}

	// Credentials are persisted for the next invocation.
	data, err := os.ReadFile(credPath)
	if err != nil {
		t.Fatalf("read credentials: %v", err)
	}
	if !strings.Contains(string(data), "tok-abc") {
		t.Errorf("token not persisted: %s", data)
	}
}

func TestLoginCommand_InvalidCredentials(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	_, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}
	if err.Error() != "Invalid credentials" {
		t.Errorf("expected backend detail, got: %v", err)
	}
	if _, statErr := os.Stat(credPath); !os.IsNotExist(statErr) {
		t.Error("failed login must not persist credentials")
	}
}

func TestWhoamiAcrossInvocations(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "secret123"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	// A fresh invocation restores the session from disk.
	output, err := runCLI(t, credPath, url, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "admin@college.edu") {
		t.Errorf("expected restored session in output: %s", output)
	}
}

func TestLogoutCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "secret123"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if _, err := runCLI(t, credPath, url, "logout"); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	if _, statErr := os.Stat(credPath); !os.IsNotExist(statErr) {
		t.Error("logout must remove the credentials file")
	}

	// Logging out again is fine.
	if _, err := runCLI(t, credPath, url, "logout"); err != nil {
		t.Fatalf("second logout error: %v", err)
	}

	output, err := runCLI(t, credPath, url, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if !strings.Contains(output, "Not logged in.") {
		t.Errorf("expected logged-out whoami, got: %s", output)
	}
}

func TestOverviewCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "secret123"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, credPath, url, "overview")
	if err != nil {
		t.Fatalf("overview error: %v", err)
	}
	if !strings.Contains(output, "Users:     42 total, 7 active") {
		t.Errorf("unexpected overview output: %s", output)
	}
}

func TestOverviewCommand_RequiresLogin(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	_, err := runCLI(t, credPath, url, "overview")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Errorf("expected not-logged-in error, got: %v", err)
	}
}

func TestDocsCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, credPath, url, "login", "--email", "admin@college.edu", "--password", "secret123"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, credPath, url, "docs")
	if err != nil {
		t.Fatalf("docs error: %v", err)
	}
	if !strings.Contains(output, "handbook.pdf") {
		t.Errorf("expected document listing, got: %s", output)
	}
	if !strings.Contains(output, "FILENAME") {
		t.Errorf("expected table header, got: %s", output)
	}
}

func TestChatCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	// Chat works without a session.
	output, err := runCLI(t, credPath, url, "chat", "when", "does", "the", "library", "open")
	if err != nil {
		t.Fatalf("chat error: %v", err)
	}
	if !strings.Contains(output, "The library opens at 8 AM.") {
		t.Errorf("unexpected chat output: %s", output)
	}
}

func TestHealthCommand(t *testing.T) {
	url := startStubBackend(t)
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	output, err := runCLI(t, credPath, url, "health")
	if err != nil {
		t.Fatalf("health error: %v", err)
	}
	if !strings.Contains(output, "healthy") {
		t.Errorf("unexpected health output: %s", output)
	}
}
