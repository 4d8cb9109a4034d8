package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/logging"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/mockdata"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(srv.URL, logging.Discard(), opts...)
	t.Cleanup(c.Close)
	return c
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/admin-login" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "admin@college.edu" || req["password"] != "secret123" {
			t.Errorf("unexpected credentials: %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "tok-abc",
			"token_type": "bearer",
			"user": {
				"id": "1", "username": "admin", "email": "admin@college.edu",
				"role": "admin", "is_active": true,
				"created_at": "2024-01-01T00:00:00Z"
			}
		}`))
	}))

	resp, err := c.Login(context.Background(), "admin@college.edu", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken != "tok-abc" {
		t.Errorf("expected token 'tok-abc', got %q", resp.AccessToken)
	}
	if !resp.User.IsAdmin() {
		t.Errorf("expected admin role, got %q", resp.User.Role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))

	_, err := c.Login(context.Background(), "admin@college.edu", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid credentials" {
		t.Errorf("expected backend detail message, got %q", err.Error())
	}
	if !IsAuthError(err) {
		t.Error("expected an auth error")
	}
}

func TestLogin_MalformedErrorBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Login failed" {
		t.Errorf("expected generic fallback message, got %q", err.Error())
	}
}

func TestLogin_NetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", logging.Discard())
	defer c.Close()

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if IsAuthError(err) {
		t.Error("transport failure must be distinguishable from an auth rejection")
	}
}

func TestLoginWithGoogle_GenericFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{}`))
	}))

	_, err := c.LoginWithGoogle(context.Background(), "bad-id-token")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Google authentication failed" {
		t.Errorf("expected generic google message, got %q", err.Error())
	}
}

func TestRegister_DoesNotReturnToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"message":"","user":{"id":"2","username":"stu","email":"s@college.edu","role":"user","is_active":true,"created_at":"2024-02-01T00:00:00Z"}}`))
	}))

	resp, err := c.Register(context.Background(), model.RegisterRequest{
		Username: "stu", Email: "s@college.edu", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Message != "Registration successful" {
		t.Errorf("expected default success message, got %q", resp.Message)
	}
	if resp.User.Username != "stu" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestAnalyticsOverview_CacheHitAvoidsNetwork(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Write([]byte(`{"users":{"total":10,"active":2},"documents":{"total":3,"processed":3},"queries":{"total":7,"langchain":7},"recent_documents":[],"recent_queries":[]}`))
	}), WithTokenSource(StaticToken("tok-abc")))

	ctx := context.Background()
	first, err := c.AnalyticsOverview(ctx)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	second, err := c.AnalyticsOverview(ctx)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected exactly 1 network call, got %d", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached payload differs from original")
	}
	if first.Users.Total != 10 {
		t.Errorf("unexpected payload: %+v", first)
	}
}

func TestAnalyticsOverview_ReturnsCopy(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":{"total":10,"active":2},"documents":{"total":3,"processed":3},"queries":{"total":7,"langchain":7},"recent_documents":[{"id":"d1","filename":"handbook.pdf","file_type":"pdf","file_size":1024,"uploaded_at":"2024-03-01T00:00:00Z","is_processed":true}],"recent_queries":[{"id":"q1","question":"What are the admission requirements?","mode_used":"rasa","created_at":"2024-03-01T00:00:00Z"}]}`))
	}))

	ctx := context.Background()
	first, err := c.AnalyticsOverview(ctx)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}

	// Mutating a returned value must not leak into the cached payload.
	first.RecentQueries[0].Question = "mutated by caller"
	first.RecentDocuments[0].Filename = "mutated.pdf"

	second, err := c.AnalyticsOverview(ctx)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if second.RecentQueries[0].Question != "What are the admission requirements?" {
		t.Errorf("cached query mutated through caller: %q", second.RecentQueries[0].Question)
	}
	if second.RecentDocuments[0].Filename != "handbook.pdf" {
		t.Errorf("cached document mutated through caller: %q", second.RecentDocuments[0].Filename)
	}
}

func TestAnalyticsOverview_FallbackOnServerError(t *testing.T) {
	gen := mockdata.New(logging.Discard())
	defer gen.Stop()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}), WithFallback(gen))

	got, err := c.AnalyticsOverview(context.Background())
	if err != nil {
		t.Fatalf("expected silent fallback, got error: %v", err)
	}
	if !reflect.DeepEqual(got, gen.Overview()) {
		t.Error("fallback payload does not match the generator's dataset")
	}

	// The synthetic result is cached under the analytics key.
	cached, ok := c.cache.Get(CacheKeyAnalyticsOverview)
	if !ok {
		t.Fatal("expected fallback payload to be cached")
	}
	if !reflect.DeepEqual(cached, got) {
		t.Error("cached payload differs from returned payload")
	}
}

func TestAnalyticsOverview_FallbackOnUnreachableBackend(t *testing.T) {
	gen := mockdata.New(logging.Discard())
	defer gen.Stop()

	c := New("http://127.0.0.1:1", logging.Discard(), WithFallback(gen))
	defer c.Close()

	got, err := c.AnalyticsOverview(context.Background())
	if err != nil {
		t.Fatalf("expected silent fallback, got error: %v", err)
	}
	if got.Users.Total != 1247 {
		t.Errorf("expected seeded synthetic data, got %+v", got.Users)
	}
}

func TestAnalyticsOverview_NoFallbackPropagatesError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))

	_, err := c.AnalyticsOverview(context.Background())
	if err == nil {
		t.Fatal("expected error without a fallback source")
	}
	if err.Error() != "API Error: 503 - maintenance" {
		t.Errorf("unexpected error format: %q", err.Error())
	}
}

func TestDocuments_ErrorFormat(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))

	_, err := c.Documents(context.Background(), 0, 20)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "API Error: 404 - not found" {
		t.Errorf("unexpected error format: %q", err.Error())
	}
}

func TestDocuments_Pagination(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.RawQuery; got != "skip=40&limit=10" {
			t.Errorf("unexpected query %q", got)
		}
		w.Write([]byte(`{"documents":[{"id":"d1","filename":"syllabus.pdf","file_type":"application/pdf","file_size":1024,"uploaded_at":"2024-03-01T10:00:00Z","is_processed":true}],"total":41,"skip":40,"limit":10}`))
	}))

	page, err := c.Documents(context.Background(), 40, 10)
	if err != nil {
		t.Fatalf("Documents failed: %v", err)
	}
	if page.Total != 41 || len(page.Documents) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}
	if page.Documents[0].Filename != "syllabus.pdf" {
		t.Errorf("unexpected document: %+v", page.Documents[0])
	}
}

func TestUploadDocument(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-document" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "handbook.pdf" {
			t.Errorf("unexpected filename %q", hdr.Filename)
		}
		w.Write([]byte(`{"status":"ok","message":"queued for processing"}`))
	}), WithTokenSource(StaticToken("tok-abc")))

	resp, err := c.UploadDocument(context.Background(), "handbook.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadDocument failed: %v", err)
	}
	if resp.Message != "queued for processing" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestUploadDocument_ErrorFormat(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte("file too large"))
	}))

	_, err := c.UploadDocument(context.Background(), "big.pdf", strings.NewReader("data"))
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Upload Error: 413 - file too large" {
		t.Errorf("unexpected error format: %q", err.Error())
	}
}

func TestChat(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("chat must not carry a bearer token, got %q", got)
		}
		w.Write([]byte(`{"response":"The library opens at 8 AM.","lang":"en","mode_used":"langchain","confidence":0.92}`))
	}), WithTokenSource(StaticToken("tok-abc")))

	resp, err := c.Chat(context.Background(), model.ChatRequest{
		Message: "library timings?", Language: "en", Mode: model.ChatModeAuto,
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.ModeUsed != "langchain" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWithToken_SharesCache(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"users":{"total":1,"active":1},"documents":{"total":0,"processed":0},"queries":{"total":0,"langchain":0},"recent_documents":[],"recent_queries":[]}`))
	}))

	ctx := context.Background()
	if _, err := c.WithToken("tok-a").AnalyticsOverview(ctx); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if _, err := c.WithToken("tok-b").AnalyticsOverview(ctx); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected token-bound clones to share the cache, got %d calls", calls)
	}
}
