package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// CacheKeyAnalyticsOverview is the response-cache key for the overview.
const CacheKeyAnalyticsOverview = "analytics_overview"

// AnalyticsOverview returns the dashboard overview data.
//
// Resolution order: response cache, then the backend, then — when a
// fallback source is configured — the synthetic dataset. The fallback is
// silent: a degraded-but-populated dashboard beats an error page for the
// always-visible widgets. Whatever is returned is cached under the same key,
// so a recovered backend is retried only after the TTL lapses.
func (c *Client) AnalyticsOverview(ctx context.Context) (model.AnalyticsOverview, error) {
	if cached, ok := c.cache.Get(CacheKeyAnalyticsOverview); ok {
		return copyOverview(cached), nil
	}

	var overview model.AnalyticsOverview
	err := c.getJSON(ctx, "/api/analytics/overview", "API", &overview)
	if err != nil {
		if c.fallback == nil {
			return model.AnalyticsOverview{}, err
		}
		c.logger.Warn("backend unavailable, serving synthetic analytics", "error", err)
		overview = c.fallback.Overview()
	}

	c.cache.Set(CacheKeyAnalyticsOverview, overview)
	return copyOverview(overview), nil
}

// copyOverview detaches the recent lists so callers can never mutate the
// cached payload through a returned value.
func copyOverview(ov model.AnalyticsOverview) model.AnalyticsOverview {
	out := ov
	out.RecentDocuments = append([]model.Document(nil), ov.RecentDocuments...)
	out.RecentQueries = append([]model.Query(nil), ov.RecentQueries...)
	return out
}

// Documents lists uploaded documents with pagination.
func (c *Client) Documents(ctx context.Context, skip, limit int) (*model.DocumentPage, error) {
	var page model.DocumentPage
	path := fmt.Sprintf("/api/documents?skip=%d&limit=%d", skip, limit)
	if err := c.getJSON(ctx, path, "API", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Queries lists chatbot queries with pagination.
func (c *Client) Queries(ctx context.Context, skip, limit int) (*model.QueryPage, error) {
	var page model.QueryPage
	path := fmt.Sprintf("/api/queries?skip=%d&limit=%d", skip, limit)
	if err := c.getJSON(ctx, path, "API", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Users lists portal users with pagination.
func (c *Client) Users(ctx context.Context, skip, limit int) (*model.UserPage, error) {
	var page model.UserPage
	path := fmt.Sprintf("/api/users?skip=%d&limit=%d", skip, limit)
	if err := c.getJSON(ctx, path, "API", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UploadDocument streams a file to the backend as multipart form data.
func (c *Client) UploadDocument(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-document", pr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{Category: "Upload", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out model.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse upload response: %w", err)
	}
	return &out, nil
}
