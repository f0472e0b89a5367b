package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds every backend call. Attempt logging is a side
// channel; a slow backend must not hold goroutines for long.
const defaultTimeout = 10 * time.Second

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client for the API at baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPClient) CreateSession(ctx context.Context, learnerID, skillID int) (string, error) {
	body := map[string]int{"user_id": learnerID, "skill_id": skillID}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, "/api/v1/practice-sessions", body, &resp); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	if resp.SessionID == "" {
		return "", fmt.Errorf("create session: empty session_id in response")
	}
	return resp.SessionID, nil
}

func (c *HTTPClient) RecordAttempt(ctx context.Context, entry AttemptLogEntry) error {
	if err := c.postJSON(ctx, "/api/v1/attempts", entry, nil); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (c *HTTPClient) FinishSession(ctx context.Context, sessionID string) error {
	path := "/api/v1/practice-sessions/" + url.PathEscape(sessionID) + "/finish"
	if err := c.postJSON(ctx, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	return nil
}

func (c *HTTPClient) CreateReport(ctx context.Context, report Report) error {
	if err := c.postJSON(ctx, "/api/v1/reports", report, nil); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// postJSON sends body to path and decodes the response into out when
// out is non-nil. Non-2xx statuses are errors carrying a snippet of
// the response body.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
