package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the intake API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new intake API client.
//
// baseURL is the API base URL (e.g. "http://127.0.0.1:5000").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping checks that the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/ping", c.baseURL)

	if err := c.doRequest(ctx, http.MethodGet, url, nil, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// StartDraft opens a timed draft for the user. Starting a draft is not
// idempotent on the server side: it resets the timing clock, so callers
// should not retry blindly.
func (c *Client) StartDraft(ctx context.Context, userID uint, table int) error {
	url := fmt.Sprintf("%s/api/draft/start", c.baseURL)

	body := map[string]any{"user_id": userID}
	if table > 0 {
		body["table"] = table
	}

	if err := c.doRequest(ctx, http.MethodPost, url, body, nil); err != nil {
		return fmt.Errorf("start draft: %w", err)
	}
	return nil
}

// CreateTicket submits a ticket directly, without AI assistance.
func (c *Client) CreateTicket(ctx context.Context, userID uint, title, description string) (*TicketResult, error) {
	url := fmt.Sprintf("%s/api/tickets", c.baseURL)

	body := map[string]any{
		"user_id":     userID,
		"title":       title,
		"description": description,
	}

	var result TicketResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &result, nil
}

// RequestFollowups asks the server whether the draft needs clarifying
// questions before it can be finalized.
func (c *Client) RequestFollowups(ctx context.Context, userID uint, title, description string) (*FollowupsResult, error) {
	url := fmt.Sprintf("%s/api/ai/followups", c.baseURL)

	body := map[string]any{
		"user_id":     userID,
		"title":       title,
		"description": description,
	}

	var result FollowupsResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("request followups: %w", err)
	}
	return &result, nil
}

// Finalize submits the collected follow-up answers and produces the
// final ticket record.
func (c *Client) Finalize(ctx context.Context, userID uint, answers map[string]string) (*FinalizeResult, error) {
	url := fmt.Sprintf("%s/api/ai/finalize", c.baseURL)

	body := map[string]any{
		"user_id": userID,
		"answers": answers,
	}

	var result FinalizeResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	return &result, nil
}

// ListTickets retrieves the most recent submitted tickets.
func (c *Client) ListTickets(ctx context.Context) ([]TicketSummary, error) {
	url := fmt.Sprintf("%s/api/tickets", c.baseURL)

	var result struct {
		Tickets []TicketSummary `json:"tickets"`
	}
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &result); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return result.Tickets, nil
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newNetworkError(fmt.Sprintf("marshal request: %v", err), err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return newNetworkError(fmt.Sprintf("create request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newNetworkError(fmt.Sprintf("send request: %v", err), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(fmt.Sprintf("read response: %v", err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiResp apiResponse
		if json.Unmarshal(respBody, &apiResp) == nil && apiResp.Error != nil && apiResp.Error.Message != "" {
			return newBackendError(apiResp.Error.Message)
		}
		return newBackendError(fmt.Sprintf("api error: status=%d", resp.StatusCode))
	}

	if result == nil {
		return nil
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return newBackendError(fmt.Sprintf("unmarshal response: %v", err))
	}

	if !apiResp.Success {
		msg := apiResp.Message
		if apiResp.Error != nil && apiResp.Error.Message != "" {
			msg = apiResp.Error.Message
		}
		if msg == "" {
			msg = "request failed"
		}
		return newBackendError(msg)
	}

	if apiResp.Data == nil {
		return nil
	}

	// Re-marshal and unmarshal to convert Data to the target type
	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return newBackendError(fmt.Sprintf("marshal data: %v", err))
	}

	if err := json.Unmarshal(dataBytes, result); err != nil {
		return newBackendError(fmt.Sprintf("unmarshal data: %v", err))
	}

	return nil
}
