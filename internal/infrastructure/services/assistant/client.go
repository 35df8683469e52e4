// Package assistant implements the AI collaborator against any
// OpenAI-compatible chat completions endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tickform/internal/application/intake/usecases"
	"tickform/internal/domain/draft"
)

const (
	followupSystemPrompt = "You are an IT helpdesk triage assistant. " +
		"Ask the minimum number of targeted follow-up questions to diagnose the issue. " +
		"Prefer multiple-choice when possible. Never ask for passwords or sensitive secrets. " +
		"Respond with a JSON object of the form " +
		`{"questions": [{"id": string, "type": "yes_no"|"multiple_choice"|"free_text", ` +
		`"question": string, "choices": [string], "required": bool}]} ` +
		"with 3 to 7 questions. For non-multiple-choice questions set choices to an empty array."

	finalizeSystemPrompt = "Rewrite IT support tickets into clear, actionable descriptions. " +
		"Never include or request passwords or secrets. Respond with a JSON object of the form " +
		`{"improved_description": string, "category_guess": string, ` +
		`"urgency_guess": "low"|"medium"|"high", "missing_info": [string]}.`
)

// Client talks to an OpenAI-compatible chat completions API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
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

// NewClient creates a new assistant client.
//
// Parameters:
//   - baseURL: API base URL (e.g., "https://api.openai.com/v1")
//   - apiKey: bearer token for the API
//   - model: model identifier to request
func NewClient(baseURL, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type followupPayload struct {
	Questions []draft.Question `json:"questions"`
}

// GenerateFollowups asks the model for a small set of clarifying questions.
func (c *Client) GenerateFollowups(ctx context.Context, title, description string) ([]draft.Question, error) {
	userPrompt := fmt.Sprintf("Title: %s\nDescription: %s\nReturn follow-up questions.", title, description)

	var payload followupPayload
	if err := c.complete(ctx, followupSystemPrompt, userPrompt, &payload); err != nil {
		return nil, fmt.Errorf("generate followups: %w", err)
	}

	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("generate followups: model returned no questions")
	}
	for _, q := range payload.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("generate followups: %w", err)
		}
	}

	return payload.Questions, nil
}

// ImproveTicket produces the final rewritten ticket from the original
// content plus the collected follow-up answers.
func (c *Client) ImproveTicket(ctx context.Context, title, description string, answers map[string]string) (*usecases.ImprovedTicket, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("improve ticket: marshal answers: %w", err)
	}

	userPrompt := fmt.Sprintf(
		"Title: %s\nOriginal description:\n%s\n\nFollow-up answers JSON:\n%s\n\nProduce the final structured result.",
		title, description, string(answersJSON))

	var final usecases.ImprovedTicket
	if err := c.complete(ctx, finalizeSystemPrompt, userPrompt, &final); err != nil {
		return nil, fmt.Errorf("improve ticket: %w", err)
	}

	if final.ImprovedDescription == "" {
		return nil, fmt.Errorf("improve ticket: model returned empty description")
	}

	return &final, nil
}

// complete performs one chat completion call and decodes the JSON content of
// the first choice into result.
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, result any) error {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return fmt.Errorf("api error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return fmt.Errorf("api error: no choices returned")
	}

	content := chatResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), result); err != nil {
		return fmt.Errorf("unmarshal content: %w", err)
	}

	return nil
}
