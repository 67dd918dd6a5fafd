package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taiwoajasa245/divine-answers/internal/guidance"
)

const DefaultTimeout = 90 * time.Second

// Error is a non-2xx relay reply.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	url    string
	client *http.Client
}

func New(url string) *Client {
	return &Client{url: url, client: &http.Client{Timeout: DefaultTimeout}}
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// Guidance asks the relay for a verse and explanation.
func (c *Client) Guidance(ctx context.Context, problem string, book guidance.Book) (*guidance.Response, error) {
	body, err := json.Marshal(guidance.Request{Problem: problem, Book: book})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &eb) == nil && strings.TrimSpace(eb.Error) != "" {
			msg = eb.Error
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	var out guidance.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
