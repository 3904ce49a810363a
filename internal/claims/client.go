package claims

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client submits claims to a remote claimpilot API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the API at baseURL, e.g. "http://127.0.0.1:8722".
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit posts a draft claim and returns the stored claim with its assigned ID.
func (c *Client) Submit(ctx context.Context, draft Draft) (*Claim, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("marshalling claim: %w", err)
	}

	url := c.baseURL + "/api/claims"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach claims API at %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("claims API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var claim Claim
	if err := json.Unmarshal(respBody, &claim); err != nil {
		return nil, fmt.Errorf("unmarshalling stored claim: %w", err)
	}
	return &claim, nil
}
