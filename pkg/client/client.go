// Package client is a small Go client for the simulator's JSON API, for use
// by tooling that wants to run simulations against a deployed instance.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"procsim/internal/requests"
	"procsim/internal/responses"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// Simulate posts one simulation request and decodes the engine's response.
func (c *Client) Simulate(ctx context.Context, request requests.SimulateRequest) (*responses.SimulateResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encoding simulate request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/simulate", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting simulate request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("simulate failed with status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("simulate failed with status %d", resp.StatusCode)
	}

	var result responses.SimulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding simulate response: %w", err)
	}
	return &result, nil
}
