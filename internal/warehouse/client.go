// Package warehouse calls the managed analytics service that fronts the
// event warehouse. It is an optional data source: callers fall back to
// store-side aggregation whenever a call fails.
package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sunlight-admin/internal/analytics"
)

var (
	ErrUnauthenticated = errors.New("warehouse: unauthenticated")
	ErrNotFound        = errors.New("warehouse: no analytics for user")
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CopingTools asks the warehouse for a user's precomputed coping-tools
// stats. Auth and not-found failures are fail-closed sentinels the caller
// treats as "warehouse unavailable", never as a hard page error.
func (c *Client) CopingTools(ctx context.Context, userID string) (*analytics.CopingToolsStats, error) {
	body, _ := json.Marshal(map[string]string{"userId": userID})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analytics/coping-tools", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthenticated
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("warehouse: unexpected status %d", resp.StatusCode)
	}

	var stats analytics.CopingToolsStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("warehouse: decode response: %w", err)
	}
	return &stats, nil
}
