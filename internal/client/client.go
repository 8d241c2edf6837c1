// Package client fetches the task list from the remote endpoint. One
// outbound call per process: GET <endpoint> returning a JSON array of
// tasks. Local mutations are never written back.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sandeepkv93/taskview/internal/model"
)

// DefaultTimeout bounds the one fetch when the caller does not set one.
const DefaultTimeout = 5 * time.Second

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string, timeout time.Duration) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("client: endpoint is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// FetchTasks performs the single GET against the task endpoint. The body
// is decoded verbatim; no schema validation beyond JSON well-formedness.
func (c *Client) FetchTasks(ctx context.Context) ([]model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var tasks []model.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}
