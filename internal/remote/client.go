// Package remote stores completions on a FitProgram server through its
// REST API, so the CLI can share progress with the server.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/fitprogram/internal/progress"
)

// Client is a progress.Store backed by the server. The server identifies
// the caller, so userID arguments are ignored.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
	backoff    time.Duration
}

// Compile-time check: *Client satisfies progress.Store.
var _ progress.Store = (*Client)(nil)

// NewClient creates a client for the server at serverURL. apiKey is sent
// as X-API-Key on mutations.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoff: time.Second,
	}
}

// Load fetches the caller's completion state.
func (c *Client) Load(ctx context.Context, _ int) (progress.CompletionState, error) {
	st := progress.NewCompletionState()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/v1/completions", nil)
	if err != nil {
		return st, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return st, fmt.Errorf("fetching completions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return st, fmt.Errorf("completions request failed (status %d): %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return st, fmt.Errorf("decoding completions: %w", err)
	}
	if st.Exercises == nil {
		st.Exercises = make(map[string]bool)
	}
	if st.Days == nil {
		st.Days = make(map[int]bool)
	}
	return st, nil
}

// SetExercise marks or clears one exercise on the server.
func (c *Client) SetExercise(ctx context.Context, _ int, day, instanceID int, done bool) error {
	return c.send(ctx, method(done), fmt.Sprintf("/api/v1/completions/days/%d/exercises/%d", day, instanceID))
}

// SetDay marks or clears a whole day on the server.
func (c *Client) SetDay(ctx context.Context, _ int, day int, done bool) error {
	return c.send(ctx, method(done), fmt.Sprintf("/api/v1/completions/days/%d", day))
}

// Reset clears all of the caller's completions on the server.
func (c *Client) Reset(ctx context.Context, _ int) error {
	return c.send(ctx, http.MethodDelete, "/api/v1/completions")
}

func method(done bool) string {
	if done {
		return http.MethodPut
	}
	return http.MethodDelete
}

// send issues a mutation. Network errors and 5xx responses are retried up
// to 3 times with exponential backoff; 4xx responses fail immediately.
func (c *Client) send(ctx context.Context, method, path string) error {
	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff << uint(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("%s %s failed (status %d): %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode < 500 {
			return lastErr
		}
	}

	return fmt.Errorf("after 3 attempts: %w", lastErr)
}
