package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
)

// HTTPClient implements DataSource by calling the FitProgram REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// completions live on the remote server (accessed over Tailscale).
// The server identifies the caller, so userID arguments are ignored.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("httpclient: %s: %w", path, planner.ErrDayNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// getJSON fetches path and decodes the body into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, params url.Values, what string, out any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", what, err)
	}
	return nil
}

func weightParams(weightKg float64) url.Values {
	if weightKg <= 0 {
		return nil
	}
	v := url.Values{}
	v.Set("weight_kg", strconv.FormatFloat(weightKg, 'f', -1, 64))
	return v
}

func (c *HTTPClient) Program(ctx context.Context) (*planner.ProgramView, error) {
	var view planner.ProgramView
	if err := c.getJSON(ctx, "/api/v1/program", nil, "program", &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) WorkoutByDay(ctx context.Context, day int) (*program.Workout, error) {
	var w program.Workout
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/program/days/%d", day), nil, "workout", &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) WorkoutsByWeek(ctx context.Context, week int) ([]program.Workout, error) {
	var ws []program.Workout
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/program/weeks/%d", week), nil, "workouts", &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (c *HTTPClient) WorkoutProgress(ctx context.Context, day, _ int) (*progress.Snapshot, error) {
	var snap progress.Snapshot
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/program/days/%d/progress", day), nil, "progress", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *HTTPClient) Summary(ctx context.Context, weightKg float64, _ int) (*progress.Summary, error) {
	var s progress.Summary
	if err := c.getJSON(ctx, "/api/v1/summary", weightParams(weightKg), "summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) WeekSummary(ctx context.Context, week int, weightKg float64, _ int) (*progress.Summary, error) {
	var s progress.Summary
	path := fmt.Sprintf("/api/v1/program/weeks/%d/progress", week)
	if err := c.getJSON(ctx, path, weightParams(weightKg), "week summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) NextWorkout(ctx context.Context, _ int) (*planner.Next, error) {
	var next planner.Next
	if err := c.getJSON(ctx, "/api/v1/next", nil, "next workout", &next); err != nil {
		return nil, err
	}
	return &next, nil
}
