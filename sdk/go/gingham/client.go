package gingham

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL is the root URL of the Gingham server (e.g. "http://localhost:8080").
	BaseURL string

	// HTTPClient is an optional custom HTTP client. If nil, a default client
	// with a 30-second timeout is used.
	HTTPClient *http.Client

	// Timeout applies to individual API requests. Defaults to 30 seconds.
	Timeout time.Duration
}

// Client is an HTTP client for the Gingham planning API.
// All methods are safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client from the given configuration.
// Returns an error if BaseURL is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gingham: BaseURL is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  httpClient,
	}, nil
}

// CreateGoalPlan generates a structured goal plan from the questionnaire.
func (c *Client) CreateGoalPlan(ctx context.Context, in GoalInput) (*GoalPlan, error) {
	var resp GoalPlan
	if err := c.post(ctx, "/v1/plans/goal", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePicnicPlan generates a weather-aware picnic plan. The server
// geocodes the location and fetches the forecast; check WeatherSource on
// the result to see whether the forecast was available.
func (c *Client) CreatePicnicPlan(ctx context.Context, in PicnicInput) (*PicnicPlan, error) {
	var resp PicnicPlan
	if err := c.post(ctx, "/v1/plans/picnic", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOptions are optional filters for ListPlans.
type ListOptions struct {
	Kind  string // goal | picnic
	Limit int
}

// ListPlans returns stored plan summaries, newest first.
func (c *Client) ListPlans(ctx context.Context, opts *ListOptions) ([]PlanSummary, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Kind != "" {
			params.Set("kind", opts.Kind)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
	}

	path := "/v1/plans"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var resp listResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// GetPlan retrieves a stored plan with its full payload.
func (c *Client) GetPlan(ctx context.Context, planID string) (*StoredPlan, error) {
	var resp StoredPlan
	if err := c.get(ctx, "/v1/plans/"+url.PathEscape(planID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LatestPlan retrieves the most recently stored plan of a kind ("goal" or
// "picnic").
func (c *Client) LatestPlan(ctx context.Context, kind string) (*StoredPlan, error) {
	var resp StoredPlan
	if err := c.get(ctx, "/v1/plans/latest?kind="+url.QueryEscape(kind), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportText exports a picnic plan as a plain-text summary.
func (c *Client) ExportText(ctx context.Context, planID string) (string, error) {
	body, err := c.getRaw(ctx, "/v1/plans/"+url.PathEscape(planID)+"/export?format=text")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ExportCalendar exports a picnic plan as an iCalendar (.ics) document.
func (c *Client) ExportCalendar(ctx context.Context, planID string) ([]byte, error) {
	return c.getRaw(ctx, "/v1/plans/"+url.PathEscape(planID)+"/export?format=ics")
}

// ExportShare exports a picnic plan as a share message with a maps URL.
func (c *Client) ExportShare(ctx context.Context, planID string) (*ShareExport, error) {
	var resp ShareExport
	if err := c.get(ctx, "/v1/plans/"+url.PathEscape(planID)+"/export?format=share", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Weather retrieves the forecast for a coordinate. When date (YYYY-MM-DD)
// is non-empty, the response includes advisory tips for that day.
func (c *Client) Weather(ctx context.Context, lat, lng float64, date string) (*WeatherResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if date != "" {
		params.Set("date", date)
	}

	var resp WeatherResponse
	if err := c.get(ctx, "/v1/weather?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Locations searches for picnic-suitable places matching the query.
func (c *Client) Locations(ctx context.Context, query string) ([]Place, error) {
	var resp locationsResponse
	if err := c.get(ctx, "/v1/locations?q="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return resp.Places, nil
}

// Health checks the server's health status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get(ctx, "/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type listResponse struct {
	Plans []PlanSummary `json:"plans"`
}

type locationsResponse struct {
	Places []Place `json:"places"`
}

// ---------------------------------------------------------------------------
// HTTP transport
// ---------------------------------------------------------------------------

// apiEnvelope is the server's standard response wrapper.
type apiEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// apiErrorEnvelope is the server's standard error response wrapper.
type apiErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, body any, dest any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gingham: marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("gingham: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doRequest(req, dest)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("gingham: create request: %w", err)
	}

	return c.doRequest(req, dest)
}

// getRaw fetches a non-JSON endpoint (text and calendar exports) and returns
// the body verbatim.
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("gingham: create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gingham: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gingham: read response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) doRequest(req *http.Request, dest any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("gingham: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gingham: read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}
	if dest == nil {
		return nil
	}

	// Unwrap the server's { "data": ... } envelope.
	var envelope apiEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return fmt.Errorf("gingham: decode response envelope: %w", err)
	}
	if envelope.Data == nil {
		// Fallback: some endpoints may not wrap in "data".
		return json.Unmarshal(bodyBytes, dest)
	}
	return json.Unmarshal(envelope.Data, dest)
}

func parseErrorResponse(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Code = http.StatusText(statusCode)
		apiErr.Message = string(body)
	}

	return apiErr
}
