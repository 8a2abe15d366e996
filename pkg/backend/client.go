package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

var (
	// ErrUnauthorized is returned on a 401 from an authenticated request.
	// The client itself never clears the stored session; teardown belongs
	// to the auth service, which subscribes via OnUnauthorized.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnreachable wraps network-level failures so callers can show a
	// generic "can't connect" message.
	ErrUnreachable = errors.New("unable to connect to server")
)

// APIError is a server-reported business error, message passed through
// from the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client wraps every call to the external water-quality REST backend:
// it attaches the bearer token, logs every response error with status,
// message, URL and method, and reports 401s through a single hook.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource

	// OnUnauthorized fires once per 401 on an authenticated request.
	OnUnauthorized func()

	RetryAttempts int
	RetryDelay    time.Duration
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens:        tokens,
		RetryAttempts: 2,
		RetryDelay:    time.Second,
	}
}

func (c *Client) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBackendClient)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	authenticated := false
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger().Error("Backend request failed",
			zap.String("url", reqURL),
			zap.String("method", method),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		message := decodeErrorMessage(resp.Body)
		c.logger().Error("Backend returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
			zap.String("url", reqURL),
			zap.String("method", method))

		// 401 on the login call itself means bad credentials, not a dead
		// session; only authenticated requests report through the hook.
		if resp.StatusCode == http.StatusUnauthorized && authenticated {
			if c.OnUnauthorized != nil {
				c.OnUnauthorized()
			}
			return ErrUnauthorized
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding backend response: %w", err)
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// getWithRetry re-attempts idempotent reads with a fixed delay. Mutating
// calls never go through here.
func (c *Client) getWithRetry(ctx context.Context, path string, query url.Values, out any) error {
	attempts := c.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = c.do(ctx, http.MethodGet, path, query, nil, out)
		if lastErr == nil {
			return nil
		}
		// a dead session will not come back on its own
		if errors.Is(lastErr, ErrUnauthorized) {
			return lastErr
		}
		if i < attempts-1 {
			select {
			case <-time.After(c.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// --- auth endpoints ---

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/signup", nil, req, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

func (c *Client) Check(ctx context.Context) (*models.CheckResponse, error) {
	var out models.CheckResponse
	if err := c.do(ctx, http.MethodGet, "/check", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- dashboard data endpoints ---

func (c *Client) SummaryInsights(ctx context.Context) (models.SummaryInsights, error) {
	var out models.SummaryInsights
	if err := c.getWithRetry(ctx, "/summary-insights", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Warnings(ctx context.Context) ([]models.Warning, error) {
	var out []models.Warning
	if err := c.getWithRetry(ctx, "/warnings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecentData(ctx context.Context) ([]models.Reading, error) {
	var out []models.Reading
	if err := c.getWithRetry(ctx, "/recent-data", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CorrelationData(ctx context.Context, location string) (*models.CorrelationData, error) {
	query := url.Values{"location": {location}}
	var out models.CorrelationData
	if err := c.getWithRetry(ctx, "/correlation-data", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Data(ctx context.Context, date, location string) ([]models.Reading, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	if location != "" {
		query.Set("location", location)
	}
	var out []models.Reading
	if err := c.getWithRetry(ctx, "/data", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllData is the admin table's one full fetch. No retry here: the admin
// screen surfaces the failure immediately instead of stalling.
func (c *Client) AllData(ctx context.Context) ([]models.Reading, error) {
	var out []models.Reading
	if err := c.do(ctx, http.MethodGet, "/all-data", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateData(ctx context.Context, input models.ReadingInput) error {
	return c.do(ctx, http.MethodPost, "/create-data", nil, input, nil)
}

func (c *Client) UpdateData(ctx context.Context, id int, input models.ReadingInput) error {
	return c.do(ctx, http.MethodPut, "/update-data/"+strconv.Itoa(id), nil, input, nil)
}

func (c *Client) DeleteData(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/delete-data/"+strconv.Itoa(id), nil, nil, nil)
}

// --- graph endpoints ---

func (c *Client) GraphData(ctx context.Context, startDate, endDate, location, dataType string) ([]models.GraphPoint, error) {
	query := url.Values{
		"startDate": {startDate},
		"endDate":   {endDate},
		"location":  {location},
		"dataType":  {dataType},
	}
	var out []models.GraphPoint
	if err := c.getWithRetry(ctx, "/graph-data", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompareGraphData returns the raw payload: the shape varies by backend
// version (array, wrapped array, or location-keyed map) and is decoded by
// pkg/chart at the boundary.
func (c *Client) CompareGraphData(ctx context.Context, startDate, endDate string, locations []string, dataType string) (json.RawMessage, error) {
	query := url.Values{
		"startDate": {startDate},
		"endDate":   {endDate},
		"locations": {strings.Join(locations, ",")},
		"dataType":  {dataType},
	}
	var out json.RawMessage
	if err := c.getWithRetry(ctx, "/compare-graph-data", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- admin user management ---

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.getWithRetry(ctx, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddUser(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/users", nil, req, nil)
}

func (c *Client) UpdateUser(ctx context.Context, id int, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+strconv.Itoa(id), nil, req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+strconv.Itoa(id), nil, nil, nil)
}
