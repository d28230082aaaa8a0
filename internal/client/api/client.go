package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nilesh2630/floorplan/pkg/api"
)

// ClientAPI defines the server operations used by the client commands and
// the sync coordinator.
type ClientAPI interface {
	// Register creates a new user account
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login authenticates and returns an access token
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Health probes server reachability without authentication
	Health(ctx context.Context) error

	// CreateFloorPlan creates a new floor plan
	CreateFloorPlan(ctx context.Context, accessToken string, req api.CreateFloorPlanRequest) (*api.FloorPlan, error)

	// ListFloorPlans returns all floor plans, most recently modified first
	ListFloorPlans(ctx context.Context, accessToken string) ([]api.FloorPlan, error)

	// GetFloorPlan returns a single floor plan by id
	GetFloorPlan(ctx context.Context, accessToken, id string) (*api.FloorPlan, error)

	// UpdateFloorPlan submits a conditional update. Returns *ConflictError
	// when the expected version is stale.
	UpdateFloorPlan(ctx context.Context, accessToken, id string, req api.UpdateFloorPlanRequest) (*api.FloorPlan, error)

	// DeleteFloorPlan removes a floor plan
	DeleteFloorPlan(ctx context.Context, accessToken, id string) error

	// SyncFloorPlan folds a batch of deltas into a floor plan in one step
	SyncFloorPlan(ctx context.Context, accessToken, id string, req api.SyncBatchRequest) (*api.FloorPlan, error)
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil)
}

func (c *Client) CreateFloorPlan(ctx context.Context, accessToken string, req api.CreateFloorPlanRequest) (*api.FloorPlan, error) {
	var resp api.FloorPlan
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/floorplans", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create floor plan request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) ListFloorPlans(ctx context.Context, accessToken string) ([]api.FloorPlan, error) {
	var resp api.ListFloorPlansResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/floorplans", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list floor plans request failed: %w", err)
	}
	return resp.FloorPlans, nil
}

func (c *Client) GetFloorPlan(ctx context.Context, accessToken, id string) (*api.FloorPlan, error) {
	var resp api.FloorPlan
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/floorplans/"+id, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get floor plan request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateFloorPlan(ctx context.Context, accessToken, id string, req api.UpdateFloorPlanRequest) (*api.FloorPlan, error) {
	var resp api.FloorPlan
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/floorplans/"+id, accessToken, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteFloorPlan(ctx context.Context, accessToken, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/floorplans/"+id, accessToken, nil, nil)
}

func (c *Client) SyncFloorPlan(ctx context.Context, accessToken, id string, req api.SyncBatchRequest) (*api.FloorPlan, error) {
	var resp api.FloorPlan
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/floorplans/"+id+"/sync", accessToken, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs the HTTP request and maps response statuses onto the
// client error taxonomy.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) mapError(statusCode int, respBody []byte) error {
	switch {
	case statusCode == http.StatusConflict:
		var conflict api.ConflictResponse
		if err := json.Unmarshal(respBody, &conflict); err == nil && conflict.Latest != nil {
			return &ConflictError{Latest: conflict.Latest}
		}
		// 409 without a latest document comes from duplicate registration
		return serverMessage(ErrValidation, statusCode, respBody)
	case statusCode == http.StatusNotFound:
		return serverMessage(ErrNotFound, statusCode, respBody)
	case statusCode == http.StatusUnauthorized:
		return serverMessage(ErrUnauthorized, statusCode, respBody)
	case statusCode >= 500:
		return serverMessage(ErrUnavailable, statusCode, respBody)
	default:
		return serverMessage(ErrValidation, statusCode, respBody)
	}
}

func serverMessage(sentinel error, statusCode int, respBody []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("%w: server error (%d): %s", sentinel, statusCode, errResp.Message)
	}
	return fmt.Errorf("%w: request failed with status %d", sentinel, statusCode)
}
