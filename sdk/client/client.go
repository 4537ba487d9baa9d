package client

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
	"time"
)

// Config represents the configuration for the modules API client
type Config struct {
	// BaseURL is the base URL of the API, without the /api prefix
	BaseURL string
	// Token is the bearer token sent with every request
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the modules API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// Module is a catalog module
type Module struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DisplayName    string    `json:"displayName"`
	Description    string    `json:"description"`
	PermissionType string    `json:"permissionType"`
	Category       string    `json:"category"`
	Icon           string    `json:"icon"`
	Route          string    `json:"route"`
	Color          string    `json:"color"`
	SortOrder      int       `json:"sortOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ModuleView is a module annotated with the caller's status in one scope
type ModuleView struct {
	Module
	IsActive    bool `json:"isActive"`
	CanActivate bool `json:"canActivate"`
}

// EntitlementRequest selects the entitlement set a request or deactivation targets.
// An empty Scope means personal; an empty OrganizationID means the caller's
// current organization.
type EntitlementRequest struct {
	Scope          string `json:"scope,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// EntitlementResponse reports the outcome of an allowed request or deactivation
type EntitlementResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ApproverType   string `json:"approverType"`
	Decision       string `json:"decision"`
	PermissionType string `json:"permissionType"`
	ModuleID       string `json:"moduleId"`
	Scope          string `json:"scope"`
	IsActive       bool   `json:"isActive"`
	Changed        bool   `json:"changed"`
}

// Attempt is one recorded activation or deactivation
type Attempt struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ModuleID       string    `json:"moduleId"`
	ModuleName     string    `json:"moduleName"`
	ActorID        string    `json:"actorId"`
	Scope          string    `json:"scope"`
	SubjectID      string    `json:"subjectId"`
	OrganizationID string    `json:"organizationId,omitempty"`
	DesiredState   string    `json:"desiredState"`
	Effect         string    `json:"effect"`
	PermissionType string    `json:"permissionType"`
	ApproverType   string    `json:"approverType"`
	Requirement    string    `json:"requirement,omitempty"`
	Success        bool      `json:"success"`
	Changed        bool      `json:"changed"`
	Error          string    `json:"error,omitempty"`
}

// AttemptFilter narrows ListRequests
type AttemptFilter struct {
	ModuleID string
	Scope    string
	Success  *bool
	Limit    int
	Offset   int
}

// AttemptList is a page of attempts plus the unpaged total
type AttemptList struct {
	Attempts []Attempt `json:"attempts"`
	Total    int64     `json:"total"`
}

// AvailableModules lists every module with its state in scope. orgID may be empty.
func (c *Client) AvailableModules(ctx context.Context, scope, orgID string) ([]ModuleView, error) {
	q := url.Values{}
	if scope != "" {
		q.Set("scope", scope)
	}
	if orgID != "" {
		q.Set("orgId", orgID)
	}

	var views []ModuleView
	if err := c.do(ctx, http.MethodGet, c.endpoint("/api/modules/available", q), nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// OrganizationModules lists the modules active for an organization
func (c *Client) OrganizationModules(ctx context.Context, orgID string) ([]Module, error) {
	if orgID == "" {
		return nil, errors.New("organization id is required")
	}

	var modules []Module
	path := "/api/modules/organization/" + url.PathEscape(orgID)
	if err := c.do(ctx, http.MethodGet, c.endpoint(path, nil), nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// PersonalModules lists the caller's personally active modules
func (c *Client) PersonalModules(ctx context.Context) ([]Module, error) {
	var modules []Module
	if err := c.do(ctx, http.MethodGet, c.endpoint("/api/modules/personal", nil), nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// RequestModule activates a module, identified by id or name
func (c *Client) RequestModule(ctx context.Context, module string, req EntitlementRequest) (*EntitlementResponse, error) {
	return c.entitlement(ctx, http.MethodPost, module, "request", req)
}

// DeactivateModule deactivates a module, identified by id or name
func (c *Client) DeactivateModule(ctx context.Context, module string, req EntitlementRequest) (*EntitlementResponse, error) {
	return c.entitlement(ctx, http.MethodPatch, module, "deactivate", req)
}

// ListRequests lists recorded activation attempts visible to the caller
func (c *Client) ListRequests(ctx context.Context, filter AttemptFilter) (*AttemptList, error) {
	q := url.Values{}
	if filter.ModuleID != "" {
		q.Set("module_id", filter.ModuleID)
	}
	if filter.Scope != "" {
		q.Set("scope", filter.Scope)
	}
	if filter.Success != nil {
		q.Set("success", strconv.FormatBool(*filter.Success))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	var list AttemptList
	if err := c.do(ctx, http.MethodGet, c.endpoint("/api/modules/requests", q), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) entitlement(ctx context.Context, method, module, action string, req EntitlementRequest) (*EntitlementResponse, error) {
	if module == "" {
		return nil, errors.New("module is required")
	}

	var resp EntitlementResponse
	path := fmt.Sprintf("/api/modules/%s/%s", url.PathEscape(module), action)
	if err := c.do(ctx, method, c.endpoint(path, nil), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to %s module %s: %w", action, module, err)
	}
	return &resp, nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	if len(q) == 0 {
		return c.config.BaseURL + path
	}
	return c.config.BaseURL + path + "?" + q.Encode()
}

// APIError is the error body returned by the API
type APIError struct {
	StatusCode     int    `json:"-"`
	Message        string `json:"error"`
	Decision       string `json:"decision,omitempty"`
	PermissionType string `json:"permission_type,omitempty"`
	Required       string `json:"required,omitempty"`
}

func (e *APIError) Error() string {
	if e.Required != "" {
		return fmt.Sprintf("%s: requires %s (Status: %d)", e.Message, e.Required, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// Forbidden reports whether the request was denied by an access decision
func (e *APIError) Forbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// do sends a request with an optional JSON body and decodes a JSON response into resp
func (c *Client) do(ctx context.Context, method, endpoint string, req interface{}, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
