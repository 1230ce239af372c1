package fleetsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a thin typed wrapper over the fleet HTTP API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer token attached to authenticated calls.
	Token string

	// AgentKey is the shared secret attached to agent-channel calls
	// (discovery, webhooks).
	AgentKey string
}

// New creates a client with a sane default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fleetsdk: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, agent bool) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if agent {
		req.Header.Set("X-API-Key", c.AgentKey)
	} else if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/organizations", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := c.do(ctx, http.MethodGet, "/v1/organizations/"+id, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrganizations(ctx context.Context) ([]OrganizationResponse, error) {
	var out []OrganizationResponse
	if err := c.do(ctx, http.MethodGet, "/v1/organizations", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := c.do(ctx, http.MethodPut, "/v1/organizations/"+id, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyBranding(ctx context.Context) (*Branding, error) {
	var out Branding
	if err := c.do(ctx, http.MethodGet, "/v1/organizations/my/branding", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	var out []RoleResponse
	if err := c.do(ctx, http.MethodGet, "/v1/roles", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRole(ctx context.Context, req RoleRequest) (*RoleResponse, error) {
	var out RoleResponse
	if err := c.do(ctx, http.MethodPost, "/v1/roles", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRole(ctx context.Context, id string, req RoleRequest) (*RoleResponse, error) {
	var out RoleResponse
	if err := c.do(ctx, http.MethodPut, "/v1/roles/"+id, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/roles/"+id, nil, nil, false)
}

func (c *Client) ListModules(ctx context.Context) ([]ModuleResponse, error) {
	var out []ModuleResponse
	if err := c.do(ctx, http.MethodGet, "/v1/modules", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateModule(ctx context.Context, req ModuleRequest) (*ModuleResponse, error) {
	var out ModuleResponse
	if err := c.do(ctx, http.MethodPost, "/v1/modules", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+id, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var out []UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/users", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, userID, roleID string) (*UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPut, "/v1/users/"+userID+"/role",
		UpdateUserRoleRequest{RoleID: roleID}, &out, false)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EnrollEquipment(ctx context.Context, req EnrollEquipmentRequest) (*EquipmentResponse, error) {
	var out EquipmentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/equipment", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEquipment(ctx context.Context, id string) (*EquipmentResponse, error) {
	var out EquipmentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/equipment/"+id, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id string, req UpdateEquipmentRequest) (*EquipmentResponse, error) {
	var out EquipmentResponse
	if err := c.do(ctx, http.MethodPut, "/v1/equipment/"+id, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEquipment(ctx context.Context) ([]EquipmentResponse, error) {
	var out []EquipmentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/equipment", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DiscoverEquipment(ctx context.Context, req DiscoverEquipmentRequest) (*EquipmentResponse, error) {
	var out EquipmentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/equipment/discover", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveEquipment(ctx context.Context, id string) (*EquipmentResponse, error) {
	var out EquipmentResponse
	if err := c.do(ctx, http.MethodPatch, "/v1/equipment/"+id+"/approve", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEquipmentStatus(ctx context.Context, id, status string) (*EquipmentResponse, error) {
	var out EquipmentResponse
	err := c.do(ctx, http.MethodPatch, "/v1/equipment/status/"+id,
		UpdateEquipmentStatusRequest{Status: status}, &out, false)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpsertSubscription(ctx context.Context, req UpsertSubscriptionRequest) (*SubscriptionResponse, error) {
	var out SubscriptionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/subscriptions", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrganizationSubscription(ctx context.Context, orgID string) (*SubscriptionResponse, error) {
	var out SubscriptionResponse
	if err := c.do(ctx, http.MethodGet, "/v1/subscriptions/organization/"+orgID, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendWebhookEvent(ctx context.Context, req WebhookEventRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/webhooks/events", req, nil, true)
}

func (c *Client) EquipmentReport(ctx context.Context, query string) ([]EquipmentReportRow, error) {
	var out []EquipmentReportRow
	path := "/v1/reports/equipment"
	if query != "" {
		path += "?" + query
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuditReport(ctx context.Context, query string) ([]AuditReportRow, error) {
	var out []AuditReportRow
	path := "/v1/reports/audit"
	if query != "" {
		path += "?" + query
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SummaryReport(ctx context.Context) (*SummaryReport, error) {
	var out SummaryReport
	if err := c.do(ctx, http.MethodGet, "/v1/reports/summary", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) JWKS(ctx context.Context) (*JWKSResponse, error) {
	var out JWKSResponse
	if err := c.do(ctx, http.MethodGet, "/.well-known/jwks.json", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}
