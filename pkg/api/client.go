// Package api is the HTTP client for the remote checklist service. The
// service is consumed, not owned: endpoints and payload shapes follow what
// it actually serves, including the quirks (dedicated rename endpoint,
// color updates that only some verbs accept).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tableflip.dev/checklist/pkg/checklist"
)

// Client talks to one checklist service with one bearer token.
type Client struct {
	BaseURL string
	Token   string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// New returns a Client for the given base URL, e.g. "http://host:8080/api".
func New(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// request performs one call and decodes the response envelope. Non-2xx
// responses are errors; the body is not inspected for them, matching the
// service's observed behavior of useful envelopes only on success.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: http status %d", method, endpoint, resp.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return &env, nil
}

// Login exchanges credentials for a bearer token. The service signals
// success with statusCode 2110 rather than plain HTTP status.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	env, err := c.request(ctx, http.MethodPost, "/login", req)
	if err != nil {
		return "", err
	}
	if env.StatusCode != AuthSuccess {
		return "", fmt.Errorf("login failed: %s", messageOr(env, "unexpected response"))
	}
	var data tokenData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return "", fmt.Errorf("login failed: no token in response")
	}
	return data.Token, nil
}

// Register creates an account. Registration does not authenticate; the
// user logs in separately.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	env, err := c.request(ctx, http.MethodPost, "/register", req)
	if err != nil {
		return err
	}
	if env.StatusCode != AuthSuccess {
		msg := messageOr(env, "registration failed")
		switch {
		case strings.Contains(msg, "email"):
			return fmt.Errorf("email already registered")
		case strings.Contains(msg, "username"):
			return fmt.Errorf("username already taken")
		}
		return fmt.Errorf("registration failed: %s", msg)
	}
	return nil
}

// Checklists fetches all checklist records.
func (c *Client) Checklists(ctx context.Context) ([]checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodGet, "/checklist", nil)
	if err != nil {
		return nil, err
	}
	return decodeRaws(env.Data)
}

// Checklist fetches one checklist record.
func (c *Client) Checklist(ctx context.Context, checklistID string) (checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodGet, "/checklist/"+checklistID, nil)
	if err != nil {
		return nil, err
	}
	return decodeRaw(env.Data)
}

// CreateChecklist posts a new checklist and returns the created record.
func (c *Client) CreateChecklist(ctx context.Context, fields checklist.Raw) (checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodPost, "/checklist", fields)
	if err != nil {
		return nil, err
	}
	return decodeRaw(env.Data)
}

// UpdateChecklist puts partial updates to a checklist.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID string, fields checklist.Raw) error {
	_, err := c.request(ctx, http.MethodPut, "/checklist/"+checklistID, fields)
	return err
}

// DeleteChecklist removes a checklist.
func (c *Client) DeleteChecklist(ctx context.Context, checklistID string) error {
	_, err := c.request(ctx, http.MethodDelete, "/checklist/"+checklistID, nil)
	return err
}

// UpdateChecklistColor tries PUT, then PATCH, then POST to a dedicated
// color endpoint. Deployments of the service differ in which one they
// accept; any of the three succeeding counts as success.
func (c *Client) UpdateChecklistColor(ctx context.Context, checklistID, color string) error {
	body := checklist.Raw{"color": color}
	if _, err := c.request(ctx, http.MethodPut, "/checklist/"+checklistID, body); err == nil {
		return nil
	}
	if _, err := c.request(ctx, http.MethodPatch, "/checklist/"+checklistID, body); err == nil {
		return nil
	}
	_, err := c.request(ctx, http.MethodPost, "/checklist/"+checklistID+"/color", body)
	return err
}

// Items fetches the raw item records of a checklist.
func (c *Client) Items(ctx context.Context, checklistID string) ([]checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodGet, "/checklist/"+checklistID+"/item", nil)
	if err != nil {
		return nil, err
	}
	return decodeRaws(env.Data)
}

// Item fetches one raw item record.
func (c *Client) Item(ctx context.Context, checklistID, itemID string) (checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodGet, "/checklist/"+checklistID+"/item/"+itemID, nil)
	if err != nil {
		return nil, err
	}
	return decodeRaw(env.Data)
}

// CreateItem posts a new item and returns the created record.
func (c *Client) CreateItem(ctx context.Context, checklistID string, fields checklist.Raw) (checklist.Raw, error) {
	env, err := c.request(ctx, http.MethodPost, "/checklist/"+checklistID+"/item", fields)
	if err != nil {
		return nil, err
	}
	return decodeRaw(env.Data)
}

// UpdateItemStatus puts a status/fields update to an item.
func (c *Client) UpdateItemStatus(ctx context.Context, checklistID, itemID string, fields checklist.Raw) error {
	_, err := c.request(ctx, http.MethodPut, "/checklist/"+checklistID+"/item/"+itemID, fields)
	return err
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, checklistID, itemID string) error {
	_, err := c.request(ctx, http.MethodDelete, "/checklist/"+checklistID+"/item/"+itemID, nil)
	return err
}

// RenameItem uses the service's dedicated rename endpoint.
func (c *Client) RenameItem(ctx context.Context, checklistID, itemID, name string) error {
	_, err := c.request(ctx, http.MethodPut, "/checklist/"+checklistID+"/item/rename/"+itemID, checklist.Raw{"name": name})
	return err
}

func decodeRaw(data json.RawMessage) (checklist.Raw, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var raw checklist.Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return raw, nil
}

func decodeRaws(data json.RawMessage) ([]checklist.Raw, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var raws []checklist.Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return raws, nil
}

func messageOr(env *Envelope, fallback string) string {
	if env.Message != "" {
		return env.Message
	}
	return fallback
}
