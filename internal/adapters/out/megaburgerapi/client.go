// Package megaburgerapi is the HTTP client for the MegaBurger order backend.
// It speaks the backend's fixed JSON contract: POST /orders, GET /orders,
// GET /orders/{id} and PATCH /orders/{id}.
package megaburgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"
)

// Client calls the MegaBurger orders API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. Call timeouts are
// short; retrying is the caller's concern (the workflow activity layer
// declares the retry policy).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type createOrderRequest struct {
	Meal     string `json:"meal"`
	Quantity int    `json:"quantity"`
}

type patchOrderRequest struct {
	Status     order.Status `json:"status"`
	EtaMinutes *int         `json:"eta_minutes,omitempty"`
}

// Create places a new order and returns the backend's record, including the
// assigned id.
func (c *Client) Create(ctx context.Context, meal string, quantity int) (megaburger.Order, error) {
	var created megaburger.Order
	err := c.do(ctx, http.MethodPost, "/orders", createOrderRequest{Meal: meal, Quantity: quantity}, &created)
	return created, err
}

// GetByID fetches one order.
func (c *Client) GetByID(ctx context.Context, id int) (megaburger.Order, error) {
	var o megaburger.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o)
	return o, err
}

// GetAll fetches every order, sorted by id.
func (c *Client) GetAll(ctx context.Context) ([]megaburger.Order, error) {
	var orders []megaburger.Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

// UpdateStatus patches an order's status. Used by operator tooling and tests,
// never by the workflows.
func (c *Client) UpdateStatus(ctx context.Context, id int, status order.Status) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id), patchOrderRequest{Status: status}, nil)
}

// UpdateStatusAndEta patches an order's status together with its ETA.
func (c *Client) UpdateStatusAndEta(ctx context.Context, id int, status order.Status, etaMinutes int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id),
		patchOrderRequest{Status: status, EtaMinutes: &etaMinutes}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, payload)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
