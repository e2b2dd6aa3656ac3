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
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-storefront/models"
)

// ErrOrderNotFound is returned when the upstream reports no such order.
// Callers must treat it as terminal, not as a transient failure.
var ErrOrderNotFound = errors.New("order not found")

// APIError is a structured rejection from the order service, carrying the
// upstream message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("order service returned status %d", e.Status)
}

// Doer lets tests substitute the HTTP transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrderServiceClient talks to the external order-processing service. The
// storefront owns no order state of its own; everything here is either a
// write-through (CreateOrder) or a read of upstream-owned data.
type OrderServiceClient struct {
	baseURL string
	client  Doer
}

func NewOrderServiceClient(baseURL string, timeout time.Duration) *OrderServiceClient {
	return &OrderServiceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewOrderServiceClientWithDoer is used by tests to inject a transport.
func NewOrderServiceClientWithDoer(baseURL string, d Doer) *OrderServiceClient {
	return &OrderServiceClient{baseURL: strings.TrimRight(baseURL, "/"), client: d}
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// CreateOrder posts the draft and returns the order number assigned by the
// upstream.
func (c *OrderServiceClient) CreateOrder(ctx context.Context, draft models.OrderDraft) (string, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("encode order draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("order service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.decodeError(resp)
	}

	var envelope struct {
		Data struct {
			OrderNumber string `json:"order_number"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode create order response: %w", err)
	}
	if envelope.Data.OrderNumber == "" {
		return "", fmt.Errorf("order service returned no order number")
	}
	return envelope.Data.OrderNumber, nil
}

// GetOrder fetches the current snapshot of an order. A 404 maps to
// ErrOrderNotFound.
func (c *OrderServiceClient) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/orders/"+url.PathEscape(orderNumber), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrOrderNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var envelope struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &envelope.Data, nil
}

// ListMenuItems returns catalog items, optionally filtered by category.
func (c *OrderServiceClient) ListMenuItems(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	endpoint := c.baseURL + "/menu-items"
	if categoryID != "" {
		endpoint += "?category_id=" + url.QueryEscape(categoryID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var envelope struct {
		Data []models.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode menu items response: %w", err)
	}
	return envelope.Data, nil
}

func (c *OrderServiceClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/categories", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var envelope struct {
		Data []models.Category `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}
	return envelope.Data, nil
}

func (c *OrderServiceClient) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}
