// Package storefront provides a Go client for the student store API,
// including the client-side cart and the two-phase checkout protocol.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product as returned by the API
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
}

// Order represents an order as returned by the API
type Order struct {
	ID       uuid.UUID       `json:"id"`
	Customer string          `json:"customer"`
	Dorm     string          `json:"dorm"`
	Status   string          `json:"status"`
	Total    decimal.Decimal `json:"total"`
	Items    []OrderItem     `json:"items"`
}

// OrderItem represents an order line as returned by the API
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// APIError is returned when the server responds with an error payload
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront: %d %s", e.StatusCode, e.Message)
}

// Client talks to the student store HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption is a functional option for Client configuration
type ClientOption func(*Client)

// WithHTTPClient sets a custom underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new storefront API client
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListProducts lists catalog products. Category and sort are optional;
// empty strings leave them unset.
func (c *Client) ListProducts(ctx context.Context, category, sort string) ([]Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if sort != "" {
		query.Set("sort", sort)
	}

	path := "/products"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProduct retrieves a single product by ID
func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+id.String(), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// CreateOrder creates a new empty order for the given customer and dorm
func (c *Client) CreateOrder(ctx context.Context, customer, dorm string) (*Order, error) {
	body := map[string]string{
		"customer": customer,
		"dorm":     dorm,
	}

	var out struct {
		Order Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// GetOrder retrieves an order with its items
func (c *Client) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// AddOrderItem attaches a purchased line to an order. Price is the unit
// price snapshot observed by the buyer at add-to-cart time.
func (c *Client) AddOrderItem(ctx context.Context, orderID, productID uuid.UUID, quantity int, price decimal.Decimal) (*OrderItem, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
		"price":     price,
	}

	var out struct {
		OrderItem OrderItem `json:"orderItem"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/"+orderID.String()+"/items", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out.OrderItem, nil
}

// GetOrderTotal fetches the server-computed total for an order
func (c *Client) GetOrderTotal(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID.String()+"/total", nil, http.StatusOK, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

// do performs a request and decodes the response into out when the
// status matches wantStatus
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("storefront: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("storefront: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storefront: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("storefront: decode response: %w", err)
		}
	}
	return nil
}

// decodeAPIError turns an error response into an APIError, falling back
// to the status text when the body is not the expected shape
func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    payload.Error,
	}
}
