package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListProducts(t *testing.T) {
	productID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "food", r.URL.Query().Get("category"))
		assert.Equal(t, "price", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []map[string]any{
				{
					"id":       productID,
					"name":     "Instant Noodles",
					"price":    "1.50",
					"category": "food",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	products, err := client.ListProducts(context.Background(), "food", "price")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, productID, products[0].ID)
	assert.Equal(t, "Instant Noodles", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("1.50")))
}

func TestClientGetProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestClientCreateOrder(t *testing.T) {
	orderID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alex", body["customer"])
		assert.Equal(t, "West Hall", body["dorm"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{
				"id":       orderID,
				"customer": "Alex",
				"dorm":     "West Hall",
				"status":   "pending",
				"total":    "0",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	order, err := client.CreateOrder(context.Background(), "Alex", "West Hall")
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.Total.IsZero())
}

func TestClientGetOrderTotal(t *testing.T) {
	orderID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/"+orderID.String()+"/total", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"total": "9.50"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	total, err := client.GetOrderTotal(context.Background(), orderID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("9.50")))
}

func TestClientErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListProducts(context.Background(), "", "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}
