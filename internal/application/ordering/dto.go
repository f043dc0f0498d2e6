package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/student-store/backend/internal/domain/ordering"
)

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	Customer string `json:"customer" binding:"required,min=1,max=200"`
	Dorm     string `json:"dorm" binding:"required,min=1,max=200"`
	Status   string `json:"status" binding:"max=50"`
}

// UpdateOrderRequest represents a partial update to an order
type UpdateOrderRequest struct {
	Customer *string          `json:"customer" binding:"omitempty,min=1,max=200"`
	Dorm     *string          `json:"dorm" binding:"omitempty,min=1,max=200"`
	Status   *string          `json:"status" binding:"omitempty,min=1,max=50"`
	Total    *decimal.Decimal `json:"total"`
}

// AddOrderItemRequest represents a request to attach an item to an order.
// The price is the unit price snapshot supplied by the caller at the
// time of purchase.
type AddOrderItemRequest struct {
	ProductID uuid.UUID       `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	Customer  string              `json:"customer"`
	Dorm      string              `json:"dorm"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ToOrderItemResponse converts a domain order item to a response DTO
func ToOrderItemResponse(item *ordering.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToOrderItemResponses converts domain order items to response DTOs
func ToOrderItemResponses(items []ordering.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, len(items))
	for idx := range items {
		responses[idx] = *ToOrderItemResponse(&items[idx])
	}
	return responses
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *ordering.Order) *OrderResponse {
	return &OrderResponse{
		ID:        order.ID,
		Customer:  order.Customer,
		Dorm:      order.Dorm,
		Status:    order.Status,
		Total:     order.Total,
		Items:     ToOrderItemResponses(order.Items),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// ToOrderResponses converts domain orders to response DTOs
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for idx := range orders {
		responses[idx] = *ToOrderResponse(&orders[idx])
	}
	return responses
}
