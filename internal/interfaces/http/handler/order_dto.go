package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest represents a request to create an order item
// with the order given in the body rather than the path
// @Description Request body for creating an order item
type CreateOrderItemRequest struct {
	OrderID   uuid.UUID       `json:"orderId" binding:"required"`
	ProductID uuid.UUID       `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}
