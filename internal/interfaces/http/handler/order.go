package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderingapp "github.com/student-store/backend/internal/application/ordering"
	"github.com/student-store/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order and order item API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the order and order item routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:orderId", h.GetByID)
		orders.PUT("/:orderId", h.Update)
		orders.DELETE("/:orderId", h.Delete)
		orders.POST("/:orderId/items", h.AddItem)
		orders.GET("/:orderId/items", h.ListItems)
		orders.GET("/:orderId/total", h.GetTotal)
	}

	items := rg.Group("/order-items")
	{
		items.GET("", h.ListAllItems)
		items.POST("", h.CreateItem)
		items.GET("/:id", h.GetItem)
	}
}

// List godoc
// @Summary      List orders
// @Description  List all orders with their items
// @Tags         orders
// @Produce      json
// @Success      200 {object} map[string][]ordering.OrderResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "orders", orders)
}

// GetByID godoc
// @Summary      Get order by ID
// @Description  Retrieve an order with its items
// @Tags         orders
// @Produce      json
// @Param        orderId path string true "Order ID" format(uuid)
// @Success      200 {object} map[string]ordering.OrderResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "order", order)
}

// Create godoc
// @Summary      Create a new order
// @Description  Create an order with no items and a zero total
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body ordering.CreateOrderRequest true "Order creation request"
// @Success      201 {object} map[string]ordering.OrderResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "order", order)
}

// Update godoc
// @Summary      Update an order
// @Description  Partially update an order's fields
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId path string true "Order ID" format(uuid)
// @Param        request body ordering.UpdateOrderRequest true "Order update request"
// @Success      200 {object} map[string]ordering.OrderResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	var req orderingapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "order", order)
}

// Delete godoc
// @Summary      Delete an order
// @Description  Remove an order and its items
// @Tags         orders
// @Param        orderId path string true "Order ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddItem godoc
// @Summary      Add an item to an order
// @Description  Attach a purchased line to an existing order. The price is the unit price snapshot at purchase time; the order total is not modified.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId path string true "Order ID" format(uuid)
// @Param        request body ordering.AddOrderItemRequest true "Order item request"
// @Success      201 {object} map[string]ordering.OrderItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId}/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	var req orderingapp.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	item, err := h.orderService.AddItem(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "orderItem", item)
}

// ListItems godoc
// @Summary      List an order's items
// @Description  List the items attached to an order
// @Tags         orders
// @Produce      json
// @Param        orderId path string true "Order ID" format(uuid)
// @Success      200 {object} map[string][]ordering.OrderItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId}/items [get]
func (h *OrderHandler) ListItems(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	items, err := h.orderService.ListItems(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "orderItems", items)
}

// GetTotal godoc
// @Summary      Get an order's total
// @Description  Compute the order total from its items' price snapshots. The total is derived on demand, not read from storage.
// @Tags         orders
// @Produce      json
// @Param        orderId path string true "Order ID" format(uuid)
// @Success      200 {object} map[string]string
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/{orderId}/total [get]
func (h *OrderHandler) GetTotal(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	total, err := h.orderService.CalculateTotal(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "total", total)
}

// CreateItem godoc
// @Summary      Create an order item
// @Description  Attach a purchased line to an order given in the request body
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderItemRequest true "Order item request"
// @Success      201 {object} map[string]ordering.OrderItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /order-items [post]
func (h *OrderHandler) CreateItem(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	item, err := h.orderService.AddItem(c.Request.Context(), req.OrderID, orderingapp.AddOrderItemRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "orderItem", item)
}

// ListAllItems godoc
// @Summary      List all order items
// @Description  List order items across all orders
// @Tags         order-items
// @Produce      json
// @Success      200 {object} map[string][]ordering.OrderItemResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /order-items [get]
func (h *OrderHandler) ListAllItems(c *gin.Context) {
	items, err := h.orderService.ListAllItems(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "orderItems", items)
}

// GetItem godoc
// @Summary      Get an order item by ID
// @Description  Retrieve a single order item
// @Tags         order-items
// @Produce      json
// @Param        id path string true "Order item ID" format(uuid)
// @Success      200 {object} map[string]ordering.OrderItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /order-items/{id} [get]
func (h *OrderHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Order item not found")
		return
	}

	item, err := h.orderService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "orderItem", item)
}
