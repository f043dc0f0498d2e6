package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/student-store/backend/internal/domain/catalog"
	"github.com/student-store/backend/internal/domain/ordering"
	"github.com/student-store/backend/internal/domain/shared"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo   ordering.OrderRepository
	productRepo catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, productRepo catalog.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List returns all orders together with their items
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return ToOrderResponses(orders), nil
}

// Get returns a single order by ID, including its items
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// Create opens a new order with a zero total. Items are attached
// separately through AddItem, one request per line.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := ordering.NewOrder(req.Customer, req.Dorm, req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// Update applies a partial update to an order
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.Update(req.Customer, req.Dorm, req.Status, req.Total); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// Delete removes an order and all of its items
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.orderRepo.Delete(ctx, id)
}

// AddItem attaches a line item to an existing order. The referenced
// product must exist; the price snapshot comes from the request and is
// stored as-is. The order's stored total is left untouched.
func (s *OrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddOrderItemRequest) (*OrderItemResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	item, err := ordering.NewOrderItem(orderID, req.ProductID, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	return ToOrderItemResponse(item), nil
}

// GetItem returns a single order item by its ID
func (s *OrderService) GetItem(ctx context.Context, id uuid.UUID) (*OrderItemResponse, error) {
	item, err := s.orderRepo.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToOrderItemResponse(item), nil
}

// ListItems returns the items belonging to an order
func (s *OrderService) ListItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	items, err := s.orderRepo.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToOrderItemResponses(items), nil
}

// ListAllItems returns every order item across all orders
func (s *OrderService) ListAllItems(ctx context.Context) ([]OrderItemResponse, error) {
	items, err := s.orderRepo.FindAllItems(ctx)
	if err != nil {
		return nil, err
	}

	return ToOrderItemResponses(items), nil
}

// CalculateTotal sums price times quantity over the order's items.
// The total is derived on demand and never written back. An order
// without items yields zero.
func (s *OrderService) CalculateTotal(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return decimal.Zero, err
	}

	items, err := s.orderRepo.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}

	return ordering.ItemsTotal(items), nil
}
