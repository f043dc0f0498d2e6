package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/student-store/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, including its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter, including their items
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error

	// SaveItem persists a single order item
	SaveItem(ctx context.Context, item *OrderItem) error

	// FindItemByID finds an order item by its ID
	FindItemByID(ctx context.Context, id uuid.UUID) (*OrderItem, error)

	// FindItemsByOrder finds all items belonging to an order
	FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)

	// FindAllItems finds all order items across orders
	FindAllItems(ctx context.Context) ([]OrderItem, error)

	// Delete deletes an order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
