package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/student-store/backend/internal/domain/shared"
)

// DefaultStatus is the status assigned to newly created orders.
const DefaultStatus = "pending"

// OrderItem represents a line item belonging to an order.
// The price is a snapshot taken when the item is added, so later
// catalog price changes do not affect existing orders.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Unit price at time of purchase
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item
func NewOrderItem(orderID, productID uuid.UUID, quantity int, price decimal.Decimal) (*OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Subtotal returns quantity times unit price for this item
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer's placed request
// It is the aggregate root owning its order items
type Order struct {
	shared.BaseAggregateRoot
	Customer string          `gorm:"type:varchar(200);not null"`
	Dorm     string          `gorm:"type:varchar(200);not null"`
	Status   string          `gorm:"type:varchar(50);not null;default:'pending'"`
	Total    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Items    []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order with a zero total.
// Items are attached afterward, one at a time; the total is derived
// from the items on demand rather than maintained here.
func NewOrder(customer, dorm, status string) (*Order, error) {
	if customer == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer cannot be empty")
	}
	if dorm == "" {
		return nil, shared.NewDomainError("INVALID_DORM", "Dorm cannot be empty")
	}
	if status == "" {
		status = DefaultStatus
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Customer:          customer,
		Dorm:              dorm,
		Status:            status,
		Total:             decimal.Zero,
		Items:             make([]OrderItem, 0),
	}, nil
}

// AddItem attaches a new line item to the order
func (o *Order) AddItem(productID uuid.UUID, quantity int, price decimal.Decimal) (*OrderItem, error) {
	item, err := NewOrderItem(o.ID, productID, quantity, price)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.Touch()

	return item, nil
}

// Update applies a partial update to the order's fields.
// Nil pointers leave the corresponding field untouched.
func (o *Order) Update(customer, dorm, status *string, total *decimal.Decimal) error {
	if customer != nil {
		if *customer == "" {
			return shared.NewDomainError("INVALID_CUSTOMER", "Customer cannot be empty")
		}
		o.Customer = *customer
	}
	if dorm != nil {
		if *dorm == "" {
			return shared.NewDomainError("INVALID_DORM", "Dorm cannot be empty")
		}
		o.Dorm = *dorm
	}
	if status != nil {
		if *status == "" {
			return shared.NewDomainError("INVALID_STATUS", "Status cannot be empty")
		}
		o.Status = *status
	}
	if total != nil {
		if total.IsNegative() {
			return shared.NewDomainError("INVALID_TOTAL", "Total cannot be negative")
		}
		o.Total = *total
	}

	o.Touch()
	o.IncrementVersion()

	return nil
}

// ItemsTotal sums price times quantity over the given items.
// Decimal arithmetic keeps cent amounts exact.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for idx := range items {
		total = total.Add(items[idx].Subtotal())
	}
	return total
}
