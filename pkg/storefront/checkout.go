package storefront

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/student-store/backend/internal/domain/cart"
)

// CheckoutResult reports what a checkout attempt actually placed.
// Checkout is two-phase and not atomic: when an item request fails, the
// order keeps every item placed before the failure and nothing is rolled
// back. Placed and Err together describe the partial state.
type CheckoutResult struct {
	Order  *Order
	Placed []OrderItem
	Err    error
}

// Complete reports whether every cart line was placed
func (r *CheckoutResult) Complete() bool {
	return r.Err == nil
}

// Checkout turns a cart into an order. Prices maps product IDs to the
// unit price the buyer saw when adding the product; every cart line must
// have one.
//
// Phase one creates the order, phase two posts one item per distinct
// cart product in product ID order. The result carries whatever was
// placed before the first failure.
func (c *Client) Checkout(ctx context.Context, basket cart.Cart, prices map[string]decimal.Decimal, customer, dorm string) *CheckoutResult {
	productIDs := make([]string, 0, len(basket))
	for productID := range basket {
		if _, ok := prices[productID]; !ok {
			return &CheckoutResult{
				Err: fmt.Errorf("storefront: no price for product %s", productID),
			}
		}
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	order, err := c.CreateOrder(ctx, customer, dorm)
	if err != nil {
		return &CheckoutResult{Err: fmt.Errorf("storefront: create order: %w", err)}
	}

	result := &CheckoutResult{
		Order:  order,
		Placed: make([]OrderItem, 0, len(basket)),
	}

	for _, productID := range productIDs {
		quantity := basket[productID]
		pid, err := uuid.Parse(productID)
		if err != nil {
			result.Err = fmt.Errorf("storefront: invalid product id %q: %w", productID, err)
			return result
		}

		item, err := c.AddOrderItem(ctx, order.ID, pid, quantity, prices[productID])
		if err != nil {
			result.Err = fmt.Errorf("storefront: add item %s: %w", productID, err)
			return result
		}
		result.Placed = append(result.Placed, *item)
	}

	return result
}
