// Package cart implements the client-side shopping cart as a value type.
// A cart maps product IDs to quantities; all operations return a new cart
// and never mutate their input, so callers can hold onto snapshots.
package cart

// Cart maps product IDs to the quantity selected for each.
type Cart map[string]int

// New returns an empty cart.
func New() Cart {
	return make(Cart)
}

// Add returns a copy of the cart with the quantity for productID
// incremented by one.
func Add(c Cart, productID string) Cart {
	next := clone(c)
	next[productID]++
	return next
}

// Remove returns a copy of the cart with the quantity for productID
// decremented by one. Quantities never go below zero; when a quantity
// reaches zero the entry is dropped entirely.
func Remove(c Cart, productID string) Cart {
	next := clone(c)
	if next[productID] <= 1 {
		delete(next, productID)
		return next
	}
	next[productID]--
	return next
}

// Quantity returns the quantity of productID in the cart, zero when absent.
func Quantity(c Cart, productID string) int {
	return c[productID]
}

// TotalItems returns the sum of all quantities in the cart.
func TotalItems(c Cart) int {
	total := 0
	for _, quantity := range c {
		total += quantity
	}
	return total
}

func clone(c Cart) Cart {
	next := make(Cart, len(c))
	for id, quantity := range c {
		next[id] = quantity
	}
	return next
}
