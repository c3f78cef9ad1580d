// Package cart keeps the local shopping cart as a plain slice updated by pure
// transitions.
package cart

import "github.com/chrisdamba/foodbrowse/internal/models"

// ApplyCartEvent returns the cart after setting item's quantity to
// newQuantity. Quantities are absolute, not deltas. Zero or less removes the
// entry. The input slice is not modified.
func ApplyCartEvent(cart []models.CartItem, item models.MenuItem, newQuantity int) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart)+1)
	found := false
	for _, entry := range cart {
		if entry.ID != item.ID {
			next = append(next, entry)
			continue
		}
		found = true
		if newQuantity > 0 {
			entry.Quantity = newQuantity
			next = append(next, entry)
		}
	}
	if !found && newQuantity > 0 {
		next = append(next, models.CartItem{MenuItem: item, Quantity: newQuantity})
	}
	return next
}

// ItemCount is the number of units in the cart.
func ItemCount(cart []models.CartItem) int {
	total := 0
	for _, entry := range cart {
		total += entry.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity, in whole currency units.
func Subtotal(cart []models.CartItem) int {
	total := 0
	for _, entry := range cart {
		total += entry.Price * entry.Quantity
	}
	return total
}

// Quantity reports how many of itemID are in the cart.
func Quantity(cart []models.CartItem, itemID string) int {
	for _, entry := range cart {
		if entry.ID == itemID {
			return entry.Quantity
		}
	}
	return 0
}

type Summary struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  int               `json:"subtotal"`
}

func Summarize(cart []models.CartItem) Summary {
	items := make([]models.CartItem, len(cart))
	copy(items, cart)
	return Summary{Items: items, ItemCount: ItemCount(cart), Subtotal: Subtotal(cart)}
}
