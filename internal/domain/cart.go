package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity  = 1
	MaxQuantity  = 99
	MaxNotesLen  = 200
	CartKeyScope = "cart_"
)

// CartLineItem is one row in the cart. Identity is the
// (ProductID, VariantID, Notes) triple; UnitPrice and names are frozen at
// add time so the cart is independent of later catalog changes.
type CartLineItem struct {
	ProductID    int             `json:"product_id"`
	VariantID    *int            `json:"variant_id,omitempty"`
	VariantTitle string          `json:"variant_title,omitempty"`
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Notes        string          `json:"notes,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// SameLine reports whether the item and the given identity refer to the same
// cart line: equal product, equal variant (or both absent) and equal notes.
func (i CartLineItem) SameLine(productID int, variantID *int, notes string) bool {
	if i.ProductID != productID || i.Notes != notes {
		return false
	}
	if i.VariantID == nil || variantID == nil {
		return i.VariantID == nil && variantID == nil
	}
	return *i.VariantID == *variantID
}

// Cart is the ordered collection of line items for one restaurant.
// Mutations are pure in-memory operations; persistence is the caller's job.
type Cart struct {
	RestaurantID int            `json:"restaurant_id"`
	Items        []CartLineItem `json:"items"`
	SavedAt      time.Time      `json:"saved_at,omitempty"`
}

func NewCart(restaurantID int) *Cart {
	return &Cart{RestaurantID: restaurantID, Items: []CartLineItem{}}
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Add merges the item into an existing equal line by summing quantities,
// otherwise appends it. The existing entry keeps its price and notes since
// line equality already implies they match.
func (c *Cart) Add(item CartLineItem) {
	item.Quantity = clampQuantity(item.Quantity)
	for idx, existing := range c.Items {
		if existing.SameLine(item.ProductID, item.VariantID, item.Notes) {
			c.Items[idx].Quantity = clampQuantity(existing.Quantity + item.Quantity)
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity clamps to [MinQuantity, MaxQuantity]; a requested quantity
// below the floor removes the line instead of storing a non-positive count.
func (c *Cart) SetQuantity(productID int, variantID *int, notes string, quantity int) {
	if quantity < MinQuantity {
		c.Remove(productID, variantID, notes)
		return
	}
	for idx, existing := range c.Items {
		if existing.SameLine(productID, variantID, notes) {
			c.Items[idx].Quantity = clampQuantity(quantity)
			return
		}
	}
}

// Remove deletes the matching line. Removing an absent line is a no-op.
func (c *Cart) Remove(productID int, variantID *int, notes string) {
	for idx, existing := range c.Items {
		if existing.SameLine(productID, variantID, notes) {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Units is the total number of ordered units across all lines.
func (c *Cart) Units() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
