package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

// PriorityProductName is the synthetic, non-catalog product used to itemize
// the priority surcharge on the receipt. Catalog reads exclude it.
const PriorityProductName = "priority-order"

type Product struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BasePrice    decimal.Decimal `json:"base_price"`
	ImageURL     string          `json:"image_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

type VariantOption struct {
	ID        int           `json:"id"`
	ProductID int           `json:"product_id"`
	Name      string        `json:"name"`
	Position  int           `json:"position"`
	Values    []OptionValue `json:"values,omitempty"`
}

type OptionValue struct {
	ID       int    `json:"id"`
	OptionID int    `json:"option_id"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

type Variant struct {
	ID            int              `json:"id"`
	ProductID     int              `json:"product_id"`
	Title         string           `json:"title"`
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`
	OptionValues  OptionValues     `json:"option_values"`
	IsAvailable   bool             `json:"is_available"`
	Position      int              `json:"position"`
}

// UnitPrice is the variant's own price when it carries an override,
// otherwise the product base price.
func (v Variant) UnitPrice(basePrice decimal.Decimal) decimal.Decimal {
	if v.PriceOverride != nil {
		return *v.PriceOverride
	}
	return basePrice
}

type Room struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
}

type Table struct {
	ID     int `json:"id"`
	RoomID int `json:"room_id"`
	Number int `json:"number"`
}

type PriorityServiceConfig struct {
	Enabled         bool            `json:"enabled"`
	SurchargeAmount decimal.Decimal `json:"surcharge_amount"`
}

type OrderSettings struct {
	OrdersEnabled bool                  `json:"orders_enabled"`
	Priority      PriorityServiceConfig `json:"priority"`
}

// CheckoutDraft holds the table/service metadata gathered during checkout.
// It is never persisted; it lives only inside the active checkout session.
type CheckoutDraft struct {
	RoomID          *int   `json:"room_id,omitempty"`
	TableNumber     *int   `json:"table_number,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerNotes   string `json:"customer_notes,omitempty"`
	IsPriorityOrder bool   `json:"is_priority_order"`
}

type Order struct {
	ID              int             `json:"id"`
	RestaurantID    int             `json:"restaurant_id"`
	TableNumber     int             `json:"table_number"`
	RoomID          *int            `json:"room_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerNotes   string          `json:"customer_notes,omitempty"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	IsPriorityOrder bool            `json:"is_priority_order"`
	PriorityAmount  decimal.Decimal `json:"priority_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items,omitempty"`
}

// OrderItem carries a denormalized name/price snapshot so the receipt
// survives later catalog edits.
type OrderItem struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	VariantTitle string          `json:"variant_title,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Notes        string          `json:"notes,omitempty"`
}

type OrderEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	OrderID      int       `json:"order_id"`
	TableNumber  int       `json:"table_number"`
	Total        string    `json:"total"`
	ItemCount    int       `json:"item_count"`
	Timestamp    time.Time `json:"timestamp"`
}
