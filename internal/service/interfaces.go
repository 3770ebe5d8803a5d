package service

import (
	"context"

	"tableside-orders/internal/domain"
)

type CatalogRepository interface {
	ListProducts(restaurantID int) ([]domain.Product, error)
	GetProduct(restaurantID, productID int) (*domain.Product, error)
	GetVariantOptions(productID int) ([]domain.VariantOption, error)
	GetOptionValues(optionID int) ([]domain.OptionValue, error)
	GetAvailableVariants(productID int) ([]domain.Variant, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	InsertOrderItems(orderID int, items []domain.OrderItem) error
	FindProductByName(restaurantID int, name string) (*domain.Product, error)
	InsertProduct(product *domain.Product) error
	GetRoomsAndTables(restaurantID int) ([]domain.Room, []domain.Table, error)
	GetOrderSettings(restaurantID int) (*domain.OrderSettings, error)
	GetOrder(orderID int) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CartStash interface {
	CartKey(restaurantID int) string
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	Menu(restaurantID int) ([]MenuProduct, error)
	ProductDetail(restaurantID, productID int) (*MenuProduct, error)
}

type CartServiceInterface interface {
	Load(ctx context.Context, restaurantID int) *domain.Cart
	Add(ctx context.Context, restaurantID int, req AddItemRequest) (*domain.Cart, error)
	SetQuantity(ctx context.Context, restaurantID int, req QuantityRequest) (*domain.Cart, error)
	Remove(ctx context.Context, restaurantID int, req LineRef) (*domain.Cart, error)
	Clear(ctx context.Context, restaurantID int) error
}

type CheckoutServiceInterface interface {
	Open(ctx context.Context, restaurantID int) (*CheckoutView, error)
	Proceed(ctx context.Context, restaurantID int) (*CheckoutView, error)
	Back(ctx context.Context, restaurantID int) (*CheckoutView, error)
	UpdateDraft(ctx context.Context, restaurantID int, update DraftUpdate) (*CheckoutView, error)
	Submit(ctx context.Context, restaurantID int) (*domain.Order, error)
	Close(restaurantID int)
	Discard(restaurantID int)
}

type OrderServiceInterface interface {
	Get(orderID int) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}
