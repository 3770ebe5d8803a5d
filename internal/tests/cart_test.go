package tests

import (
	"context"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tableside-orders/internal/domain"
	"tableside-orders/internal/mocks"
	"tableside-orders/internal/service"
)

// memStash is an in-memory stand-in for the redis-backed cart stash.
type memStash struct {
	data map[string]string
}

func newMemStash() *memStash {
	return &memStash{data: map[string]string{}}
}

func (s *memStash) CartKey(restaurantID int) string {
	return "cart_" + strconv.Itoa(restaurantID)
}

func (s *memStash) Get(_ context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *memStash) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memStash) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

var _ service.CartStash = (*memStash)(nil)

func plainProduct(id int, price string) *domain.Product {
	return &domain.Product{
		ID:           id,
		RestaurantID: 1,
		Name:         "Margherita",
		BasePrice:    decimal.RequireFromString(price),
	}
}

// plainCatalog wires a product with no options and no variants.
func plainCatalog(t *testing.T, productID int, price string) *mocks.CatalogRepository {
	catalog := new(mocks.CatalogRepository)
	catalog.On("GetProduct", 1, productID).Return(plainProduct(productID, price), nil)
	catalog.On("GetVariantOptions", productID).Return([]domain.VariantOption{}, nil)
	catalog.On("GetAvailableVariants", productID).Return([]domain.Variant{}, nil)
	return catalog
}

func TestCartService_AddMergesEqualLines(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(plainCatalog(t, 5, "8.50"), newMemStash())

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 2, Notes: "no basil"})
	assert.NoError(t, err)
	cart, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 3, Notes: "no basil"})
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_NotesDistinguishLines(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(plainCatalog(t, 5, "8.50"), newMemStash())

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1, Notes: "no basil"})
	assert.NoError(t, err)
	cart, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1, Notes: "extra basil"})
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 2)
}

func TestCartService_MergeClampsAtMaxQuantity(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(plainCatalog(t, 5, "8.50"), newMemStash())

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 98})
	assert.NoError(t, err)
	cart, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 10})
	assert.NoError(t, err)

	assert.Equal(t, domain.MaxQuantity, cart.Items[0].Quantity)
}

func TestCartService_QuantityFloorRemoves(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		t.Run(strconv.Itoa(quantity), func(t *testing.T) {
			ctx := context.Background()
			svc := service.NewCartService(plainCatalog(t, 5, "8.50"), newMemStash())

			_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 2, Notes: "n"})
			assert.NoError(t, err)

			cart, err := svc.SetQuantity(ctx, 1, service.QuantityRequest{
				LineRef:  service.LineRef{ProductID: 5, Notes: "n"},
				Quantity: quantity,
			})
			assert.NoError(t, err)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestCartService_RemoveMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(new(mocks.CatalogRepository), newMemStash())

	cart, err := svc.Remove(ctx, 1, service.LineRef{ProductID: 99})
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	stash := newMemStash()
	svc := service.NewCartService(plainCatalog(t, 5, "8.50"), stash)

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 2, Notes: "no basil"})
	assert.NoError(t, err)

	// A fresh service over the same stash sees the identical cart.
	reloaded := service.NewCartService(new(mocks.CatalogRepository), stash).Load(ctx, 1)
	assert.Len(t, reloaded.Items, 1)
	assert.Equal(t, 5, reloaded.Items[0].ProductID)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
	assert.Equal(t, "no basil", reloaded.Items[0].Notes)
	assert.True(t, reloaded.Items[0].UnitPrice.Equal(decimal.RequireFromString("8.50")))
}

func TestCartService_CorruptSnapshotIsEmptyCart(t *testing.T) {
	ctx := context.Background()
	stash := newMemStash()
	stash.data["cart_1"] = "{not json"

	cart := service.NewCartService(new(mocks.CatalogRepository), stash).Load(ctx, 1)
	assert.NotNil(t, cart)
	assert.Empty(t, cart.Items)
}

func TestCartService_ClearDeletesSnapshot(t *testing.T) {
	ctx := context.Background()
	stash := newMemStash()
	svc := service.NewCartService(plainCatalog(t, 5, "8.50"), stash)

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1})
	assert.NoError(t, err)
	assert.NoError(t, svc.Clear(ctx, 1))

	_, ok := stash.data["cart_1"]
	assert.False(t, ok)
	assert.Empty(t, svc.Load(ctx, 1).Items)
}

func TestCartService_SingleVariantAutoSelect(t *testing.T) {
	ctx := context.Background()
	override := decimal.RequireFromString("9.90")
	catalog := new(mocks.CatalogRepository)
	catalog.On("GetProduct", 1, 5).Return(plainProduct(5, "8.50"), nil)
	catalog.On("GetVariantOptions", 5).Return([]domain.VariantOption{
		{ID: 1, ProductID: 5, Name: "Size"},
	}, nil)
	catalog.On("GetAvailableVariants", 5).Return([]domain.Variant{
		{ID: 11, ProductID: 5, Title: "Family", PriceOverride: &override, IsAvailable: true,
			OptionValues: domain.OptionValues{{Name: "Size", Value: "Family"}}},
	}, nil)

	svc := service.NewCartService(catalog, newMemStash())
	cart, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1})

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.NotNil(t, cart.Items[0].VariantID)
	assert.Equal(t, 11, *cart.Items[0].VariantID)
	assert.True(t, cart.Items[0].UnitPrice.Equal(override))
}

func TestCartService_CombinationUnavailable(t *testing.T) {
	ctx := context.Background()
	stash := newMemStash()
	catalog := new(mocks.CatalogRepository)
	catalog.On("GetProduct", 1, 5).Return(plainProduct(5, "8.50"), nil)
	catalog.On("GetVariantOptions", 5).Return([]domain.VariantOption{
		{ID: 1, ProductID: 5, Name: "Size"},
	}, nil)
	catalog.On("GetAvailableVariants", 5).Return([]domain.Variant{
		{ID: 11, Title: "Small", IsAvailable: true,
			OptionValues: domain.OptionValues{{Name: "Size", Value: "S"}}},
		{ID: 12, Title: "Large", IsAvailable: true,
			OptionValues: domain.OptionValues{{Name: "Size", Value: "L"}}},
	}, nil)

	svc := service.NewCartService(catalog, stash)
	_, err := svc.Add(ctx, 1, service.AddItemRequest{
		ProductID:  5,
		Quantity:   1,
		Selections: domain.OptionValues{{Name: "Size", Value: "XL"}},
	})

	assert.ErrorIs(t, err, service.ErrCombinationUnavailable)
	// The blocked add must not touch the persisted cart.
	assert.Empty(t, stash.data)
}

func TestCartService_NotesTooLong(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCartService(new(mocks.CatalogRepository), newMemStash())

	long := make([]byte, domain.MaxNotesLen+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1, Notes: string(long)})
	assert.ErrorIs(t, err, service.ErrNotesTooLong)
}

func TestCartService_PriceFrozenAtAddTime(t *testing.T) {
	ctx := context.Background()
	stash := newMemStash()
	catalog := plainCatalog(t, 5, "8.50")
	svc := service.NewCartService(catalog, stash)

	_, err := svc.Add(ctx, 1, service.AddItemRequest{ProductID: 5, Quantity: 1})
	assert.NoError(t, err)

	// A later catalog price change must not affect the stored line.
	repriced := service.NewCartService(plainCatalog(t, 5, "11.00"), stash)
	cart := repriced.Load(ctx, 1)
	assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("8.50")))
}
