package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"tableside-orders/internal/domain"
)

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrCombinationUnavailable = errors.New("combination not available")
	ErrNotesTooLong           = errors.New("notes exceed maximum length")
)

// LineRef identifies one cart line by its (product, variant, notes) identity.
type LineRef struct {
	ProductID int    `json:"product_id"`
	VariantID *int   `json:"variant_id,omitempty"`
	Notes     string `json:"notes"`
}

type AddItemRequest struct {
	ProductID         int                 `json:"product_id"`
	Quantity          int                 `json:"quantity"`
	Notes             string              `json:"notes"`
	Selections        domain.OptionValues `json:"selections,omitempty"`
	PreviousVariantID *int                `json:"previous_variant_id,omitempty"`
}

type QuantityRequest struct {
	LineRef
	Quantity int `json:"quantity"`
}

// CartService owns one cart per restaurant. Every mutation loads the
// persisted snapshot, applies the change in memory and writes the snapshot
// back before returning, so a reload right after an edit cannot lose it.
type CartService struct {
	catalog CatalogRepository
	stash   CartStash
}

func NewCartService(catalog CatalogRepository, stash CartStash) *CartService {
	return &CartService{catalog: catalog, stash: stash}
}

// Load rehydrates the cart for a restaurant. A missing, corrupt or
// unparsable snapshot is an empty cart, never an error.
func (s *CartService) Load(ctx context.Context, restaurantID int) *domain.Cart {
	raw, err := s.stash.Get(ctx, s.stash.CartKey(restaurantID))
	if err != nil {
		log.Printf("cart stash read failed for restaurant %d: %v", restaurantID, err)
		return domain.NewCart(restaurantID)
	}
	if raw == "" {
		return domain.NewCart(restaurantID)
	}
	cart, err := DecodeCartSnapshot(raw)
	if err != nil {
		log.Printf("discarding unreadable cart snapshot for restaurant %d: %v", restaurantID, err)
		return domain.NewCart(restaurantID)
	}
	cart.RestaurantID = restaurantID
	return cart
}

func (s *CartService) Add(ctx context.Context, restaurantID int, req AddItemRequest) (*domain.Cart, error) {
	if len(req.Notes) > domain.MaxNotesLen {
		return nil, ErrNotesTooLong
	}

	product, err := s.catalog.GetProduct(restaurantID, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	line, err := s.buildLine(product, req)
	if err != nil {
		return nil, err
	}

	cart := s.Load(ctx, restaurantID)
	cart.Add(*line)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// buildLine resolves the concrete variant for the request and freezes the
// price/name snapshot. Option and variant data is fetched once per add, not
// per keystroke; selection UIs resolve against the list they already hold.
func (s *CartService) buildLine(product *domain.Product, req AddItemRequest) (*domain.CartLineItem, error) {
	options, err := s.catalog.GetVariantOptions(product.ID)
	if err != nil {
		return nil, fmt.Errorf("load variant options: %w", err)
	}
	variants, err := s.catalog.GetAvailableVariants(product.ID)
	if err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}

	line := domain.CartLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.BasePrice,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
		ImageURL:    product.ImageURL,
	}
	if line.Quantity == 0 {
		line.Quantity = domain.MinQuantity
	}

	if len(options) == 0 && len(variants) == 0 {
		return &line, nil
	}

	chosen := AutoSelectVariant(variants)
	if chosen == nil || len(req.Selections) > 0 {
		var previous *domain.Variant
		if req.PreviousVariantID != nil {
			previous = findVariantByID(variants, *req.PreviousVariantID)
		}
		chosen = ResolveVariant(variants, SeedSelections(previous, req.Selections))
	}
	if chosen == nil {
		return nil, ErrCombinationUnavailable
	}

	variantID := chosen.ID
	line.VariantID = &variantID
	line.VariantTitle = chosen.Title
	line.UnitPrice = chosen.UnitPrice(product.BasePrice)
	return &line, nil
}

func (s *CartService) SetQuantity(ctx context.Context, restaurantID int, req QuantityRequest) (*domain.Cart, error) {
	cart := s.Load(ctx, restaurantID)
	cart.SetQuantity(req.ProductID, req.VariantID, req.Notes, req.Quantity)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, restaurantID int, req LineRef) (*domain.Cart, error) {
	cart := s.Load(ctx, restaurantID)
	cart.Remove(req.ProductID, req.VariantID, req.Notes)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *CartService) Clear(ctx context.Context, restaurantID int) error {
	return s.stash.Remove(ctx, s.stash.CartKey(restaurantID))
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) error {
	cart.SavedAt = time.Now()
	raw, err := EncodeCartSnapshot(cart)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.stash.Set(ctx, s.stash.CartKey(cart.RestaurantID), raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func EncodeCartSnapshot(cart *domain.Cart) (string, error) {
	raw, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func DecodeCartSnapshot(raw string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartLineItem{}
	}
	return &cart, nil
}

var _ CartServiceInterface = (*CartService)(nil)
