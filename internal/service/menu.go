package service

import (
	"fmt"

	"tableside-orders/internal/domain"
)

// MenuProduct is a product with its variant axes and available variants,
// everything a selection sheet needs to resolve a purchasable configuration.
type MenuProduct struct {
	domain.Product
	Options  []domain.VariantOption `json:"options,omitempty"`
	Variants []domain.Variant       `json:"variants,omitempty"`
}

type MenuService struct {
	catalog CatalogRepository
}

func NewMenuService(catalog CatalogRepository) *MenuService {
	return &MenuService{catalog: catalog}
}

func (s *MenuService) Menu(restaurantID int) ([]MenuProduct, error) {
	products, err := s.catalog.ListProducts(restaurantID)
	if err != nil {
		return nil, err
	}
	menu := make([]MenuProduct, 0, len(products))
	for _, p := range products {
		menu = append(menu, MenuProduct{Product: p})
	}
	return menu, nil
}

// ProductDetail fetches one product together with its options and available
// variants. Fetched once per product-selection event; the caller resolves
// against this snapshot rather than re-querying per interaction.
func (s *MenuService) ProductDetail(restaurantID, productID int) (*MenuProduct, error) {
	product, err := s.catalog.GetProduct(restaurantID, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	options, err := s.catalog.GetVariantOptions(productID)
	if err != nil {
		return nil, fmt.Errorf("load variant options: %w", err)
	}
	for i := range options {
		values, err := s.catalog.GetOptionValues(options[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load option values: %w", err)
		}
		options[i].Values = values
	}

	variants, err := s.catalog.GetAvailableVariants(productID)
	if err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}

	return &MenuProduct{Product: *product, Options: options, Variants: variants}, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
