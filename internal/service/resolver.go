package service

import "tableside-orders/internal/domain"

// ResolveVariant returns the first variant, in list order, whose option
// values cover every selection, or nil when none match. Partial selections
// may match several variants; first match wins.
func ResolveVariant(variants []domain.Variant, selections domain.OptionValues) *domain.Variant {
	for i := range variants {
		if variants[i].OptionValues.Covers(selections) {
			return &variants[i]
		}
	}
	return nil
}

// AutoSelectVariant picks the single available variant when a product
// exposes exactly one, so it can be added without any user interaction.
func AutoSelectVariant(variants []domain.Variant) *domain.Variant {
	if len(variants) == 1 {
		return &variants[0]
	}
	return nil
}

// SeedSelections builds the starting selection set for a product sheet:
// the option values of a previously chosen variant, if any, so re-opening
// an item pre-fills its configuration before manual changes apply.
func SeedSelections(previous *domain.Variant, manual domain.OptionValues) domain.OptionValues {
	if previous == nil {
		return manual.Clone()
	}
	selections := previous.OptionValues.Clone()
	for _, sel := range manual {
		selections = selections.Set(sel.Name, sel.Value)
	}
	return selections
}

func findVariantByID(variants []domain.Variant, id int) *domain.Variant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}
