package service

import (
	"github.com/shopspring/decimal"

	"tableside-orders/internal/domain"
)

// All monetary amounts are carried as fixed-point decimals and rounded to
// exactly two fractional digits at every aggregation step.

func LineSubtotal(item domain.CartLineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
}

func CartSubtotal(cart *domain.Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range cart.Items {
		subtotal = subtotal.Add(LineSubtotal(item))
	}
	return subtotal.Round(2)
}

// PrioritySurcharge applies only when the guest asked for priority service
// and the restaurant has the feature enabled.
func PrioritySurcharge(draft domain.CheckoutDraft, cfg domain.PriorityServiceConfig) decimal.Decimal {
	if draft.IsPriorityOrder && cfg.Enabled {
		return cfg.SurchargeAmount.Round(2)
	}
	return decimal.Zero
}

func OrderTotal(cart *domain.Cart, draft domain.CheckoutDraft, cfg domain.PriorityServiceConfig) decimal.Decimal {
	return CartSubtotal(cart).Add(PrioritySurcharge(draft, cfg)).Round(2)
}
