// Package pricing holds the pure pricing formulas of the fulfillment service.
// All functions are total and deterministic; the tiers and rates are fixed
// constants of the design, not runtime configuration.
package pricing

// Consolidation discount tiers, inclusive at the lower bound.
const (
	consolidationTierLarge  = 10
	consolidationTierMedium = 5
	consolidationTierSmall  = 3
)

// ShippingCost computes the shipping cost for a single item: 2.5 per unit of
// weight plus a flat 5 handling fee waived for items priced above 100.
func ShippingCost(weight, price float64) float64 {
	cost := weight * 2.5
	if price <= 100 {
		cost += 5
	}
	return cost
}

// ConsolidationDiscount returns the discount fraction awarded to a warehouse
// group of the given size. This is a deliberate staircase, not interpolated.
func ConsolidationDiscount(itemCount int) float64 {
	switch {
	case itemCount >= consolidationTierLarge:
		return 0.20
	case itemCount >= consolidationTierMedium:
		return 0.10
	case itemCount >= consolidationTierSmall:
		return 0.05
	default:
		return 0
	}
}

// CampaignDiscountAmount computes the monetary amount of a percentage
// discount against a product's base price.
func CampaignDiscountAmount(basePrice, percent float64) float64 {
	return basePrice * (percent / 100)
}
