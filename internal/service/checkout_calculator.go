package service

import (
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/pricing"
)

// Premium membership discount, granted to every premium user at checkout.
const (
	MemberDiscountCode    = "MEMBER20"
	MemberDiscountPercent = 20.0
	// CampaignPremiumMember is the campaign the membership discount is
	// charged against.
	CampaignPremiumMember model.CampaignID = "premium-member"
)

// DiscountsForMembership returns the discounts granted by the user's
// membership level. Premium membership grants exactly one discount; regular
// membership grants none. The checkout calculator itself is
// discount-source-agnostic, so this derivation lives with the caller.
func DiscountsForMembership(user model.User) []model.Discount {
	if !user.IsPremium() {
		return nil
	}
	return []model.Discount{{
		Code:       MemberDiscountCode,
		Percent:    MemberDiscountPercent,
		CampaignID: CampaignPremiumMember,
	}}
}

// CheckoutCalculator defines the interface for cart pricing. Implementations
// must be pure and deterministic.
type CheckoutCalculator interface {
	Calculate(products []model.Product, userDiscounts []model.Discount) model.DiscountedTotal
}

// CheckoutCalculatorService implements CheckoutCalculator.
//
// Stateless and safe for concurrent use.
type CheckoutCalculatorService struct{}

// NewCheckoutCalculatorService creates a new CheckoutCalculatorService.
func NewCheckoutCalculatorService() *CheckoutCalculatorService {
	return &CheckoutCalculatorService{}
}

// Calculate prices a cart. For each product the combined discount list is
// userDiscounts followed by the product's own discounts; every discount
// amount is taken against the product's base price, so amounts are additive
// and never compound. Campaign totals sum across all products sharing a
// campaign.
//
// A final price is not floored at zero: discounts exceeding the base price
// yield a negative final price. A product with no discounts still appears in
// FinalPrices at its base price. A cart listing the same product id more than
// once aggregates all occurrences under that id, keeping Total equal to the
// sum of FinalPrices. An empty cart yields empty maps and total 0.
func (s *CheckoutCalculatorService) Calculate(products []model.Product, userDiscounts []model.Discount) model.DiscountedTotal {
	result := model.EmptyDiscountedTotal()

	for _, product := range products {
		finalPrice := product.BasePrice

		apply := func(d model.Discount) {
			amount := pricing.CampaignDiscountAmount(product.BasePrice, d.Percent)
			result.CampaignDiscounts[d.CampaignID] += amount
			finalPrice -= amount
		}

		for _, d := range userDiscounts {
			apply(d)
		}
		for _, d := range product.Discounts {
			apply(d)
		}

		result.FinalPrices[product.ID] += finalPrice
		result.Total += finalPrice
	}

	return result
}
