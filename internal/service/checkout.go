package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// CheckoutCoordinator orchestrates checkout: fetch cart, price it, report to
// marketing/loyalty/tax, bill the total.
type CheckoutCoordinator interface {
	ProcessCheckout(ctx context.Context, user model.User) (model.DiscountedTotal, error)
}

// CheckoutService implements CheckoutCoordinator.
type CheckoutService struct {
	carts      collaborator.CartFetcher
	marketing  collaborator.MarketingBudget
	loyalty    collaborator.LoyaltyProgram
	tax        collaborator.Tax
	billing    collaborator.Billing
	calculator CheckoutCalculator
}

// NewCheckoutService creates a new CheckoutService with the given
// collaborators and calculator.
func NewCheckoutService(
	carts collaborator.CartFetcher,
	marketing collaborator.MarketingBudget,
	loyalty collaborator.LoyaltyProgram,
	tax collaborator.Tax,
	billing collaborator.Billing,
	calculator CheckoutCalculator,
) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		marketing:  marketing,
		loyalty:    loyalty,
		tax:        tax,
		billing:    billing,
		calculator: calculator,
	}
}

// ProcessCheckout fetches the user's cart, prices it with the membership
// discounts, allocates marketing budget once per campaign, credits loyalty
// points (on base price) and records tax (on final price) once per product,
// and bills the grand total exactly once as the terminal action.
//
// Any collaborator failure fails the checkout as a whole; reports already
// made are not compensated.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, user model.User) (model.DiscountedTotal, error) {
	products, err := s.carts.Fetch(ctx, user)
	if err != nil {
		return model.DiscountedTotal{}, collaborator.WrapError("cart-fetcher", err)
	}

	total := s.calculator.Calculate(products, DiscountsForMembership(user))

	for campaignID, amount := range total.CampaignDiscounts {
		if err := s.marketing.Allocate(ctx, campaignID, amount); err != nil {
			return model.DiscountedTotal{}, collaborator.WrapError("marketing-budget", err)
		}
	}

	for _, product := range products {
		if err := s.loyalty.AddPoints(ctx, user.ID, product.BasePrice); err != nil {
			return model.DiscountedTotal{}, collaborator.WrapError("loyalty-program", err)
		}
	}

	// One transaction per product id; a duplicated cart entry is aggregated
	// into a single final price.
	for productID, finalPrice := range total.FinalPrices {
		if err := s.tax.RecordTransaction(ctx, user.ID, productID, finalPrice); err != nil {
			return model.DiscountedTotal{}, collaborator.WrapError("tax", err)
		}
	}

	if err := s.billing.Bill(ctx, user, total.Total); err != nil {
		return model.DiscountedTotal{}, collaborator.WrapError("billing", err)
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Int("products", len(products)).
		Int("campaigns", len(total.CampaignDiscounts)).
		Float64("total", total.Total).
		Msg("Checkout processed")

	return total, nil
}
