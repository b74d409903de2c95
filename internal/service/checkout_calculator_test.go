package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func TestDiscountsForMembership(t *testing.T) {
	assert.Nil(t, DiscountsForMembership(regularUser))

	discounts := DiscountsForMembership(premiumUser)
	require.Len(t, discounts, 1)
	assert.Equal(t, model.Discount{
		Code:       "MEMBER20",
		Percent:    20,
		CampaignID: "premium-member",
	}, discounts[0])
}

func TestCheckoutCalculator_PremiumSingleProduct(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{{ID: "prod-1", BasePrice: 100}}

	total := svc.Calculate(products, DiscountsForMembership(premiumUser))

	assert.Equal(t, map[model.CampaignID]float64{"premium-member": 20}, total.CampaignDiscounts)
	assert.Equal(t, map[model.ProductID]float64{"prod-1": 80}, total.FinalPrices)
	assert.Equal(t, 80.0, total.Total)
}

func TestCheckoutCalculator_RegularNoDiscounts(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{
		{ID: "prod-1", BasePrice: 59.90},
		{ID: "prod-2", BasePrice: 40.10},
	}

	total := svc.Calculate(products, DiscountsForMembership(regularUser))

	assert.Empty(t, total.CampaignDiscounts)
	assert.Equal(t, 59.90, total.FinalPrices["prod-1"])
	assert.Equal(t, 40.10, total.FinalPrices["prod-2"])
	assert.InDelta(t, 100.0, total.Total, 1e-9)
}

func TestCheckoutCalculator_EmptyCart(t *testing.T) {
	svc := NewCheckoutCalculatorService()

	total := svc.Calculate(nil, DiscountsForMembership(premiumUser))

	assert.Empty(t, total.CampaignDiscounts)
	assert.Empty(t, total.FinalPrices)
	assert.Equal(t, 0.0, total.Total)
}

func TestCheckoutCalculator_DiscountsAdditiveOnBasePrice(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{{
		ID:        "prod-1",
		BasePrice: 100,
		Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
			{Code: "CLEAR30", Percent: 30, CampaignID: "clearance"},
		},
	}}

	total := svc.Calculate(products, DiscountsForMembership(premiumUser))

	// Each percentage applies to the base price, never the running price:
	// 100 - 20 - 10 - 30, not compounding.
	assert.Equal(t, 40.0, total.FinalPrices["prod-1"])
	assert.Equal(t, 20.0, total.CampaignDiscounts["premium-member"])
	assert.Equal(t, 10.0, total.CampaignDiscounts["spring"])
	assert.Equal(t, 30.0, total.CampaignDiscounts["clearance"])
}

func TestCheckoutCalculator_CampaignSumsAcrossProducts(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{
		{ID: "prod-1", BasePrice: 100, Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
		}},
		{ID: "prod-2", BasePrice: 200, Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
		}},
	}

	total := svc.Calculate(products, nil)

	assert.Equal(t, map[model.CampaignID]float64{"spring": 30}, total.CampaignDiscounts)
	assert.InDelta(t, 90.0+180.0, total.Total, 1e-9)
}

func TestCheckoutCalculator_NegativeFinalPricePreserved(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{{
		ID:        "prod-1",
		BasePrice: 100,
		Discounts: []model.Discount{
			{Code: "HALF", Percent: 50, CampaignID: "c1"},
			{Code: "HALF2", Percent: 50, CampaignID: "c2"},
		},
	}}

	// Discounts exceeding the base price are not clamped.
	total := svc.Calculate(products, DiscountsForMembership(premiumUser))

	assert.Equal(t, -20.0, total.FinalPrices["prod-1"])
	assert.Equal(t, -20.0, total.Total)
}

func TestCheckoutCalculator_TotalMatchesFinalPrices(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{
		{ID: "prod-1", BasePrice: 19.99},
		{ID: "prod-2", BasePrice: 250, Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
		}},
		{ID: "prod-3", BasePrice: 0},
	}

	total := svc.Calculate(products, DiscountsForMembership(premiumUser))

	var sum float64
	for _, price := range total.FinalPrices {
		sum += price
	}
	assert.InDelta(t, sum, total.Total, 1e-9)
	// A product with no discounts still appears at a price derived from its
	// base, and a zero-priced product still appears.
	assert.Contains(t, total.FinalPrices, model.ProductID("prod-3"))
}

func TestCheckoutCalculator_DuplicateProductIDsAggregate(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{
		{ID: "prod-1", BasePrice: 100, Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
		}},
		{ID: "prod-1", BasePrice: 50},
	}

	total := svc.Calculate(products, nil)

	// Both occurrences land under one key so the total still equals the sum
	// of final prices.
	assert.Equal(t, 140.0, total.FinalPrices["prod-1"])
	assert.Equal(t, 140.0, total.Total)
	assert.Equal(t, 10.0, total.CampaignDiscounts["spring"])
}

func TestCheckoutCalculator_Idempotent(t *testing.T) {
	svc := NewCheckoutCalculatorService()
	products := []model.Product{
		{ID: "prod-1", BasePrice: 100, Discounts: []model.Discount{
			{Code: "SPRING10", Percent: 10, CampaignID: "spring"},
		}},
	}
	userDiscounts := DiscountsForMembership(premiumUser)

	first := svc.Calculate(products, userDiscounts)
	second := svc.Calculate(products, userDiscounts)

	assert.Equal(t, first, second)
}
