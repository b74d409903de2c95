package model

// Discount is a percentage discount charged against a marketing campaign.
//
// @Description Percentage discount attributed to a campaign
type Discount struct {
	// Code is the human-readable discount code
	Code string `json:"code" bson:"code" example:"MEMBER20"`
	// Percent is the discount percentage, 0-100
	Percent float64 `json:"percent" bson:"percent" example:"20" minimum:"0" maximum:"100"`
	// CampaignID is the campaign this discount's cost is charged against
	CampaignID CampaignID `json:"campaign_id" bson:"campaign_id" example:"premium-member"`
} // @name Discount

// Product is a cart entry with its product-level discounts.
type Product struct {
	ID ProductID `json:"id" bson:"_id" example:"prod-1"`
	// BasePrice is the undiscounted price, non-negative
	BasePrice float64 `json:"base_price" bson:"base_price" example:"100" minimum:"0"`
	// Discounts is the ordered sequence of product-level discounts
	Discounts []Discount `json:"discounts" bson:"discounts"`
} // @name Product

// DiscountedTotal aggregates the outcome of pricing a cart: discount amounts
// summed per campaign, each product's final price, and the grand total.
// Derived and transient; Total always equals the sum of FinalPrices values.
//
// @Description Discounted cart total with per-campaign and per-product breakdown
type DiscountedTotal struct {
	// CampaignDiscounts maps each campaign to its summed discount amount
	CampaignDiscounts map[CampaignID]float64 `json:"campaign_discounts"`
	// FinalPrices maps each product to its final price after discounts
	FinalPrices map[ProductID]float64 `json:"final_prices"`
	// Total is the sum of all final prices
	Total float64 `json:"total" example:"80"`
} // @name DiscountedTotal

// EmptyDiscountedTotal returns the pricing result of an empty cart.
func EmptyDiscountedTotal() DiscountedTotal {
	return DiscountedTotal{
		CampaignDiscounts: map[CampaignID]float64{},
		FinalPrices:       map[ProductID]float64{},
		Total:             0,
	}
}
