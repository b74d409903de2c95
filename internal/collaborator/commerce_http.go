package collaborator

import (
	"context"
	"net/http"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// CustomerNotificationsHTTPAdapter calls the customer notification service
// over HTTP. It implements CustomerNotifications and serves as the fallback
// transport when Kafka is not configured.
type CustomerNotificationsHTTPAdapter struct {
	httpAdapter
}

// NewCustomerNotificationsHTTPAdapter creates a notifications adapter for
// the given base URL.
func NewCustomerNotificationsHTTPAdapter(baseURL string, client *http.Client) *CustomerNotificationsHTTPAdapter {
	return &CustomerNotificationsHTTPAdapter{httpAdapter{name: "customer-notifications", baseURL: baseURL, client: client}}
}

type itemShippingNotification struct {
	CustomerID   string  `json:"customer_id"`
	ItemID       string  `json:"item_id"`
	ShippingCost float64 `json:"shipping_cost"`
}

// NotifyItemShipping tells the customer an item is on its way.
func (a *CustomerNotificationsHTTPAdapter) NotifyItemShipping(ctx context.Context, customerID model.UserID, itemID model.ItemID, shippingCost float64) error {
	return a.postJSON(ctx, "/notifications/item-shipping", itemShippingNotification{
		CustomerID:   customerID.String(),
		ItemID:       itemID.String(),
		ShippingCost: shippingCost,
	})
}

// LoyaltyHTTPAdapter calls the loyalty program service. It implements
// LoyaltyProgram.
type LoyaltyHTTPAdapter struct {
	httpAdapter
}

// NewLoyaltyHTTPAdapter creates a loyalty adapter for the given base URL.
func NewLoyaltyHTTPAdapter(baseURL string, client *http.Client) *LoyaltyHTTPAdapter {
	return &LoyaltyHTTPAdapter{httpAdapter{name: "loyalty", baseURL: baseURL, client: client}}
}

type addPointsRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// AddPoints credits loyalty points for a purchase amount.
func (a *LoyaltyHTTPAdapter) AddPoints(ctx context.Context, userID model.UserID, amount float64) error {
	return a.postJSON(ctx, "/points", addPointsRequest{
		UserID: userID.String(),
		Amount: amount,
	})
}

// MarketingBudgetHTTPAdapter calls the marketing budget service. It
// implements MarketingBudget.
type MarketingBudgetHTTPAdapter struct {
	httpAdapter
}

// NewMarketingBudgetHTTPAdapter creates a marketing budget adapter for the
// given base URL.
func NewMarketingBudgetHTTPAdapter(baseURL string, client *http.Client) *MarketingBudgetHTTPAdapter {
	return &MarketingBudgetHTTPAdapter{httpAdapter{name: "marketing-budget", baseURL: baseURL, client: client}}
}

type allocateRequest struct {
	CampaignID string  `json:"campaign_id"`
	Amount     float64 `json:"amount"`
}

// Allocate charges a campaign's budget with the discount amount it funded.
func (a *MarketingBudgetHTTPAdapter) Allocate(ctx context.Context, campaignID model.CampaignID, amount float64) error {
	return a.postJSON(ctx, "/allocations", allocateRequest{
		CampaignID: campaignID.String(),
		Amount:     amount,
	})
}

// TaxHTTPAdapter calls the tax service. It implements Tax.
type TaxHTTPAdapter struct {
	httpAdapter
}

// NewTaxHTTPAdapter creates a tax adapter for the given base URL.
func NewTaxHTTPAdapter(baseURL string, client *http.Client) *TaxHTTPAdapter {
	return &TaxHTTPAdapter{httpAdapter{name: "tax", baseURL: baseURL, client: client}}
}

type taxTransactionRequest struct {
	UserID    string  `json:"user_id"`
	ProductID string  `json:"product_id"`
	Amount    float64 `json:"amount"`
}

// RecordTransaction reports a taxable product sale.
func (a *TaxHTTPAdapter) RecordTransaction(ctx context.Context, userID model.UserID, productID model.ProductID, amount float64) error {
	return a.postJSON(ctx, "/transactions", taxTransactionRequest{
		UserID:    userID.String(),
		ProductID: productID.String(),
		Amount:    amount,
	})
}

// BillingHTTPAdapter calls the billing service. It implements Billing.
type BillingHTTPAdapter struct {
	httpAdapter
}

// NewBillingHTTPAdapter creates a billing adapter for the given base URL.
func NewBillingHTTPAdapter(baseURL string, client *http.Client) *BillingHTTPAdapter {
	return &BillingHTTPAdapter{httpAdapter{name: "billing", baseURL: baseURL, client: client}}
}

type billRequest struct {
	UserID          string  `json:"user_id"`
	MembershipLevel string  `json:"membership_level"`
	Total           float64 `json:"total"`
}

// Bill charges the user the checkout grand total.
func (a *BillingHTTPAdapter) Bill(ctx context.Context, user model.User, total float64) error {
	return a.postJSON(ctx, "/bills", billRequest{
		UserID:          user.ID.String(),
		MembershipLevel: string(user.MembershipLevel),
		Total:           total,
	})
}
