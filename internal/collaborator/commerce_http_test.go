package collaborator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// captureServer decodes the JSON body of the single request it receives
// into dst and records the path.
func captureServer(t *testing.T, dst interface{}, gotPath *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(dst))
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCustomerNotificationsHTTPAdapter_NotifyItemShipping(t *testing.T) {
	var got itemShippingNotification
	var path string
	server := captureServer(t, &got, &path)
	defer server.Close()

	adapter := NewCustomerNotificationsHTTPAdapter(server.URL, server.Client())
	err := adapter.NotifyItemShipping(context.Background(), "user-7", "item-1", 15.0)

	require.NoError(t, err)
	assert.Equal(t, "/notifications/item-shipping", path)
	assert.Equal(t, itemShippingNotification{CustomerID: "user-7", ItemID: "item-1", ShippingCost: 15.0}, got)
}

func TestLoyaltyHTTPAdapter_AddPoints(t *testing.T) {
	var got addPointsRequest
	var path string
	server := captureServer(t, &got, &path)
	defer server.Close()

	adapter := NewLoyaltyHTTPAdapter(server.URL, server.Client())
	err := adapter.AddPoints(context.Background(), "user-7", 100.0)

	require.NoError(t, err)
	assert.Equal(t, "/points", path)
	assert.Equal(t, addPointsRequest{UserID: "user-7", Amount: 100.0}, got)
}

func TestMarketingBudgetHTTPAdapter_Allocate(t *testing.T) {
	var got allocateRequest
	var path string
	server := captureServer(t, &got, &path)
	defer server.Close()

	adapter := NewMarketingBudgetHTTPAdapter(server.URL, server.Client())
	err := adapter.Allocate(context.Background(), "premium-member", 20.0)

	require.NoError(t, err)
	assert.Equal(t, "/allocations", path)
	assert.Equal(t, allocateRequest{CampaignID: "premium-member", Amount: 20.0}, got)
}

func TestTaxHTTPAdapter_RecordTransaction(t *testing.T) {
	var got taxTransactionRequest
	var path string
	server := captureServer(t, &got, &path)
	defer server.Close()

	adapter := NewTaxHTTPAdapter(server.URL, server.Client())
	err := adapter.RecordTransaction(context.Background(), "user-7", "prod-1", 80.0)

	require.NoError(t, err)
	assert.Equal(t, "/transactions", path)
	assert.Equal(t, taxTransactionRequest{UserID: "user-7", ProductID: "prod-1", Amount: 80.0}, got)
}

func TestBillingHTTPAdapter_Bill(t *testing.T) {
	var got billRequest
	var path string
	server := captureServer(t, &got, &path)
	defer server.Close()

	adapter := NewBillingHTTPAdapter(server.URL, server.Client())
	user := model.User{ID: "user-7", MembershipLevel: model.MembershipPremium}
	err := adapter.Bill(context.Background(), user, 80.0)

	require.NoError(t, err)
	assert.Equal(t, "/bills", path)
	assert.Equal(t, billRequest{UserID: "user-7", MembershipLevel: "premium", Total: 80.0}, got)
}

func TestBillingHTTPAdapter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	adapter := NewBillingHTTPAdapter(server.URL, server.Client())
	err := adapter.Bill(context.Background(), model.User{ID: "user-7"}, 80.0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}
