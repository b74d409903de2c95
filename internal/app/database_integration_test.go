//go:build integration

package app_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/app"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func TestInitializeDatabase(t *testing.T) {
	ctx := context.Background()

	container, err := testutil.GetSharedMongoDB(ctx)
	require.NoError(t, err)

	components := app.InitializeDatabase(config.DatabaseConfig{
		URI:                            container.URI,
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		RequestLogsTTL:                 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	})
	require.NotNil(t, components)
	defer func() { _ = components.DB.Close(ctx) }()

	assert.NotNil(t, components.Orders)
	assert.NotNil(t, components.Carts)
	assert.NotNil(t, components.RequestLogs)
	assert.NotNil(t, components.OrdersCircuitBreaker)
	assert.NotNil(t, components.CartsCircuitBreaker)

	// Empty cart comes back as an empty slice, not an error
	products, err := components.Carts.Fetch(ctx, model.User{ID: "user-1", MembershipLevel: model.MembershipRegular})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestInitializeDatabase_BadURI(t *testing.T) {
	components := app.InitializeDatabase(config.DatabaseConfig{
		URI:          "mongodb://127.0.0.1:1",
		DatabaseName: "unreachable",
		Enabled:      true,
	})
	assert.Nil(t, components)
}
