//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
	"github.com/guttosm/fulfillment-service/internal/testutil"
)

func setupDB(t *testing.T, ctx context.Context) *repository.MongoDB {
	t.Helper()

	container, err := testutil.GetSharedMongoDB(ctx)
	require.NoError(t, err)

	db, err := repository.NewMongoDB(container.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	return db
}

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func TestOrderRepository_Fetch_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	items := []interface{}{
		bson.M{"_id": "item-1", "name": "Mug", "price": 12.0, "weight": 0.4, "labels": []string{"FRAGILE"}},
		bson.M{"_id": "item-2", "name": "Poster", "price": 150.0, "weight": 0.2, "labels": []string{}},
	}
	_, err := db.Items.InsertMany(ctx, items)
	require.NoError(t, err)

	_, err = db.Orders.InsertOne(ctx, bson.M{
		"_id":         "order-1",
		"customer_id": "user-7",
		"packages": []bson.M{
			{"package_id": "pkg-1", "warehouse": "WH-A", "item_ids": []string{"item-1", "item-2"}},
			{"package_id": "pkg-2", "warehouse": "WH-B", "item_ids": []string{"item-1"}},
		},
	})
	require.NoError(t, err)

	repo := repository.NewOrderRepository(db)
	order, err := repo.Fetch(ctx, model.OrderID("order-1"))
	require.NoError(t, err)

	assert.Equal(t, model.OrderID("order-1"), order.ID)
	assert.Equal(t, model.UserID("user-7"), order.CustomerID)
	require.Len(t, order.Packages, 2)

	first := order.Packages[0]
	assert.Equal(t, model.PackageID("pkg-1"), first.ID)
	assert.Equal(t, model.Warehouse("WH-A"), first.Warehouse)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "Mug", first.Items[0].Name)
	assert.Equal(t, []string{"FRAGILE"}, first.Items[0].Labels)

	// The same item referenced from two packages hydrates in both.
	second := order.Packages[1]
	require.Len(t, second.Items, 1)
	assert.Equal(t, model.ItemID("item-1"), second.Items[0].ID)
}

func TestOrderRepository_Fetch_NotFound_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	repo := repository.NewOrderRepository(db)
	_, err := repo.Fetch(ctx, model.OrderID("missing"))

	assert.ErrorIs(t, err, collaborator.ErrOrderNotFound)
}

func TestOrderRepository_Fetch_UnknownItem_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	_, err := db.Orders.InsertOne(ctx, bson.M{
		"_id":         "order-1",
		"customer_id": "user-7",
		"packages": []bson.M{
			{"package_id": "pkg-1", "warehouse": "WH-A", "item_ids": []string{"ghost"}},
		},
	})
	require.NoError(t, err)

	repo := repository.NewOrderRepository(db)
	_, err = repo.Fetch(ctx, model.OrderID("order-1"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item")
}

func TestCartRepository_Fetch_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	_, err := db.Carts.InsertOne(ctx, bson.M{
		"_id": "user-7",
		"products": []bson.M{
			{
				"product_id": "prod-1",
				"base_price": 100.0,
				"discounts": []bson.M{
					{"code": "SUMMER10", "percent": 10.0, "campaign_id": "summer-sale"},
				},
			},
			{"product_id": "prod-2", "base_price": 40.0, "discounts": []bson.M{}},
		},
	})
	require.NoError(t, err)

	repo := repository.NewCartRepository(db)
	products, err := repo.Fetch(ctx, model.User{ID: "user-7", MembershipLevel: model.MembershipRegular})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, model.ProductID("prod-1"), products[0].ID)
	assert.Equal(t, 100.0, products[0].BasePrice)
	require.Len(t, products[0].Discounts, 1)
	assert.Equal(t, "SUMMER10", products[0].Discounts[0].Code)
	assert.Equal(t, model.CampaignID("summer-sale"), products[0].Discounts[0].CampaignID)
	assert.Empty(t, products[1].Discounts)
}

func TestCartRepository_Fetch_MissingCart_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	repo := repository.NewCartRepository(db)
	products, err := repo.Fetch(ctx, model.User{ID: "nobody", MembershipLevel: model.MembershipRegular})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestRequestLogsRepository_Create_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ctx)

	require.NoError(t, db.SetRequestLogsTTL(ctx, 7))

	repo := repository.NewRequestLogsRepository(db)
	err := repo.Create(ctx, &repository.RequestLogDocument{
		Timestamp:  time.Now(),
		RequestID:  "req-1",
		Method:     "POST",
		Path:       "/api/shipping/process",
		StatusCode: 200,
		Duration:   12,
		IP:         "127.0.0.1",
	})
	require.NoError(t, err)

	count, err := db.RequestLogs.CountDocuments(ctx, bson.M{"request_id": "req-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
