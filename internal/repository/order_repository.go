package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// orderDocument is the normalized order document: packages reference items
// by id, the items themselves live in the items collection.
type orderDocument struct {
	ID         string            `bson:"_id"`
	CustomerID string            `bson:"customer_id"`
	Packages   []packageDocument `bson:"packages"`
}

type packageDocument struct {
	ID        string   `bson:"package_id"`
	Warehouse string   `bson:"warehouse"`
	ItemIDs   []string `bson:"item_ids"`
}

type itemDocument struct {
	ID     string   `bson:"_id"`
	Name   string   `bson:"name"`
	Price  float64  `bson:"price"`
	Weight float64  `bson:"weight"`
	Labels []string `bson:"labels"`
}

// OrderRepository resolves orders from MongoDB. It implements
// collaborator.OrderFetcher.
type OrderRepository struct {
	orders *mongo.Collection
	items  *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{
		orders: db.Orders,
		items:  db.Items,
	}
}

// Fetch loads the order and hydrates its packages with full items.
//
// Item lookups are memoized per fetch call: all referenced item ids are
// resolved with a single batched query and reused across packages that share
// an item. The memo never outlives the call, so repeated fetches always see
// current data.
func (r *OrderRepository) Fetch(ctx context.Context, orderID model.OrderID) (*model.Order, error) {
	var doc orderDocument
	err := r.orders.FindOne(ctx, bson.M{"_id": orderID.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, collaborator.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", orderID, err)
	}

	itemMemo, err := r.loadItems(ctx, &doc)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         model.OrderID(doc.ID),
		CustomerID: model.UserID(doc.CustomerID),
		Packages:   make([]model.Package, 0, len(doc.Packages)),
	}

	for _, pkgDoc := range doc.Packages {
		pkg := model.Package{
			ID:        model.PackageID(pkgDoc.ID),
			Warehouse: model.Warehouse(pkgDoc.Warehouse),
			Items:     make([]model.Item, 0, len(pkgDoc.ItemIDs)),
		}
		for _, itemID := range pkgDoc.ItemIDs {
			item, ok := itemMemo[itemID]
			if !ok {
				return nil, fmt.Errorf("order %s references unknown item %s", orderID, itemID)
			}
			pkg.Items = append(pkg.Items, item)
		}
		order.Packages = append(order.Packages, pkg)
	}

	return order, nil
}

// loadItems resolves every distinct item id referenced by the order with one
// batched query and returns them keyed by id.
func (r *OrderRepository) loadItems(ctx context.Context, doc *orderDocument) (map[string]model.Item, error) {
	distinct := make([]string, 0)
	seen := make(map[string]struct{})
	for _, pkg := range doc.Packages {
		for _, id := range pkg.ItemIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	memo := make(map[string]model.Item, len(distinct))
	if len(distinct) == 0 {
		return memo, nil
	}

	cursor, err := r.items.Find(ctx, bson.M{"_id": bson.M{"$in": distinct}})
	if err != nil {
		return nil, fmt.Errorf("fetch items for order %s: %w", doc.ID, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var itemDoc itemDocument
		if err := cursor.Decode(&itemDoc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		memo[itemDoc.ID] = model.Item{
			ID:     model.ItemID(itemDoc.ID),
			Name:   itemDoc.Name,
			Price:  itemDoc.Price,
			Weight: itemDoc.Weight,
			Labels: itemDoc.Labels,
		}
	}

	return memo, cursor.Err()
}
