package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// cartDocument stores a user's current cart keyed by user id, with products
// and their product-level discounts embedded.
type cartDocument struct {
	UserID   string            `bson:"_id"`
	Products []productDocument `bson:"products"`
}

type productDocument struct {
	ID        string             `bson:"product_id"`
	BasePrice float64            `bson:"base_price"`
	Discounts []discountDocument `bson:"discounts"`
}

type discountDocument struct {
	Code       string  `bson:"code"`
	Percent    float64 `bson:"percent"`
	CampaignID string  `bson:"campaign_id"`
}

// CartRepository resolves carts from MongoDB. It implements
// collaborator.CartFetcher.
type CartRepository struct {
	carts *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{carts: db.Carts}
}

// Fetch loads the user's cart. A user with no cart document gets an empty
// product slice, not an error: checking out an empty cart is valid.
func (r *CartRepository) Fetch(ctx context.Context, user model.User) ([]model.Product, error) {
	var doc cartDocument
	err := r.carts.FindOne(ctx, bson.M{"_id": user.ID.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch cart for user %s: %w", user.ID, err)
	}

	products := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		discounts := make([]model.Discount, 0, len(p.Discounts))
		for _, d := range p.Discounts {
			discounts = append(discounts, model.Discount{
				Code:       d.Code,
				Percent:    d.Percent,
				CampaignID: model.CampaignID(d.CampaignID),
			})
		}
		products = append(products, model.Product{
			ID:        model.ProductID(p.ID),
			BasePrice: p.BasePrice,
			Discounts: discounts,
		})
	}

	return products, nil
}
