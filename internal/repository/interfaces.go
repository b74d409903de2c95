// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// OrderRepositoryInterface defines the order fetch contract at the
// repository level. It matches collaborator.OrderFetcher so a repository can
// be wired directly as the coordinator's fetcher.
type OrderRepositoryInterface interface {
	Fetch(ctx context.Context, orderID model.OrderID) (*model.Order, error)
}

// CartRepositoryInterface defines the cart fetch contract at the repository
// level, matching collaborator.CartFetcher.
type CartRepositoryInterface interface {
	Fetch(ctx context.Context, user model.User) ([]model.Product, error)
}

// RequestLogsRepositoryInterface defines the request log persistence contract.
type RequestLogsRepositoryInterface interface {
	Create(ctx context.Context, entry *RequestLogDocument) error
}
