package repository

import (
	"context"
	"errors"

	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// OrderRepositoryWithCircuitBreaker wraps an order repository with circuit
// breaker protection so a struggling database fails fast instead of piling
// up blocked requests.
type OrderRepositoryWithCircuitBreaker struct {
	repo    OrderRepositoryInterface
	breaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker wraps repo with the given breaker.
func NewOrderRepositoryWithCircuitBreaker(repo OrderRepositoryInterface, breaker *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{repo: repo, breaker: breaker}
}

// Fetch executes the underlying fetch under the circuit breaker. An unknown
// order id is a normal lookup outcome proving the database is reachable, so
// it never counts toward opening the breaker.
func (w *OrderRepositoryWithCircuitBreaker) Fetch(ctx context.Context, orderID model.OrderID) (*model.Order, error) {
	var order *model.Order
	var notFound error
	err := w.breaker.Execute(ctx, func() error {
		var fetchErr error
		order, fetchErr = w.repo.Fetch(ctx, orderID)
		if errors.Is(fetchErr, collaborator.ErrOrderNotFound) {
			notFound = fetchErr
			return nil
		}
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if notFound != nil {
		return nil, notFound
	}
	return order, nil
}

// CartRepositoryWithCircuitBreaker wraps a cart repository with circuit
// breaker protection.
type CartRepositoryWithCircuitBreaker struct {
	repo    CartRepositoryInterface
	breaker *circuitbreaker.CircuitBreaker
}

// NewCartRepositoryWithCircuitBreaker wraps repo with the given breaker.
func NewCartRepositoryWithCircuitBreaker(repo CartRepositoryInterface, breaker *circuitbreaker.CircuitBreaker) *CartRepositoryWithCircuitBreaker {
	return &CartRepositoryWithCircuitBreaker{repo: repo, breaker: breaker}
}

// Fetch executes the underlying fetch under the circuit breaker.
func (w *CartRepositoryWithCircuitBreaker) Fetch(ctx context.Context, user model.User) ([]model.Product, error) {
	var products []model.Product
	err := w.breaker.Execute(ctx, func() error {
		var fetchErr error
		products, fetchErr = w.repo.Fetch(ctx, user)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}
