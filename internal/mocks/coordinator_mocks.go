// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

type MockFulfillmentCoordinator struct {
	mock.Mock
}

func NewMockFulfillmentCoordinator(t *testing.T) *MockFulfillmentCoordinator {
	m := &MockFulfillmentCoordinator{}
	setup(t, &m.Mock)
	return m
}

func (m *MockFulfillmentCoordinator) ProcessShipping(ctx context.Context, orderID model.OrderID, user model.User) ([]model.ShippingDirective, error) {
	args := m.Called(ctx, orderID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShippingDirective), args.Error(1)
}

type MockCheckoutCoordinator struct {
	mock.Mock
}

func NewMockCheckoutCoordinator(t *testing.T) *MockCheckoutCoordinator {
	m := &MockCheckoutCoordinator{}
	setup(t, &m.Mock)
	return m
}

func (m *MockCheckoutCoordinator) ProcessCheckout(ctx context.Context, user model.User) (model.DiscountedTotal, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.DiscountedTotal), args.Error(1)
}
