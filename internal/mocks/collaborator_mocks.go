// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func setup(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type MockOrderFetcher struct {
	mock.Mock
}

func NewMockOrderFetcher(t *testing.T) *MockOrderFetcher {
	m := &MockOrderFetcher{}
	setup(t, &m.Mock)
	return m
}

func (m *MockOrderFetcher) Fetch(ctx context.Context, orderID model.OrderID) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

type MockCartFetcher struct {
	mock.Mock
}

func NewMockCartFetcher(t *testing.T) *MockCartFetcher {
	m := &MockCartFetcher{}
	setup(t, &m.Mock)
	return m
}

func (m *MockCartFetcher) Fetch(ctx context.Context, user model.User) ([]model.Product, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockWarehouseSystem struct {
	mock.Mock
}

func NewMockWarehouseSystem(t *testing.T) *MockWarehouseSystem {
	m := &MockWarehouseSystem{}
	setup(t, &m.Mock)
	return m
}

func (m *MockWarehouseSystem) NotifyPackageReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageID model.PackageID) error {
	args := m.Called(ctx, warehouse, orderID, packageID)
	return args.Error(0)
}

func (m *MockWarehouseSystem) NotifyPackagesReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageIDs []model.PackageID) error {
	args := m.Called(ctx, warehouse, orderID, packageIDs)
	return args.Error(0)
}

type MockCustomerNotifications struct {
	mock.Mock
}

func NewMockCustomerNotifications(t *testing.T) *MockCustomerNotifications {
	m := &MockCustomerNotifications{}
	setup(t, &m.Mock)
	return m
}

func (m *MockCustomerNotifications) NotifyItemShipping(ctx context.Context, customerID model.UserID, itemID model.ItemID, shippingCost float64) error {
	args := m.Called(ctx, customerID, itemID, shippingCost)
	return args.Error(0)
}

type MockShippingHandler struct {
	mock.Mock
}

func NewMockShippingHandler(t *testing.T) *MockShippingHandler {
	m := &MockShippingHandler{}
	setup(t, &m.Mock)
	return m
}

func (m *MockShippingHandler) Dispatch(ctx context.Context, directives []model.ShippingDirective) error {
	args := m.Called(ctx, directives)
	return args.Error(0)
}

type MockLoyaltyProgram struct {
	mock.Mock
}

func NewMockLoyaltyProgram(t *testing.T) *MockLoyaltyProgram {
	m := &MockLoyaltyProgram{}
	setup(t, &m.Mock)
	return m
}

func (m *MockLoyaltyProgram) AddPoints(ctx context.Context, userID model.UserID, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

type MockMarketingBudget struct {
	mock.Mock
}

func NewMockMarketingBudget(t *testing.T) *MockMarketingBudget {
	m := &MockMarketingBudget{}
	setup(t, &m.Mock)
	return m
}

func (m *MockMarketingBudget) Allocate(ctx context.Context, campaignID model.CampaignID, amount float64) error {
	args := m.Called(ctx, campaignID, amount)
	return args.Error(0)
}

type MockTax struct {
	mock.Mock
}

func NewMockTax(t *testing.T) *MockTax {
	m := &MockTax{}
	setup(t, &m.Mock)
	return m
}

func (m *MockTax) RecordTransaction(ctx context.Context, userID model.UserID, productID model.ProductID, amount float64) error {
	args := m.Called(ctx, userID, productID, amount)
	return args.Error(0)
}

type MockBilling struct {
	mock.Mock
}

func NewMockBilling(t *testing.T) *MockBilling {
	m := &MockBilling{}
	setup(t, &m.Mock)
	return m
}

func (m *MockBilling) Bill(ctx context.Context, user model.User, total float64) error {
	args := m.Called(ctx, user, total)
	return args.Error(0)
}
