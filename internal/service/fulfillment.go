package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ErrMissingWarehouseGroup signals a directive referencing a warehouse with
// no recorded package group. It indicates a calculator bug, not bad input.
var ErrMissingWarehouseGroup = errors.New("directive references warehouse with no package group")

// FulfillmentCoordinator orchestrates order fulfillment: fetch, calculate,
// notify, dispatch.
type FulfillmentCoordinator interface {
	ProcessShipping(ctx context.Context, orderID model.OrderID, user model.User) ([]model.ShippingDirective, error)
}

// FulfillmentService implements FulfillmentCoordinator. All collaborator
// access happens here; the calculator stays free of I/O.
type FulfillmentService struct {
	orders        collaborator.OrderFetcher
	warehouses    collaborator.WarehouseSystem
	notifications collaborator.CustomerNotifications
	shipping      collaborator.ShippingHandler
	calculator    DirectiveCalculator
}

// NewFulfillmentService creates a new FulfillmentService with the given
// collaborators and calculator.
func NewFulfillmentService(
	orders collaborator.OrderFetcher,
	warehouses collaborator.WarehouseSystem,
	notifications collaborator.CustomerNotifications,
	shipping collaborator.ShippingHandler,
	calculator DirectiveCalculator,
) *FulfillmentService {
	return &FulfillmentService{
		orders:        orders,
		warehouses:    warehouses,
		notifications: notifications,
		shipping:      shipping,
		calculator:    calculator,
	}
}

// ProcessShipping fetches the order, computes its shipping directives, fires
// the per-item and per-warehouse notifications exactly once each, and hands
// the full directive sequence to the shipping handler as the terminal action.
//
// A missing order or a failed collaborator call fails the request as a whole;
// notifications already sent are not rolled back.
func (s *FulfillmentService) ProcessShipping(ctx context.Context, orderID model.OrderID, user model.User) ([]model.ShippingDirective, error) {
	order, err := s.orders.Fetch(ctx, orderID)
	if err != nil {
		if errors.Is(err, collaborator.ErrOrderNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, err)
		}
		return nil, collaborator.WrapError("order-fetcher", err)
	}

	directives := s.calculator.Calculate(order, user)

	for _, directive := range directives {
		err := s.notifications.NotifyItemShipping(ctx, order.CustomerID, directive.ItemID, directive.ShippingCost)
		if err != nil {
			return nil, collaborator.WrapError("customer-notifications", err)
		}
	}

	packageGroups := order.PackageIDsByWarehouse()
	for _, warehouse := range order.DistinctWarehouses() {
		packageIDs, ok := packageGroups[warehouse]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingWarehouseGroup, warehouse)
		}
		if err := s.warehouses.NotifyPackagesReady(ctx, warehouse, order.ID, packageIDs); err != nil {
			return nil, collaborator.WrapError("warehouse-system", err)
		}
	}

	if err := s.shipping.Dispatch(ctx, directives); err != nil {
		return nil, collaborator.WrapError("shipping-handler", err)
	}

	log.Info().
		Str("order_id", orderID.String()).
		Str("user_id", user.ID.String()).
		Int("directives", len(directives)).
		Int("warehouses", len(packageGroups)).
		Msg("Shipping processed")

	return directives, nil
}
