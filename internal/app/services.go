// Package app provides service initialization.
package app

import (
	"github.com/guttosm/fulfillment-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Directives  service.DirectiveCalculator
	Pricing     service.CheckoutCalculator
	Fulfillment service.FulfillmentCoordinator
	Checkout    service.CheckoutCoordinator
}

// InitializeServices initializes the calculators and, when order and cart
// sources are available, the fulfillment and checkout coordinators.
func InitializeServices(collaborators *CollaboratorComponents) *ServiceComponents {
	directives := service.NewDirectiveCalculatorService()
	pricing := service.NewCheckoutCalculatorService()

	components := &ServiceComponents{
		Directives: directives,
		Pricing:    pricing,
	}

	if collaborators == nil {
		return components
	}

	if collaborators.Orders != nil {
		components.Fulfillment = service.NewFulfillmentService(
			collaborators.Orders,
			collaborators.Warehouses,
			collaborators.Notifications,
			collaborators.Shipping,
			directives,
		)
	}

	if collaborators.Carts != nil {
		components.Checkout = service.NewCheckoutService(
			collaborators.Carts,
			collaborators.Marketing,
			collaborators.Loyalty,
			collaborators.Tax,
			collaborators.Billing,
			pricing,
		)
	}

	return components
}
