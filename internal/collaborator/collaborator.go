// Package collaborator defines the contracts of the external systems the
// fulfillment core calls but does not implement, plus the error taxonomy for
// their failures. All calls are synchronous and blocking; all operations
// except the two fetchers are fire-and-forget from the core's perspective.
package collaborator

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

var (
	// ErrOrderNotFound is returned by an OrderFetcher when no order exists
	// for the requested id. Fatal to the request; never retried.
	ErrOrderNotFound = errors.New("order not found")
)

// Error wraps a failed collaborator call with the collaborator's name.
// Failures are propagated, never swallowed; the core defines no retry policy.
type Error struct {
	Collaborator string
	Err          error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("collaborator %s: %v", e.Collaborator, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// WrapError wraps err as a collaborator failure, or returns nil if err is nil.
func WrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Collaborator: name, Err: err}
}

// OrderFetcher resolves an order by id.
type OrderFetcher interface {
	Fetch(ctx context.Context, orderID model.OrderID) (*model.Order, error)
}

// CartFetcher resolves a user's current cart. An unknown user yields an
// empty product slice, not an error.
type CartFetcher interface {
	Fetch(ctx context.Context, user model.User) ([]model.Product, error)
}

// WarehouseSystem receives package readiness notifications.
type WarehouseSystem interface {
	NotifyPackageReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageID model.PackageID) error
	NotifyPackagesReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageIDs []model.PackageID) error
}

// CustomerNotifications informs customers about items being shipped.
type CustomerNotifications interface {
	NotifyItemShipping(ctx context.Context, customerID model.UserID, itemID model.ItemID, shippingCost float64) error
}

// ShippingHandler dispatches computed shipping directives.
type ShippingHandler interface {
	Dispatch(ctx context.Context, directives []model.ShippingDirective) error
}

// LoyaltyProgram credits loyalty points for purchases.
type LoyaltyProgram interface {
	AddPoints(ctx context.Context, userID model.UserID, amount float64) error
}

// MarketingBudget charges discount costs against campaign budgets.
type MarketingBudget interface {
	Allocate(ctx context.Context, campaignID model.CampaignID, amount float64) error
}

// Tax records taxable transactions.
type Tax interface {
	RecordTransaction(ctx context.Context, userID model.UserID, productID model.ProductID, amount float64) error
}

// Billing bills the customer for a checkout total.
type Billing interface {
	Bill(ctx context.Context, user model.User, total float64) error
}
