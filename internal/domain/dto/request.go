// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ProcessShippingRequest represents the JSON request body for the shipping
// process endpoint.
//
// @Description Request to process shipping for an order
// @Example {"order_id": "order-1", "user": {"id": "user-7", "membership_level": "premium"}}
type ProcessShippingRequest struct {
	// OrderID identifies the order to process.
	OrderID string `json:"order_id" binding:"required" example:"order-1"`
	// User is the customer on whose behalf the request runs.
	User model.User `json:"user" binding:"required"`
} // @name ProcessShippingRequest

// ShippingPreviewRequest represents the JSON request body for the shipping
// preview endpoint. The full order is posted inline so directives can be
// computed without touching any downstream system.
//
// @Description Request to preview shipping directives for an inline order
type ShippingPreviewRequest struct {
	// Order is the full order to compute directives for.
	Order model.Order `json:"order" binding:"required"`
	// User is the customer on whose behalf the request runs.
	User model.User `json:"user" binding:"required"`
} // @name ShippingPreviewRequest

// CheckoutRequest represents the JSON request body for the checkout endpoint.
//
// @Description Request to check out the user's current cart
// @Example {"user": {"id": "user-7", "membership_level": "premium"}}
type CheckoutRequest struct {
	// User is the customer checking out.
	User model.User `json:"user" binding:"required"`
} // @name CheckoutRequest

// CheckoutPreviewRequest represents the JSON request body for the checkout
// preview endpoint. Products are posted inline so totals can be computed
// without touching the cart store or any downstream system.
//
// @Description Request to preview discounted totals for inline products
type CheckoutPreviewRequest struct {
	// User is the customer the membership discount is derived from.
	User model.User `json:"user" binding:"required"`
	// Products is the list of products to price.
	Products []model.Product `json:"products"`
} // @name CheckoutPreviewRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingOrderID is returned when order_id is empty.
	ErrMissingOrderID = &ValidationError{
		Field:   "order_id",
		Message: "must not be empty",
	}
	// ErrMissingUserID is returned when user.id is empty.
	ErrMissingUserID = &ValidationError{
		Field:   "user.id",
		Message: "must not be empty",
	}
	// ErrInvalidMembershipLevel is returned when the membership level is not
	// one of the known tiers.
	ErrInvalidMembershipLevel = &ValidationError{
		Field:   "user.membership_level",
		Message: "must be \"regular\" or \"premium\"",
	}
)

func validateUser(user model.User) error {
	if user.ID == "" {
		return ErrMissingUserID
	}
	if !user.MembershipLevel.Valid() {
		return ErrInvalidMembershipLevel
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *ProcessShippingRequest) Validate() error {
	if r.OrderID == "" {
		return ErrMissingOrderID
	}
	return validateUser(r.User)
}

// Validate performs custom validation on the request.
func (r *ShippingPreviewRequest) Validate() error {
	return validateUser(r.User)
}

// Validate performs custom validation on the request.
func (r *CheckoutRequest) Validate() error {
	return validateUser(r.User)
}

// Validate performs custom validation on the request.
func (r *CheckoutPreviewRequest) Validate() error {
	return validateUser(r.User)
}
