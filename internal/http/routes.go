package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered on the API
// router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// ShippingRoutes registers the shipping endpoints.
type ShippingRoutes struct {
	handler *Handler
}

// NewShippingRoutes creates a new ShippingRoutes instance.
func NewShippingRoutes(handler *Handler) *ShippingRoutes {
	return &ShippingRoutes{handler: handler}
}

// RegisterRoutes registers the shipping endpoints on the given group.
func (r *ShippingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shipping/process", r.handler.ProcessShipping)
	rg.POST("/shipping/preview", r.handler.PreviewShipping)
}

// CheckoutRoutes registers the checkout endpoints.
type CheckoutRoutes struct {
	handler *Handler
}

// NewCheckoutRoutes creates a new CheckoutRoutes instance.
func NewCheckoutRoutes(handler *Handler) *CheckoutRoutes {
	return &CheckoutRoutes{handler: handler}
}

// RegisterRoutes registers the checkout endpoints on the given group.
func (r *CheckoutRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", r.handler.Checkout)
	rg.POST("/checkout/preview", r.handler.PreviewCheckout)
}
