package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/collaborator"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/i18n"
	"github.com/guttosm/fulfillment-service/internal/metrics"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// Coordinators are nil when the order and cart stores are not configured;
// the process endpoints then answer 503 while previews keep working.
var (
	errOrderSourceUnavailable = errors.New("order store is not configured")
	errCartSourceUnavailable  = errors.New("cart store is not configured")
)

// Handler provides HTTP handlers for the shipping and checkout routes.
type Handler struct {
	directives  service.DirectiveCalculator
	pricing     service.CheckoutCalculator
	fulfillment service.FulfillmentCoordinator
	checkout    service.CheckoutCoordinator
}

// NewHandler creates a new Handler instance.
func NewHandler(
	directives service.DirectiveCalculator,
	pricing service.CheckoutCalculator,
	fulfillment service.FulfillmentCoordinator,
	checkout service.CheckoutCoordinator,
) *Handler {
	return &Handler{
		directives:  directives,
		pricing:     pricing,
		fulfillment: fulfillment,
		checkout:    checkout,
	}
}

// ProcessShipping handles POST /api/shipping/process requests.
//
// @Summary      Process shipping for an order
// @Description  Fetches the order, computes one shipping directive per item (cost, labels, per-warehouse consolidation discount), notifies warehouses and the customer, and dispatches the directives to the shipping system. Supports idempotency via Idempotency-Key header.
// @Tags         Shipping
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ProcessShippingRequest true "Order and user information"
// @Success      200 {object} dto.SuccessResponse "Directives produced and dispatched"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - a collaborator is unavailable"
// @Security     BearerAuth
// @Router       /api/shipping/process [post]
func (h *Handler) ProcessShipping(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ProcessShippingRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			metrics.RecordShippingRun(0, "validation_error", 0)
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	if h.fulfillment == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCollaboratorUnavailable, errOrderSourceUnavailable)
		return
	}

	start := time.Now()

	result, err := h.fulfillment.ProcessShipping(c.Request.Context(), model.OrderID(req.OrderID), req.User)
	duration := time.Since(start)
	if err != nil {
		h.shippingError(builder, err, duration)
		return
	}

	metrics.RecordShippingRun(duration, "success", len(result))
	builder.SuccessOK(dto.NewProcessShippingResponse(req.OrderID, result))
}

// PreviewShipping handles POST /api/shipping/preview requests.
//
// The order is posted inline and no collaborator is contacted, so the
// endpoint is side-effect free and safe to retry.
//
// @Summary      Preview shipping directives
// @Description  Computes shipping directives for an order posted in the request body without notifying warehouses, customers, or the shipping system.
// @Tags         Shipping
// @Accept       json
// @Produce      json
// @Param        request body dto.ShippingPreviewRequest true "Order and user information"
// @Success      200 {object} dto.SuccessResponse "Directives computed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shipping/preview [post]
func (h *Handler) PreviewShipping(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ShippingPreviewRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	result := h.directives.Calculate(&req.Order, req.User)
	builder.SuccessOK(dto.NewProcessShippingResponse(req.Order.ID.String(), result))
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Check out the user's cart
// @Description  Fetches the user's cart, prices it with membership and campaign discounts, reports to the marketing, loyalty, and tax systems, and bills the total. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "User information"
// @Success      200 {object} dto.SuccessResponse "Cart priced and billed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - a collaborator is unavailable"
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CheckoutRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			metrics.RecordCheckout(0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	if h.checkout == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCollaboratorUnavailable, errCartSourceUnavailable)
		return
	}

	start := time.Now()

	total, err := h.checkout.ProcessCheckout(c.Request.Context(), req.User)
	duration := time.Since(start)
	if err != nil {
		h.checkoutError(builder, err, duration)
		return
	}

	metrics.RecordCheckout(duration, "success")
	builder.SuccessOK(dto.NewCheckoutResponse(total))
}

// PreviewCheckout handles POST /api/checkout/preview requests.
//
// The products are posted inline and no collaborator is contacted.
//
// @Summary      Preview checkout pricing
// @Description  Prices the posted products with membership and campaign discounts without fetching the cart or reporting to any downstream system.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutPreviewRequest true "User and product information"
// @Success      200 {object} dto.SuccessResponse "Pricing computed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/checkout/preview [post]
func (h *Handler) PreviewCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CheckoutPreviewRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	total := h.pricing.Calculate(req.Products, service.DiscountsForMembership(req.User))
	builder.SuccessOK(dto.NewCheckoutResponse(total))
}

// shippingError maps a fulfillment error to the right HTTP status and
// records the run metric.
func (h *Handler) shippingError(builder *ResponseBuilder, err error, duration time.Duration) {
	switch {
	case errors.Is(err, collaborator.ErrOrderNotFound):
		metrics.RecordShippingRun(duration, "not_found", 0)
		builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
	case isCollaboratorError(err):
		metrics.RecordShippingRun(duration, "collaborator_error", 0)
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCollaboratorUnavailable, err)
	default:
		metrics.RecordShippingRun(duration, "error", 0)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// checkoutError maps a checkout error to the right HTTP status and records
// the checkout metric.
func (h *Handler) checkoutError(builder *ResponseBuilder, err error, duration time.Duration) {
	switch {
	case isCollaboratorError(err):
		metrics.RecordCheckout(duration, "collaborator_error")
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCollaboratorUnavailable, err)
	default:
		metrics.RecordCheckout(duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func isCollaboratorError(err error) bool {
	var colErr *collaborator.Error
	return errors.As(err, &colErr)
}
