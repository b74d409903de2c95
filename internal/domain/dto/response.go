package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeCollaborator indicates a downstream collaborator failure.
	ErrCodeCollaborator = "collaborator_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"order_id: must not be empty"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway:
		return ErrCodeCollaborator
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ShippingDirectiveResponse is the wire form of a computed shipping
// directive, with back-references flattened to plain ids.
// @Description A single per-item shipping directive
type ShippingDirectiveResponse struct {
	OrderID               string   `json:"order_id,omitempty" example:"order-1"`
	PackageID             string   `json:"package_id,omitempty" example:"pkg-1"`
	Warehouse             string   `json:"warehouse,omitempty" example:"WH-A"`
	ItemID                string   `json:"item_id" example:"item-1"`
	ShippingCost          float64  `json:"shipping_cost" example:"15"`
	Labels                []string `json:"labels" example:"PRIORITY,VIP_CUSTOMER"`
	ConsolidationDiscount float64  `json:"consolidation_discount" example:"0.05"`
} // @name ShippingDirectiveResponse

// ProcessShippingResponse is the response body for the shipping endpoints.
// @Description Computed shipping directives for an order
type ProcessShippingResponse struct {
	OrderID    string                      `json:"order_id" example:"order-1"`
	Directives []ShippingDirectiveResponse `json:"directives"`
} // @name ProcessShippingResponse

// CheckoutResponse is the response body for the checkout endpoints.
// @Description Discounted cart totals with per-campaign breakdown
type CheckoutResponse struct {
	// CampaignDiscounts maps campaign id to the summed discount amount.
	CampaignDiscounts map[string]float64 `json:"campaign_discounts"`
	// FinalPrices maps product id to its discounted price.
	FinalPrices map[string]float64 `json:"final_prices"`
	Total       float64            `json:"total" example:"80"`
} // @name CheckoutResponse

// NewProcessShippingResponse flattens computed directives for the wire.
func NewProcessShippingResponse(orderID string, directives []model.ShippingDirective) ProcessShippingResponse {
	resp := ProcessShippingResponse{
		OrderID:    orderID,
		Directives: make([]ShippingDirectiveResponse, 0, len(directives)),
	}
	for _, d := range directives {
		wire := ShippingDirectiveResponse{
			ItemID:                d.ItemID.String(),
			ShippingCost:          d.ShippingCost,
			Labels:                d.Labels,
			ConsolidationDiscount: d.ConsolidationDiscount,
		}
		if d.Order != nil {
			wire.OrderID = d.Order.ID.String()
		}
		if d.Package != nil {
			wire.PackageID = d.Package.ID.String()
			wire.Warehouse = d.Package.Warehouse.String()
		}
		resp.Directives = append(resp.Directives, wire)
	}
	return resp
}

// NewCheckoutResponse flattens a discounted total for the wire.
func NewCheckoutResponse(total model.DiscountedTotal) CheckoutResponse {
	resp := CheckoutResponse{
		CampaignDiscounts: make(map[string]float64, len(total.CampaignDiscounts)),
		FinalPrices:       make(map[string]float64, len(total.FinalPrices)),
		Total:             total.Total,
	}
	for campaignID, amount := range total.CampaignDiscounts {
		resp.CampaignDiscounts[campaignID.String()] = amount
	}
	for productID, price := range total.FinalPrices {
		resp.FinalPrices[productID.String()] = price
	}
	return resp
}
