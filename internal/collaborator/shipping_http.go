package collaborator

import (
	"context"
	"net/http"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ShippingHTTPAdapter hands finished shipping directives to the shipping
// system over HTTP. It implements ShippingHandler.
type ShippingHTTPAdapter struct {
	httpAdapter
}

// NewShippingHTTPAdapter creates a shipping adapter for the given base URL.
func NewShippingHTTPAdapter(baseURL string, client *http.Client) *ShippingHTTPAdapter {
	return &ShippingHTTPAdapter{httpAdapter{name: "shipping", baseURL: baseURL, client: client}}
}

type dispatchDirective struct {
	OrderID               string   `json:"order_id,omitempty"`
	PackageID             string   `json:"package_id,omitempty"`
	ItemID                string   `json:"item_id"`
	ShippingCost          float64  `json:"shipping_cost"`
	Labels                []string `json:"labels"`
	ConsolidationDiscount float64  `json:"consolidation_discount"`
}

type dispatchRequest struct {
	Directives []dispatchDirective `json:"directives"`
}

// Dispatch sends every directive in one batch. The back-references carried
// by each directive are flattened to plain ids on the wire.
func (a *ShippingHTTPAdapter) Dispatch(ctx context.Context, directives []model.ShippingDirective) error {
	payload := dispatchRequest{Directives: make([]dispatchDirective, 0, len(directives))}
	for _, d := range directives {
		wire := dispatchDirective{
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
		}
		payload.Directives = append(payload.Directives, wire)
	}
	return a.postJSON(ctx, "/dispatch", payload)
}
