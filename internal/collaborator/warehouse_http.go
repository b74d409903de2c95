package collaborator

import (
	"context"
	"net/http"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// WarehouseHTTPAdapter calls the warehouse system over HTTP. It implements
// WarehouseSystem.
type WarehouseHTTPAdapter struct {
	httpAdapter
}

// NewWarehouseHTTPAdapter creates a warehouse adapter for the given base URL.
func NewWarehouseHTTPAdapter(baseURL string, client *http.Client) *WarehouseHTTPAdapter {
	return &WarehouseHTTPAdapter{httpAdapter{name: "warehouse", baseURL: baseURL, client: client}}
}

type packageReadyRequest struct {
	Warehouse string `json:"warehouse"`
	OrderID   string `json:"order_id"`
	PackageID string `json:"package_id"`
}

type packagesReadyRequest struct {
	Warehouse  string   `json:"warehouse"`
	OrderID    string   `json:"order_id"`
	PackageIDs []string `json:"package_ids"`
}

// NotifyPackageReady reports a single package as ready for pickup.
func (a *WarehouseHTTPAdapter) NotifyPackageReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageID model.PackageID) error {
	return a.postJSON(ctx, "/packages/ready", packageReadyRequest{
		Warehouse: warehouse.String(),
		OrderID:   orderID.String(),
		PackageID: packageID.String(),
	})
}

// NotifyPackagesReady reports all of a warehouse's packages for an order in
// one call.
func (a *WarehouseHTTPAdapter) NotifyPackagesReady(ctx context.Context, warehouse model.Warehouse, orderID model.OrderID, packageIDs []model.PackageID) error {
	ids := make([]string, 0, len(packageIDs))
	for _, id := range packageIDs {
		ids = append(ids, id.String())
	}
	return a.postJSON(ctx, "/packages/ready-batch", packagesReadyRequest{
		Warehouse:  warehouse.String(),
		OrderID:    orderID.String(),
		PackageIDs: ids,
	})
}
