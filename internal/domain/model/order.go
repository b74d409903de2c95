package model

// Shipping labels applied to premium customers' directives.
const (
	LabelPriority    = "PRIORITY"
	LabelVIPCustomer = "VIP_CUSTOMER"
)

// Item is a single orderable item inside a package.
// Immutable once constructed; Labels is an insertion-order sequence and
// duplicates are allowed.
//
// @Description Orderable item with price, weight and shipping labels
type Item struct {
	ID ItemID `json:"id" bson:"_id" example:"item-1"`
	// Name is the display name of the item
	Name string `json:"name" bson:"name" example:"Espresso Machine"`
	// Price is the unit price, non-negative
	Price float64 `json:"price" bson:"price" example:"129.90" minimum:"0"`
	// Weight is the shipping weight, non-negative
	Weight float64 `json:"weight" bson:"weight" example:"4.2" minimum:"0"`
	// Labels is the item's own shipping label sequence
	Labels []string `json:"labels" bson:"labels" example:"FRAGILE"`
} // @name Item

// Package groups items routed through a single warehouse.
type Package struct {
	ID        PackageID `json:"id" bson:"_id" example:"pkg-1"`
	Warehouse Warehouse `json:"warehouse" bson:"warehouse" example:"WH-EAST"`
	Items     []Item    `json:"items" bson:"items"`
} // @name Package

// Order is a customer order. Immutable; constructed once per request by the
// order fetcher.
type Order struct {
	ID         OrderID   `json:"id" bson:"_id" example:"order-42"`
	CustomerID UserID    `json:"customer_id" bson:"customer_id" example:"user-7"`
	Packages   []Package `json:"packages" bson:"packages"`
} // @name Order

// ItemCount returns the total number of items across all packages.
func (o Order) ItemCount() int {
	n := 0
	for _, pkg := range o.Packages {
		n += len(pkg.Items)
	}
	return n
}

// DistinctWarehouses returns the warehouses appearing in the order, in
// first-seen package order, without duplicates.
func (o Order) DistinctWarehouses() []Warehouse {
	seen := make(map[Warehouse]struct{}, len(o.Packages))
	warehouses := make([]Warehouse, 0, len(o.Packages))
	for _, pkg := range o.Packages {
		if _, ok := seen[pkg.Warehouse]; ok {
			continue
		}
		seen[pkg.Warehouse] = struct{}{}
		warehouses = append(warehouses, pkg.Warehouse)
	}
	return warehouses
}

// PackageIDsByWarehouse returns the duplicate-free set of package ids routed
// through each warehouse, preserving package order within a warehouse.
func (o Order) PackageIDsByWarehouse() map[Warehouse][]PackageID {
	grouped := make(map[Warehouse][]PackageID, len(o.Packages))
	for _, pkg := range o.Packages {
		ids := grouped[pkg.Warehouse]
		duplicate := false
		for _, id := range ids {
			if id == pkg.ID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			grouped[pkg.Warehouse] = append(ids, pkg.ID)
		}
	}
	return grouped
}

// ShippingDirective is a fully computed, dispatch-ready shipping instruction
// for one item. It carries read-only back-references to the owning order and
// package. Directives are created fresh per calculation and never mutated
// after creation.
//
// @Description Dispatch-ready shipping instruction for a single item
type ShippingDirective struct {
	Order   *Order   `json:"-"`
	Package *Package `json:"-"`
	ItemID  ItemID   `json:"item_id" example:"item-1"`
	// ShippingCost is the computed shipping cost for this item
	ShippingCost float64 `json:"shipping_cost" example:"15"`
	// Labels is the item's label set after membership augmentation
	Labels []string `json:"labels" example:"PRIORITY"`
	// ConsolidationDiscount is the discount fraction for this item's
	// warehouse group, 0..0.20
	ConsolidationDiscount float64 `json:"consolidation_discount" example:"0.1"`
} // @name ShippingDirective
