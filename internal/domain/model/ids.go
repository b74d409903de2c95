// Package model defines the core domain entities for the fulfillment service.
package model

// Identifier types are opaque wrappers around a string. Equality is by
// wrapped value; they carry no behavior beyond String().

// OrderID identifies a customer order.
type OrderID string

// PackageID identifies a package within an order.
type PackageID string

// ItemID identifies a single orderable item.
type ItemID string

// UserID identifies a customer.
type UserID string

// ProductID identifies a product in a cart.
type ProductID string

// CampaignID identifies a marketing campaign that discount costs are
// attributed to.
type CampaignID string

// Warehouse identifies the warehouse a package is routed through.
type Warehouse string

func (id OrderID) String() string    { return string(id) }
func (id PackageID) String() string  { return string(id) }
func (id ItemID) String() string     { return string(id) }
func (id UserID) String() string     { return string(id) }
func (id ProductID) String() string  { return string(id) }
func (id CampaignID) String() string { return string(id) }
func (w Warehouse) String() string   { return string(w) }
