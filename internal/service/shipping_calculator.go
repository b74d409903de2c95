// Package service implements the business policy of the fulfillment service:
// the shipping directive and checkout pricing calculators and the two
// coordinators that orchestrate collaborator calls around them.
package service

import (
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/pricing"
)

// DirectiveCalculator defines the interface for shipping directive
// calculation. Implementations must be pure: no collaborator access, no
// observable side effects, deterministic for identical input.
type DirectiveCalculator interface {
	Calculate(order *model.Order, user model.User) []model.ShippingDirective
}

// DirectiveCalculatorService implements DirectiveCalculator.
//
// It is stateless and safe for concurrent use from multiple in-flight
// requests.
type DirectiveCalculatorService struct{}

// NewDirectiveCalculatorService creates a new DirectiveCalculatorService.
func NewDirectiveCalculatorService() *DirectiveCalculatorService {
	return &DirectiveCalculatorService{}
}

// itemRecord is the intermediate per-item record produced by flattening an
// order's (package, item) pairs.
type itemRecord struct {
	pkg  *model.Package
	item *model.Item
}

// Calculate produces one dispatch-ready directive per (package, item) pair of
// the order.
//
// Premium users get PRIORITY and VIP_CUSTOMER appended to a directive-local
// copy of the item's labels; the item's stored labels are never touched.
// Every directive in a warehouse group receives the consolidation discount
// for that group's item count, scoped to this order only.
//
// Output order is strict input order: packages as they appear in the order,
// items as they appear in their package. An order with zero packages yields
// an empty slice; a package with zero items contributes nothing, not even to
// its warehouse's group size.
func (s *DirectiveCalculatorService) Calculate(order *model.Order, user model.User) []model.ShippingDirective {
	records := flattenOrder(order)

	groupSizes := make(map[model.Warehouse]int, len(order.Packages))
	for _, rec := range records {
		groupSizes[rec.pkg.Warehouse]++
	}

	directives := make([]model.ShippingDirective, 0, len(records))
	for _, rec := range records {
		directives = append(directives, model.ShippingDirective{
			Order:                 order,
			Package:               rec.pkg,
			ItemID:                rec.item.ID,
			Labels:                directiveLabels(user, rec.item.Labels),
			ShippingCost:          pricing.ShippingCost(rec.item.Weight, rec.item.Price),
			ConsolidationDiscount: pricing.ConsolidationDiscount(groupSizes[rec.pkg.Warehouse]),
		})
	}

	return directives
}

// flattenOrder flattens every (package, item) pair into per-item records,
// preserving input order.
func flattenOrder(order *model.Order) []itemRecord {
	records := make([]itemRecord, 0, order.ItemCount())
	for pi := range order.Packages {
		pkg := &order.Packages[pi]
		for ii := range pkg.Items {
			records = append(records, itemRecord{pkg: pkg, item: &pkg.Items[ii]})
		}
	}
	return records
}

// directiveLabels returns the label set for one directive: a fresh copy of
// the item's labels, with the premium labels appended for premium users.
// Labels are a derived view; duplicates already present are preserved.
func directiveLabels(user model.User, itemLabels []string) []string {
	if !user.IsPremium() {
		labels := make([]string, len(itemLabels))
		copy(labels, itemLabels)
		return labels
	}

	labels := make([]string, 0, len(itemLabels)+2)
	labels = append(labels, itemLabels...)
	labels = append(labels, model.LabelPriority, model.LabelVIPCustomer)
	return labels
}
