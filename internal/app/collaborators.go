// Package app provides collaborator adapter initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/collaborator"
)

// CollaboratorComponents holds the adapters for every downstream system the
// coordinators talk to.
type CollaboratorComponents struct {
	Orders        collaborator.OrderFetcher
	Carts         collaborator.CartFetcher
	Warehouses    collaborator.WarehouseSystem
	Notifications collaborator.CustomerNotifications
	Shipping      collaborator.ShippingHandler
	Loyalty       collaborator.LoyaltyProgram
	Marketing     collaborator.MarketingBudget
	Tax           collaborator.Tax
	Billing       collaborator.Billing

	notificationsCloser func() error
}

// Close releases resources held by the adapters. Only the Kafka producer
// holds any; the HTTP adapters share a plain client.
func (c *CollaboratorComponents) Close() error {
	if c.notificationsCloser == nil {
		return nil
	}
	return c.notificationsCloser()
}

// InitializeCollaborators builds the collaborator adapters from
// configuration. Orders and carts are served by the MongoDB repositories;
// the remaining collaborators are remote HTTP services, except customer
// notifications which go through Kafka when a broker is configured.
func InitializeCollaborators(cfg config.CollaboratorsConfig, db *DatabaseComponents) *CollaboratorComponents {
	client := collaborator.NewHTTPClient(cfg.HTTPTimeout)

	components := &CollaboratorComponents{
		Warehouses: collaborator.NewWarehouseHTTPAdapter(cfg.WarehouseURL, client),
		Shipping:   collaborator.NewShippingHTTPAdapter(cfg.ShippingURL, client),
		Loyalty:    collaborator.NewLoyaltyHTTPAdapter(cfg.LoyaltyURL, client),
		Marketing:  collaborator.NewMarketingBudgetHTTPAdapter(cfg.MarketingURL, client),
		Tax:        collaborator.NewTaxHTTPAdapter(cfg.TaxURL, client),
		Billing:    collaborator.NewBillingHTTPAdapter(cfg.BillingURL, client),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) > 0 {
		writer := collaborator.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		adapter := collaborator.NewKafkaNotificationsAdapter(writer)
		components.Notifications = adapter
		components.notificationsCloser = adapter.Close
		log.Info().
			Strs("brokers", cfg.KafkaBrokers).
			Str("topic", cfg.KafkaTopic).
			Msg("Customer notifications via Kafka")
	} else {
		components.Notifications = collaborator.NewCustomerNotificationsHTTPAdapter(cfg.NotificationsURL, client)
	}

	if db != nil {
		components.Orders = db.Orders
		components.Carts = db.Carts
	}

	return components
}
