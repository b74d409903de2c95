// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	Orders               repository.OrderRepositoryInterface
	Carts                repository.CartRepositoryInterface
	RequestLogs          repository.RequestLogsRepositoryInterface
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	CartsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// order, cart, and request log repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails; the
// service then serves only the side-effect free preview endpoints.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.RequestLogsTTL.Hours() / 24)
	if err := db.SetRequestLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set request logs TTL index (may already exist)")
	}

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	return &DatabaseComponents{
		DB:                   db,
		Orders:               repository.NewOrderRepositoryWithCircuitBreaker(repository.NewOrderRepository(db), ordersCB),
		Carts:                repository.NewCartRepositoryWithCircuitBreaker(repository.NewCartRepository(db), cartsCB),
		RequestLogs:          repository.NewRequestLogsRepository(db),
		OrdersCircuitBreaker: ordersCB,
		CartsCircuitBreaker:  cartsCB,
	}
}
