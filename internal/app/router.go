// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/http"
	"github.com/guttosm/fulfillment-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Directives,
		services.Pricing,
		services.Fulfillment,
		services.Checkout,
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return dbComponents.DB.Client.Ping(ctx, nil)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		APIKeys:           cfg.Auth.APIKeys,
		JWTSecret:         cfg.Auth.JWTSecret,
		EnableIdempotency: true,
		IdempotencyStore:  InitializeIdempotencyStore(cfg.Redis),
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}
	if dbComponents != nil {
		routerCfg.RequestLogs = dbComponents.RequestLogs
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// InitializeIdempotencyStore builds the Redis-backed idempotency response
// store. Returns nil when Redis is disabled so the router falls back to the
// in-memory store.
func InitializeIdempotencyStore(cfg config.RedisConfig) middleware.ResponseStore {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable - using in-memory idempotency store")
		return nil
	}

	log.Info().Str("addr", cfg.Addr).Msg("Idempotency responses stored in Redis")
	return middleware.NewRedisResponseStore(client, cfg.IdempotencyTTL)
}
