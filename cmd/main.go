// Package main is the entry point for the fulfillment-service application.
//
// @title           Fulfillment Service API
// @version         1.0.0
// @description     API for computing shipping directives and checkout pricing.
//
//	The service fetches orders and carts, computes per-item shipping costs,
//	labels, and consolidation discounts, prices carts with membership and
//	campaign discounts, and coordinates the warehouse, notification,
//	shipping, loyalty, marketing, tax, and billing systems.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/fulfillment-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if API keys are configured.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token. Required if a JWT secret is configured.
//
// @tag.name        Shipping
// @tag.description Shipping directive computation and dispatch
//
// @tag.name        Checkout
// @tag.description Cart pricing and billing
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/fulfillment-service/docs" // swagger docs

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)
	server.OnShutdown(cleanup)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
