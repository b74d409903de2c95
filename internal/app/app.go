// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned cleanup function closes the database connection and the
// notifications producer; register it as a server shutdown hook.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories behind circuit breakers)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize collaborator adapters (HTTP and, when enabled, Kafka)
	collaborators := InitializeCollaborators(cfg.Collaborators, dbComponents)

	// Initialize business services
	serviceComponents := InitializeServices(collaborators)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	cleanup := func() {
		if err := collaborators.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close notifications producer")
		}
		if dbComponents != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		}
	}

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), cleanup
}
