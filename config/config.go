// Package config provides configuration management for the fulfillment
// service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server        ServerConfig
	Auth          AuthConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Collaborators CollaboratorsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// AuthConfig holds authentication configuration. API keys and JWT bearer
// validation are both optional; JWT wins when both are set.
type AuthConfig struct {
	APIKeys   map[string]bool
	JWTSecret string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI            string
	DatabaseName   string
	RequestLogsTTL time.Duration
	Enabled        bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds Redis configuration for the idempotency response store.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	Enabled        bool
	IdempotencyTTL time.Duration
}

// CollaboratorsConfig holds the endpoints of the downstream systems the
// service coordinates with.
type CollaboratorsConfig struct {
	WarehouseURL     string
	ShippingURL      string
	NotificationsURL string
	LoyaltyURL       string
	MarketingURL     string
	TaxURL           string
	BillingURL       string
	HTTPTimeout      time.Duration
	// Kafka replaces the HTTP customer notifications adapter when enabled.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseStringSlice(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Auth: AuthConfig{
			APIKeys:   parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecret: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "fulfillment_service"),
			RequestLogsTTL:                 getEnvDuration("MONGODB_REQUEST_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:           getEnv("REDIS_ADDR", "localhost:6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvInt("REDIS_DB", 0),
			Enabled:        getEnvBool("REDIS_ENABLED", false),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
		},
		Collaborators: CollaboratorsConfig{
			WarehouseURL:     getEnv("WAREHOUSE_URL", "http://localhost:8081"),
			ShippingURL:      getEnv("SHIPPING_URL", "http://localhost:8082"),
			NotificationsURL: getEnv("NOTIFICATIONS_URL", "http://localhost:8083"),
			LoyaltyURL:       getEnv("LOYALTY_URL", "http://localhost:8084"),
			MarketingURL:     getEnv("MARKETING_URL", "http://localhost:8085"),
			TaxURL:           getEnv("TAX_URL", "http://localhost:8086"),
			BillingURL:       getEnv("BILLING_URL", "http://localhost:8087"),
			HTTPTimeout:      getEnvDuration("COLLABORATOR_TIMEOUT", 10*time.Second),
			KafkaEnabled:     getEnvBool("KAFKA_ENABLED", false),
			KafkaBrokers:     parseStringSlice(os.Getenv("KAFKA_BROKERS")),
			KafkaTopic:       getEnv("KAFKA_NOTIFICATIONS_TOPIC", "customer-notifications"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}
