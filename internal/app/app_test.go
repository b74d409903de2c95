//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
		},
		{
			name: "creates router with api keys",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth: config.AuthConfig{
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
		{
			name: "creates router with jwt auth",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{JWTSecret: "secret"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, cleanup := InitializeApp(tt.cfg)
			defer cleanup()

			assert.NotNil(t, router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_ProcessEndpointsUnavailableWithoutDatabase(t *testing.T) {
	router, cleanup := InitializeApp(config.Config{
		Server: config.ServerConfig{Port: "8080"},
	})
	defer cleanup()

	body := `{"order_id": "order-1", "user": {"id": "user-1", "membership_level": "regular"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shipping/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
