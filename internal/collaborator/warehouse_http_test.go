package collaborator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func TestWarehouseHTTPAdapter_NotifyPackageReady(t *testing.T) {
	var got packageReadyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packages/ready", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewWarehouseHTTPAdapter(server.URL, server.Client())
	err := adapter.NotifyPackageReady(context.Background(), "WH-A", "order-1", "pkg-1")

	require.NoError(t, err)
	assert.Equal(t, packageReadyRequest{Warehouse: "WH-A", OrderID: "order-1", PackageID: "pkg-1"}, got)
}

func TestWarehouseHTTPAdapter_NotifyPackagesReady(t *testing.T) {
	var got packagesReadyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packages/ready-batch", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewWarehouseHTTPAdapter(server.URL, server.Client())
	err := adapter.NotifyPackagesReady(context.Background(), "WH-A", "order-1",
		[]model.PackageID{"pkg-1", "pkg-3"})

	require.NoError(t, err)
	assert.Equal(t, "WH-A", got.Warehouse)
	assert.Equal(t, "order-1", got.OrderID)
	assert.Equal(t, []string{"pkg-1", "pkg-3"}, got.PackageIDs)
}

func TestWarehouseHTTPAdapter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewWarehouseHTTPAdapter(server.URL, server.Client())
	err := adapter.NotifyPackagesReady(context.Background(), "WH-A", "order-1", nil)

	assert.Error(t, err)
}
