//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/shipping/process", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/shipping/process", "200"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shipping/process", nil))

	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/shipping/process", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordShippingRun(t *testing.T) {
	before := testutil.ToFloat64(ShippingRunsTotal.WithLabelValues("success"))
	directivesBefore := testutil.ToFloat64(ShippingDirectivesTotal)

	RecordShippingRun(10*time.Millisecond, "success", 4)

	assert.Equal(t, before+1, testutil.ToFloat64(ShippingRunsTotal.WithLabelValues("success")))
	assert.Equal(t, directivesBefore+4, testutil.ToFloat64(ShippingDirectivesTotal))
}

func TestRecordCheckout(t *testing.T) {
	before := testutil.ToFloat64(CheckoutsTotal.WithLabelValues("error"))

	RecordCheckout(5*time.Millisecond, "error")

	assert.Equal(t, before+1, testutil.ToFloat64(CheckoutsTotal.WithLabelValues("error")))
}

func TestRecordCollaboratorCall(t *testing.T) {
	before := testutil.ToFloat64(CollaboratorCallsTotal.WithLabelValues("billing", "error"))

	RecordCollaboratorCall("billing", "error")

	assert.Equal(t, before+1, testutil.ToFloat64(CollaboratorCallsTotal.WithLabelValues("billing", "error")))
}
