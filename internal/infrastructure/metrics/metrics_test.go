package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveOperation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOperation("accept_offer", time.Now(), nil)
	m.ObserveOperation("accept_offer", time.Now(), errors.New("conflict"))
	m.ObserveOperation("accept_offer", time.Now(), nil)

	if got := testutil.ToFloat64(m.Operations.WithLabelValues("accept_offer", OutcomeSuccess)); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.Operations.WithLabelValues("accept_offer", OutcomeError)); got != 1 {
		t.Fatalf("expected 1 error, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveOperation("x", time.Now(), nil)
	m.ReviewFailed()
	m.SessionCleared("logout")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/items/42", nil))

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/items/:id", "404")); got != 1 {
		t.Fatalf("expected 1 request recorded, got %v", got)
	}
}
