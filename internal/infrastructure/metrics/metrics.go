package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors of the portal.
//
// All methods are safe on a nil *Metrics so use cases can run without instrumentation.
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	ReviewFailures    prometheus.Counter
	SessionsCleared   *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New registers the collectors on reg (prometheus.DefaultRegisterer in production,
// a fresh registry in tests).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_operations_total",
			Help: "Lifecycle and moderation operations by outcome",
		}, []string{"operation", "outcome"}),

		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_operation_duration_seconds",
			Help:    "Duration of lifecycle and moderation operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		ReviewFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "portal_review_failures_total",
			Help: "Reviews that failed while the booking completion went through",
		}),

		SessionsCleared: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_sessions_cleared_total",
			Help: "Sessions cleared by reason",
		}, []string{"reason"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests served",
		}, []string{"method", "route", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveOperation records one operation started at start that ended with err.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ReviewFailed() {
	if m == nil {
		return
	}
	m.ReviewFailures.Inc()
}

func (m *Metrics) SessionCleared(reason string) {
	if m == nil {
		return
	}
	m.SessionsCleared.WithLabelValues(reason).Inc()
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
