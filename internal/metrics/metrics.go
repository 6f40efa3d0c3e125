package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GatewayMetrics tracks the gateway's business counters and request
// latencies on its own registry.
type GatewayMetrics struct {
	registry *prometheus.Registry

	subscriptionsCreated *prometheus.CounterVec
	contactMessages      prometheus.Counter
	requestDuration      *prometheus.HistogramVec
}

func New() *GatewayMetrics {
	registry := prometheus.NewRegistry()

	subscriptionsCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriptions_created_total",
			Help: "The total number of created subscriptions",
		},
		[]string{"plan"},
	)

	contactMessages := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "The total number of accepted contact-form submissions",
		},
	)

	requestDuration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	return &GatewayMetrics{
		registry:             registry,
		subscriptionsCreated: subscriptionsCreated,
		contactMessages:      contactMessages,
		requestDuration:      requestDuration,
	}
}

func (m *GatewayMetrics) IncSubscriptionCreated(plan string) {
	m.subscriptionsCreated.WithLabelValues(plan).Inc()
}

func (m *GatewayMetrics) IncContactMessage() {
	m.contactMessages.Inc()
}

// Middleware observes request durations. Routes are labeled by their
// registered pattern, not the raw path.
func (m *GatewayMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.requestDuration.
			WithLabelValues(c.Method(), route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *GatewayMetrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
