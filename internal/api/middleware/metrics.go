package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"
)

// Metrics holds the Prometheus collectors for the API.
// Each instance owns its registry so tests can build routers repeatedly.
type Metrics struct {
	Registry *prometheus.Registry

	requests    *prometheus.HistogramVec
	simulations *prometheus.CounterVec
	notFound    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keynes_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keynes_simulations_total",
			Help: "Model evaluations by variant and outcome.",
		}, []string{"variant", "outcome"}),
		notFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keynes_equilibrium_not_found_total",
			Help: "Curves without a 45-degree crossing inside the income grid.",
		}, []string{"label"}),
	}
	m.Registry.MustRegister(m.requests, m.simulations, m.notFound)
	return m
}

// Middleware records request latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

// ObserveSimulation counts a finished evaluation. variant may be empty when
// the parameters were rejected before a variant was resolved.
func (m *Metrics) ObserveSimulation(variant model.Variant, res *simulation.Result, err error) {
	if variant == "" {
		variant = "unknown"
	}
	if err != nil {
		m.simulations.WithLabelValues(string(variant), "error").Inc()
		return
	}
	m.simulations.WithLabelValues(string(variant), "ok").Inc()
	for _, eq := range res.Equilibria {
		if !eq.Found {
			m.notFound.WithLabelValues(string(eq.Label)).Inc()
		}
	}
}
