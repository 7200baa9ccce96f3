// Package metrics collects Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is registered on a caller-supplied registry so tests can use a
// fresh one.
type Collector struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	statusMutations  *prometheus.CounterVec
	versionConflicts *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statusboard_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "statusboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		statusMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statusboard_status_mutations_total",
			Help: "Successful status mutations by action",
		}, []string{"action"}),
		versionConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statusboard_status_version_conflicts_total",
			Help: "Conditional status writes that lost to a concurrent write",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.statusMutations,
		c.versionConflicts,
	)
	return c
}

func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordStatusMutation(action string) {
	c.statusMutations.WithLabelValues(action).Inc()
}

func (c *Collector) RecordUpdateConflict(operation string) {
	c.versionConflicts.WithLabelValues(operation).Inc()
}

// Handler returns the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
