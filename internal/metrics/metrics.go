package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	ORSRequests *prometheus.CounterVec   // labels: endpoint, code (0 on transport error)
	ORSDuration *prometheus.HistogramVec // labels: endpoint

	HTTPRequests *prometheus.CounterVec // labels: method, code
	HTTPDuration prometheus.Histogram

	Validations *prometheus.CounterVec // labels: result
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ORSRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directions_ors_requests_total",
			Help: "OpenRouteService requests by endpoint and HTTP status code.",
		}, []string{"endpoint", "code"}),
		ORSDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directions_ors_request_duration_seconds",
			Help:    "Latency of OpenRouteService requests.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"endpoint"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directions_http_requests_total",
			Help: "Requests served by the web front end.",
		}, []string{"method", "code"}),
		HTTPDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "directions_http_request_duration_seconds",
			Help:    "Latency of requests served by the web front end.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
		}),
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directions_validations_total",
			Help: "Address pair validations by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.ORSRequests, c.ORSDuration,
		c.HTTPRequests, c.HTTPDuration,
		c.Validations,
	)

	return c
}

// ObserveORSRequest records one upstream call. code is 0 when no response arrived.
func (c *Collector) ObserveORSRequest(endpoint string, code int, d time.Duration) {
	c.ORSRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	c.ORSDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (c *Collector) ObserveHTTPRequest(method string, code int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	c.HTTPDuration.Observe(d.Seconds())
}

// ObserveValidation counts a validation outcome; err == nil counts as "ok".
func (c *Collector) ObserveValidation(err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	c.Validations.WithLabelValues(result).Inc()
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// WriteTextfile dumps the registry in the node_exporter textfile-collector format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return errors.Wrapf(err, "metrics: write textfile %q", path)
	}
	return nil
}
