package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	HTTPRequestTotal           = "discord_http_requests_total"
	HTTPRequestDurationSeconds = "discord_http_request_duration_seconds"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all outbound Discord API requests",
		}, []string{"method", "status_code"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    HTTPRequestDurationSeconds,
			Help:    "Duration of outbound Discord API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status_code"}),
	}
)

// Register adds every collector of this package to r. Applications with
// their own registry call it once at startup; the collectors are filled by
// every request made through pkg/api.
func Register(r prometheus.Registerer) error {
	for _, counter := range PromCounters {
		if err := r.Register(counter); err != nil {
			return err
		}
	}

	for _, histogram := range PromHistograms {
		if err := r.Register(histogram); err != nil {
			return err
		}
	}

	return nil
}

// NewHandler serves the request metrics, plus the Go and process collectors,
// on a private registry. The library never listens itself: applications
// mount the handler, e.g. mux.Handle("/metrics", prometheus.NewHandler()).
func NewHandler() http.Handler {
	registry := prometheus.NewRegistry()

	// default collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := Register(registry); err != nil {
		panic(err)
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
