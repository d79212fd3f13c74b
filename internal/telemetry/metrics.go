package telemetry

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ControllerRequests counts API requests issued to the controller
	ControllerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rrmreport",
			Name:      "controller_requests_total",
			Help:      "Total number of API requests issued to the controller",
		},
		[]string{"endpoint"},
	)

	// ControllerRequestErrors counts failed controller API requests
	ControllerRequestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rrmreport",
			Name:      "controller_request_errors_total",
			Help:      "Total number of failed controller API requests",
		},
		[]string{"endpoint", "reason"},
	)

	// MetricsCollected counts BandMetric records built during a run
	MetricsCollected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rrmreport",
			Name:      "metrics_collected_total",
			Help:      "Total number of site/band metric records collected",
		},
		[]string{"band"},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(ControllerRequests)
		prometheus.DefaultRegisterer.Register(ControllerRequestErrors)
		prometheus.DefaultRegisterer.Register(MetricsCollected)
	})
}

// Snapshot gathers the registered counters and returns the total per
// metric family, summed across label values. A one-shot process has no
// scrape endpoint, so callers surface these totals at the end of a run.
func Snapshot() map[string]float64 {
	totals := make(map[string]float64)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		slog.Warn("Gathering metrics failed", "error", err)
		return totals
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "rrmreport_") {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				total += counter.GetValue()
			}
		}
		totals[family.GetName()] = total
	}
	return totals
}
