package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the capture daemon.
type Metrics struct {
	registry                  *prometheus.Registry
	cyclesTotal               prometheus.Counter
	segmentsAppendedTotal     prometheus.Counter
	bytesAppendedTotal        prometheus.Counter
	fetchErrorsTotal          prometheus.Counter
	appendErrorsTotal         prometheus.Counter
	configReloadFailuresTotal prometheus.Counter
	periodActive              prometheus.Gauge
	processedSegments         prometheus.Gauge
}

// New creates and registers Prometheus metrics for the capture daemon.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	cyclesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_cycles_total",
		Help: "Total number of poll cycles executed",
	})
	segmentsAppendedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_segments_appended_total",
		Help: "Total number of segments appended to combined files",
	})
	bytesAppendedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_bytes_appended_total",
		Help: "Total segment bytes appended to combined files",
	})
	fetchErrorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_fetch_errors_total",
		Help: "Total playlist and segment fetch failures",
	})
	appendErrorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_append_errors_total",
		Help: "Total combined-file append failures",
	})
	configReloadFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_config_reload_failures_total",
		Help: "Total schedule or endpoint reload failures",
	})
	periodActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "capture_period_active",
		Help: "Whether a schedule period is currently active (0 or 1)",
	})
	processedSegments := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "capture_processed_segments",
		Help: "Number of distinct segment ids combined this run",
	})

	registry.MustRegister(
		cyclesTotal,
		segmentsAppendedTotal,
		bytesAppendedTotal,
		fetchErrorsTotal,
		appendErrorsTotal,
		configReloadFailuresTotal,
		periodActive,
		processedSegments,
	)

	return &Metrics{
		registry:                  registry,
		cyclesTotal:               cyclesTotal,
		segmentsAppendedTotal:     segmentsAppendedTotal,
		bytesAppendedTotal:        bytesAppendedTotal,
		fetchErrorsTotal:          fetchErrorsTotal,
		appendErrorsTotal:         appendErrorsTotal,
		configReloadFailuresTotal: configReloadFailuresTotal,
		periodActive:              periodActive,
		processedSegments:         processedSegments,
	}
}

// IncCycles increments the poll cycle counter.
func (m *Metrics) IncCycles() {
	m.cyclesTotal.Inc()
}

// IncSegmentsAppended increments the appended segments counter.
func (m *Metrics) IncSegmentsAppended() {
	m.segmentsAppendedTotal.Inc()
}

// AddBytesAppended adds n to the appended bytes counter.
func (m *Metrics) AddBytesAppended(n int) {
	m.bytesAppendedTotal.Add(float64(n))
}

// IncFetchErrors increments the fetch failure counter.
func (m *Metrics) IncFetchErrors() {
	m.fetchErrorsTotal.Inc()
}

// IncAppendErrors increments the append failure counter.
func (m *Metrics) IncAppendErrors() {
	m.appendErrorsTotal.Inc()
}

// IncConfigReloadFailures increments the config reload failure counter.
func (m *Metrics) IncConfigReloadFailures() {
	m.configReloadFailuresTotal.Inc()
}

// SetPeriodActive sets the active-period gauge.
func (m *Metrics) SetPeriodActive(active bool) {
	if active {
		m.periodActive.Set(1)
	} else {
		m.periodActive.Set(0)
	}
}

// SetProcessedSegments sets the processed-set size gauge.
func (m *Metrics) SetProcessedSegments(n int) {
	m.processedSegments.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g.
// the processed-set size).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
