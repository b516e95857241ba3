package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "currency_converter"

// Metrics collectors shared by the instrumenting decorators
type Metrics struct {
	// RatesRequests counts rate table fetches by outcome
	RatesRequests *prometheus.CounterVec
	// RatesLatency observes how long rate table fetches take
	RatesLatency *prometheus.HistogramVec
	// RatesSize the number of currencies in the last fetched table, by base
	RatesSize *prometheus.GaugeVec

	// Conversions counts calculator invocations by outcome
	Conversions *prometheus.CounterVec
	// ConvertLatency observes how long conversions take
	ConvertLatency *prometheus.HistogramVec
}

// New registers all collectors with reg.
// Pass prometheus.NewRegistry() in tests to avoid clashing with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RatesRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "requests_total",
			Help:      "Exchange rate table fetches.",
		}, []string{"method", "outcome"}),
		RatesLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "request_duration_seconds",
			Help:      "Exchange rate table fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		RatesSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "table_size",
			Help:      "Currencies in the last fetched rate table.",
		}, []string{"base"}),
		Conversions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "requests_total",
			Help:      "Conversions computed.",
		}, []string{"method", "outcome"}),
		ConvertLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "request_duration_seconds",
			Help:      "Conversion latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Outcome label value for err
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
