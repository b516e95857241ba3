package metrics

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RatesRequests.WithLabelValues("exchange_rates", "success").Inc()
	m.Conversions.WithLabelValues("convert", "error").Add(2)

	assert.Equal(t, 1, testutil.CollectAndCount(m.RatesRequests))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues("convert", "error")))
	assert.Panics(t, func() { New(reg) }, "collectors register once per registry")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
