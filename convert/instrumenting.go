package convert

import (
	"context"
	"go-currency-converter"
	"go-currency-converter/metrics"
	"time"
)

// instrumentingService decorates a convert.Service with Prometheus metrics
type instrumentingService struct {
	next    Service
	metrics *metrics.Metrics
}

// NewInstrumentingService returns a new instrumenting Service
func NewInstrumentingService(m *metrics.Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: m,
	}
}

func (s *instrumentingService) Convert(ctx context.Context, amount converter.Amount, rate converter.Rate) (result converter.Amount, err error) {
	defer func(begin time.Time) {
		s.metrics.Conversions.WithLabelValues("convert", metrics.Outcome(err)).Inc()
		s.metrics.ConvertLatency.WithLabelValues("convert").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Convert(ctx, amount, rate)
}
