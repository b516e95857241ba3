package rates

import (
	"context"
	"go-currency-converter"
	"go-currency-converter/metrics"
	"time"
)

// instrumentingService decorates a rates.Service with Prometheus metrics
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

func (s *instrumentingService) ExchangeRates(ctx context.Context, base converter.Currency) (rates converter.Rates, err error) {
	defer func(begin time.Time) {
		s.metrics.RatesRequests.WithLabelValues("exchange_rates", metrics.Outcome(err)).Inc()
		s.metrics.RatesLatency.WithLabelValues("exchange_rates").Observe(time.Since(begin).Seconds())
		if err == nil {
			s.metrics.RatesSize.WithLabelValues(string(base)).Set(float64(len(rates)))
		}
	}(time.Now())
	return s.next.ExchangeRates(ctx, base)
}
