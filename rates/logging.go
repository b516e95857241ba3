package rates

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"time"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, base converter.Currency) (rates converter.Rates, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Error(s.logger)
		}
		logger.Log(
			"method", "exchange_rates",
			"currency", base,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, base)
}
