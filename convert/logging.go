package convert

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount converter.Amount, rate converter.Rate) (result converter.Amount, err error) {
	defer func(begin time.Time) {
		if err != nil {
			level.Error(s.logger).Log(
				"method", "convert",
				"amount", amount,
				"rate", rate,
				"kind", converter.Kind(err),
				"took", time.Since(begin),
				"err", err,
			)
			return
		}
		level.Debug(s.logger).Log(
			"method", "convert",
			"amount", amount,
			"rate", rate,
			"converted_amount", result,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, rate)
}
