package exchange

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"time"
)

// loggingService decorates an exchange.Service with logging.
// Failures are logged at error level with their kind, successes at info.
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

func (s *loggingService) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (ex converter.Exchanged, err error) {
	defer func(begin time.Time) {
		keyvals := []interface{}{
			"method", "exchange",
			"pair", string(from) + "/" + string(to),
			"amount", amount,
			"took", time.Since(begin),
		}
		if err != nil {
			keyvals = append(keyvals, "kind", converter.Kind(err), "err", err)
			level.Error(s.logger).Log(keyvals...)
			return
		}
		keyvals = append(keyvals, "rate", ex.Rate, "converted_amount", ex.Amount)
		level.Info(s.logger).Log(keyvals...)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}
