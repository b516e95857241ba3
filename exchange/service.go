package exchange

import (
	"context"
	"fmt"
	"go-currency-converter"
	"go-currency-converter/convert"
	"go-currency-converter/rates"
)

// Service interface for converting an amount from one currency to another in one call
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error)
}

// service one-shot exchange
type service struct {
	// ratesService to fetch the rate table of the 'from' currency
	ratesService rates.Service

	// calculator multiplies the amount by the rate
	calculator convert.Service
}

// NewService constructs a valid Service
func NewService(r rates.Service, c convert.Service) Service {
	return &service{
		ratesService: r,
		calculator:   c,
	}
}

// Convert computes a conversion from one currency to another with the current exchange rate.
// The rate table is fetched on every call.
func (s *service) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error) {
	table, err := s.ratesService.ExchangeRates(ctx, from)
	if err != nil {
		return converter.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	rate, err := table.Lookup(to)
	if err != nil {
		return converter.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	converted, err := s.calculator.Convert(ctx, amount, rate)
	if err != nil {
		return converter.Exchanged{}, err
	}

	return converter.Exchanged{Rate: rate, Amount: converted}, nil
}
