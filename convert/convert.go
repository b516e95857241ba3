package convert

import (
	"context"
	"fmt"
	"go-currency-converter"
	"math"
)

// Convert multiplies amount by rate. No rounding is applied.
// Negative or non-finite amounts fail with converter.ErrInvalidAmount,
// rates that are not positive and finite with converter.ErrInvalidRate.
func Convert(amount converter.Amount, rate converter.Rate) (converter.Amount, error) {
	a := float64(amount)
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, fmt.Errorf("convert %v: %w", amount, converter.ErrInvalidAmount)
	}
	r := float64(rate)
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("convert at %v: %w", rate, converter.ErrInvalidRate)
	}
	return converter.Amount(a * r), nil
}

// Service computes conversions
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, rate converter.Rate) (converter.Amount, error)
}

type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return service{}
}

func (service) Convert(_ context.Context, amount converter.Amount, rate converter.Rate) (converter.Amount, error) {
	return Convert(amount, rate)
}
