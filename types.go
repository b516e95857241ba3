package converter

import (
	"fmt"
	"strings"
)

// Currency a currency code, e.g. "BRL"
type Currency string

// ParseCurrency normalises a user supplied currency code.
// Codes are three ASCII letters and are returned in upper case.
func ParseCurrency(s string) (Currency, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return "", fmt.Errorf("currency %q: %w", s, ErrUnknownCurrency)
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("currency %q: %w", s, ErrUnknownCurrency)
		}
	}
	return Currency(s), nil
}

// Amount a monetary amount
type Amount float64

// Rate an exchange rate, units of target per one unit of base
type Rate float64

// Rates maps a currency code to its rate relative to one unit of some base currency
type Rates map[Currency]Rate

// Lookup returns the rate for currency to, or ErrMissingRate.
func (r Rates) Lookup(to Currency) (Rate, error) {
	rate, ok := r[to]
	if !ok {
		return 0, fmt.Errorf("rate for %v: %w", to, ErrMissingRate)
	}
	return rate, nil
}

// Clone returns a copy of r that shares no storage with it.
func (r Rates) Clone() Rates {
	if r == nil {
		return nil
	}
	c := make(Rates, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Exchanged the outcome of converting an amount with a rate
type Exchanged struct {
	Rate   Rate
	Amount Amount
}
