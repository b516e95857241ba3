package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"go-currency-converter/convert"
	"go-currency-converter/rates"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrencies offered by the form when none are configured
var DefaultCurrencies = []converter.Currency{"BRL", "USD", "EUR", "JPY", "GBP"}

// Session holds the state behind the converter form: the selected currencies and
// the rate table of the selected base currency.
// A Session is not safe for concurrent use.
type Session struct {
	// provider fetches rate tables
	provider rates.Service

	// calculator multiplies amounts by rates
	calculator convert.Service

	// currencies selectable as base or target
	currencies []converter.Currency

	base   converter.Currency
	target converter.Currency

	// table rates relative to base. Replaced, never merged, on every fetch.
	table converter.Rates

	logger log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithCurrencies sets the selectable currencies. The first two become the
// initial base and target unless WithBase or WithTarget are also given.
func WithCurrencies(currencies ...converter.Currency) Option {
	return func(s *Session) {
		if len(currencies) > 0 {
			s.currencies = currencies
		}
	}
}

// WithBase sets the initial base currency
func WithBase(c converter.Currency) Option {
	return func(s *Session) { s.base = c }
}

// WithTarget sets the initial target currency
func WithTarget(c converter.Currency) Option {
	return func(s *Session) { s.target = c }
}

// New constructs a Session. No rates are fetched until Load is called.
func New(provider rates.Service, calculator convert.Service, logger log.Logger, opts ...Option) *Session {
	s := &Session{
		provider:   provider,
		calculator: calculator,
		currencies: DefaultCurrencies,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.base == "" {
		s.base = s.currencies[0]
	}
	if s.target == "" {
		s.target = s.currencies[len(s.currencies)-1]
		if len(s.currencies) > 1 {
			s.target = s.currencies[1]
		}
	}
	return s
}

// Currencies selectable as base or target
func (s *Session) Currencies() []converter.Currency {
	return append([]converter.Currency(nil), s.currencies...)
}

// Base the currency converted from
func (s *Session) Base() converter.Currency { return s.base }

// Target the currency converted to
func (s *Session) Target() converter.Currency { return s.target }

// Available reports whether a rate table is loaded
func (s *Session) Available() bool { return len(s.table) > 0 }

// Rates returns a copy of the current rate table
func (s *Session) Rates() converter.Rates { return s.table.Clone() }

// Load fetches the rate table for the current base currency.
func (s *Session) Load(ctx context.Context) error {
	return s.refreshNow(ctx)
}

// SetBase selects a new base currency and replaces the rate table with its rates.
// If the fetch fails the base is still changed and the table is left empty.
func (s *Session) SetBase(ctx context.Context, c converter.Currency) error {
	c, err := s.known(c)
	if err != nil {
		return err
	}
	s.base = c
	return s.refreshNow(ctx)
}

// SetTarget selects the currency to convert to
func (s *Session) SetTarget(c converter.Currency) error {
	c, err := s.known(c)
	if err != nil {
		return err
	}
	s.target = c
	return nil
}

// Result a successful conversion
type Result struct {
	Amount    converter.Amount
	Base      converter.Currency
	Currency  converter.Currency
	Rate      converter.Rate
	Converted converter.Amount
}

// String formats the converted amount for display, e.g. "525.00 USD"
func (r Result) String() string {
	return fmt.Sprintf("%.2f %v", float64(r.Converted), r.Currency)
}

// Convert parses input as an amount and converts it from the base to the target currency.
// When no rate table is loaded one more fetch is attempted first.
func (s *Session) Convert(ctx context.Context, input string) (Result, error) {
	amount, err := ParseAmount(input)
	if err != nil {
		return Result{}, err
	}

	if !s.Available() {
		level.Info(s.logger).Log("msg", "no rates loaded, retrying", "base", s.base)
		if err := s.refreshNow(ctx); err != nil {
			return Result{}, err
		}
		if !s.Available() {
			return Result{}, fmt.Errorf("rates for %v: %w", s.base, converter.ErrNetworkUnavailable)
		}
	}

	rate, err := s.table.Lookup(s.target)
	if err != nil {
		return Result{}, err
	}

	converted, err := s.calculator.Convert(ctx, amount, rate)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Amount:    amount,
		Base:      s.base,
		Currency:  s.target,
		Rate:      rate,
		Converted: converted,
	}, nil
}

// ParseAmount parses a user supplied decimal amount. Only the number format is checked here,
// the sign is left to the calculator. NaN, infinities and hex floats are not amounts.
func ParseAmount(input string) (converter.Amount, error) {
	s := strings.TrimSpace(input)
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%q: %w", input, converter.ErrMalformedInput)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", input, converter.ErrMalformedInput)
	}
	if f == 0 {
		// drop the sign of -0
		f = 0
	}
	return converter.Amount(f), nil
}

// refreshNow replaces the rate table with a freshly fetched one.
// On failure the table is cleared so no rate of a previous base survives.
func (s *Session) refreshNow(ctx context.Context) error {
	table, err := s.provider.ExchangeRates(ctx, s.base)
	if err != nil {
		s.table = nil
		level.Warn(s.logger).Log("msg", "rates unavailable", "base", s.base, "err", err)
		if !errors.Is(err, converter.ErrNetworkUnavailable) {
			err = fmt.Errorf("%w: %w", converter.ErrNetworkUnavailable, err)
		}
		return fmt.Errorf("rates for %v: %w", s.base, err)
	}
	s.table = table
	return nil
}

// known normalises c and checks it against the selectable currencies
func (s *Session) known(c converter.Currency) (converter.Currency, error) {
	c, err := converter.ParseCurrency(string(c))
	if err != nil {
		return "", err
	}
	for _, k := range s.currencies {
		if k == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("currency %v: %w", c, converter.ErrUnknownCurrency)
}
