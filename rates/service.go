package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"go-currency-converter"
	"io"
	"net/http"
	"time"
)

// ApiUrlBase endpoint prefix, the base currency code is appended to it
const ApiUrlBase = "https://api.exchangerate-api.com/v4/latest/"

// DefaultTimeout bounds a single rate table fetch
const DefaultTimeout = 5 * time.Second

// Service fetches the rate table for a base currency
type Service interface {
	ExchangeRates(ctx context.Context, base converter.Currency) (converter.Rates, error)
}

// ServiceFunc adapts a plain function to a Service
type ServiceFunc func(ctx context.Context, base converter.Currency) (converter.Rates, error)

// ExchangeRates calls f(ctx, base)
func (f ServiceFunc) ExchangeRates(ctx context.Context, base converter.Currency) (converter.Rates, error) {
	return f(ctx, base)
}

// service exchange rate REST API
type service struct {
	// url endpoint prefix
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid rates Service.
// An empty url selects ApiUrlBase and a zero timeout selects DefaultTimeout.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the current rate table for base.
// Transport failures and non-2xx responses are reported as converter.ErrNetworkUnavailable,
// bodies without a rate table as converter.ErrMalformedResponse.
func (s *service) ExchangeRates(ctx context.Context, base converter.Currency) (converter.Rates, error) {
	type Response struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"` // maps currency codes to rates
	}

	url := fmt.Sprintf("%v%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: http get: %w", converter.ErrNetworkUnavailable, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, fmt.Errorf("%w: http status %d", converter.ErrNetworkUnavailable, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading json: %w", converter.ErrNetworkUnavailable, err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding json: %w", converter.ErrMalformedResponse, err)
	}
	if response.Rates == nil {
		return nil, fmt.Errorf("%w: no rates field", converter.ErrMalformedResponse)
	}

	rates := make(converter.Rates, len(response.Rates))
	for k, v := range response.Rates {
		rates[converter.Currency(k)] = converter.Rate(v)
	}

	return rates, nil
}
