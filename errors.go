package converter

import "errors"

var (
	// ErrNetworkUnavailable rates could not be fetched: transport failure, timeout or non-2xx status.
	ErrNetworkUnavailable = errors.New("exchange rates unavailable")

	// ErrMalformedResponse the rates endpoint answered but the body was not a rate table.
	// It is also reported as ErrNetworkUnavailable, see malformed.Is.
	ErrMalformedResponse error = malformed{}

	// ErrMissingRate the target currency is absent from the rate table.
	ErrMissingRate = errors.New("missing rate")

	// ErrInvalidAmount the amount is negative or not a finite number.
	ErrInvalidAmount = errors.New("amount cannot be negative")

	// ErrInvalidRate the rate is not a positive finite number.
	ErrInvalidRate = errors.New("rate must be positive")

	// ErrMalformedInput the amount entered is not a number.
	ErrMalformedInput = errors.New("amount is not a number")

	// ErrUnknownCurrency the currency code is not a known or well-formed code.
	ErrUnknownCurrency = errors.New("unknown currency")
)

type malformed struct{}

func (malformed) Error() string { return "malformed exchange rates response" }

func (malformed) Is(target error) bool {
	return target == ErrNetworkUnavailable
}

// Kind names the error kind of err for logs and metrics: "" for nil,
// "other" when err matches none of the sentinels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrNetworkUnavailable):
		return "network_unavailable"
	case errors.Is(err, ErrMissingRate):
		return "missing_rate"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, ErrUnknownCurrency):
		return "unknown_currency"
	default:
		return "other"
	}
}
