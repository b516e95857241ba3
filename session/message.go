package session

import (
	"errors"
	"go-currency-converter"
)

// Message maps an error returned by a Session to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, converter.ErrMalformedResponse):
		return "The exchange rate service returned an unexpected response. Try again later."
	case errors.Is(err, converter.ErrNetworkUnavailable):
		return "Exchange rates are unavailable. Check your connection and try again."
	case errors.Is(err, converter.ErrMissingRate):
		return "No exchange rate found for the selected currency."
	case errors.Is(err, converter.ErrInvalidAmount):
		return "The amount cannot be negative."
	case errors.Is(err, converter.ErrInvalidRate):
		return "The exchange rate for the selected currency is not valid."
	case errors.Is(err, converter.ErrMalformedInput):
		return "Please enter a valid numeric amount."
	case errors.Is(err, converter.ErrUnknownCurrency):
		return "Unknown currency."
	default:
		return "Unexpected error: " + err.Error()
	}
}
