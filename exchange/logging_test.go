package exchange

import (
	"bytes"
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	converter "go-currency-converter"
	"go-currency-converter/convert"
	"strings"
	"testing"
)

func TestLoggingService(t *testing.T) {
	allRates := map[converter.Currency]converter.Rates{
		"BRL": {"USD": 0.2},
	}

	tests := []struct {
		name    string
		to      converter.Currency
		amount  converter.Amount
		wantErr error
		want    []string
		notWant []string
	}{
		{
			"success",
			"USD", 100, nil,
			[]string{"level=info", "method=exchange", "pair=BRL/USD", "rate=0.2", "converted_amount=20"},
			[]string{"kind=", "err="},
		},
		{
			"missing rate",
			"JPY", 100, converter.ErrMissingRate,
			[]string{"level=error", "pair=BRL/JPY", "kind=missing_rate"},
			[]string{"converted_amount="},
		},
		{
			"invalid amount",
			"USD", -1, converter.ErrInvalidAmount,
			[]string{"level=error", "kind=invalid_amount"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(&mock{exchangeRates: allRates}, convert.NewService()))

			_, err := s.Convert(context.Background(), tt.amount, "BRL", tt.to)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			out := buf.String()
			for _, w := range tt.want {
				assert.True(t, strings.Contains(out, w), "%q not in %s", w, out)
			}
			for _, w := range tt.notWant {
				assert.False(t, strings.Contains(out, w), "%q in %s", w, out)
			}
		})
	}
}
