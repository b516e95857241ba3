package convert

import (
	"bytes"
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	converter "go-currency-converter"
	"go-currency-converter/metrics"
	"math"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		amount  converter.Amount
		rate    converter.Rate
		want    converter.Amount
		wantErr error
	}{
		{"100 at 5.25", 100, 5.25, 525.0, nil},
		{"zero amount", 0, 5.0, 0.0, nil},
		{"brl -> usd", 100, 0.2, 20.0, nil},
		{"fractional", 2.5, 4, 10, nil},
		{"negative amount", -1, 5.0, 0, converter.ErrInvalidAmount},
		{"nan amount", converter.Amount(math.NaN()), 5.0, 0, converter.ErrInvalidAmount},
		{"infinite amount", converter.Amount(math.Inf(1)), 5.0, 0, converter.ErrInvalidAmount},
		{"zero rate", 10, 0, 0, converter.ErrInvalidRate},
		{"negative rate", 10, -2, 0, converter.ErrInvalidRate},
		{"nan rate", 10, converter.Rate(math.NaN()), 0, converter.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.rate)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_InvalidAmountMessage(t *testing.T) {
	_, err := Convert(-1, 5)
	assert.True(t, strings.Contains(err.Error(), "amount cannot be negative"), err.Error())
}

func TestService_Convert(t *testing.T) {
	s := NewService()

	got, err := s.Convert(context.Background(), 100, 5.25)

	assert.NoError(t, err)
	assert.Equal(t, converter.Amount(525), got)
}

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService())

	got, err := s.Convert(context.Background(), 10, 2)

	assert.NoError(t, err)
	assert.Equal(t, converter.Amount(20), got)
	assert.True(t, strings.Contains(buf.String(), "converted_amount=20"), buf.String())
}

func TestLoggingService_FailuresPassInfoFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowInfo())
	s := NewLoggingService(logger, NewService())

	_, _ = s.Convert(context.Background(), 10, 2)
	assert.Empty(t, buf.String(), "successes log at debug")

	_, err := s.Convert(context.Background(), -1, 2)

	assert.True(t, errors.Is(err, converter.ErrInvalidAmount))
	out := buf.String()
	assert.True(t, strings.Contains(out, "level=error"), out)
	assert.True(t, strings.Contains(out, "kind=invalid_amount"), out)
}

func TestInstrumentingService(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	s := NewInstrumentingService(m, NewService())

	_, _ = s.Convert(context.Background(), 10, 2)
	_, _ = s.Convert(context.Background(), -10, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("convert", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("convert", "error")))
}
