package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"spending-analyzer/internal/domain"
	"spending-analyzer/internal/usecase"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "pounds", raw: "£45.67", want: 45.67},
		{name: "dollars", raw: "$12.00", want: 12},
		{name: "negative refund", raw: "-£100.00", want: -100},
		{name: "thousands separator", raw: "£1,234,567.89", want: 1234567.89},
		{name: "surrounding whitespace", raw: "  5.00 ", want: 5},
		{name: "whitespace after symbol", raw: "£ 7.50", want: 7.5},
		{name: "plain integer", raw: "42", want: 42},
		{name: "sign after symbol", raw: "£-3.20", want: -3.2},
		{name: "exponent", raw: "1e5", want: 100000},
		{name: "no leading zero", raw: ".5", want: 0.5},
		{name: "explicit plus sign", raw: "+5", want: 5},
		{name: "tiny exponent", raw: "-2.5e-3", want: -0.0025},
		{name: "not a number", raw: "N/A", wantErr: true},
		{name: "overflows to positive infinity", raw: "1e400", wantErr: true},
		{name: "overflows to negative infinity", raw: "-1e400", wantErr: true},
		{name: "NaN literal", raw: "NaN", wantErr: true},
		{name: "infinity literal", raw: "Infinity", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "only symbols", raw: "£,$", wantErr: true},
		{name: "two decimal points", raw: "1.2.3", wantErr: true},
		{name: "trailing text", raw: "12.00 GBP", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrParseFailure))
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
