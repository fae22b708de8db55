package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		currency string
		locale   string
		want     string
	}{
		{"us dollars", "1234.5", "USD", "en-US", "$1,234.50"},
		{"zero", "0", "USD", "en-US", "$0.00"},
		{"german euros", "1234.5", "EUR", "de-DE", "1.234,50 €"},
		{"underscore locale", "1234.5", "EUR", "de_DE", "1.234,50 €"},
		{"british pounds", "250.82", "GBP", "en-GB", "£250.82"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(decimal.RequireFromString(tt.value), tt.currency, tt.locale)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrency_ZeroDecimalCurrency(t *testing.T) {
	got := FormatCurrency(decimal.RequireFromString("1234.56"), "JPY", "en-US")
	assert.Contains(t, got, "1,235")
	assert.NotContains(t, got, ".")
}

func TestFormatCurrency_UnknownCode(t *testing.T) {
	got := FormatCurrency(decimal.NewFromInt(12), "xyz", "en-US")
	assert.Equal(t, "XYZ 12.00", got)
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "4.22%", FormatPercentage(decimal.RequireFromString("4.22")))
	assert.Equal(t, "0.50%", FormatPercentage(decimal.RequireFromString("0.5")))
	assert.Equal(t, "-1.00%", FormatPercentage(decimal.NewFromInt(-1)))
}

func TestFormatSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$10.16", FormatSignedCurrency(decimal.RequireFromString("10.16"), "USD", "en-US"))
	assert.Equal(t, "-$10.16", FormatSignedCurrency(decimal.RequireFromString("-10.16"), "USD", "en-US"))
	assert.Equal(t, "$0.00", FormatSignedCurrency(decimal.Zero, "USD", "en-US"))
}
