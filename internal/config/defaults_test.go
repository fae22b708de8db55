package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocaleConfig(t *testing.T) {
	tests := []struct {
		locale   string
		want     string
		currency string
	}{
		{"en-US", "en-US", "USD"},
		{"de-DE", "de-DE", "EUR"},
		{"de_de", "de-DE", "EUR"},
		{"  EN-gb ", "en-GB", "GBP"},
		{"de", "de-DE", "EUR"},
		{"DE", "de-DE", "EUR"},
		{"pt", "pt-BR", "BRL"},
		{"de-AT", DefaultLocale, "USD"},
		{"pt_PT", DefaultLocale, "USD"},
		{"fr-CA", DefaultLocale, "USD"},
		{"en-AU", DefaultLocale, "USD"},
		{"ja-JP", "ja-JP", "JPY"},
		{"zz-ZZ", DefaultLocale, "USD"},
		{"", DefaultLocale, "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			cfg := GetLocaleConfig(tt.locale)
			assert.Equal(t, tt.want, cfg.Locale)
			assert.Equal(t, tt.currency, cfg.Currency)
		})
	}
}

func TestGetLocaleConfig_UnknownIsDefault(t *testing.T) {
	def := GetLocaleConfig(DefaultLocale)
	for _, locale := range []string{"zz-ZZ", "de-AT", "pt-PT", "fr-CA", "es-MX", "de-CH-1996"} {
		assert.Equal(t, def, GetLocaleConfig(locale), locale)
	}

	// an unlisted region never inherits another region's currency or rate
	pt := GetLocaleConfig("pt-PT")
	assert.NotEqual(t, "BRL", pt.Currency)
	assert.True(t, pt.BaselineAPY.Equal(def.BaselineAPY))
}

func TestLocales(t *testing.T) {
	locales := Locales()
	require.NotEmpty(t, locales)

	for i := 1; i < len(locales); i++ {
		assert.Less(t, locales[i-1].Locale, locales[i].Locale, "locales should be sorted")
	}
	for _, lc := range locales {
		assert.NotEmpty(t, lc.Currency, lc.Locale)
		assert.False(t, lc.BaselineAPY.IsNegative(), lc.Locale)
	}
}

func TestDefaultScenarios(t *testing.T) {
	growth, bank := DefaultScenarios()

	assert.Equal(t, "defi", growth.ID)
	assert.False(t, growth.IsBank)
	assert.True(t, growth.APY.Equal(decimal.NewFromInt(8)))

	assert.Equal(t, "bank", bank.ID)
	assert.True(t, bank.IsBank)
	assert.True(t, bank.APY.Equal(decimal.RequireFromString("0.5")))
}

func TestScenariosForLocale(t *testing.T) {
	growth, bank := ScenariosForLocale("en-US")
	assert.True(t, growth.APY.Equal(decimal.NewFromInt(8)))
	assert.True(t, bank.APY.Equal(decimal.RequireFromString("0.45")))
	assert.Equal(t, "bank", bank.ID)

	_, bank = ScenariosForLocale("pt-BR")
	assert.True(t, bank.APY.Equal(decimal.RequireFromString("6.17")))
}
