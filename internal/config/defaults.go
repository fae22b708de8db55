package config

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultLocale is used whenever a requested locale is not in the table
const DefaultLocale = "en-US"

// LocaleConfig is the currency and baseline savings rate for a locale
type LocaleConfig struct {
	Locale      string          `json:"locale" yaml:"locale"`
	Currency    string          `json:"currency" yaml:"currency"`
	BaselineAPY decimal.Decimal `json:"baselineApy" yaml:"baseline_apy"`
}

var localeTable = map[string]LocaleConfig{
	"en-US": {Locale: "en-US", Currency: "USD", BaselineAPY: decimal.RequireFromString("0.45")},
	"en-GB": {Locale: "en-GB", Currency: "GBP", BaselineAPY: decimal.RequireFromString("1.5")},
	"de-DE": {Locale: "de-DE", Currency: "EUR", BaselineAPY: decimal.RequireFromString("0.5")},
	"fr-FR": {Locale: "fr-FR", Currency: "EUR", BaselineAPY: decimal.RequireFromString("0.5")},
	"es-ES": {Locale: "es-ES", Currency: "EUR", BaselineAPY: decimal.RequireFromString("0.5")},
	"it-IT": {Locale: "it-IT", Currency: "EUR", BaselineAPY: decimal.RequireFromString("0.5")},
	"nl-NL": {Locale: "nl-NL", Currency: "EUR", BaselineAPY: decimal.RequireFromString("0.5")},
	"pt-BR": {Locale: "pt-BR", Currency: "BRL", BaselineAPY: decimal.RequireFromString("6.17")},
	"ja-JP": {Locale: "ja-JP", Currency: "JPY", BaselineAPY: decimal.RequireFromString("0.1")},
}

// languageDefaults picks a locale when only a bare language code is given
var languageDefaults = map[string]string{
	"en": "en-US",
	"de": "de-DE",
	"fr": "fr-FR",
	"es": "es-ES",
	"it": "it-IT",
	"nl": "nl-NL",
	"pt": "pt-BR",
	"ja": "ja-JP",
}

// GetLocaleConfig returns the configuration for locale. Tags are matched
// case-insensitively with '_' or '-' separators. A bare language code such as
// "de" maps to its language default; any other tag not in the table, including
// an unlisted region of a known language, gets DefaultLocale.
func GetLocaleConfig(locale string) LocaleConfig {
	norm := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")

	for key, cfg := range localeTable {
		if strings.EqualFold(key, norm) {
			return cfg
		}
	}

	if key, ok := languageDefaults[strings.ToLower(norm)]; ok {
		return localeTable[key]
	}

	return localeTable[DefaultLocale]
}

// Locales returns every configured locale, sorted by tag
func Locales() []LocaleConfig {
	out := make([]LocaleConfig, 0, len(localeTable))
	for _, cfg := range localeTable {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale < out[j].Locale })
	return out
}

// DefaultGrowthScenario is the canonical yield scenario
func DefaultGrowthScenario() domain.RateScenario {
	return domain.RateScenario{
		ID:          "defi",
		Name:        "DeFi Yield",
		APY:         decimal.NewFromFloat(8.0),
		Description: "Stablecoin yield at a fixed annual rate",
		IsBank:      false,
	}
}

// DefaultBankScenario is the canonical traditional savings scenario
func DefaultBankScenario() domain.RateScenario {
	return domain.RateScenario{
		ID:          "bank",
		Name:        "Traditional Savings",
		APY:         decimal.NewFromFloat(0.5),
		Description: "Typical savings account rate",
		IsBank:      true,
	}
}

// DefaultScenarios returns the canonical growth and baseline scenarios
func DefaultScenarios() (growth, baseline domain.RateScenario) {
	return DefaultGrowthScenario(), DefaultBankScenario()
}

// ScenariosForLocale returns the canonical growth scenario and a baseline
// scenario carrying the locale's savings rate
func ScenariosForLocale(locale string) (growth, baseline domain.RateScenario) {
	growth, baseline = DefaultScenarios()
	baseline.APY = GetLocaleConfig(locale).BaselineAPY
	return growth, baseline
}
