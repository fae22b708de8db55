package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbolAfterLanguages place the currency symbol after the amount
var symbolAfterLanguages = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
}

// FormatCurrency renders value in currencyCode using locale grouping and
// decimal separators. Display only; numeric results are never changed.
func FormatCurrency(value decimal.Decimal, currencyCode, locale string) string {
	tag := language.Make(strings.ReplaceAll(locale, "_", "-"))
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return strings.ToUpper(currencyCode) + " " + p.Sprint(number.Decimal(value.InexactFloat64(), number.Scale(2)))
	}

	scale, _ := currency.Standard.Rounding(unit)
	amount := p.Sprint(number.Decimal(value.Round(int32(scale)).InexactFloat64(), number.Scale(scale)))
	symbol := p.Sprint(currency.NarrowSymbol(unit))

	base, _ := tag.Base()
	if symbolAfterLanguages[base.String()] {
		return amount + " " + symbol
	}
	return symbol + amount
}

// FormatPercentage formats a percent value with two decimals
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatSignedCurrency prefixes positive values with '+'
func FormatSignedCurrency(value decimal.Decimal, currencyCode, locale string) string {
	if value.IsNegative() {
		return "-" + FormatCurrency(value.Abs(), currencyCode, locale)
	}
	if value.IsPositive() {
		return "+" + FormatCurrency(value, currencyCode, locale)
	}
	return FormatCurrency(value, currencyCode, locale)
}
