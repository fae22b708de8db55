package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Locale string
}

// Name returns the formatter identifier
func (h *HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

// htmlSection is one grouping of timeframes in the report
type htmlSection struct {
	Title string
	Rows  []domain.ScenarioComparison
}

// Format renders result through the embedded report template
func (h *HTMLFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, errNoResult
	}

	cur := result.Input.Currency
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"curr":   func(v decimal.Decimal) string { return FormatCurrency(v, cur, h.Locale) },
		"signed": func(v decimal.Decimal) string { return FormatSignedCurrency(v, cur, h.Locale) },
		"pct":    FormatPercentage,
	}).Parse(htmlTemplateSource)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}

	data := struct {
		*domain.CalculatorResult
		Sections    []htmlSection
		Highlights  []string
		Assumptions []string
	}{
		CalculatorResult: result,
		Sections: []htmlSection{
			{"Short-term projections", result.Projections.Ordered(shortTermSlice())},
			{"Long-term projections", result.LongTermProjections.Ordered(longTermSlice())},
		},
		Highlights:  compare.GenerateHighlights(result),
		Assumptions: DefaultAssumptions,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
