package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult(t *testing.T) *domain.CalculatorResult {
	t.Helper()
	growth, bank := config.DefaultScenarios()
	input := domain.InvestmentInput{
		InitialAmount:       decimal.Zero,
		MonthlyContribution: decimal.NewFromInt(20),
		Currency:            "USD",
	}
	result, err := compare.NewCompareEngine(nil).ComputeFullResult(input, domain.OneYear, growth, bank)
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"":        "table",
		"table":   "table",
		"console": "table",
		"CSV":     "csv",
		"json":    "json",
		"yaml":    "yaml",
		"yml":     "yaml",
		"html":    "html",
	}
	for name, want := range tests {
		f := GetFormatterByName(name, "en-US")
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml", "en-US"))
}

func TestFormatterNames(t *testing.T) {
	for _, name := range FormatterNames() {
		assert.NotNil(t, GetFormatterByName(name, "en-US"), name)
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "ids", F: func(r *domain.CalculatorResult) ([]byte, error) {
		return []byte(r.DeFiScenario.ID), nil
	}}

	data, err := f.Format(sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, "ids", f.Name())
	assert.Equal(t, "defi", string(data))
}

func TestTableFormatter(t *testing.T) {
	formatter := &TableFormatter{Locale: "en-US"}
	data, err := formatter.Format(sampleResult(t))
	require.NoError(t, err)
	output := string(data)

	assert.Contains(t, output, "YIELD PROJECTION COMPARISON")
	assert.Contains(t, output, "SHORT-TERM PROJECTIONS")
	assert.Contains(t, output, "LONG-TERM PROJECTIONS")
	assert.Contains(t, output, "1year *")
	assert.Contains(t, output, "$250.82")
	assert.Contains(t, output, "$240.66")
	assert.Contains(t, output, "+$10.16")
	assert.Contains(t, output, "HIGHLIGHTS")
	assert.Equal(t, 2, strings.Count(output, "5years"), "5years appears in both sections")
}

func TestTableFormatter_NilResult(t *testing.T) {
	formatter := &TableFormatter{}
	_, err := formatter.Format(nil)
	assert.Error(t, err)
}

func TestFormatters_NilResult(t *testing.T) {
	for _, name := range FormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := GetFormatterByName(name, config.DefaultLocale)
			require.NotNil(t, f)
			assert.NotPanics(t, func() {
				_, err := f.Format(nil)
				assert.Error(t, err)
			})
		})
	}
}

func TestTableFormatter_TruncateMultibyte(t *testing.T) {
	formatter := &TableFormatter{}
	got := formatter.truncate("Épargne logement populaire", 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.Equal(t, "Épargne...", got)
}

func TestCSVFormatter(t *testing.T) {
	formatter := &CSVFormatter{}
	data, err := formatter.Format(sampleResult(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8, "header plus 4 short-term and 3 long-term rows")

	assert.Len(t, records[0], 16)
	assert.Equal(t, []string{"short_term", "1week"}, records[1][:2])
	assert.Equal(t, []string{"short_term", "1year", "365", "USD", "240.00", "8.00", "250.82"}, records[3][:7])
	assert.Equal(t, []string{"long_term", "5years"}, records[5][:2])
	assert.Equal(t, []string{"long_term", "20years"}, records[7][:2])
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}
	data, err := formatter.Format(sampleResult(t))
	require.NoError(t, err)

	var decoded struct {
		SelectedTimeframe string `json:"selectedTimeframe"`
		Projections       map[string]struct {
			DeFi struct {
				FinalBalance     string `json:"finalBalance"`
				TotalContributed string `json:"totalContributed"`
			} `json:"defi"`
			Difference string `json:"difference"`
		} `json:"projections"`
		LongTermProjections map[string]json.RawMessage `json:"longTermProjections"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "1year", decoded.SelectedTimeframe)
	assert.Len(t, decoded.Projections, 4)
	assert.Len(t, decoded.LongTermProjections, 3)
	assert.Equal(t, "250.82", decoded.Projections["1year"].DeFi.FinalBalance)
	assert.Equal(t, "240", decoded.Projections["1year"].DeFi.TotalContributed)
	assert.Equal(t, "10.16", decoded.Projections["1year"].Difference)
	assert.Contains(t, decoded.LongTermProjections, "20years")
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}
	data, err := formatter.Format(sampleResult(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "1year", decoded["selected_timeframe"])

	projections, ok := decoded["projections"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, projections, "1week")
	assert.Contains(t, projections, "5years")
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, WriteFormatted(&JSONFormatter{Pretty: true}, sampleResult(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestHTMLFormatter(t *testing.T) {
	formatter := &HTMLFormatter{Locale: "en-US"}
	data, err := formatter.Format(sampleResult(t))
	require.NoError(t, err)
	output := string(data)

	assert.Contains(t, output, "<h1>Yield Projection Comparison</h1>")
	assert.Contains(t, output, "Short-term projections")
	assert.Contains(t, output, "Long-term projections")
	assert.Contains(t, output, `class="selected"`)
	assert.Contains(t, output, "$250.82")
	assert.Contains(t, output, "+$10.16")
	assert.Contains(t, output, DefaultAssumptions[0])
	assert.Equal(t, 1, strings.Count(output, `class="selected"`))
}

func TestHTMLFormatter_NilResult(t *testing.T) {
	_, err := (&HTMLFormatter{}).Format(nil)
	assert.Error(t, err)
}
