package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

// CSVFormatter formats calculator results as CSV, one row per grouping and timeframe
type CSVFormatter struct{}

// Name returns the formatter identifier
func (cf *CSVFormatter) Name() string { return "csv" }

// Format generates CSV output for a calculator result
func (cf *CSVFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, errNoResult
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Group",
		"Timeframe",
		"Days",
		"Currency",
		"Total Contributed",
		"Growth APY",
		"Growth Final Balance",
		"Growth Interest",
		"Growth %",
		"Baseline APY",
		"Baseline Final Balance",
		"Baseline Interest",
		"Baseline %",
		"Difference",
		"Difference %",
		"Opportunity Cost",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	groups := []struct {
		name        string
		projections domain.Projections
		timeframes  []domain.Timeframe
	}{
		{"short_term", result.Projections, shortTermSlice()},
		{"long_term", result.LongTermProjections, longTermSlice()},
	}

	for _, g := range groups {
		for _, c := range g.projections.Ordered(g.timeframes) {
			if err := writer.Write(cf.formatRow(g.name, result, c)); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}

func (cf *CSVFormatter) formatRow(group string, result *domain.CalculatorResult, c domain.ScenarioComparison) []string {
	return []string{
		group,
		c.DeFi.Timeframe.String(),
		strconv.Itoa(c.DeFi.Days),
		result.Input.Currency,
		c.DeFi.TotalContributed.StringFixed(2),
		result.DeFiScenario.APY.StringFixed(2),
		c.DeFi.FinalBalance.StringFixed(2),
		c.DeFi.InterestEarned.StringFixed(2),
		c.DeFi.GrowthPercentage.StringFixed(2),
		result.BankScenario.APY.StringFixed(2),
		c.Bank.FinalBalance.StringFixed(2),
		c.Bank.InterestEarned.StringFixed(2),
		c.Bank.GrowthPercentage.StringFixed(2),
		c.Difference.StringFixed(2),
		c.DifferencePercentage.StringFixed(2),
		c.OpportunityCost.StringFixed(2),
	}
}

func shortTermSlice() []domain.Timeframe {
	tfs := domain.ShortTermTimeframes()
	return tfs[:]
}

func longTermSlice() []domain.Timeframe {
	tfs := domain.LongTermTimeframes()
	return tfs[:]
}
