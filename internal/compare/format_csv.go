package compare

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

// CSVFormatter formats a comparison summary as CSV
type CSVFormatter struct{}

// Format generates CSV output with one row per scenario
func (cf *CSVFormatter) Format(summary *ComparisonSummary) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Timeframe",
		"Days",
		"Currency",
		"APY",
		"Total Contributed",
		"Final Balance",
		"Interest Earned",
		"Growth %",
		"Diff from Base",
		"Diff % from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	c := summary.Comparison
	if err := writer.Write(cf.formatRow(summary, summary.Growth, c.DeFi, "growth", c)); err != nil {
		return "", err
	}
	if err := writer.Write(cf.formatRow(summary, summary.Baseline, c.Bank, "base", domain.ScenarioComparison{})); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one scenario as a CSV row; the base row carries zero deltas
func (cf *CSVFormatter) formatRow(summary *ComparisonSummary, s domain.RateScenario, r domain.ProjectionResult, scenarioType string, delta domain.ScenarioComparison) []string {
	return []string{
		s.ID,
		scenarioType,
		summary.Timeframe.String(),
		formatInt(summary.Days),
		summary.Currency,
		s.APY.StringFixed(2),
		r.TotalContributed.StringFixed(2),
		r.FinalBalance.StringFixed(2),
		r.InterestEarned.StringFixed(2),
		r.GrowthPercentage.StringFixed(2),
		delta.Difference.StringFixed(2),
		delta.DifferencePercentage.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
