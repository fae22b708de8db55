package compare

import (
	"fmt"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

// GenerateHighlights creates short summary lines for a calculator result
func GenerateHighlights(result *domain.CalculatorResult) []string {
	highlights := []string{}
	if result == nil {
		return highlights
	}

	if result.Input.InitialAmount.IsZero() && result.Input.MonthlyContribution.IsZero() {
		return append(highlights, "No amount or monthly contribution entered: both scenarios stay at zero")
	}

	if selected, ok := result.Selected(); ok {
		if selected.Difference.IsPositive() {
			highlights = append(highlights, fmt.Sprintf(
				"Over %s, %s ends %s %s ahead of %s (%s%%)",
				result.SelectedTimeframe, scenarioLabel(result.DeFiScenario),
				selected.Difference.StringFixed(2), result.Input.Currency,
				scenarioLabel(result.BankScenario), selected.DifferencePercentage.StringFixed(2)))
		} else if selected.Difference.IsNegative() {
			highlights = append(highlights, fmt.Sprintf(
				"Over %s, %s ends %s %s ahead of %s",
				result.SelectedTimeframe, scenarioLabel(result.BankScenario),
				selected.Difference.Abs().StringFixed(2), result.Input.Currency,
				scenarioLabel(result.DeFiScenario)))
		} else {
			highlights = append(highlights, fmt.Sprintf("Over %s, both scenarios end level", result.SelectedTimeframe))
		}
	}

	// Largest long-term gap
	longTerm := domain.LongTermTimeframes()
	var best *domain.ScenarioComparison
	var bestTF domain.Timeframe
	for _, tf := range longTerm {
		c, ok := result.LongTermProjections[tf]
		if !ok {
			continue
		}
		if best == nil || c.OpportunityCost.Abs().GreaterThan(best.OpportunityCost.Abs()) {
			best = &c
			bestTF = tf
		}
	}
	if best != nil && !best.OpportunityCost.IsZero() {
		highlights = append(highlights, fmt.Sprintf(
			"Opportunity cost after %s: %s %s (%s interest vs %s)",
			bestTF, best.OpportunityCost.StringFixed(2), result.Input.Currency,
			best.DeFi.InterestEarned.StringFixed(2), best.Bank.InterestEarned.StringFixed(2)))
	}

	return highlights
}

func scenarioLabel(s domain.RateScenario) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// ComparisonSummary is a single-timeframe comparison together with the
// scenarios that produced it
type ComparisonSummary struct {
	Timeframe  domain.Timeframe          `json:"timeframe"`
	Days       int                       `json:"days"`
	Currency   string                    `json:"currency"`
	Growth     domain.RateScenario       `json:"growth"`
	Baseline   domain.RateScenario       `json:"baseline"`
	Comparison domain.ScenarioComparison `json:"comparison"`
}
