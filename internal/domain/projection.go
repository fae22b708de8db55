package domain

import (
	"github.com/shopspring/decimal"
)

// InvestmentInput is the caller-supplied amount and contribution plan
type InvestmentInput struct {
	InitialAmount       decimal.Decimal `json:"initialAmount" yaml:"initial_amount"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	Currency            string          `json:"currency" yaml:"currency"`
}

// RateScenario is a named annual rate configuration.
// APY is a percent, so 8.0 means 8% per year.
type RateScenario struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	APY         decimal.Decimal `json:"apy" yaml:"apy"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	IsBank      bool            `json:"isBank" yaml:"is_bank"`
}

// ProjectionResult is the outcome of growing one input at one rate over one timeframe.
// Currency fields are rounded to cents.
type ProjectionResult struct {
	Timeframe        Timeframe       `json:"timeframe" yaml:"timeframe"`
	Days             int             `json:"days" yaml:"days"`
	FinalBalance     decimal.Decimal `json:"finalBalance" yaml:"final_balance"`
	TotalContributed decimal.Decimal `json:"totalContributed" yaml:"total_contributed"`
	InterestEarned   decimal.Decimal `json:"interestEarned" yaml:"interest_earned"`
	GrowthPercentage decimal.Decimal `json:"growthPercentage" yaml:"growth_percentage"`
}

// ScenarioComparison pairs the growth and baseline projections for a single timeframe
type ScenarioComparison struct {
	DeFi                 ProjectionResult `json:"defi" yaml:"defi"`
	Bank                 ProjectionResult `json:"bank" yaml:"bank"`
	Difference           decimal.Decimal  `json:"difference" yaml:"difference"`
	DifferencePercentage decimal.Decimal  `json:"differencePercentage" yaml:"difference_percentage"`
	OpportunityCost      decimal.Decimal  `json:"opportunityCost" yaml:"opportunity_cost"`
}

// Projections maps each timeframe of a grouping to its comparison
type Projections map[Timeframe]ScenarioComparison

// Ordered returns the comparisons for the given timeframes in that order.
// Timeframes missing from the map are skipped.
func (p Projections) Ordered(timeframes []Timeframe) []ScenarioComparison {
	out := make([]ScenarioComparison, 0, len(timeframes))
	for _, tf := range timeframes {
		if c, ok := p[tf]; ok {
			out = append(out, c)
		}
	}
	return out
}

// CalculatorResult is the full result bundle for one calculation request
type CalculatorResult struct {
	Input               InvestmentInput `json:"input" yaml:"input"`
	DeFiScenario        RateScenario    `json:"defiScenario" yaml:"defi_scenario"`
	BankScenario        RateScenario    `json:"bankScenario" yaml:"bank_scenario"`
	SelectedTimeframe   Timeframe       `json:"selectedTimeframe" yaml:"selected_timeframe"`
	Projections         Projections     `json:"projections" yaml:"projections"`
	LongTermProjections Projections     `json:"longTermProjections" yaml:"long_term_projections"`
}

// Selected returns the comparison for the selected timeframe, looking in the
// short-term projections first
func (r *CalculatorResult) Selected() (ScenarioComparison, bool) {
	if c, ok := r.Projections[r.SelectedTimeframe]; ok {
		return c, true
	}
	c, ok := r.LongTermProjections[r.SelectedTimeframe]
	return c, ok
}
