package compare

import (
	"fmt"

	"github.com/rgehrsitz/yieldcalc/internal/calculation"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates scenario comparison across timeframes
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareScenarios projects input under both rates for one timeframe and
// reports how far the baseline falls behind the growth scenario
func (ce *CompareEngine) CompareScenarios(
	input domain.InvestmentInput,
	growthAPY, baselineAPY decimal.Decimal,
	tf domain.Timeframe,
) (domain.ScenarioComparison, error) {
	growth, err := ce.CalcEngine.ComputeProjection(input, growthAPY, tf)
	if err != nil {
		return domain.ScenarioComparison{}, fmt.Errorf("failed to project growth scenario: %w", err)
	}

	baseline, err := ce.CalcEngine.ComputeProjection(input, baselineAPY, tf)
	if err != nil {
		return domain.ScenarioComparison{}, fmt.Errorf("failed to project baseline scenario: %w", err)
	}

	difference := growth.FinalBalance.Sub(baseline.FinalBalance)

	differencePct := decimal.Zero
	if !baseline.FinalBalance.IsZero() {
		differencePct = difference.
			Div(baseline.FinalBalance).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return domain.ScenarioComparison{
		DeFi:                 growth,
		Bank:                 baseline,
		Difference:           difference,
		DifferencePercentage: differencePct,
		OpportunityCost:      difference,
	}, nil
}

// Summarize compares both scenarios for a single timeframe
func (ce *CompareEngine) Summarize(
	input domain.InvestmentInput,
	tf domain.Timeframe,
	growth, baseline domain.RateScenario,
) (*ComparisonSummary, error) {
	if !tf.Valid() {
		return nil, fmt.Errorf("timeframe: %w: %d", domain.ErrUnknownTimeframe, uint8(tf))
	}

	comparison, err := ce.CompareScenarios(input, growth.APY, baseline.APY, tf)
	if err != nil {
		return nil, err
	}

	return &ComparisonSummary{
		Timeframe:  tf,
		Days:       tf.Days(),
		Currency:   input.Currency,
		Growth:     growth,
		Baseline:   baseline,
		Comparison: comparison,
	}, nil
}

// ComputeFullResult compares both scenarios over every short-term and long-term
// timeframe. Either every timeframe succeeds or no result is returned.
func (ce *CompareEngine) ComputeFullResult(
	input domain.InvestmentInput,
	selected domain.Timeframe,
	growth, baseline domain.RateScenario,
) (*domain.CalculatorResult, error) {
	if !selected.Valid() {
		return nil, fmt.Errorf("selected timeframe: %w: %d", domain.ErrUnknownTimeframe, uint8(selected))
	}

	logger := ce.CalcEngine.Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	logger.Debugf("computing full result: initial=%s monthly=%s %s, %s at %s%% vs %s at %s%%",
		input.InitialAmount.StringFixed(2), input.MonthlyContribution.StringFixed(2), input.Currency,
		growth.ID, growth.APY.String(), baseline.ID, baseline.APY.String())

	shortTerm := domain.ShortTermTimeframes()
	projections, err := ce.compareAll(input, growth.APY, baseline.APY, shortTerm[:])
	if err != nil {
		return nil, err
	}

	longTerm := domain.LongTermTimeframes()
	longTermProjections, err := ce.compareAll(input, growth.APY, baseline.APY, longTerm[:])
	if err != nil {
		return nil, err
	}

	return &domain.CalculatorResult{
		Input:               input,
		DeFiScenario:        growth,
		BankScenario:        baseline,
		SelectedTimeframe:   selected,
		Projections:         projections,
		LongTermProjections: longTermProjections,
	}, nil
}

// compareAll builds a fresh mapping for one grouping of timeframes
func (ce *CompareEngine) compareAll(
	input domain.InvestmentInput,
	growthAPY, baselineAPY decimal.Decimal,
	timeframes []domain.Timeframe,
) (domain.Projections, error) {
	out := make(domain.Projections, len(timeframes))
	for _, tf := range timeframes {
		comparison, err := ce.CompareScenarios(input, growthAPY, baselineAPY, tf)
		if err != nil {
			return nil, fmt.Errorf("failed to compare scenarios for %s: %w", tf, err)
		}
		out[tf] = comparison
	}
	return out, nil
}
