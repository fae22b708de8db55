package config

import (
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// InputBounds limits what a caller may feed the engine. The engine itself
// never clamps; callers apply Clamp first.
type InputBounds struct {
	MinInitialAmount decimal.Decimal `json:"minInitialAmount" yaml:"min_initial_amount"`
	MaxInitialAmount decimal.Decimal `json:"maxInitialAmount" yaml:"max_initial_amount"`
	MinMonthly       decimal.Decimal `json:"minMonthly" yaml:"min_monthly"`
	MaxMonthly       decimal.Decimal `json:"maxMonthly" yaml:"max_monthly"`
	MonthlyStep      decimal.Decimal `json:"monthlyStep" yaml:"monthly_step"`
}

// DefaultBounds returns the standard calculator input bounds
func DefaultBounds() InputBounds {
	return InputBounds{
		MinInitialAmount: decimal.Zero,
		MaxInitialAmount: decimal.NewFromInt(1_000_000),
		MinMonthly:       decimal.Zero,
		MaxMonthly:       decimal.NewFromInt(10_000),
		MonthlyStep:      decimal.NewFromInt(10),
	}
}

// Clamp returns input with the initial amount bounded and the monthly
// contribution snapped to the nearest step inside its bounds
func (b InputBounds) Clamp(input domain.InvestmentInput) domain.InvestmentInput {
	out := input
	out.InitialAmount = clampDecimal(input.InitialAmount, b.MinInitialAmount, b.MaxInitialAmount)

	monthly := input.MonthlyContribution
	if b.MonthlyStep.IsPositive() {
		monthly = monthly.Div(b.MonthlyStep).Round(0).Mul(b.MonthlyStep)
	}
	out.MonthlyContribution = clampDecimal(monthly, b.MinMonthly, b.MaxMonthly)

	return out
}

func clampDecimal(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
