package calculation

import (
	"fmt"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine computes single-rate projections. It holds no state beyond its logger
// and is safe for concurrent use.
type Engine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewEngine creates a new projection engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputeProjection projects input at apyPercent over the timeframe.
// tf must be one of the fixed horizons.
func (e *Engine) ComputeProjection(input domain.InvestmentInput, apyPercent decimal.Decimal, tf domain.Timeframe) (domain.ProjectionResult, error) {
	days := tf.Days()

	result, err := Project(
		input.InitialAmount.InexactFloat64(),
		input.MonthlyContribution.InexactFloat64(),
		apyPercent.InexactFloat64(),
		days,
	)
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("projection for %s: %w", tf, err)
	}
	result.Timeframe = tf

	if e.Debug {
		e.Logger.Debugf("projection %s (%d days) at %s%%: contributed=%s final=%s interest=%s growth=%s%%",
			tf, days, apyPercent.String(),
			result.TotalContributed.StringFixed(2),
			result.FinalBalance.StringFixed(2),
			result.InterestEarned.StringFixed(2),
			result.GrowthPercentage.StringFixed(2))
	}

	return result, nil
}
