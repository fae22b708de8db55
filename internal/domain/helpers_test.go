package domain

import "github.com/shopspring/decimal"

func decimalFromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func comparisonFor(tf Timeframe) ScenarioComparison {
	return ScenarioComparison{
		DeFi: ProjectionResult{Timeframe: tf, Days: tf.Days()},
		Bank: ProjectionResult{Timeframe: tf, Days: tf.Days()},
	}
}
