package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNonFiniteResult is returned when the growth math overflows
var ErrNonFiniteResult = errors.New("projection produced a non-finite value")

const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// DailyRate converts an annual percentage yield (8.0 == 8%) to a daily rate
func DailyRate(apyPercent float64) float64 {
	return apyPercent / 100 / daysPerYear
}

// PrincipalGrowth compounds the principal daily over the full horizon
func PrincipalGrowth(principal, dailyRate float64, days int) float64 {
	return principal * math.Pow(1+dailyRate, float64(days))
}

// ContributionGrowth sums each whole month's contribution compounded daily over
// the days it has left to grow. Month i's contribution grows for days-i*30 days.
// This is a month-by-month summation, not a closed-form annuity.
func ContributionGrowth(monthlyContribution, dailyRate float64, days int) float64 {
	months := ContributionMonths(days)
	if monthlyContribution == 0 || months < 1 {
		return 0
	}

	total := 0.0
	for i := 0; i < months; i++ {
		remaining := days - i*daysPerMonth
		if remaining > 0 {
			total += monthlyContribution * math.Pow(1+dailyRate, float64(remaining))
		}
	}
	return total
}

// ContributionMonths is the number of whole 30-day months in the horizon
func ContributionMonths(days int) int {
	if days <= 0 {
		return 0
	}
	return days / daysPerMonth
}

// RoundCents rounds half up to two decimal places
func RoundCents(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Project computes a projection for a principal and monthly contribution at
// apyPercent over days. Inputs are not validated or clamped.
func Project(principal, monthlyContribution, apyPercent float64, days int) (domain.ProjectionResult, error) {
	rate := DailyRate(apyPercent)
	months := ContributionMonths(days)

	totalContributed := principal + float64(months)*monthlyContribution
	finalBalance := RoundCents(PrincipalGrowth(principal, rate, days) + ContributionGrowth(monthlyContribution, rate, days))
	// interest comes from the rounded balance, so a cent of drift is expected
	interestEarned := RoundCents(finalBalance - totalContributed)

	growthPercentage := 0.0
	if totalContributed > 0 {
		growthPercentage = RoundCents((finalBalance - totalContributed) / totalContributed * 100)
	}

	checks := []struct {
		name  string
		value float64
	}{
		{"final balance", finalBalance},
		{"total contributed", totalContributed},
		{"interest earned", interestEarned},
		{"growth percentage", growthPercentage},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return domain.ProjectionResult{}, fmt.Errorf("%w: %s over %d days at %g%%", ErrNonFiniteResult, c.name, days, apyPercent)
		}
	}

	return domain.ProjectionResult{
		Days:             days,
		FinalBalance:     decimal.NewFromFloat(finalBalance),
		TotalContributed: decimal.NewFromFloat(RoundCents(totalContributed)),
		InterestEarned:   decimal.NewFromFloat(interestEarned),
		GrowthPercentage: decimal.NewFromFloat(growthPercentage),
	}, nil
}
