package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats a comparison summary as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing both scenarios
func (tf *TableFormatter) Format(summary *ComparisonSummary) string {
	var sb strings.Builder

	// Header
	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Timeframe: %s (%d days)\n", summary.Timeframe, summary.Days))
	sb.WriteString(fmt.Sprintf("Currency:  %s\n", summary.Currency))
	sb.WriteString(fmt.Sprintf("Total Contributed: %s\n", tf.formatDecimal(summary.Comparison.DeFi.TotalContributed)))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "APY",
		numWidth, "Final",
		numWidth, "Interest",
		numWidth, "Growth"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	c := summary.Comparison
	sb.WriteString(tf.formatRow(summary.Growth.Name, summary.Growth.APY, c.DeFi.FinalBalance, c.DeFi.InterestEarned, c.DeFi.GrowthPercentage, nameWidth, numWidth))
	sb.WriteString(tf.formatRow(summary.Baseline.Name+" (base)", summary.Baseline.APY, c.Bank.FinalBalance, c.Bank.InterestEarned, c.Bank.GrowthPercentage, nameWidth, numWidth))
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString("\nCOMPARISON TO BASE\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("  Difference:       %s%s (%s%%)\n",
		tf.deltaSymbol(c.Difference),
		tf.formatDecimal(c.Difference.Abs()),
		c.DifferencePercentage.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Opportunity Cost: %s%s %s\n",
		tf.deltaSymbol(c.OpportunityCost),
		tf.formatDecimal(c.OpportunityCost.Abs()),
		summary.Currency))

	return sb.String()
}

func (tf *TableFormatter) formatRow(name string, apy, final, interest, growth decimal.Decimal, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, apy.StringFixed(2)+"%",
		numWidth, tf.formatDecimal(final),
		numWidth, tf.formatDecimal(interest),
		numWidth, growth.StringFixed(2)+"%")
}

// formatDecimal formats a decimal for display, abbreviating thousands and millions
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(2)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate shortens s to at most maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary of the comparison
func (tf *TableFormatter) FormatCompact(summary *ComparisonSummary) string {
	c := summary.Comparison
	change := "="
	if c.Difference.IsPositive() {
		change = "+" + tf.formatDecimal(c.Difference)
	} else if c.Difference.IsNegative() {
		change = "-" + tf.formatDecimal(c.Difference.Abs())
	}

	return fmt.Sprintf("%s | %s: %s | %s: %s | %s %s",
		summary.Timeframe,
		summary.Growth.ID, tf.formatDecimal(c.DeFi.FinalBalance),
		summary.Baseline.ID, tf.formatDecimal(c.Bank.FinalBalance),
		change, summary.Currency)
}
