package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

// TableFormatter formats calculator results as a console table
type TableFormatter struct {
	Locale string
}

// Name returns the formatter identifier
func (tf *TableFormatter) Name() string { return "table" }

// Format generates a formatted table comparing both scenarios at every timeframe
func (tf *TableFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, errNoResult
	}

	var sb strings.Builder
	cur := result.Input.Currency

	sb.WriteString("YIELD PROJECTION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 86) + "\n")
	sb.WriteString(fmt.Sprintf("Initial Amount:       %s\n", FormatCurrency(result.Input.InitialAmount, cur, tf.Locale)))
	sb.WriteString(fmt.Sprintf("Monthly Contribution: %s\n", FormatCurrency(result.Input.MonthlyContribution, cur, tf.Locale)))
	sb.WriteString(fmt.Sprintf("%-22s%s APY\n", result.DeFiScenario.Name+":", FormatPercentage(result.DeFiScenario.APY)))
	sb.WriteString(fmt.Sprintf("%-22s%s APY\n", result.BankScenario.Name+":", FormatPercentage(result.BankScenario.APY)))
	sb.WriteString(fmt.Sprintf("Selected Timeframe:   %s\n", result.SelectedTimeframe))
	sb.WriteString("\n")

	tf.writeSection(&sb, "SHORT-TERM PROJECTIONS", result, result.Projections, shortTermSlice())
	tf.writeSection(&sb, "LONG-TERM PROJECTIONS", result, result.LongTermProjections, longTermSlice())

	if highlights := compare.GenerateHighlights(result); len(highlights) > 0 {
		sb.WriteString("HIGHLIGHTS\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, h := range highlights {
			sb.WriteString(fmt.Sprintf("• %s\n", h))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

func (tf *TableFormatter) writeSection(sb *strings.Builder, title string, result *domain.CalculatorResult, projections domain.Projections, timeframes []domain.Timeframe) {
	cur := result.Input.Currency
	nameWidth := 10
	numWidth := 18

	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 86) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Timeframe",
		numWidth, "Contributed",
		numWidth, tf.truncate(result.DeFiScenario.Name, numWidth),
		numWidth, tf.truncate(result.BankScenario.Name, numWidth),
		numWidth, "Difference"))

	for _, timeframe := range timeframes {
		c, ok := projections[timeframe]
		if !ok {
			continue
		}
		label := timeframe.String()
		if timeframe == result.SelectedTimeframe {
			label += " *"
		}
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, label,
			numWidth, FormatCurrency(c.DeFi.TotalContributed, cur, tf.Locale),
			numWidth, FormatCurrency(c.DeFi.FinalBalance, cur, tf.Locale),
			numWidth, FormatCurrency(c.Bank.FinalBalance, cur, tf.Locale),
			numWidth, FormatSignedCurrency(c.Difference, cur, tf.Locale)))
	}
	sb.WriteString("\n")
}

// truncate shortens s to at most maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
