package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/rgehrsitz/yieldcalc/internal/output"
	"github.com/rgehrsitz/yieldcalc/internal/tui/components"
	"github.com/rgehrsitz/yieldcalc/internal/tui/tuistyles"
)

// View renders the calculator
func (m Model) View() string {
	var sections []string

	sections = append(sections, tuistyles.TitleStyle.Render("Yield vs Savings Calculator"))

	lc := m.locale()
	sections = append(sections, tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"Locale %s · %s · savings rate %s · timeframe %s",
		lc.Locale, lc.Currency, output.FormatPercentage(lc.BaselineAPY), m.timeframe())))

	for _, s := range m.sliders {
		sections = append(sections, s.Render())
	}

	if m.err != nil {
		sections = append(sections, tuistyles.ErrorStyle.Render("Error: "+m.err.Error()))
	} else if m.result != nil {
		sections = append(sections, m.renderSelected(), m.renderTable(), m.renderHighlights())
	}

	sections = append(sections, m.help.View(m.keys))

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderSelected() string {
	selected, ok := m.result.Selected()
	if !ok {
		return ""
	}

	cur := m.result.Input.Currency
	locale := m.locale().Locale
	money := func(v decimal.Decimal) string { return output.FormatCurrency(v, cur, locale) }

	growthCard := components.NewScenarioCard(m.result.DeFiScenario.Name, output.FormatPercentage(m.result.DeFiScenario.APY)).
		WithBalance(money(selected.DeFi.FinalBalance)).
		AddLine("interest " + money(selected.DeFi.InterestEarned)).
		AddLine("growth " + output.FormatPercentage(selected.DeFi.GrowthPercentage)).
		SetLeading(selected.Difference.IsPositive())
	bankCard := components.NewScenarioCard(m.result.BankScenario.Name, output.FormatPercentage(m.result.BankScenario.APY)).
		WithBalance(money(selected.Bank.FinalBalance)).
		AddLine("interest " + money(selected.Bank.InterestEarned)).
		AddLine("growth " + output.FormatPercentage(selected.Bank.GrowthPercentage)).
		AsBaseline().
		SetLeading(selected.Difference.IsNegative())

	costCard := components.NewCostCard(money(selected.OpportunityCost), selected.Difference).
		WithGapPercent(output.FormatPercentage(selected.DifferencePercentage)).
		Between(m.result.DeFiScenario.Name, m.result.BankScenario.Name).
		WithContributed(money(selected.DeFi.TotalContributed))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ScenarioRow([]*components.ScenarioCard{growthCard, bankCard}),
		costCard.Render())
}

func (m Model) renderHighlights() string {
	var sb strings.Builder
	for _, h := range compare.GenerateHighlights(m.result) {
		sb.WriteString(tuistyles.MetricLabelStyle.Render("• " + h))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderTable() string {
	var sb strings.Builder
	cur := m.result.Input.Currency
	locale := m.locale().Locale

	groups := []struct {
		title       string
		projections domain.Projections
		timeframes  []domain.Timeframe
	}{
		{"Short term", m.result.Projections, shortTerm()},
		{"Long term", m.result.LongTermProjections, longTerm()},
	}

	for _, g := range groups {
		sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-10s %16s %16s %16s",
			g.title, m.result.DeFiScenario.ID, m.result.BankScenario.ID, "difference")))
		sb.WriteString("\n")
		for _, tf := range g.timeframes {
			c := g.projections[tf]
			row := fmt.Sprintf("%-10s %16s %16s %16s", tf,
				output.FormatCurrency(c.DeFi.FinalBalance, cur, locale),
				output.FormatCurrency(c.Bank.FinalBalance, cur, locale),
				output.FormatSignedCurrency(c.Difference, cur, locale))
			if tf == m.timeframe() {
				row = tuistyles.TableHighlightStyle.Render(row)
			}
			sb.WriteString(row + "\n")
		}
	}

	return sb.String()
}

func shortTerm() []domain.Timeframe {
	tfs := domain.ShortTermTimeframes()
	return tfs[:]
}

func longTerm() []domain.Timeframe {
	tfs := domain.LongTermTimeframes()
	return tfs[:]
}
