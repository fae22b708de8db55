package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/yieldcalc/internal/tui/tuistyles"
)

// CostCard shows how much the trailing scenario gives up for the selected timeframe.
// Gap is growth minus bank; its sign picks the arrow and the leading scenario.
type CostCard struct {
	Cost        string
	Gap         decimal.Decimal
	GapPercent  string
	GrowthName  string
	BankName    string
	Contributed string
	Width       int
}

// NewCostCard creates a card for a formatted opportunity cost and the signed balance gap
func NewCostCard(cost string, gap decimal.Decimal) *CostCard {
	return &CostCard{
		Cost:  cost,
		Gap:   gap,
		Width: 34,
	}
}

// WithGapPercent sets the formatted gap relative to the bank balance
func (c *CostCard) WithGapPercent(pct string) *CostCard {
	c.GapPercent = pct
	return c
}

// Between names the two scenarios so the card can say which one leads
func (c *CostCard) Between(growth, bank string) *CostCard {
	c.GrowthName = growth
	c.BankName = bank
	return c
}

// WithContributed sets the formatted total contributed
func (c *CostCard) WithContributed(amount string) *CostCard {
	c.Contributed = amount
	return c
}

// Leader returns the name of the scenario ahead, or "" when balances are equal
func (c *CostCard) Leader() string {
	switch c.Gap.Sign() {
	case 1:
		return c.GrowthName
	case -1:
		return c.BankName
	}
	return ""
}

// Render returns the styled card
func (c *CostCard) Render() string {
	lines := []string{
		tuistyles.MetricLabelStyle.Render("Opportunity Cost"),
		tuistyles.MetricValueStyle.Render(c.Cost),
	}

	if c.Gap.IsZero() {
		lines = append(lines, tuistyles.SubtitleStyle.Render("= even"))
	} else {
		ahead := c.Gap.IsPositive()
		gap := tuistyles.TrendIndicator(ahead)
		if c.GapPercent != "" {
			gap += " " + c.GapPercent
		}
		if leader := c.Leader(); leader != "" {
			gap += " " + leader + " ahead"
		}
		lines = append(lines, tuistyles.MetricTrendStyle(ahead).Render(gap))
	}
	if c.Contributed != "" {
		lines = append(lines, tuistyles.SubtitleStyle.Render("contributed "+c.Contributed))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(c.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
