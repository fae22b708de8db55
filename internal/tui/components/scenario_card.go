package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/yieldcalc/internal/tui/tuistyles"
)

// ScenarioCard displays one rate scenario and its outcome for the selected timeframe
type ScenarioCard struct {
	Name       string
	Rate       string
	Balance    string
	Lines      []string
	IsBaseline bool
	IsLeading  bool
	Width      int
}

// NewScenarioCard creates a new scenario card
func NewScenarioCard(name, rate string) *ScenarioCard {
	return &ScenarioCard{
		Name:  name,
		Rate:  rate,
		Lines: []string{},
		Width: 38,
	}
}

// WithBalance sets the headline balance
func (s *ScenarioCard) WithBalance(balance string) *ScenarioCard {
	s.Balance = balance
	return s
}

// AddLine adds a detail line
func (s *ScenarioCard) AddLine(line string) *ScenarioCard {
	s.Lines = append(s.Lines, line)
	return s
}

// AsBaseline marks the card as the comparison baseline
func (s *ScenarioCard) AsBaseline() *ScenarioCard {
	s.IsBaseline = true
	return s
}

// SetLeading highlights the card whose balance is ahead
func (s *ScenarioCard) SetLeading(leading bool) *ScenarioCard {
	s.IsLeading = leading
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the styled scenario card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	title := s.Name
	if s.IsBaseline {
		title += " (base)"
	}
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(s.Rate + " APY"))
	content.WriteString("\n")

	if s.Balance != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.MetricValueStyle.Render(s.Balance))
		content.WriteString("\n")
	}

	if len(s.Lines) > 0 {
		content.WriteString("\n")
		for _, l := range s.Lines {
			content.WriteString(tuistyles.MetricLabelStyle.Render(l))
			content.WriteString("\n")
		}
	}

	border := tuistyles.ColorBorder
	if s.IsLeading {
		border = tuistyles.ColorSuccess
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a single-line version
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{
		lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(s.Name),
		tuistyles.MetricLabelStyle.Render("(" + s.Rate + ")"),
	}
	if s.Balance != "" {
		parts = append(parts, s.Balance)
	}
	return strings.Join(parts, " ")
}

// ScenarioRow renders cards side by side
func ScenarioRow(cards []*ScenarioCard) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
