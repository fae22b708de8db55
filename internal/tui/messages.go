package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

// Message types for the Bubble Tea update cycle

// CalculationCompleteMsg carries the outcome of a recalculation. Seq identifies
// the request so results for superseded inputs can be dropped.
type CalculationCompleteMsg struct {
	Seq    int
	Result *domain.CalculatorResult
	Err    error
}

// calculationRequest is a snapshot of the inputs for one recalculation
type calculationRequest struct {
	seq      int
	input    domain.InvestmentInput
	selected domain.Timeframe
	growth   domain.RateScenario
	baseline domain.RateScenario
}

// calculateCmd runs a calculation off the update loop
func calculateCmd(engine *compare.CompareEngine, req calculationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.ComputeFullResult(req.input, req.selected, req.growth, req.baseline)
		return CalculationCompleteMsg{Seq: req.seq, Result: result, Err: err}
	}
}

// request snapshots the current slider values, clamped to the input bounds
func (m *Model) request() calculationRequest {
	lc := m.locale()

	input := m.bounds.Clamp(domain.InvestmentInput{
		InitialAmount:       m.sliders[sliderInitial].Decimal(),
		MonthlyContribution: m.sliders[sliderMonthly].Decimal(),
		Currency:            lc.Currency,
	})

	growth, baseline := config.ScenariosForLocale(lc.Locale)
	growth.APY = m.sliders[sliderGrowthAPY].Decimal()

	m.seq++
	return calculationRequest{
		seq:      m.seq,
		input:    input,
		selected: m.timeframe(),
		growth:   growth,
		baseline: baseline,
	}
}
