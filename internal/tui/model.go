package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/yieldcalc/internal/calculation"
	"github.com/rgehrsitz/yieldcalc/internal/compare"
	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/rgehrsitz/yieldcalc/internal/tui/components"
)

// Slider positions
const (
	sliderInitial = iota
	sliderMonthly
	sliderGrowthAPY
)

// Model is the interactive calculator state
type Model struct {
	engine *compare.CompareEngine
	bounds config.InputBounds

	sliders []*components.ParameterSlider
	focused int

	timeframes  []domain.Timeframe
	tfIndex     int
	locales     []config.LocaleConfig
	localeIndex int

	result *domain.CalculatorResult
	err    error
	seq    int

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a calculator model for locale. A nil engine gets a default one.
func NewModel(locale string, engine *compare.CompareEngine) Model {
	if engine == nil {
		engine = compare.NewCompareEngine(calculation.NewEngine())
	}

	bounds := config.DefaultBounds()
	growth, _ := config.DefaultScenarios()

	m := Model{
		engine:     engine,
		bounds:     bounds,
		timeframes: domain.AllTimeframes(),
		locales:    config.Locales(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}

	current := config.GetLocaleConfig(locale)
	for i, lc := range m.locales {
		if lc.Locale == current.Locale {
			m.localeIndex = i
		}
	}
	for i, tf := range m.timeframes {
		if tf == config.DefaultTimeframe {
			m.tfIndex = i
		}
	}

	m.sliders = []*components.ParameterSlider{
		components.NewParameterSlider("Initial Amount", 1000,
			bounds.MinInitialAmount.InexactFloat64(), bounds.MaxInitialAmount.InexactFloat64(), 100).
			WithFormat("%.0f").WithWidth(40),
		components.NewParameterSlider("Monthly Contribution", 100,
			bounds.MinMonthly.InexactFloat64(), bounds.MaxMonthly.InexactFloat64(), bounds.MonthlyStep.InexactFloat64()).
			WithFormat("%.0f").WithWidth(40),
		components.NewParameterSlider("Growth APY", growth.APY.InexactFloat64(), 0, 20, 0.25).
			WithUnit("%").WithWidth(40),
	}
	m.sliders[m.focused].SetFocused(true)

	m.recalculate()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the most recent calculator result
func (m Model) Result() *domain.CalculatorResult {
	return m.result
}

func (m Model) locale() config.LocaleConfig {
	return m.locales[m.localeIndex]
}

func (m Model) timeframe() domain.Timeframe {
	return m.timeframes[m.tfIndex]
}

// recalculate recomputes the full result synchronously
func (m *Model) recalculate() {
	msg := calculateCmd(m.engine, m.request())().(CalculationCompleteMsg)
	m.applyResult(msg)
}

// recalculateCmd schedules a recalculation for the current inputs
func (m *Model) recalculateCmd() tea.Cmd {
	return calculateCmd(m.engine, m.request())
}

// applyResult stores a calculation outcome unless newer inputs are pending
func (m *Model) applyResult(msg CalculationCompleteMsg) {
	if msg.Seq != m.seq {
		return
	}
	m.result, m.err = msg.Result, msg.Err
}
