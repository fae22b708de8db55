package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and applies any resulting calculation
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	if cmd != nil {
		if done, ok := cmd().(CalculationCompleteMsg); ok {
			updated, _ = m.Update(done)
			m = updated.(Model)
		}
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel("de-DE", nil)

	require.NoError(t, m.err)
	require.NotNil(t, m.Result())
	assert.Nil(t, m.Init())

	r := m.Result()
	assert.Equal(t, "EUR", r.Input.Currency)
	assert.Equal(t, domain.OneYear, r.SelectedTimeframe)
	assert.True(t, r.Input.InitialAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, r.Input.MonthlyContribution.Equal(decimal.NewFromInt(100)))
	assert.True(t, r.DeFiScenario.APY.Equal(decimal.NewFromInt(8)))
	assert.True(t, r.BankScenario.APY.Equal(decimal.RequireFromString("0.5")))
	assert.Len(t, r.Projections, 4)
	assert.Len(t, r.LongTermProjections, 3)
}

func TestModel_UnknownLocaleFallsBack(t *testing.T) {
	m := NewModel("zz-ZZ", nil)
	assert.Equal(t, "en-US", m.locale().Locale)
	assert.Equal(t, "USD", m.Result().Input.Currency)
}

func TestModel_AdjustInitialAmount(t *testing.T) {
	m := NewModel("en-US", nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.Result().Input.InitialAmount.Equal(decimal.NewFromInt(1100)), "got %s", m.Result().Input.InitialAmount)

	m = press(t, m, runes("H"))
	assert.True(t, m.Result().Input.InitialAmount.Equal(decimal.NewFromInt(100)), "got %s", m.Result().Input.InitialAmount)
}

func TestModel_AdjustMonthlyContribution(t *testing.T) {
	m := NewModel("en-US", nil)

	m = press(t, m, runes("j"))
	assert.Equal(t, sliderMonthly, m.focused)

	m = press(t, m, runes("l"))
	assert.True(t, m.Result().Input.MonthlyContribution.Equal(decimal.NewFromInt(110)))
}

func TestModel_AdjustGrowthAPY(t *testing.T) {
	m := NewModel("en-US", nil)

	m = press(t, m, runes("k"))
	assert.Equal(t, sliderGrowthAPY, m.focused, "focus should wrap to the last input")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.Result().DeFiScenario.APY.Equal(decimal.RequireFromString("7.75")))
}

func TestModel_CycleTimeframe(t *testing.T) {
	m := NewModel("en-US", nil)

	m = press(t, m, runes("t"))
	assert.Equal(t, domain.FiveYears, m.Result().SelectedTimeframe)

	for i := 0; i < 3; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, domain.OneWeek, m.Result().SelectedTimeframe, "should wrap around")
}

func TestModel_CycleLocale(t *testing.T) {
	m := NewModel("de-DE", nil)

	m = press(t, m, runes("c"))
	assert.Equal(t, "en-GB", m.locale().Locale)
	assert.Equal(t, "GBP", m.Result().Input.Currency)
	assert.True(t, m.Result().BankScenario.APY.Equal(decimal.RequireFromString("1.5")))
}

func TestModel_StaleResultDropped(t *testing.T) {
	m := NewModel("en-US", nil)

	updated, first := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	updated, second := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)

	updated, _ = m.Update(second())
	m = updated.(Model)
	updated, _ = m.Update(first())
	m = updated.(Model)

	assert.True(t, m.Result().Input.InitialAmount.Equal(decimal.NewFromInt(1200)), "got %s", m.Result().Input.InitialAmount)
}

func TestModel_Quit(t *testing.T) {
	m := NewModel("en-US", nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := NewModel("en-US", nil)

	updated, cmd := m.Update(runes("?"))
	assert.Nil(t, cmd)
	assert.True(t, updated.(Model).help.ShowAll)
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel("en-US", nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_View(t *testing.T) {
	m := NewModel("en-US", nil)
	view := m.View()

	assert.Contains(t, view, "Yield vs Savings Calculator")
	assert.Contains(t, view, "Initial Amount")
	assert.Contains(t, view, "DeFi Yield")
	assert.Contains(t, view, "Traditional Savings (base)")
	assert.Contains(t, view, "Opportunity Cost")
	assert.Contains(t, view, "20years")
}

func TestModel_ViewShowsError(t *testing.T) {
	m := NewModel("en-US", nil)
	m.err = assert.AnError
	m.result = nil

	assert.Contains(t, m.View(), "Error: "+assert.AnError.Error())
}
