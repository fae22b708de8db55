package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParameterSlider_Clamping(t *testing.T) {
	s := NewParameterSlider("Monthly", 50, 0, 100, 10)
	assert.Equal(t, 50.0, s.Value)

	s.Increment(3)
	assert.Equal(t, 80.0, s.Value)

	s.Increment(10)
	assert.Equal(t, 100.0, s.Value, "should stop at max")

	s.Decrement(20)
	assert.Equal(t, 0.0, s.Value, "should stop at min")

	s.SetValue(250)
	assert.Equal(t, 100.0, s.Value)

	clamped := NewParameterSlider("Initial", -10, 0, 100, 1)
	assert.Equal(t, 0.0, clamped.Value)
}

func TestParameterSlider_Decimal(t *testing.T) {
	s := NewParameterSlider("APY", 8, 0, 20, 0.25)
	s.Increment(1)
	assert.True(t, s.Decimal().Equal(decimal.RequireFromString("8.25")), "got %s", s.Decimal())
}

func TestParameterSlider_Percentage(t *testing.T) {
	assert.Equal(t, 0.5, NewParameterSlider("x", 50, 0, 100, 1).Percentage())
	assert.Equal(t, 0.0, NewParameterSlider("x", 5, 5, 5, 1).Percentage())
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Growth APY", 8, 0, 20, 0.25).WithUnit("%").WithDescription("annual rate")
	out := s.Render()

	assert.Contains(t, out, "Growth APY")
	assert.Contains(t, out, "8.00%")
	assert.Contains(t, out, "0.00% ─ 20.00%")
	assert.Contains(t, out, "annual rate")
	assert.Contains(t, out, "●")
}

func TestCostCard_Render(t *testing.T) {
	out := NewCostCard("$10.16", decimal.RequireFromString("10.16")).
		WithGapPercent("4.22%").
		Between("DeFi Yield", "Traditional Savings").
		WithContributed("$240.00").
		Render()

	assert.Contains(t, out, "Opportunity Cost")
	assert.Contains(t, out, "$10.16")
	assert.Contains(t, out, "▲ 4.22% DeFi Yield ahead")
	assert.Contains(t, out, "contributed $240.00")
}

func TestCostCard_Leader(t *testing.T) {
	tests := []struct {
		name string
		gap  string
		want string
	}{
		{"growth ahead", "5.00", "Growth"},
		{"bank ahead", "-0.01", "Bank"},
		{"even", "0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewCostCard("$0.00", decimal.RequireFromString(tt.gap)).Between("Growth", "Bank")
			assert.Equal(t, tt.want, card.Leader())
		})
	}
}

func TestCostCard_BankAhead(t *testing.T) {
	out := NewCostCard("$3.00", decimal.RequireFromString("-3")).
		WithGapPercent("-1.20%").
		Between("Growth", "Bank").
		Render()

	assert.Contains(t, out, "▼ -1.20% Bank ahead")
	assert.NotContains(t, out, "contributed")
}

func TestCostCard_Even(t *testing.T) {
	out := NewCostCard("$0.00", decimal.Zero).Between("Growth", "Bank").Render()
	assert.Contains(t, out, "= even")
	assert.NotContains(t, out, "ahead")
}

func TestScenarioCard(t *testing.T) {
	card := NewScenarioCard("Traditional Savings", "0.50%").
		WithBalance("$240.66").
		AddLine("interest $0.66").
		AsBaseline()

	out := card.Render()
	assert.Contains(t, out, "Traditional Savings (base)")
	assert.Contains(t, out, "0.50% APY")
	assert.Contains(t, out, "$240.66")
	assert.Contains(t, out, "interest $0.66")

	compact := card.RenderCompact()
	assert.Contains(t, compact, "Traditional Savings")
	assert.Contains(t, compact, "(0.50%)")
	assert.False(t, strings.Contains(compact, "\n"))
}

func TestScenarioRow(t *testing.T) {
	out := ScenarioRow([]*ScenarioCard{
		NewScenarioCard("DeFi Yield", "8.00%").SetLeading(true),
		NewScenarioCard("Traditional Savings", "0.50%"),
	})
	assert.Contains(t, out, "DeFi Yield")
	assert.Contains(t, out, "Traditional Savings")
}
