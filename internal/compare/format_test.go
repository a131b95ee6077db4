package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorton/planwise/internal/domain"
)

func formattedComparison(t *testing.T) *StrategyComparison {
	t.Helper()
	engine := NewEngine()
	result := engine.CompareStrategies(compareDebts(), decimal.NewFromInt(200), compareStart)
	require.NotNil(t, result)
	return result
}

func TestTableFormatter(t *testing.T) {
	out := (&TableFormatter{}).Format(formattedComparison(t))

	assert.Contains(t, out, "DEBT PAYOFF STRATEGY COMPARISON")
	assert.Contains(t, out, "Avalanche")
	assert.Contains(t, out, "Snowball")
	assert.Contains(t, out, "Active debts: 2")
	assert.Contains(t, out, "PAYOFF ORDER (AVALANCHE)")
	assert.NotContains(t, out, "strategy choice has no effect")
}

func TestTableFormatterSingleDebtNote(t *testing.T) {
	engine := NewEngine()
	result := engine.CompareStrategies(compareDebts()[:1], decimal.NewFromInt(200), compareStart)
	require.NotNil(t, result)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "Only one active debt: strategy choice has no effect.")
	assert.Contains(t, out, "Both strategies cost the same here")
}

func TestTableFormatterNonConvergentWarning(t *testing.T) {
	debts := []domain.Debt{
		{
			Name:         "Runaway",
			Category:     domain.DebtCreditCard,
			Balance:      decimal.NewFromInt(10000),
			InterestRate: decimal.NewFromInt(30),
			TermMonths:   60,
			MinPayment:   decimal.NewFromInt(10),
		},
	}
	engine := NewEngine()
	engine.Simulator.MaxMonths = 24

	result := engine.CompareStrategies(debts, decimal.Zero, compareStart)
	require.NotNil(t, result)
	require.True(t, result.Avalanche.NonConvergent)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "WARNING: minimum payments do not cover accruing interest")
	assert.Contains(t, out, "24+ (capped)")
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(formattedComparison(t))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "avalanche")
	assert.Contains(t, decoded, "snowball")
	assert.Contains(t, decoded, "comparison")
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(formattedComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "strategy,month,total_remaining,interest_accrued", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "avalanche,1,"))
}
