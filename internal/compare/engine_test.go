package compare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorton/planwise/internal/domain"
)

var compareStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func compareDebts() []domain.Debt {
	return []domain.Debt{
		{
			Name:         "Visa",
			Category:     domain.DebtCreditCard,
			Balance:      decimal.NewFromInt(5000),
			InterestRate: decimal.NewFromInt(20),
			TermMonths:   60,
			MinPayment:   decimal.NewFromInt(150),
		},
		{
			Name:         "Student Loan",
			Category:     domain.DebtStudent,
			Balance:      decimal.NewFromInt(8000),
			InterestRate: decimal.NewFromInt(5),
			TermMonths:   60,
			MinPayment:   decimal.NewFromInt(100),
		},
	}
}

func TestCompareStrategiesNoActiveDebts(t *testing.T) {
	engine := NewEngine()
	debts := []domain.Debt{
		{Name: "Paid", Category: domain.DebtAuto, Balance: decimal.Zero, TermMonths: 60},
	}
	assert.Nil(t, engine.CompareStrategies(debts, decimal.NewFromInt(200), compareStart))
	assert.Nil(t, engine.CompareStrategies(nil, decimal.NewFromInt(200), compareStart))
}

func TestCompareStrategiesRunsBoth(t *testing.T) {
	engine := NewEngine()
	result := engine.CompareStrategies(compareDebts(), decimal.NewFromInt(200), compareStart)

	require.NotNil(t, result)
	assert.Equal(t, domain.StrategyAvalanche, result.Avalanche.Strategy)
	assert.Equal(t, domain.StrategySnowball, result.Snowball.Strategy)
	assert.Equal(t, 2, result.Comparison.ActiveDebtCount)
	assert.False(t, result.Comparison.InterestSavings.IsNegative())
}

func TestCompareStrategiesDeterministic(t *testing.T) {
	engine := NewEngine()
	a := engine.CompareStrategies(compareDebts(), decimal.NewFromInt(200), compareStart)
	b := engine.CompareStrategies(compareDebts(), decimal.NewFromInt(200), compareStart)

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.Avalanche.MonthsToPayoff, b.Avalanche.MonthsToPayoff)
	assert.True(t, a.Avalanche.TotalInterestPaid.Equal(b.Avalanche.TotalInterestPaid))
	assert.Equal(t, a.Avalanche.DebtFreeDate, b.Avalanche.DebtFreeDate)
	assert.True(t, a.Comparison.InterestSavings.Equal(b.Comparison.InterestSavings))
}

func TestCompareStrategiesSingleDebt(t *testing.T) {
	engine := NewEngine()
	result := engine.CompareStrategies(compareDebts()[:1], decimal.NewFromInt(200), compareStart)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.Comparison.ActiveDebtCount)
	// One debt: both orderings are the same plan.
	assert.Equal(t, result.Avalanche.MonthsToPayoff, result.Snowball.MonthsToPayoff)
	assert.True(t, result.Comparison.InterestSavings.IsZero())
}

func TestPreferred(t *testing.T) {
	engine := NewEngine()
	result := engine.CompareStrategies(compareDebts(), decimal.NewFromInt(200), compareStart)
	require.NotNil(t, result)

	assert.Same(t, result.Avalanche, result.Preferred(domain.StrategyAvalanche))
	assert.Same(t, result.Snowball, result.Preferred(domain.StrategySnowball))
	// Anything unrecognized falls back to avalanche.
	assert.Same(t, result.Avalanche, result.Preferred(domain.Strategy("mystery")))
}
