// Package compare runs the payoff simulator once per strategy and reports
// the interest and time deltas between the orderings.
package compare

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/domain"
)

// Engine orchestrates the avalanche-vs-snowball comparison.
type Engine struct {
	Simulator *calculation.PayoffSimulator
}

// NewEngine creates a comparison engine with a default simulator.
func NewEngine() *Engine {
	return &Engine{Simulator: calculation.NewPayoffSimulator()}
}

// CompareStrategies runs both strategies with identical inputs and the same
// extra-payment pool. Returns nil when no debt carries a balance; the caller
// must handle that. Identical inputs produce bit-identical results.
func (e *Engine) CompareStrategies(debts []domain.Debt, extraPayment decimal.Decimal, from time.Time) *StrategyComparison {
	activeCount := 0
	for _, d := range debts {
		if d.IsActive() {
			activeCount++
		}
	}
	if activeCount == 0 {
		return nil
	}

	sim := e.Simulator
	if sim == nil {
		sim = calculation.NewPayoffSimulator()
	}

	avalanche := sim.Simulate(debts, extraPayment, domain.StrategyAvalanche, from)
	snowball := sim.Simulate(debts, extraPayment, domain.StrategySnowball, from)

	savings := snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return &StrategyComparison{
		Avalanche: avalanche,
		Snowball:  snowball,
		Comparison: ComparisonMetrics{
			InterestSavings: savings,
			MonthsSaved:     snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
			ActiveDebtCount: activeCount,
		},
	}
}
