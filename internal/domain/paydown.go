package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Strategy selects the payoff prioritization order.
type Strategy string

const (
	// StrategyAvalanche pays the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball pays the lowest balance first.
	StrategySnowball Strategy = "snowball"
)

// Valid reports whether the strategy is a known value.
func (s Strategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// MonthSnapshot is one month of the simulated timeline.
type MonthSnapshot struct {
	Month           int                        `json:"month"` // 1-based
	Balances        map[string]decimal.Decimal `json:"balances"`
	TotalRemaining  decimal.Decimal            `json:"totalRemaining"`
	InterestAccrued decimal.Decimal            `json:"interestAccrued"`
}

// PaydownMilestone records a debt leaving the active set.
type PaydownMilestone struct {
	DebtName            string          `json:"debtName"`
	Month               int             `json:"month"`
	StartingBalance     decimal.Decimal `json:"startingBalance"` // balance at the start of the payoff month
	FreedMonthlyPayment decimal.Decimal `json:"freedMonthlyPayment"`
}

// PaydownResult is the immutable output of one simulation run.
type PaydownResult struct {
	Strategy          Strategy           `json:"strategy"`
	Timeline          []MonthSnapshot    `json:"timeline"`
	MonthsToPayoff    int                `json:"monthsToPayoff"`
	TotalInterestPaid decimal.Decimal    `json:"totalInterestPaid"`
	DebtFreeDate      time.Time          `json:"debtFreeDate"`
	PaidOffMilestones []PaydownMilestone `json:"paidOffMilestones"`
	// NonConvergent is set when the simulation hit the safety cap before all
	// balances reached zero (minimum payments below accruing interest).
	NonConvergent bool `json:"nonConvergent"`
}
