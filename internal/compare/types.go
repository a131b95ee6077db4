package compare

import (
	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// ComparisonMetrics summarizes the delta between the two strategies.
type ComparisonMetrics struct {
	// InterestSavings is how much interest the avalanche ordering saves over
	// snowball, never negative.
	InterestSavings decimal.Decimal `json:"interestSavings"`
	// MonthsSaved is snowball months minus avalanche months (usually zero:
	// both orderings spend the same total cash per month).
	MonthsSaved int `json:"monthsSaved"`
	// ActiveDebtCount counts debts with a positive balance at call time.
	// A count of one means the strategy choice has no effect.
	ActiveDebtCount int `json:"activeDebtCount"`
}

// StrategyComparison holds both simulations and their comparison.
type StrategyComparison struct {
	Avalanche  *domain.PaydownResult `json:"avalanche"`
	Snowball   *domain.PaydownResult `json:"snowball"`
	Comparison ComparisonMetrics     `json:"comparison"`
}

// Preferred returns the result for the requested strategy.
func (sc *StrategyComparison) Preferred(strategy domain.Strategy) *domain.PaydownResult {
	if strategy == domain.StrategySnowball {
		return sc.Snowball
	}
	return sc.Avalanche
}
