package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// Interest-rate bucket boundaries, annual percent.
var (
	highRateFloor     = decimal.NewFromInt(7)
	moderateRateFloor = decimal.NewFromInt(4)
)

// TotalAssets sums the eight investment buckets.
func TotalAssets(inv domain.Investments) decimal.Decimal {
	return inv.Total()
}

// TotalDebt sums all debt balances.
func TotalDebt(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Balance)
	}
	return total
}

// HighInterestDebt sums balances with rate >= 7%, excluding mortgages.
func HighInterestDebt(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Category == domain.DebtMortgage {
			continue
		}
		if d.InterestRate.GreaterThanOrEqual(highRateFloor) {
			total = total.Add(d.Balance)
		}
	}
	return total
}

// ModerateInterestDebt sums balances with rate in [4%, 7%), excluding mortgages.
func ModerateInterestDebt(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Category == domain.DebtMortgage {
			continue
		}
		if d.InterestRate.GreaterThanOrEqual(moderateRateFloor) && d.InterestRate.LessThan(highRateFloor) {
			total = total.Add(d.Balance)
		}
	}
	return total
}

// LowInterestDebt sums balances with rate < 4%, excluding mortgages.
func LowInterestDebt(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Category == domain.DebtMortgage {
			continue
		}
		if d.InterestRate.LessThan(moderateRateFloor) {
			total = total.Add(d.Balance)
		}
	}
	return total
}

// MonthlyDebtMinimums sums the stored or amortization-derived minimum payment
// of every active debt.
func MonthlyDebtMinimums(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if !d.IsActive() {
			continue
		}
		minPayment := d.MinPayment
		if minPayment.LessThanOrEqual(decimal.Zero) {
			minPayment = MonthlyPayment(d.Balance, d.InterestRate, d.TermMonths)
		}
		total = total.Add(minPayment)
	}
	return total
}

// DebtToIncome is the monthly debt payment estimate over monthly gross income,
// as a percentage. Zero when gross income is not positive.
func DebtToIncome(debts []domain.Debt, annualIncome decimal.Decimal) decimal.Decimal {
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	monthlyGross := annualIncome.Div(decimal.NewFromInt(12))
	return MonthlyDebtMinimums(debts).Div(monthlyGross).Mul(decimal.NewFromInt(100))
}

// EmergencyFundMonths is savings divided by monthly expenses, zero-guarded.
func EmergencyFundMonths(savings, monthlyExpense decimal.Decimal) decimal.Decimal {
	if monthlyExpense.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return savings.Div(monthlyExpense)
}

// Fragility classifies emergency-fund coverage: FRAGILE below 3 months,
// MODERATE from 3 up to (not including) 6, SOLID at 6 and beyond.
func Fragility(fundMonths decimal.Decimal) domain.FragilityRating {
	switch {
	case fundMonths.LessThan(decimal.NewFromInt(3)):
		return domain.FragilityFragile
	case fundMonths.LessThan(decimal.NewFromInt(6)):
		return domain.FragilityModerate
	default:
		return domain.FragilitySolid
	}
}

// Summary is the snapshot-level aggregate block rendered alongside the
// milestone list.
type Summary struct {
	TotalAssets         decimal.Decimal        `json:"totalAssets"`
	TotalDebt           decimal.Decimal        `json:"totalDebt"`
	ActiveDebtCount     int                    `json:"activeDebtCount"`
	MonthlyDebtMinimums decimal.Decimal        `json:"monthlyDebtMinimums"`
	DebtToIncome        decimal.Decimal        `json:"debtToIncome"` // percent
	EmergencyFundMonths decimal.Decimal        `json:"emergencyFundMonths"`
	Fragility           domain.FragilityRating `json:"fragility"`
}

// Summarize computes the aggregate metrics for one snapshot.
func Summarize(s *domain.FinancialSnapshot) Summary {
	fundMonths := EmergencyFundMonths(s.Investments.Savings, s.General.MonthlyExpense)
	return Summary{
		TotalAssets:         TotalAssets(s.Investments),
		TotalDebt:           TotalDebt(s.Debts),
		ActiveDebtCount:     len(s.ActiveDebts()),
		MonthlyDebtMinimums: MonthlyDebtMinimums(s.Debts),
		DebtToIncome:        DebtToIncome(s.Debts, s.General.AnnualIncome),
		EmergencyFundMonths: fundMonths,
		Fragility:           Fragility(fundMonths),
	}
}
