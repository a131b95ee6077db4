package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kmorton/planwise/internal/domain"
)

func bucketDebts() []domain.Debt {
	return []domain.Debt{
		makeDebt("Visa", domain.DebtCreditCard, 5000, 20, 150),  // high
		makeDebt("Boundary", domain.DebtOther, 1000, 7, 50),     // high, inclusive floor
		makeDebt("Car", domain.DebtAuto, 12000, 5, 250),         // moderate
		makeDebt("Floor", domain.DebtOther, 2000, 4, 50),        // moderate, inclusive floor
		makeDebt("Student", domain.DebtStudent, 8000, 3, 100),   // low
		makeDebt("House", domain.DebtMortgage, 250000, 8, 1500), // mortgage, excluded
	}
}

func TestInterestRateBuckets(t *testing.T) {
	debts := bucketDebts()

	assert.True(t, HighInterestDebt(debts).Equal(decimal.NewFromInt(6000)))
	assert.True(t, ModerateInterestDebt(debts).Equal(decimal.NewFromInt(14000)))
	assert.True(t, LowInterestDebt(debts).Equal(decimal.NewFromInt(8000)))
	// The mortgage is excluded from every bucket but counts as total debt.
	assert.True(t, TotalDebt(debts).Equal(decimal.NewFromInt(278000)))
}

func TestMonthlyDebtMinimums(t *testing.T) {
	debts := []domain.Debt{
		makeDebt("Stored", domain.DebtCreditCard, 5000, 20, 150),
		makeDebt("Derived", domain.DebtStudent, 6000, 0, 0), // straight-line 6000/60 = 100
		makeDebt("Inactive", domain.DebtAuto, 0, 5, 250),
	}
	total := MonthlyDebtMinimums(debts)
	assert.True(t, total.Equal(decimal.NewFromInt(250)), "got %s", total)
}

func TestDebtToIncome(t *testing.T) {
	debts := []domain.Debt{makeDebt("Visa", domain.DebtCreditCard, 5000, 20, 600)}

	// 600/month against 10000/month gross is 6%.
	dti := DebtToIncome(debts, decimal.NewFromInt(120000))
	assert.True(t, dti.Equal(decimal.NewFromInt(6)), "got %s", dti)

	assert.True(t, DebtToIncome(debts, decimal.Zero).IsZero())
	assert.True(t, DebtToIncome(debts, decimal.NewFromInt(-50000)).IsZero())
}

func TestEmergencyFundMonths(t *testing.T) {
	months := EmergencyFundMonths(decimal.NewFromInt(12000), decimal.NewFromInt(3000))
	assert.True(t, months.Equal(decimal.NewFromInt(4)))

	assert.True(t, EmergencyFundMonths(decimal.NewFromInt(12000), decimal.Zero).IsZero())
}

func TestFragility(t *testing.T) {
	tests := []struct {
		months   string
		expected domain.FragilityRating
	}{
		{"0", domain.FragilityFragile},
		{"2.99", domain.FragilityFragile},
		{"3", domain.FragilityModerate},
		{"5.99", domain.FragilityModerate},
		{"6", domain.FragilitySolid},
		{"24", domain.FragilitySolid},
	}
	for _, tt := range tests {
		months := decimal.RequireFromString(tt.months)
		assert.Equal(t, tt.expected, Fragility(months), "at %s months", tt.months)
	}
}

func TestSummarize(t *testing.T) {
	snapshot := &domain.FinancialSnapshot{
		General: domain.GeneralInfo{
			AnnualIncome:   decimal.NewFromInt(120000),
			MonthlyExpense: decimal.NewFromInt(3000),
		},
		Investments: domain.Investments{
			Savings:     decimal.NewFromInt(12000),
			StocksBonds: decimal.NewFromInt(8000),
		},
		Debts: []domain.Debt{
			makeDebt("Visa", domain.DebtCreditCard, 5000, 20, 150),
			makeDebt("Car", domain.DebtAuto, 12000, 5, 250),
			makeDebt("Paid", domain.DebtStudent, 0, 4, 100),
		},
	}

	s := Summarize(snapshot)
	assert.True(t, s.TotalAssets.Equal(decimal.NewFromInt(20000)))
	assert.True(t, s.TotalDebt.Equal(decimal.NewFromInt(17000)))
	assert.Equal(t, 2, s.ActiveDebtCount, "zero-balance debts do not count")
	// Only the active minimums: 150 + 250.
	assert.True(t, s.MonthlyDebtMinimums.Equal(decimal.NewFromInt(400)))
	// 400/month against 10000/month gross is 4%.
	assert.True(t, s.DebtToIncome.Equal(decimal.NewFromInt(4)), "got %s", s.DebtToIncome)
	// 12000 savings over 3000/month expenses.
	assert.True(t, s.EmergencyFundMonths.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, domain.FragilityModerate, s.Fragility)
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	s := Summarize(&domain.FinancialSnapshot{})
	assert.True(t, s.TotalAssets.IsZero())
	assert.True(t, s.TotalDebt.IsZero())
	assert.Equal(t, 0, s.ActiveDebtCount)
	assert.True(t, s.DebtToIncome.IsZero())
	assert.True(t, s.EmergencyFundMonths.IsZero())
	assert.Equal(t, domain.FragilityFragile, s.Fragility)
}

func TestTotalAssets(t *testing.T) {
	inv := domain.Investments{
		Savings:     decimal.NewFromInt(10000),
		IRA:         decimal.NewFromInt(20000),
		RothIRA:     decimal.NewFromInt(15000),
		StocksBonds: decimal.NewFromInt(5000),
		FourOhOneK:  decimal.NewFromInt(60000),
		RealEstate:  decimal.NewFromInt(200000),
		CarValue:    decimal.NewFromInt(12000),
		Other:       decimal.NewFromInt(3000),
	}
	assert.True(t, TotalAssets(inv).Equal(decimal.NewFromInt(325000)))
}
