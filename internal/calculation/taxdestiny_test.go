package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorton/planwise/internal/domain"
)

func destinySnapshot() *domain.FinancialSnapshot {
	return &domain.FinancialSnapshot{
		General: domain.GeneralInfo{
			Age:             35,
			AnnualIncome:    decimal.NewFromInt(100000),
			MonthlyTakeHome: decimal.NewFromInt(6000),
			MonthlyExpense:  decimal.NewFromInt(3500),
			MSA:             "houston",
			FilingStatus:    domain.FilingSingle,
		},
		TaxDestiny: domain.TaxDestinySettings{
			FilingStatus:    domain.FilingSingle,
			HSACoverage:     domain.HSACoverageIndividual,
			IncludeStateTax: true,
		},
	}
}

func TestLimitsFor(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		status   domain.FilingStatus
		coverage domain.HSACoverage
		want401k int64
		wantIRA  int64
		wantHSA  int64
	}{
		{"under 50 no HSA", 35, domain.FilingSingle, domain.HSACoverageNone, 23500, 7000, 0},
		{"age 50 gets retirement catch-ups", 50, domain.FilingSingle, domain.HSACoverageNone, 31000, 8000, 0},
		{"age 54 individual HSA no HSA catch-up", 54, domain.FilingSingle, domain.HSACoverageIndividual, 31000, 8000, 4300},
		{"age 55 family HSA with catch-up", 55, domain.FilingMarriedJointly, domain.HSACoverageFamily, 31000, 8000, 9550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := LimitsFor(tt.age, tt.status, tt.coverage)
			assert.True(t, limits.FourOhOneK.Equal(decimal.NewFromInt(tt.want401k)), "401k %s", limits.FourOhOneK)
			assert.True(t, limits.IRACombined.Equal(decimal.NewFromInt(tt.wantIRA)), "IRA %s", limits.IRACombined)
			assert.True(t, limits.HSA.Equal(decimal.NewFromInt(tt.wantHSA)), "HSA %s", limits.HSA)
		})
	}
}

func TestLimitsForRothPhaseoutBands(t *testing.T) {
	single := LimitsFor(35, domain.FilingSingle, domain.HSACoverageNone)
	assert.True(t, single.RothPhaseoutStart.Equal(decimal.NewFromInt(150000)))
	assert.True(t, single.RothPhaseoutEnd.Equal(decimal.NewFromInt(165000)))

	mfj := LimitsFor(35, domain.FilingMarriedJointly, domain.HSACoverageNone)
	assert.True(t, mfj.RothPhaseoutStart.Equal(decimal.NewFromInt(236000)))

	mfs := LimitsFor(35, domain.FilingMarriedSeparate, domain.HSACoverageNone)
	assert.True(t, mfs.RothPhaseoutStart.IsZero())
	assert.True(t, mfs.RothPhaseoutEnd.Equal(decimal.NewFromInt(10000)))
}

func TestComputeTaxDestinyNoIncome(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.General.AnnualIncome = decimal.Zero
	assert.Nil(t, engine.ComputeTaxDestiny(snapshot))
}

func TestComputeTaxDestinyPreTaxSavings(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.TaxDestiny.Monthly.FourOhOneK = decimal.NewFromInt(500)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)

	// 6000/year deferred at the 22% marginal rate.
	assert.True(t, result.AnnualSavings.GreaterThan(decimal.Zero))
	assert.True(t, result.MonthlySavings.Equal(result.AnnualSavings.Div(decimal.NewFromInt(12))))

	require.Len(t, result.Accounts, 4)
	k401 := result.Accounts[0]
	assert.Equal(t, "401(k)", k401.Account)
	assert.True(t, k401.CappedContribution.Equal(decimal.NewFromInt(6000)))
	assert.True(t, k401.EstimatedSavings.Equal(decimal.NewFromInt(6000).Mul(result.Baseline.MarginalRate)))
	assert.True(t, k401.PreTax)
}

func TestComputeTaxDestinyRothHasNoCurrentYearSavings(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.TaxDestiny.Monthly.RothIRA = decimal.NewFromInt(400)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.True(t, result.AnnualSavings.IsZero())

	roth := result.Accounts[3]
	assert.Equal(t, "Roth IRA", roth.Account)
	assert.False(t, roth.PreTax)
	assert.True(t, roth.EstimatedSavings.IsZero())
}

func TestComputeTaxDestinyCombinedIRACap(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	// 7200 traditional + 2400 Roth = 9600 against the shared 7000 limit.
	snapshot.TaxDestiny.Monthly.TraditionalIRA = decimal.NewFromInt(600)
	snapshot.TaxDestiny.Monthly.RothIRA = decimal.NewFromInt(200)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)

	var iraWarning *domain.ValidationWarning
	for i := range result.Warnings {
		if result.Warnings[i].Code == "ira_limit" {
			iraWarning = &result.Warnings[i]
		}
	}
	require.NotNil(t, iraWarning, "expected the shared IRA limit warning")
	assert.Equal(t, domain.SeverityWarning, iraWarning.Severity)
	// A warning is advisory; the plan is still viable.
	assert.True(t, result.Valid)

	// Traditional dollars fill the shared cap first.
	trad := result.Accounts[2]
	roth := result.Accounts[3]
	assert.True(t, trad.CappedContribution.Equal(decimal.NewFromInt(7000)), "got %s", trad.CappedContribution)
	assert.True(t, roth.CappedContribution.IsZero(), "got %s", roth.CappedContribution)
}

func TestComputeTaxDestinyHSANotEligible(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.TaxDestiny.HSACoverage = domain.HSACoverageNone
	snapshot.TaxDestiny.Monthly.HSA = decimal.NewFromInt(200)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.False(t, result.Valid)

	found := false
	for _, w := range result.Warnings {
		if w.Code == "hsa_not_eligible" {
			found = true
			assert.Equal(t, domain.SeverityError, w.Severity)
		}
	}
	assert.True(t, found)
}

func TestComputeTaxDestinyCashFlowOvercommit(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.General.MonthlyTakeHome = decimal.NewFromInt(3000)
	snapshot.General.MonthlyExpense = decimal.NewFromInt(2800)
	snapshot.TaxDestiny.Monthly.FourOhOneK = decimal.NewFromInt(500)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.False(t, result.Valid)

	found := false
	for _, w := range result.Warnings {
		if w.Code == "cash_flow" {
			found = true
			assert.Equal(t, domain.SeverityError, w.Severity)
		}
	}
	assert.True(t, found)
}

func TestComputeTaxDestinyRothPhaseout(t *testing.T) {
	engine := NewTaxDestinyEngine()

	// Above the band: contribution not allowed at all.
	snapshot := destinySnapshot()
	snapshot.General.AnnualIncome = decimal.NewFromInt(200000)
	snapshot.General.MonthlyTakeHome = decimal.NewFromInt(10000)
	snapshot.TaxDestiny.Monthly.RothIRA = decimal.NewFromInt(100)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "roth_phaseout", result.Warnings[0].Code)
	assert.Equal(t, domain.SeverityWarning, result.Warnings[0].Severity)
	assert.True(t, result.Valid)

	// Inside the band: informational only.
	snapshot.General.AnnualIncome = decimal.NewFromInt(155000)
	result = engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "roth_phaseout", result.Warnings[0].Code)
	assert.Equal(t, domain.SeverityInfo, result.Warnings[0].Severity)
}

func TestComputeTaxDestinyExcludeStateTax(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.General.MSA = "springfield" // unknown, would trigger the fallback
	snapshot.TaxDestiny.IncludeStateTax = false

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.True(t, result.Baseline.StateTax.IsZero())
	assert.False(t, result.Baseline.StateIsEstimate)
}

func TestComputeTaxDestinySavingsNeverNegative(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.TaxDestiny.Monthly.RothIRA = decimal.NewFromInt(500)

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	assert.False(t, result.AnnualSavings.IsNegative())
}

func TestComputeTaxDestinyFallsBackToGeneralFilingStatus(t *testing.T) {
	engine := NewTaxDestinyEngine()
	snapshot := destinySnapshot()
	snapshot.TaxDestiny.FilingStatus = domain.FilingStatus("")
	snapshot.General.FilingStatus = domain.FilingMarriedJointly

	result := engine.ComputeTaxDestiny(snapshot)
	require.NotNil(t, result)
	// MFJ standard deduction is 30000, so taxable income is 70000.
	assert.True(t, result.Baseline.TaxableIncome.Equal(decimal.NewFromInt(70000)))
}
