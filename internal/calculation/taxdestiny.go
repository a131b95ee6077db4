package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// ContributionLimits are the IRS-style annual caps that apply to one person,
// already adjusted for age and HSA coverage tier.
type ContributionLimits struct {
	FourOhOneK        decimal.Decimal
	IRACombined       decimal.Decimal // Traditional and Roth IRA share this cap
	HSA               decimal.Decimal // zero when coverage is "none"
	RothPhaseoutStart decimal.Decimal
	RothPhaseoutEnd   decimal.Decimal
}

// 2025 base limits and catch-ups.
var (
	limit401k      = decimal.NewFromInt(23500)
	catchUp401k    = decimal.NewFromInt(7500)
	limitIRA       = decimal.NewFromInt(7000)
	catchUpIRA     = decimal.NewFromInt(1000)
	limitHSASingle = decimal.NewFromInt(4300)
	limitHSAFamily = decimal.NewFromInt(8550)
	catchUpHSA     = decimal.NewFromInt(1000)
	catchUpAge     = 50
	hsaCatchUpAge  = 55
)

// LimitsFor resolves the annual contribution limits for a filer.
func LimitsFor(age int, status domain.FilingStatus, coverage domain.HSACoverage) ContributionLimits {
	limits := ContributionLimits{
		FourOhOneK:  limit401k,
		IRACombined: limitIRA,
	}
	if age >= catchUpAge {
		limits.FourOhOneK = limits.FourOhOneK.Add(catchUp401k)
		limits.IRACombined = limits.IRACombined.Add(catchUpIRA)
	}

	switch coverage {
	case domain.HSACoverageIndividual:
		limits.HSA = limitHSASingle
	case domain.HSACoverageFamily:
		limits.HSA = limitHSAFamily
	default:
		limits.HSA = decimal.Zero
	}
	if !limits.HSA.IsZero() && age >= hsaCatchUpAge {
		limits.HSA = limits.HSA.Add(catchUpHSA)
	}

	// 2025 Roth IRA MAGI phaseout bands.
	switch status {
	case domain.FilingMarriedJointly:
		limits.RothPhaseoutStart = decimal.NewFromInt(236000)
		limits.RothPhaseoutEnd = decimal.NewFromInt(246000)
	case domain.FilingMarriedSeparate:
		limits.RothPhaseoutStart = decimal.Zero
		limits.RothPhaseoutEnd = decimal.NewFromInt(10000)
	default: // single, head of household
		limits.RothPhaseoutStart = decimal.NewFromInt(150000)
		limits.RothPhaseoutEnd = decimal.NewFromInt(165000)
	}
	return limits
}

// zeroStateTax is used when the snapshot opts out of state tax estimation.
type zeroStateTax struct{}

func (zeroStateTax) EstimateStateTax(decimal.Decimal, string) (decimal.Decimal, bool) {
	return decimal.Zero, true
}

// TaxDestinyEngine computes baseline vs with-allocations tax scenarios and
// validates the user's contribution plan.
type TaxDestinyEngine struct {
	Scenarios *ScenarioCalculator
	Logger    Logger
}

// NewTaxDestinyEngine creates an engine with 2025 defaults.
func NewTaxDestinyEngine() *TaxDestinyEngine {
	return &TaxDestinyEngine{
		Scenarios: NewScenarioCalculator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the engine's logger; nil restores the no-op logger.
func (e *TaxDestinyEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// ComputeTaxDestiny runs both scenarios for the snapshot. Returns nil when
// annual income is not positive; every other edge degrades to flagged data.
func (e *TaxDestinyEngine) ComputeTaxDestiny(snapshot *domain.FinancialSnapshot) *domain.TaxDestinyResult {
	income := snapshot.General.AnnualIncome
	if income.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	status := snapshot.TaxDestiny.FilingStatus
	if !status.Valid() {
		status = snapshot.General.FilingStatus
	}
	if !status.Valid() {
		status = domain.FilingSingle
	}

	limits := LimitsFor(snapshot.General.Age, status, snapshot.TaxDestiny.HSACoverage)
	monthly := snapshot.TaxDestiny.Monthly
	twelve := decimal.NewFromInt(12)

	annual401k := monthly.FourOhOneK.Mul(twelve)
	annualHSA := monthly.HSA.Mul(twelve)
	annualTradIRA := monthly.TraditionalIRA.Mul(twelve)
	annualRothIRA := monthly.RothIRA.Mul(twelve)

	capped401k := decimal.Min(annual401k, limits.FourOhOneK)
	cappedHSA := decimal.Min(annualHSA, limits.HSA)

	// Traditional and Roth IRA share one combined limit: sum before capping,
	// pre-tax traditional dollars fill the cap first.
	annualIRA := annualTradIRA.Add(annualRothIRA)
	cappedIRA := decimal.Min(annualIRA, limits.IRACombined)
	cappedTradIRA := decimal.Min(annualTradIRA, cappedIRA)
	cappedRothIRA := cappedIRA.Sub(cappedTradIRA)

	preTax := capped401k.Add(cappedHSA).Add(cappedTradIRA)

	calc := e.Scenarios
	if calc == nil {
		calc = NewScenarioCalculator()
	}
	if !snapshot.TaxDestiny.IncludeStateTax {
		stateless := *calc
		stateless.State = zeroStateTax{}
		calc = &stateless
	}

	msa := snapshot.General.MSA
	baseline := calc.ComputeTaxScenario(income, decimal.Zero, status, msa)
	withAllocations := calc.ComputeTaxScenario(income, preTax, status, msa)

	annualSavings := baseline.IncomeTax().Sub(withAllocations.IncomeTax())
	if annualSavings.IsNegative() {
		annualSavings = decimal.Zero
	}

	warnings := e.validate(snapshot, limits, annual401k, annualHSA, annualIRA, annualRothIRA, withAllocations.AGI)
	valid := true
	for _, w := range warnings {
		if w.Severity == domain.SeverityError {
			valid = false
			break
		}
	}

	marginal := baseline.MarginalRate
	accounts := []domain.AccountSavings{
		{
			Account:            "401(k)",
			MonthlyAllocation:  monthly.FourOhOneK,
			AnnualContribution: annual401k,
			CappedContribution: capped401k,
			AnnualLimit:        limits.FourOhOneK,
			EstimatedSavings:   capped401k.Mul(marginal),
			PreTax:             true,
		},
		{
			Account:            "HSA",
			MonthlyAllocation:  monthly.HSA,
			AnnualContribution: annualHSA,
			CappedContribution: cappedHSA,
			AnnualLimit:        limits.HSA,
			EstimatedSavings:   cappedHSA.Mul(marginal),
			PreTax:             true,
		},
		{
			Account:            "Traditional IRA",
			MonthlyAllocation:  monthly.TraditionalIRA,
			AnnualContribution: annualTradIRA,
			CappedContribution: cappedTradIRA,
			AnnualLimit:        limits.IRACombined,
			EstimatedSavings:   cappedTradIRA.Mul(marginal),
			PreTax:             true,
		},
		{
			Account:            "Roth IRA",
			MonthlyAllocation:  monthly.RothIRA,
			AnnualContribution: annualRothIRA,
			CappedContribution: cappedRothIRA,
			AnnualLimit:        limits.IRACombined,
			EstimatedSavings:   decimal.Zero, // post-tax: no current-year savings
			PreTax:             false,
		},
	}

	return &domain.TaxDestinyResult{
		Baseline:        baseline,
		WithAllocations: withAllocations,
		AnnualSavings:   annualSavings,
		MonthlySavings:  annualSavings.Div(twelve),
		Accounts:        accounts,
		Warnings:        warnings,
		Valid:           valid,
	}
}

// validate produces the severity-tagged warning list. Warnings are data,
// returned to the caller, never errors.
func (e *TaxDestinyEngine) validate(
	snapshot *domain.FinancialSnapshot,
	limits ContributionLimits,
	annual401k, annualHSA, annualIRA, annualRothIRA decimal.Decimal,
	agi decimal.Decimal,
) []domain.ValidationWarning {
	var warnings []domain.ValidationWarning
	monthly := snapshot.TaxDestiny.Monthly

	surplus := snapshot.MonthlySurplus()
	if monthly.Total().GreaterThan(surplus) {
		warnings = append(warnings, domain.ValidationWarning{
			Code:     "cash_flow",
			Severity: domain.SeverityError,
			Message: fmt.Sprintf("monthly allocations of $%s exceed the $%s monthly surplus",
				monthly.Total().StringFixed(0), surplus.StringFixed(0)),
		})
	}

	if snapshot.TaxDestiny.HSACoverage == domain.HSACoverageNone && monthly.HSA.GreaterThan(decimal.Zero) {
		warnings = append(warnings, domain.ValidationWarning{
			Code:     "hsa_not_eligible",
			Severity: domain.SeverityError,
			Message:  "HSA allocation set but coverage is none; no HSA contribution is allowed",
		})
	} else if annualHSA.GreaterThan(limits.HSA) {
		warnings = append(warnings, domain.ValidationWarning{
			Code:     "hsa_limit",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("annual HSA contribution $%s exceeds the $%s limit",
				annualHSA.StringFixed(0), limits.HSA.StringFixed(0)),
		})
	}

	if annual401k.GreaterThan(limits.FourOhOneK) {
		warnings = append(warnings, domain.ValidationWarning{
			Code:     "401k_limit",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("annual 401(k) contribution $%s exceeds the $%s limit",
				annual401k.StringFixed(0), limits.FourOhOneK.StringFixed(0)),
		})
	}

	if annualIRA.GreaterThan(limits.IRACombined) {
		warnings = append(warnings, domain.ValidationWarning{
			Code:     "ira_limit",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("combined Traditional + Roth IRA contribution $%s exceeds the shared $%s limit",
				annualIRA.StringFixed(0), limits.IRACombined.StringFixed(0)),
		})
	}

	if annualRothIRA.GreaterThan(decimal.Zero) {
		switch {
		case agi.GreaterThanOrEqual(limits.RothPhaseoutEnd):
			warnings = append(warnings, domain.ValidationWarning{
				Code:     "roth_phaseout",
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf("income is above the Roth IRA phaseout ($%s); direct Roth contributions are not allowed",
					limits.RothPhaseoutEnd.StringFixed(0)),
			})
		case agi.GreaterThanOrEqual(limits.RothPhaseoutStart):
			warnings = append(warnings, domain.ValidationWarning{
				Code:     "roth_phaseout",
				Severity: domain.SeverityInfo,
				Message: fmt.Sprintf("income is inside the Roth IRA phaseout band ($%s-$%s); the allowed contribution is reduced",
					limits.RothPhaseoutStart.StringFixed(0), limits.RothPhaseoutEnd.StringFixed(0)),
			})
		}
	}

	return warnings
}
