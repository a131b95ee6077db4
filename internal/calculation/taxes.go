package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets and standard deductions use 2025 tables for every
//    filing status; no inflation indexing is applied.
// 2. State tax is an estimate keyed by MSA; when no MSA-specific rate is
//    known, a flat 5% national-average fallback applies and the scenario is
//    flagged as an estimate.
// 3. FICA: 6.2% Social Security up to the wage base, 1.45% Medicare uncapped,
//    0.9% additional Medicare above the per-status threshold.
//
// These are planning estimates, not compliance-grade tax computation.

// TaxBracket is one (rate, min, max) tuple of a progressive table.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// FederalTaxResult is the outcome of one bracket walk.
type FederalTaxResult struct {
	Tax           decimal.Decimal
	EffectiveRate decimal.Decimal
	MarginalRate  decimal.Decimal
	Bracket       int // index of the bracket the income tops out in
}

// FederalTaxCalculator computes progressive federal income tax.
type FederalTaxCalculator struct {
	Year               int
	Brackets           map[domain.FilingStatus][]TaxBracket
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
}

// bracketTop is the open-ended max of the last bracket.
var bracketTop = decimal.NewFromInt(999999999)

func bracket(min, max int64, rate float64) TaxBracket {
	return TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

// NewFederalTaxCalculator2025 creates a calculator loaded with the 2025
// brackets and standard deductions for all four filing statuses.
func NewFederalTaxCalculator2025() *FederalTaxCalculator {
	single := []TaxBracket{
		bracket(0, 11925, 0.10),
		bracket(11925, 48475, 0.12),
		bracket(48475, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 626350, 0.35),
		{decimal.NewFromInt(626350), bracketTop, decimal.NewFromFloat(0.37)},
	}
	mfj := []TaxBracket{
		bracket(0, 23850, 0.10),
		bracket(23850, 96950, 0.12),
		bracket(96950, 206700, 0.22),
		bracket(206700, 394600, 0.24),
		bracket(394600, 501050, 0.32),
		bracket(501050, 751600, 0.35),
		{decimal.NewFromInt(751600), bracketTop, decimal.NewFromFloat(0.37)},
	}
	mfs := []TaxBracket{
		bracket(0, 11925, 0.10),
		bracket(11925, 48475, 0.12),
		bracket(48475, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 375800, 0.35),
		{decimal.NewFromInt(375800), bracketTop, decimal.NewFromFloat(0.37)},
	}
	hoh := []TaxBracket{
		bracket(0, 17000, 0.10),
		bracket(17000, 64850, 0.12),
		bracket(64850, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 626350, 0.35),
		{decimal.NewFromInt(626350), bracketTop, decimal.NewFromFloat(0.37)},
	}

	return &FederalTaxCalculator{
		Year: 2025,
		Brackets: map[domain.FilingStatus][]TaxBracket{
			domain.FilingSingle:          single,
			domain.FilingMarriedJointly:  mfj,
			domain.FilingMarriedSeparate: mfs,
			domain.FilingHeadOfHousehold: hoh,
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:          decimal.NewFromInt(15000),
			domain.FilingMarriedJointly:  decimal.NewFromInt(30000),
			domain.FilingMarriedSeparate: decimal.NewFromInt(15000),
			domain.FilingHeadOfHousehold: decimal.NewFromInt(22500),
		},
	}
}

// BracketsFor returns the bracket table for a filing status, defaulting to
// single for anything unrecognized.
func (ftc *FederalTaxCalculator) BracketsFor(status domain.FilingStatus) []TaxBracket {
	if brackets, ok := ftc.Brackets[status]; ok {
		return brackets
	}
	return ftc.Brackets[domain.FilingSingle]
}

// StandardDeduction returns the standard deduction for a filing status,
// defaulting to single.
func (ftc *FederalTaxCalculator) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if ded, ok := ftc.StandardDeductions[status]; ok {
		return ded
	}
	return ftc.StandardDeductions[domain.FilingSingle]
}

// FederalTax walks the brackets in ascending order. Taxable income at or
// below zero yields zero tax with the first bracket's rate as the marginal
// rate: "if you earned one more dollar, what rate applies."
func (ftc *FederalTaxCalculator) FederalTax(taxableIncome decimal.Decimal, status domain.FilingStatus) FederalTaxResult {
	brackets := ftc.BracketsFor(status)
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return FederalTaxResult{
			Tax:           decimal.Zero,
			EffectiveRate: decimal.Zero,
			MarginalRate:  brackets[0].Rate,
			Bracket:       0,
		}
	}

	tax := decimal.Zero
	marginal := brackets[0].Rate
	topBracket := 0
	for i, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, b.Max).Sub(b.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(incomeInBracket.Mul(b.Rate))
			marginal = b.Rate
			topBracket = i
		}
		if taxableIncome.LessThanOrEqual(b.Max) {
			break
		}
	}

	return FederalTaxResult{
		Tax:           tax,
		EffectiveRate: tax.Div(taxableIncome),
		MarginalRate:  marginal,
		Bracket:       topBracket,
	}
}

// StateTaxEstimator estimates state income tax for a filing jurisdiction.
// ok reports whether the estimator recognized the MSA; the caller falls back
// to the national-average estimate otherwise.
type StateTaxEstimator interface {
	EstimateStateTax(taxableIncome decimal.Decimal, msa string) (tax decimal.Decimal, ok bool)
}

// MSAStateTax estimates state tax from a per-MSA flat-rate table.
type MSAStateTax struct {
	Rates map[string]decimal.Decimal // MSA -> flat rate fraction
}

// NewMSAStateTax creates an estimator with a small built-in table of
// effective state rates for common metro areas.
func NewMSAStateTax() *MSAStateTax {
	return &MSAStateTax{
		Rates: map[string]decimal.Decimal{
			"new-york":      decimal.NewFromFloat(0.0625),
			"los-angeles":   decimal.NewFromFloat(0.075),
			"san-francisco": decimal.NewFromFloat(0.080),
			"chicago":       decimal.NewFromFloat(0.0495),
			"houston":       decimal.Zero, // no state income tax
			"dallas":        decimal.Zero,
			"seattle":       decimal.Zero,
			"miami":         decimal.Zero,
			"philadelphia":  decimal.NewFromFloat(0.0307),
			"boston":        decimal.NewFromFloat(0.05),
			"denver":        decimal.NewFromFloat(0.044),
			"phoenix":       decimal.NewFromFloat(0.025),
		},
	}
}

// EstimateStateTax implements StateTaxEstimator.
func (m *MSAStateTax) EstimateStateTax(taxableIncome decimal.Decimal, msa string) (decimal.Decimal, bool) {
	rate, ok := m.Rates[msa]
	if !ok {
		return decimal.Zero, false
	}
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, true
	}
	return taxableIncome.Mul(rate), true
}

// nationalAverageStateRate is the flat fallback when the MSA is unknown.
var nationalAverageStateRate = decimal.NewFromFloat(0.05)

// FICACalculator computes payroll taxes for a single earner.
type FICACalculator struct {
	Year                 int
	SSWageBase           decimal.Decimal
	SSRate               decimal.Decimal
	MedicareRate         decimal.Decimal
	AdditionalRate       decimal.Decimal
	HighIncomeThresholds map[domain.FilingStatus]decimal.Decimal
}

// NewFICACalculator2025 creates a FICA calculator with 2025 parameters.
func NewFICACalculator2025() *FICACalculator {
	return &FICACalculator{
		Year:           2025,
		SSWageBase:     decimal.NewFromInt(176100),
		SSRate:         decimal.NewFromFloat(0.062),
		MedicareRate:   decimal.NewFromFloat(0.0145),
		AdditionalRate: decimal.NewFromFloat(0.009),
		HighIncomeThresholds: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:          decimal.NewFromInt(200000),
			domain.FilingMarriedJointly:  decimal.NewFromInt(250000),
			domain.FilingMarriedSeparate: decimal.NewFromInt(125000),
			domain.FilingHeadOfHousehold: decimal.NewFromInt(200000),
		},
	}
}

// CalculateFICA computes Social Security plus Medicare on earned wages.
func (fc *FICACalculator) CalculateFICA(wages decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ssTax := decimal.Min(wages, fc.SSWageBase).Mul(fc.SSRate)
	medicareTax := wages.Mul(fc.MedicareRate)

	threshold, ok := fc.HighIncomeThresholds[status]
	if !ok {
		threshold = fc.HighIncomeThresholds[domain.FilingSingle]
	}
	additional := decimal.Zero
	if wages.GreaterThan(threshold) {
		additional = wages.Sub(threshold).Mul(fc.AdditionalRate)
	}

	return ssTax.Add(medicareTax).Add(additional)
}

// ScenarioCalculator assembles full tax scenarios from the pieces above.
type ScenarioCalculator struct {
	Federal *FederalTaxCalculator
	FICA    *FICACalculator
	// State is the optional MSA-keyed estimator; when it declines an MSA the
	// flat national-average fallback applies.
	State StateTaxEstimator
}

// NewScenarioCalculator creates a calculator with 2025 defaults and the
// built-in MSA table.
func NewScenarioCalculator() *ScenarioCalculator {
	return &ScenarioCalculator{
		Federal: NewFederalTaxCalculator2025(),
		FICA:    NewFICACalculator2025(),
		State:   NewMSAStateTax(),
	}
}

// ComputeTaxScenario produces the full scenario for one year: AGI, taxable
// income after the standard deduction, federal, state, FICA, and the derived
// rates. Expected edge cases (zero income, deductions above income) degrade
// to zeroed fields rather than errors.
func (sc *ScenarioCalculator) ComputeTaxScenario(grossIncome, preTaxDeductions decimal.Decimal, status domain.FilingStatus, msa string) domain.TaxScenario {
	if grossIncome.IsNegative() {
		grossIncome = decimal.Zero
	}
	if preTaxDeductions.IsNegative() {
		preTaxDeductions = decimal.Zero
	}

	agi := grossIncome.Sub(preTaxDeductions)
	if agi.IsNegative() {
		agi = decimal.Zero
	}
	taxable := agi.Sub(sc.Federal.StandardDeduction(status))
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	federal := sc.Federal.FederalTax(taxable, status)

	stateTax := decimal.Zero
	stateIsEstimate := false
	if sc.State != nil {
		if tax, ok := sc.State.EstimateStateTax(taxable, msa); ok {
			stateTax = tax
		} else {
			stateTax = taxable.Mul(nationalAverageStateRate)
			stateIsEstimate = true
		}
	} else {
		stateTax = taxable.Mul(nationalAverageStateRate)
		stateIsEstimate = true
	}

	fica := sc.FICA.CalculateFICA(grossIncome, status)
	total := federal.Tax.Add(stateTax).Add(fica)

	effective := decimal.Zero
	if grossIncome.GreaterThan(decimal.Zero) {
		effective = total.Div(grossIncome)
	}

	return domain.TaxScenario{
		GrossIncome:      grossIncome,
		PreTaxDeductions: preTaxDeductions,
		AGI:              agi,
		TaxableIncome:    taxable,
		FederalTax:       federal.Tax,
		StateTax:         stateTax,
		FICA:             fica,
		TotalTax:         total,
		EffectiveRate:    effective,
		MarginalRate:     federal.MarginalRate,
		StateIsEstimate:  stateIsEstimate,
	}
}
