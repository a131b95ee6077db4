package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status used for bracket lookups.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJointly  FilingStatus = "married_filing_jointly"
	FilingMarriedSeparate FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// Valid reports whether the filing status is a known value.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparate, FilingHeadOfHousehold:
		return true
	}
	return false
}

// HSACoverage is the HSA eligibility tier.
type HSACoverage string

const (
	HSACoverageNone       HSACoverage = "none"
	HSACoverageIndividual HSACoverage = "individual"
	HSACoverageFamily     HSACoverage = "family"
)

// Valid reports whether the coverage tier is a known value.
func (h HSACoverage) Valid() bool {
	switch h {
	case HSACoverageNone, HSACoverageIndividual, HSACoverageFamily:
		return true
	}
	return false
}

// GeneralInfo holds the household-level inputs of the snapshot.
type GeneralInfo struct {
	Age              int             `yaml:"age" json:"age"`
	TargetRetirement int             `yaml:"target_retirement" json:"targetRetirement"`
	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annualIncome"`
	MonthlyTakeHome  decimal.Decimal `yaml:"monthly_take_home" json:"monthlyTakeHome"`
	MonthlyExpense   decimal.Decimal `yaml:"monthly_expense" json:"monthlyExpense"`
	MSA              string          `yaml:"msa" json:"msa"`
	FilingStatus     FilingStatus    `yaml:"filing_status" json:"filingStatus"`
}

// Investments holds the eight named asset buckets, all non-negative.
type Investments struct {
	Savings     decimal.Decimal `yaml:"savings" json:"savings"`
	IRA         decimal.Decimal `yaml:"ira" json:"ira"`
	RothIRA     decimal.Decimal `yaml:"roth_ira" json:"rothIra"`
	StocksBonds decimal.Decimal `yaml:"stocks_bonds" json:"stocksBonds"`
	FourOhOneK  decimal.Decimal `yaml:"four_oh_one_k" json:"fourOhOneK"`
	RealEstate  decimal.Decimal `yaml:"real_estate" json:"realEstate"`
	CarValue    decimal.Decimal `yaml:"car_value" json:"carValue"`
	Other       decimal.Decimal `yaml:"other" json:"other"`
}

// Total returns the sum of all eight buckets.
func (inv Investments) Total() decimal.Decimal {
	return inv.Savings.
		Add(inv.IRA).
		Add(inv.RothIRA).
		Add(inv.StocksBonds).
		Add(inv.FourOhOneK).
		Add(inv.RealEstate).
		Add(inv.CarValue).
		Add(inv.Other)
}

// DebtSettings configures the payoff simulation.
type DebtSettings struct {
	// Aggressiveness in [0,100] scales how much of the monthly surplus is
	// committed to extra debt payments.
	Aggressiveness    decimal.Decimal `yaml:"aggressiveness" json:"aggressiveness"`
	PreferredStrategy Strategy        `yaml:"preferred_strategy" json:"preferredStrategy"`
}

// MonthlyAllocations are the user's chosen monthly contributions per account.
type MonthlyAllocations struct {
	FourOhOneK     decimal.Decimal `yaml:"four_oh_one_k" json:"fourOhOneK"`
	HSA            decimal.Decimal `yaml:"hsa" json:"hsa"`
	TraditionalIRA decimal.Decimal `yaml:"traditional_ira" json:"traditionalIra"`
	RothIRA        decimal.Decimal `yaml:"roth_ira" json:"rothIra"`
}

// Total returns the combined monthly commitment.
func (m MonthlyAllocations) Total() decimal.Decimal {
	return m.FourOhOneK.Add(m.HSA).Add(m.TraditionalIRA).Add(m.RothIRA)
}

// TaxDestinySettings configures the tax scenario engine.
type TaxDestinySettings struct {
	FilingStatus    FilingStatus       `yaml:"filing_status" json:"filingStatus"`
	HSACoverage     HSACoverage        `yaml:"hsa_coverage" json:"hsaCoverage"`
	Monthly         MonthlyAllocations `yaml:"monthly" json:"monthly"`
	IncludeStateTax bool               `yaml:"include_state_tax" json:"includeStateTax"`
}

// FireSettings configures milestone targets.
type FireSettings struct {
	// EmergencyFundMonths is the full emergency fund target; defaults to 6.
	EmergencyFundMonths int             `yaml:"emergency_fund_months" json:"emergencyFundMonths"`
	AnnualFireExpense   decimal.Decimal `yaml:"annual_fire_expense" json:"annualFireExpense"`
}

// FinancialSnapshot is the value passed into every engine. Engines never
// mutate it and never retain a reference past return.
type FinancialSnapshot struct {
	General     GeneralInfo        `yaml:"general" json:"general"`
	Investments Investments        `yaml:"investments" json:"investments"`
	Debts       []Debt             `yaml:"debts" json:"debts"`
	Debt        DebtSettings       `yaml:"debt_settings" json:"debtSettings"`
	TaxDestiny  TaxDestinySettings `yaml:"tax_destiny" json:"taxDestiny"`
	Fire        FireSettings       `yaml:"fire_settings" json:"fireSettings"`
}

// ActiveDebts returns the debts with a positive balance, in input order.
func (s *FinancialSnapshot) ActiveDebts() []Debt {
	active := make([]Debt, 0, len(s.Debts))
	for _, d := range s.Debts {
		if d.IsActive() {
			active = append(active, d)
		}
	}
	return active
}

// MonthlySurplus is take-home pay minus expenses, clamped at zero.
func (s *FinancialSnapshot) MonthlySurplus() decimal.Decimal {
	surplus := s.General.MonthlyTakeHome.Sub(s.General.MonthlyExpense)
	if surplus.IsNegative() {
		return decimal.Zero
	}
	return surplus
}

// ExtraPayment is the share of the monthly surplus committed to debt,
// scaled by the aggressiveness setting.
func (s *FinancialSnapshot) ExtraPayment() decimal.Decimal {
	return s.MonthlySurplus().
		Mul(s.Debt.Aggressiveness).
		Div(decimal.NewFromInt(100))
}
