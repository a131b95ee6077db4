package domain

import "github.com/shopspring/decimal"

// TaxScenario is one complete tax computation for a year.
type TaxScenario struct {
	GrossIncome      decimal.Decimal `json:"grossIncome"`
	PreTaxDeductions decimal.Decimal `json:"preTaxDeductions"`
	AGI              decimal.Decimal `json:"agi"`
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	FederalTax       decimal.Decimal `json:"federalTax"`
	StateTax         decimal.Decimal `json:"stateTax"`
	FICA             decimal.Decimal `json:"fica"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	EffectiveRate    decimal.Decimal `json:"effectiveRate"` // fraction of gross
	MarginalRate     decimal.Decimal `json:"marginalRate"`
	// StateIsEstimate marks state tax produced by the flat national-average
	// fallback rather than an MSA-specific estimator.
	StateIsEstimate bool `json:"stateIsEstimate"`
}

// IncomeTax is federal plus state tax, the portion contributions can reduce.
func (ts TaxScenario) IncomeTax() decimal.Decimal {
	return ts.FederalTax.Add(ts.StateTax)
}

// Severity tags a validation warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationWarning is returned as data, never thrown.
type ValidationWarning struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// AccountSavings is the per-account contribution and savings breakdown.
type AccountSavings struct {
	Account            string          `json:"account"`
	MonthlyAllocation  decimal.Decimal `json:"monthlyAllocation"`
	AnnualContribution decimal.Decimal `json:"annualContribution"` // before capping
	CappedContribution decimal.Decimal `json:"cappedContribution"`
	AnnualLimit        decimal.Decimal `json:"annualLimit"`
	EstimatedSavings   decimal.Decimal `json:"estimatedSavings"` // at the marginal rate
	PreTax             bool            `json:"preTax"`
}

// TaxDestinyResult pairs the baseline and with-allocations scenarios.
type TaxDestinyResult struct {
	Baseline        TaxScenario         `json:"baseline"`
	WithAllocations TaxScenario         `json:"withAllocations"`
	AnnualSavings   decimal.Decimal     `json:"annualSavings"`
	MonthlySavings  decimal.Decimal     `json:"monthlySavings"`
	Accounts        []AccountSavings    `json:"accounts"`
	Warnings        []ValidationWarning `json:"warnings"`
	// Valid is true iff no warning carries severity "error".
	Valid bool `json:"valid"`
}
