// Package config loads and sanitizes the financial snapshot the engines
// consume. Sanitization is the validation layer the core contracts on:
// engines assume every numeric field is finite and non-negative.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kmorton/planwise/internal/domain"
)

// InputParser handles parsing of snapshot files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML file, sanitizes it, and
// validates its structure.
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialSnapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var snapshot domain.FinancialSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.Sanitize(&snapshot)
	if err := ip.Validate(&snapshot); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}
	return &snapshot, nil
}

// Sanitize clamps out-of-range numeric inputs and fills structural defaults
// so the core never sees a negative or unbounded value.
func (ip *InputParser) Sanitize(s *domain.FinancialSnapshot) {
	clampZero := func(d *decimal.Decimal) {
		if d.IsNegative() {
			*d = decimal.Zero
		}
	}

	general := &s.General
	if general.Age < 0 {
		general.Age = 0
	}
	if general.TargetRetirement < 0 {
		general.TargetRetirement = 0
	}
	clampZero(&general.AnnualIncome)
	clampZero(&general.MonthlyTakeHome)
	clampZero(&general.MonthlyExpense)
	if !general.FilingStatus.Valid() {
		general.FilingStatus = domain.FilingSingle
	}

	inv := &s.Investments
	for _, d := range []*decimal.Decimal{
		&inv.Savings, &inv.IRA, &inv.RothIRA, &inv.StocksBonds,
		&inv.FourOhOneK, &inv.RealEstate, &inv.CarValue, &inv.Other,
	} {
		clampZero(d)
	}

	if len(s.Debts) == 0 {
		s.Debts = domain.DefaultDebts()
	}
	hundred := decimal.NewFromInt(100)
	for i := range s.Debts {
		d := &s.Debts[i]
		clampZero(&d.Balance)
		clampZero(&d.MinPayment)
		if d.InterestRate.IsNegative() {
			d.InterestRate = decimal.Zero
		}
		if d.InterestRate.GreaterThan(hundred) {
			d.InterestRate = hundred
		}
		if d.TermMonths <= 0 {
			d.TermMonths = 60
		}
		if !d.Category.Valid() {
			d.Category = domain.DebtOther
		}
	}

	if s.Debt.Aggressiveness.IsNegative() {
		s.Debt.Aggressiveness = decimal.Zero
	}
	if s.Debt.Aggressiveness.GreaterThan(hundred) {
		s.Debt.Aggressiveness = hundred
	}
	if !s.Debt.PreferredStrategy.Valid() {
		s.Debt.PreferredStrategy = domain.StrategyAvalanche
	}

	td := &s.TaxDestiny
	if !td.FilingStatus.Valid() {
		td.FilingStatus = general.FilingStatus
	}
	if !td.HSACoverage.Valid() {
		td.HSACoverage = domain.HSACoverageNone
	}
	clampZero(&td.Monthly.FourOhOneK)
	clampZero(&td.Monthly.HSA)
	clampZero(&td.Monthly.TraditionalIRA)
	clampZero(&td.Monthly.RothIRA)

	if s.Fire.EmergencyFundMonths <= 0 {
		s.Fire.EmergencyFundMonths = 6
	}
	clampZero(&s.Fire.AnnualFireExpense)
}

// Validate checks structural invariants that sanitization cannot repair.
func (ip *InputParser) Validate(s *domain.FinancialSnapshot) error {
	for i := range s.Debts {
		if err := domain.ValidateDebt(i, &s.Debts[i]); err != nil {
			return err
		}
	}
	if !s.General.FilingStatus.Valid() {
		return fmt.Errorf("unknown filing status %q", s.General.FilingStatus)
	}
	if !s.Debt.PreferredStrategy.Valid() {
		return fmt.Errorf("unknown payoff strategy %q", s.Debt.PreferredStrategy)
	}
	return nil
}

// DefaultSnapshot returns a zeroed snapshot with the fixed six-slot debt
// list and default settings, the shape the external store starts from.
func DefaultSnapshot() *domain.FinancialSnapshot {
	return &domain.FinancialSnapshot{
		General: domain.GeneralInfo{
			FilingStatus: domain.FilingSingle,
		},
		Debts: domain.DefaultDebts(),
		Debt: domain.DebtSettings{
			Aggressiveness:    decimal.NewFromInt(50),
			PreferredStrategy: domain.StrategyAvalanche,
		},
		TaxDestiny: domain.TaxDestinySettings{
			FilingStatus:    domain.FilingSingle,
			HSACoverage:     domain.HSACoverageNone,
			IncludeStateTax: true,
		},
		Fire: domain.FireSettings{
			EmergencyFundMonths: 6,
		},
	}
}
