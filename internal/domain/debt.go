package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DebtCategory is the closed set of debt kinds the planner tracks.
type DebtCategory string

const (
	DebtCreditCard DebtCategory = "credit_card"
	DebtMedical    DebtCategory = "medical"
	DebtStudent    DebtCategory = "student"
	DebtAuto       DebtCategory = "auto"
	DebtMortgage   DebtCategory = "mortgage"
	DebtOther      DebtCategory = "other"
)

// DebtCategories lists every valid category in display order.
func DebtCategories() []DebtCategory {
	return []DebtCategory{DebtCreditCard, DebtMedical, DebtStudent, DebtAuto, DebtMortgage, DebtOther}
}

// Valid reports whether the category is one of the six known kinds.
func (c DebtCategory) Valid() bool {
	switch c {
	case DebtCreditCard, DebtMedical, DebtStudent, DebtAuto, DebtMortgage, DebtOther:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c DebtCategory) DisplayName() string {
	switch c {
	case DebtCreditCard:
		return "Credit Card"
	case DebtMedical:
		return "Medical"
	case DebtStudent:
		return "Student Loan"
	case DebtAuto:
		return "Auto Loan"
	case DebtMortgage:
		return "Mortgage"
	case DebtOther:
		return "Other"
	}
	return string(c)
}

// Debt is one entry in the snapshot's fixed six-slot debt list.
// A zero MinPayment means "derive the minimum from amortization".
type Debt struct {
	Name         string          `yaml:"name" json:"name"`
	Category     DebtCategory    `yaml:"category" json:"category"`
	Balance      decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interestRate"` // annual percent, 0-100
	TermMonths   int             `yaml:"term_months" json:"termMonths"`
	MinPayment   decimal.Decimal `yaml:"min_payment" json:"minPayment"`
}

// IsActive reports whether the debt participates in simulations.
// Zero-balance debts are inactive and excluded everywhere.
func (d Debt) IsActive() bool {
	return d.Balance.GreaterThan(decimal.Zero)
}

// DisplayName returns the debt's name, falling back to its category label.
func (d Debt) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Category.DisplayName()
}

// DefaultDebts returns the fixed six-slot debt list, one slot per category,
// all zeroed. Slots are mutated in place by the external store, never deleted.
func DefaultDebts() []Debt {
	cats := DebtCategories()
	debts := make([]Debt, len(cats))
	for i, c := range cats {
		debts[i] = Debt{
			Name:       c.DisplayName(),
			Category:   c,
			TermMonths: 60,
		}
	}
	return debts
}

// ValidateDebt checks structural invariants on a single debt slot.
func ValidateDebt(index int, d *Debt) error {
	if !d.Category.Valid() {
		return fmt.Errorf("debt %d: unknown category %q", index, d.Category)
	}
	if d.Balance.IsNegative() {
		return fmt.Errorf("debt %d (%s): balance cannot be negative", index, d.DisplayName())
	}
	if d.InterestRate.IsNegative() || d.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("debt %d (%s): interest rate must be between 0 and 100", index, d.DisplayName())
	}
	if d.TermMonths <= 0 {
		return fmt.Errorf("debt %d (%s): term months must be positive", index, d.DisplayName())
	}
	if d.MinPayment.IsNegative() {
		return fmt.Errorf("debt %d (%s): minimum payment cannot be negative", index, d.DisplayName())
	}
	return nil
}
