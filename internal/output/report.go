// Package output renders engine results for the console. Rendering lives
// outside the core: these functions only read immutable result structures.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/domain"
)

// FormatSummary renders the snapshot-level aggregates shown above the
// milestone list.
func FormatSummary(s calculation.Summary) string {
	var sb strings.Builder
	sb.WriteString("SNAPSHOT SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Total assets:    $%s\n", s.TotalAssets.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("Total debt:      $%s (%d active)\n",
		s.TotalDebt.StringFixed(0), s.ActiveDebtCount))
	sb.WriteString(fmt.Sprintf("Debt minimums:   $%s/mo (%s%% of gross income)\n",
		s.MonthlyDebtMinimums.StringFixed(0), s.DebtToIncome.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("Emergency fund:  %s months of expenses (%s)\n",
		s.EmergencyFundMonths.StringFixed(1), s.Fragility))
	return sb.String()
}

// statusLabel maps a milestone status to its display tag.
func statusLabel(s domain.MilestoneStatus) string {
	switch s {
	case domain.StatusCompleted:
		return "[done]"
	case domain.StatusInProgress:
		return "[....]"
	case domain.StatusNotStarted:
		return "[    ]"
	case domain.StatusNotApplicable:
		return "[ -- ]"
	}
	return "[ ?? ]"
}

// FormatMilestones renders the ranked milestone list.
func FormatMilestones(milestones []domain.Milestone, next *domain.Milestone) string {
	var sb strings.Builder

	sb.WriteString("FINANCIAL MILESTONES\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	for _, m := range milestones {
		line := fmt.Sprintf("%2d. %s %s", m.Rank, statusLabel(m.Status), m.Title)
		if m.Progress != nil && m.Status != domain.StatusNotApplicable {
			line += fmt.Sprintf(" (%s%%)", m.Progress.StringFixed(0))
		}
		sb.WriteString(line + "\n")
		if m.Status == domain.StatusInProgress && m.TargetAmount.GreaterThan(decimal.Zero) {
			sb.WriteString(fmt.Sprintf("      $%s of $%s\n",
				m.CurrentAmount.StringFixed(0), m.TargetAmount.StringFixed(0)))
		}
	}

	sb.WriteString(strings.Repeat("-", 72) + "\n")
	if next != nil {
		sb.WriteString(fmt.Sprintf("Next step: %s (%s)\n", next.Title, next.Description))
	} else {
		sb.WriteString("All milestones completed. Nothing left to recommend.\n")
	}
	return sb.String()
}

// FormatTaxScenario renders one tax scenario.
func FormatTaxScenario(label string, ts domain.TaxScenario) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", label))
	sb.WriteString(fmt.Sprintf("  Gross income:     $%s\n", ts.GrossIncome.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Pre-tax deducted: $%s\n", ts.PreTaxDeductions.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Taxable income:   $%s\n", ts.TaxableIncome.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Federal tax:      $%s\n", ts.FederalTax.StringFixed(0)))
	state := fmt.Sprintf("  State tax:        $%s", ts.StateTax.StringFixed(0))
	if ts.StateIsEstimate {
		state += " (national-average estimate)"
	}
	sb.WriteString(state + "\n")
	sb.WriteString(fmt.Sprintf("  FICA:             $%s\n", ts.FICA.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Total tax:        $%s (effective %s%%, marginal %s%%)\n",
		ts.TotalTax.StringFixed(0),
		ts.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(1),
		ts.MarginalRate.Mul(decimal.NewFromInt(100)).StringFixed(0)))
	return sb.String()
}

// FormatTaxDestiny renders the baseline vs with-allocations comparison.
func FormatTaxDestiny(r *domain.TaxDestinyResult) string {
	var sb strings.Builder

	sb.WriteString("TAX DESTINY\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(FormatTaxScenario("Baseline (no contributions)", r.Baseline))
	sb.WriteString("\n")
	sb.WriteString(FormatTaxScenario("With allocations", r.WithAllocations))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Annual savings:  $%s  ($%s/month)\n",
		r.AnnualSavings.StringFixed(0), r.MonthlySavings.StringFixed(0)))

	sb.WriteString("\nPER-ACCOUNT BREAKDOWN\n")
	for _, a := range r.Accounts {
		if a.AnnualContribution.IsZero() {
			continue
		}
		line := fmt.Sprintf("  %-16s $%s/yr", a.Account, a.CappedContribution.StringFixed(0))
		if a.CappedContribution.LessThan(a.AnnualContribution) {
			line += fmt.Sprintf(" (capped from $%s)", a.AnnualContribution.StringFixed(0))
		}
		if a.PreTax {
			line += fmt.Sprintf(", saves ~$%s", a.EstimatedSavings.StringFixed(0))
		}
		sb.WriteString(line + "\n")
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("\nWARNINGS\n")
		for _, w := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", w.Severity, w.Message))
		}
	}
	if !r.Valid {
		sb.WriteString("\nPlan is not viable as entered; fix the errors above.\n")
	}
	return sb.String()
}

// FormatPaydown renders one simulation result.
func FormatPaydown(r *domain.PaydownResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("DEBT PAYOFF (%s)\n", strings.ToUpper(string(r.Strategy))))
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	if len(r.Timeline) == 0 {
		sb.WriteString("No active debts. Already debt-free.\n")
		return sb.String()
	}

	months := fmt.Sprintf("%d", r.MonthsToPayoff)
	if r.NonConvergent {
		months += "+ (capped: minimums do not cover interest)"
	}
	sb.WriteString(fmt.Sprintf("Months to payoff: %s\n", months))
	sb.WriteString(fmt.Sprintf("Total interest:   $%s\n", r.TotalInterestPaid.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Debt-free date:   %s\n", r.DebtFreeDate.Format("January 2006")))

	if len(r.PaidOffMilestones) > 0 {
		sb.WriteString("\nPAYOFF ORDER\n")
		for _, m := range r.PaidOffMilestones {
			sb.WriteString(fmt.Sprintf("  month %3d  %-24s frees $%s/mo\n",
				m.Month, m.DebtName, m.FreedMonthlyPayment.StringFixed(2)))
		}
	}
	return sb.String()
}
