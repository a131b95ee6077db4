package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// TableFormatter formats a strategy comparison as a console table.
type TableFormatter struct{}

// Format renders the side-by-side comparison.
func (tf *TableFormatter) Format(sc *StrategyComparison) string {
	var sb strings.Builder

	sb.WriteString("DEBT PAYOFF STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Active debts: %d\n\n", sc.Comparison.ActiveDebtCount))

	nameWidth := 22
	numWidth := 16
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Months",
		numWidth, "Total Interest",
		numWidth, "Debt-Free"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(tf.formatRow("Avalanche", sc.Avalanche, nameWidth, numWidth))
	sb.WriteString(tf.formatRow("Snowball", sc.Snowball, nameWidth, numWidth))
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	if sc.Comparison.InterestSavings.GreaterThan(decimal.Zero) {
		sb.WriteString(fmt.Sprintf("\nAvalanche saves $%s in interest over snowball",
			tf.formatDecimal(sc.Comparison.InterestSavings)))
		if sc.Comparison.MonthsSaved > 0 {
			sb.WriteString(fmt.Sprintf(" and %d months", sc.Comparison.MonthsSaved))
		}
		sb.WriteString(".\n")
	} else {
		sb.WriteString("\nBoth strategies cost the same here; pick the one that keeps you motivated.\n")
	}
	if sc.Comparison.ActiveDebtCount == 1 {
		sb.WriteString("Only one active debt: strategy choice has no effect.\n")
	}

	milestones := sc.Avalanche.PaidOffMilestones
	if len(milestones) > 0 {
		sb.WriteString("\nPAYOFF ORDER (AVALANCHE)\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, m := range milestones {
			sb.WriteString(fmt.Sprintf("  month %3d  %-24s frees $%s/mo\n",
				m.Month, m.DebtName, m.FreedMonthlyPayment.StringFixed(2)))
		}
	}

	if sc.Avalanche.NonConvergent || sc.Snowball.NonConvergent {
		sb.WriteString("\nWARNING: minimum payments do not cover accruing interest; the\n")
		sb.WriteString("timeline was capped and the debt never fully pays off as entered.\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(name string, r *domain.PaydownResult, nameWidth, numWidth int) string {
	months := fmt.Sprintf("%d", r.MonthsToPayoff)
	if r.NonConvergent {
		months += "+ (capped)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, months,
		numWidth, "$"+tf.formatDecimal(r.TotalInterestPaid),
		numWidth, r.DebtFreeDate.Format("Jan 2006"))
}

// formatDecimal abbreviates large amounts for display.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	}
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(2)
}
