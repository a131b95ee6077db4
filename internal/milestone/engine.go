// Package milestone evaluates the fixed, ranked list of financial-readiness
// checkpoints against a snapshot. Prerequisites between milestones are an
// explicit dependency edge set evaluated in rank order, not ad hoc
// conditionals.
package milestone

import (
	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/domain"
)

// DefaultEmergencyFundMonths is the full emergency fund target when the
// snapshot does not override it.
const DefaultEmergencyFundMonths = 6

// Engine evaluates milestones. It holds no per-snapshot state.
type Engine struct{}

// NewEngine creates a milestone engine.
func NewEngine() *Engine {
	return &Engine{}
}

// evalContext carries the aggregates shared by the milestone evaluators.
type evalContext struct {
	snapshot     *domain.FinancialSnapshot
	highDebt     decimal.Decimal
	moderateDebt decimal.Decimal
	lowDebt      decimal.Decimal
	limits       calculation.ContributionLimits
	completed    map[domain.MilestoneAction]bool
}

type milestoneDef struct {
	action      domain.MilestoneAction
	rank        int
	title       string
	description string
	// prereqs must all be completed (or not applicable) before this
	// milestone can leave NOT_STARTED.
	prereqs  []domain.MilestoneAction
	evaluate func(ctx *evalContext, m *domain.Milestone)
}

// definitions is the fixed, rank-ordered milestone table.
var definitions = []milestoneDef{
	{
		action:      domain.ActionCoverEssentials,
		rank:        1,
		title:       "Cover essentials",
		description: "Take-home pay covers monthly expenses",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			general := ctx.snapshot.General
			m.TargetAmount = general.MonthlyExpense
			m.CurrentAmount = general.MonthlyTakeHome
			setProgressStatus(m)
		},
	},
	{
		action:      domain.ActionStarterEmergencyFund,
		rank:        2,
		title:       "Starter emergency fund",
		description: "One month of expenses in savings",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			m.TargetAmount = ctx.snapshot.General.MonthlyExpense
			m.CurrentAmount = ctx.snapshot.Investments.Savings
			setProgressStatus(m)
		},
	},
	{
		action:      domain.ActionEmployerMatch,
		rank:        3,
		title:       "Capture employer match",
		description: "Contribute enough to the 401(k) to earn the full match",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			// No employer data exists in the snapshot; any 401(k) allocation
			// counts as capturing the match. No progress target applies.
			if ctx.snapshot.TaxDestiny.Monthly.FourOhOneK.GreaterThan(decimal.Zero) {
				m.Status = domain.StatusCompleted
			} else {
				m.Status = domain.StatusNotStarted
			}
		},
	},
	{
		action:      domain.ActionHighInterestDebt,
		rank:        4,
		title:       "Eliminate high-interest debt",
		description: "Pay off all non-mortgage debt at 7% or above",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			m.CurrentAmount = ctx.highDebt
			if ctx.highDebt.IsZero() {
				m.Status = domain.StatusCompleted
			} else {
				m.Status = domain.StatusInProgress
			}
		},
	},
	{
		action:      domain.ActionHSAAndRoth,
		rank:        5,
		title:       "HSA and Roth contributions",
		description: "Fund tax-advantaged HSA and Roth IRA space",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			monthly := ctx.snapshot.TaxDestiny.Monthly
			twelve := decimal.NewFromInt(12)
			m.TargetAmount = ctx.limits.HSA.Add(ctx.limits.IRACombined)
			m.CurrentAmount = monthly.HSA.Add(monthly.RothIRA).Add(monthly.TraditionalIRA).Mul(twelve)
			setProgressStatus(m)
		},
	},
	{
		action:      domain.ActionFullEmergencyFund,
		rank:        6,
		title:       "Full emergency fund",
		description: "Several months of expenses in savings",
		prereqs:     []domain.MilestoneAction{domain.ActionHighInterestDebt},
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			fundMonths := ctx.snapshot.Fire.EmergencyFundMonths
			if fundMonths <= 0 {
				fundMonths = DefaultEmergencyFundMonths
			}
			m.TargetAmount = ctx.snapshot.General.MonthlyExpense.Mul(decimal.NewFromInt(int64(fundMonths)))
			m.CurrentAmount = ctx.snapshot.Investments.Savings
			setProgressStatus(m)
		},
	},
	{
		action:      domain.ActionModerateInterestDebt,
		rank:        7,
		title:       "Pay down moderate-interest debt",
		description: "Optionally retire non-mortgage debt between 4% and 7%",
		prereqs:     []domain.MilestoneAction{domain.ActionFullEmergencyFund},
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			m.CurrentAmount = ctx.moderateDebt
			if ctx.moderateDebt.IsZero() {
				m.Status = domain.StatusNotApplicable
			} else {
				m.Status = domain.StatusInProgress
			}
		},
	},
	{
		action:      domain.ActionMaxRetirement,
		rank:        8,
		title:       "Max retirement accounts",
		description: "Fill all annual retirement contribution limits",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			twelve := decimal.NewFromInt(12)
			m.TargetAmount = ctx.limits.FourOhOneK.Add(ctx.limits.IRACombined).Add(ctx.limits.HSA)
			m.CurrentAmount = ctx.snapshot.TaxDestiny.Monthly.Total().Mul(twelve)
			setProgressStatus(m)
		},
	},
	{
		action:      domain.ActionTaxableInvesting,
		rank:        9,
		title:       "Taxable investing",
		description: "Invest beyond tax-advantaged space",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			// No target applies; a funded taxable account counts.
			if ctx.snapshot.Investments.StocksBonds.GreaterThan(decimal.Zero) {
				m.Status = domain.StatusCompleted
			} else {
				m.Status = domain.StatusNotStarted
			}
		},
	},
	{
		action:      domain.ActionLowInterestDebt,
		rank:        10,
		title:       "Low-interest debt",
		description: "Debt under 4% is cheaper than expected investment returns; never accelerated",
		evaluate: func(ctx *evalContext, m *domain.Milestone) {
			// Informational only: intentionally never recommended.
			m.CurrentAmount = ctx.lowDebt
			m.Status = domain.StatusNotApplicable
		},
	},
}

// setProgressStatus derives progress and status from CurrentAmount vs
// TargetAmount. A zero target counts as already met.
func setProgressStatus(m *domain.Milestone) {
	if m.TargetAmount.LessThanOrEqual(decimal.Zero) {
		m.Status = domain.StatusCompleted
		progress := decimal.NewFromInt(100)
		m.Progress = &progress
		return
	}
	progress := m.CurrentAmount.Div(m.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0)
	if progress.GreaterThan(decimal.NewFromInt(100)) {
		progress = decimal.NewFromInt(100)
	}
	if progress.IsNegative() {
		progress = decimal.Zero
	}
	m.Progress = &progress

	switch {
	case m.CurrentAmount.GreaterThanOrEqual(m.TargetAmount):
		m.Status = domain.StatusCompleted
	case m.CurrentAmount.GreaterThan(decimal.Zero):
		m.Status = domain.StatusInProgress
	default:
		m.Status = domain.StatusNotStarted
	}
}

// GetMilestones evaluates all ten milestones in rank order.
func (e *Engine) GetMilestones(snapshot *domain.FinancialSnapshot) []domain.Milestone {
	status := snapshot.TaxDestiny.FilingStatus
	if !status.Valid() {
		status = snapshot.General.FilingStatus
	}
	if !status.Valid() {
		status = domain.FilingSingle
	}

	ctx := &evalContext{
		snapshot:     snapshot,
		highDebt:     calculation.HighInterestDebt(snapshot.Debts),
		moderateDebt: calculation.ModerateInterestDebt(snapshot.Debts),
		lowDebt:      calculation.LowInterestDebt(snapshot.Debts),
		limits:       calculation.LimitsFor(snapshot.General.Age, status, snapshot.TaxDestiny.HSACoverage),
		completed:    make(map[domain.MilestoneAction]bool, len(definitions)),
	}

	milestones := make([]domain.Milestone, 0, len(definitions))
	for _, def := range definitions {
		m := domain.Milestone{
			Action:      def.action,
			Rank:        def.rank,
			Title:       def.title,
			Description: def.description,
		}

		if prereqsMet(ctx, def.prereqs) {
			def.evaluate(ctx, &m)
		} else {
			// Gated milestones stay NOT_STARTED regardless of their own
			// progress until every prerequisite is satisfied.
			m.Status = domain.StatusNotStarted
		}

		ctx.completed[def.action] = m.Status == domain.StatusCompleted || m.Status == domain.StatusNotApplicable
		milestones = append(milestones, m)
	}
	return milestones
}

func prereqsMet(ctx *evalContext, prereqs []domain.MilestoneAction) bool {
	for _, p := range prereqs {
		if !ctx.completed[p] {
			return false
		}
	}
	return true
}

// GetNextMilestone returns the lowest-rank milestone still IN_PROGRESS or
// NOT_STARTED, or nil when every milestone is completed or not applicable.
func (e *Engine) GetNextMilestone(snapshot *domain.FinancialSnapshot) *domain.Milestone {
	for _, m := range e.GetMilestones(snapshot) {
		if m.Status == domain.StatusInProgress || m.Status == domain.StatusNotStarted {
			next := m
			return &next
		}
	}
	return nil
}
