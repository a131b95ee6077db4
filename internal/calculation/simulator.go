package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmorton/planwise/internal/domain"
)

// DefaultMaxPayoffMonths caps the simulation so pathological inputs (minimum
// payments below accruing interest) still terminate.
const DefaultMaxPayoffMonths = 600

// PayoffSimulator runs the month-by-month debt payoff simulation.
type PayoffSimulator struct {
	MaxMonths int
	Logger    Logger
}

// NewPayoffSimulator creates a simulator with the default safety cap.
func NewPayoffSimulator() *PayoffSimulator {
	return &PayoffSimulator{
		MaxMonths: DefaultMaxPayoffMonths,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the simulator's logger; nil restores the no-op logger.
func (ps *PayoffSimulator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ps.Logger = l
}

// simDebt is the per-debt working state of one simulation run.
type simDebt struct {
	label      string
	inputIndex int
	rate       decimal.Decimal
	balance    decimal.Decimal
	minPayment decimal.Decimal
	active     bool
}

// Simulate pays down the active debts under the given strategy with one fixed
// extra-payment pool. Interest accrues on start-of-month balances; minimum
// payments go to every active debt, then the whole pool goes to the single
// highest-priority debt still carrying a balance. A paid-off debt's minimum
// joins the pool the following month. The input slice is never mutated.
func (ps *PayoffSimulator) Simulate(debts []domain.Debt, extraPayment decimal.Decimal, strategy domain.Strategy, from time.Time) *domain.PaydownResult {
	if !strategy.Valid() {
		strategy = domain.StrategyAvalanche
	}
	if extraPayment.IsNegative() {
		extraPayment = decimal.Zero
	}

	working := buildWorkingSet(debts)
	result := &domain.PaydownResult{
		Strategy:          strategy,
		TotalInterestPaid: decimal.Zero,
		DebtFreeDate:      from,
	}
	if len(working) == 0 {
		return result
	}

	priority := prioritize(working, strategy)
	pool := extraPayment
	maxMonths := ps.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxPayoffMonths
	}

	for month := 1; month <= maxMonths; month++ {
		monthInterest := decimal.Zero
		interest := make([]decimal.Decimal, len(working))
		startBalance := make([]decimal.Decimal, len(working))

		for i := range working {
			if !working[i].active {
				continue
			}
			startBalance[i] = working[i].balance
			interest[i] = InterestPortion(working[i].balance, working[i].rate)
			monthInterest = monthInterest.Add(interest[i])
		}

		// Minimum payments to every active debt.
		for i := range working {
			if !working[i].active {
				continue
			}
			payment := working[i].minPayment
			owed := working[i].balance.Add(interest[i])
			if payment.GreaterThan(owed) {
				payment = owed // final partial payment
			}
			working[i].balance = working[i].balance.Add(interest[i]).Sub(payment)
			if working[i].balance.IsNegative() {
				working[i].balance = decimal.Zero
			}
		}

		// Entire extra pool to the highest-priority debt still carrying a balance.
		if pool.IsPositive() {
			for _, idx := range priority {
				d := &working[idx]
				if !d.active || !d.balance.IsPositive() {
					continue
				}
				extra := pool
				if extra.GreaterThan(d.balance) {
					extra = d.balance
				}
				d.balance = d.balance.Sub(extra)
				break
			}
		}

		result.TotalInterestPaid = result.TotalInterestPaid.Add(monthInterest)

		// Retire paid-off debts; their minimums cascade into next month's pool.
		freed := decimal.Zero
		for i := range working {
			if !working[i].active || working[i].balance.IsPositive() {
				continue
			}
			working[i].active = false
			freed = freed.Add(working[i].minPayment)
			result.PaidOffMilestones = append(result.PaidOffMilestones, domain.PaydownMilestone{
				DebtName:            working[i].label,
				Month:               month,
				StartingBalance:     startBalance[i],
				FreedMonthlyPayment: working[i].minPayment,
			})
			ps.Logger.Debugf("month %d: %s paid off, %s/mo freed", month, working[i].label, working[i].minPayment.StringFixed(2))
		}
		pool = pool.Add(freed)

		result.Timeline = append(result.Timeline, snapshotMonth(month, working, monthInterest))

		if allRetired(working) {
			result.MonthsToPayoff = month
			result.DebtFreeDate = from.AddDate(0, month, 0)
			return result
		}
	}

	// Safety cap reached: report the capped horizon, flagged.
	result.MonthsToPayoff = maxMonths
	result.DebtFreeDate = from.AddDate(0, maxMonths, 0)
	result.NonConvergent = true
	ps.Logger.Warnf("payoff simulation hit the %d month cap without converging", maxMonths)
	return result
}

// buildWorkingSet copies the active debts into simulation state with unique
// labels and derived minimum payments.
func buildWorkingSet(debts []domain.Debt) []simDebt {
	seen := make(map[string]int)
	working := make([]simDebt, 0, len(debts))
	for i, d := range debts {
		if !d.IsActive() {
			continue
		}
		label := d.DisplayName()
		if n := seen[label]; n > 0 {
			label = fmt.Sprintf("%s #%d", label, n+1)
		}
		seen[d.DisplayName()]++

		minPayment := d.MinPayment
		if minPayment.LessThanOrEqual(decimal.Zero) {
			minPayment = MonthlyPayment(d.Balance, d.InterestRate, d.TermMonths)
		}
		working = append(working, simDebt{
			label:      label,
			inputIndex: i,
			rate:       d.InterestRate,
			balance:    d.Balance,
			minPayment: minPayment,
			active:     true,
		})
	}
	return working
}

// prioritize orders working-set indices by strategy, ties broken by input
// order. The ordering is fixed at simulation start: rates never change, and
// snowball targets by starting balance rather than re-sorting as balances
// shift month to month.
func prioritize(working []simDebt, strategy domain.Strategy) []int {
	order := make([]int, len(working))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := working[order[a]], working[order[b]]
		if strategy == domain.StrategySnowball {
			return da.balance.LessThan(db.balance)
		}
		return da.rate.GreaterThan(db.rate)
	})
	return order
}

func snapshotMonth(month int, working []simDebt, interest decimal.Decimal) domain.MonthSnapshot {
	snap := domain.MonthSnapshot{
		Month:           month,
		Balances:        make(map[string]decimal.Decimal, len(working)),
		TotalRemaining:  decimal.Zero,
		InterestAccrued: interest,
	}
	for _, d := range working {
		snap.Balances[d.label] = d.balance
		snap.TotalRemaining = snap.TotalRemaining.Add(d.balance)
	}
	return snap
}

func allRetired(working []simDebt) bool {
	for i := range working {
		if working[i].active {
			return false
		}
	}
	return true
}
