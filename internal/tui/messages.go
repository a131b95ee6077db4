package tui

import (
	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/compare"
	"github.com/kmorton/planwise/internal/domain"
)

// SnapshotLoadedMsg carries the parsed snapshot.
type SnapshotLoadedMsg struct {
	Snapshot *domain.FinancialSnapshot
}

// ResultsMsg carries the output of all three engines.
type ResultsMsg struct {
	Summary    calculation.Summary
	Milestones []domain.Milestone
	Next       *domain.Milestone
	Comparison *compare.StrategyComparison
	Destiny    *domain.TaxDestinyResult
}

// ErrorMsg carries a load or compute failure.
type ErrorMsg struct {
	Err error
}
