// Package tui is a read-only dashboard over the planning engines: one tab
// each for milestones, the payoff comparison, and the tax destiny view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/compare"
	"github.com/kmorton/planwise/internal/config"
	"github.com/kmorton/planwise/internal/domain"
	"github.com/kmorton/planwise/internal/milestone"
)

// Tab identifies one dashboard pane.
type Tab int

const (
	TabMilestones Tab = iota
	TabPayoff
	TabTaxes
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabMilestones:
		return "Milestones"
	case TabPayoff:
		return "Payoff"
	case TabTaxes:
		return "Taxes"
	}
	return "Unknown"
}

// Model is the entire dashboard state.
type Model struct {
	snapshotPath string
	snapshot     *domain.FinancialSnapshot

	currentTab Tab
	width      int
	height     int

	summary    calculation.Summary
	milestones []domain.Milestone
	next       *domain.Milestone
	comparison *compare.StrategyComparison
	destiny    *domain.TaxDestinyResult

	loading bool
	err     error
}

// NewModel creates a dashboard model for the given snapshot file.
func NewModel(snapshotPath string) Model {
	return Model{
		snapshotPath: snapshotPath,
		currentTab:   TabMilestones,
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init loads the snapshot (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadSnapshotCmd(m.snapshotPath)
}

// loadSnapshotCmd parses the snapshot file off the update loop.
func loadSnapshotCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		snapshot, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SnapshotLoadedMsg{Snapshot: snapshot}
	}
}

// computeCmd runs all three engines against the loaded snapshot.
func computeCmd(snapshot *domain.FinancialSnapshot) tea.Cmd {
	return func() tea.Msg {
		engine := milestone.NewEngine()
		msg := ResultsMsg{
			Summary:    calculation.Summarize(snapshot),
			Milestones: engine.GetMilestones(snapshot),
			Next:       engine.GetNextMilestone(snapshot),
			Comparison: compare.NewEngine().CompareStrategies(snapshot.Debts, snapshot.ExtraPayment(), time.Now()),
			Destiny:    calculation.NewTaxDestinyEngine().ComputeTaxDestiny(snapshot),
		}
		return msg
	}
}
