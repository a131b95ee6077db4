package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmorton/planwise/internal/compare"
	"github.com/kmorton/planwise/internal/domain"
	"github.com/kmorton/planwise/internal/output"
)

// View renders the dashboard (required by tea.Model).
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\npress q to quit\n"
	}
	if m.loading {
		return titleStyle.Render("planwise") + "\n\nloading snapshot...\n"
	}

	var content string
	switch m.currentTab {
	case TabMilestones:
		content = m.renderMilestones()
	case TabPayoff:
		content = m.renderPayoff()
	case TabTaxes:
		content = m.renderTaxes()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		contentStyle.Width(max(40, m.width-4)).Render(content),
		statusBarStyle.Render("tab: switch pane  r: reload  q: quit"),
	)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("planwise - financial plan dashboard")

	tabs := make([]string, 0, 3)
	for _, t := range []Tab{TabMilestones, TabPayoff, TabTaxes} {
		if t == m.currentTab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderMilestones() string {
	var sb strings.Builder
	sb.WriteString(pendingStyle.Render(fmt.Sprintf(
		"assets $%s   debt $%s (%d active)   dti %s%%   fund %s mo (%s)",
		m.summary.TotalAssets.StringFixed(0),
		m.summary.TotalDebt.StringFixed(0),
		m.summary.ActiveDebtCount,
		m.summary.DebtToIncome.StringFixed(1),
		m.summary.EmergencyFundMonths.StringFixed(1),
		m.summary.Fragility,
	)) + "\n\n")
	for _, ms := range m.milestones {
		style := pendingStyle
		marker := "( )"
		switch ms.Status {
		case domain.StatusCompleted:
			style = doneStyle
			marker = "(x)"
		case domain.StatusInProgress:
			style = nextStyle
			marker = "(~)"
		case domain.StatusNotApplicable:
			marker = "(-)"
		}
		line := fmt.Sprintf("%2d %s %s", ms.Rank, marker, ms.Title)
		if ms.Progress != nil && ms.Status == domain.StatusInProgress {
			line += fmt.Sprintf("  %s%%", ms.Progress.StringFixed(0))
		}
		sb.WriteString(style.Render(line) + "\n")
	}
	if m.next != nil {
		sb.WriteString("\n" + nextStyle.Render("next: "+m.next.Title) + "\n")
	} else {
		sb.WriteString("\n" + doneStyle.Render("all milestones complete") + "\n")
	}
	return sb.String()
}

func (m Model) renderPayoff() string {
	if m.comparison == nil {
		return doneStyle.Render("no active debts, already debt-free")
	}
	tf := &compare.TableFormatter{}
	return tf.Format(m.comparison)
}

func (m Model) renderTaxes() string {
	if m.destiny == nil {
		return pendingStyle.Render("no annual income in the snapshot")
	}
	return output.FormatTaxDestiny(m.destiny)
}
