package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmorton/planwise/internal/tui"
)

func main() {
	// Get snapshot file path from arguments
	snapshotPath := ""
	if len(os.Args) > 1 {
		snapshotPath = os.Args[1]
	} else {
		fmt.Println("Usage: planwise-tui <snapshot-file>")
		os.Exit(1)
	}

	// Check if snapshot file exists
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		fmt.Printf("Error: Snapshot file not found: %s\n", snapshotPath)
		os.Exit(1)
	}

	model := tui.NewModel(snapshotPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
