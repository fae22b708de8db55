package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/yieldcalc/internal/config"
	"github.com/rgehrsitz/yieldcalc/internal/tui"
)

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	locale := env.Locale
	if len(os.Args) > 1 {
		locale = os.Args[1]
	}

	// Create the application model
	model := tui.NewModel(locale, nil)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
