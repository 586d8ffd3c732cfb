package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/okravets/dayline/internal/store"
)

// Run starts the interactive session over st and blocks until the user
// quits.
func Run(st *store.Store, slots []string, logger *log.Logger) error {
	model := NewAppModel(st, slots, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
