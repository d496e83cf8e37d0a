package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soukando/taishin/internal/analytics"
	"github.com/soukando/taishin/internal/clipboard"
	"github.com/soukando/taishin/internal/directory"
	"github.com/soukando/taishin/internal/session"
)

// Start runs the interactive questionnaire until the user quits.
func Start(sess *session.Session, events analytics.Emitter, listing []directory.Practitioner) error {
	model := NewModel(sess, events, clipboard.New(), listing)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
