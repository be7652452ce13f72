package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the extraction right away when an input was given, otherwise it lists the history.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Input != "" {
		return b.extract(b.options.Input)
	}

	return b.loadHistory()
}
