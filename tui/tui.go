// Package tui is the interactive tier picker behind "tubex pick".
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/quality"
)

// Action is what the caller should do with the picked stream.
type Action int

const (
	Print Action = iota
	Play
	Open
)

// Options configure the picker.
type Options struct {
	// Input is a URL or video id. When empty the picker starts from the history.
	Input      string
	NewSession func(input string) *extractor.Session
}

// Choice is the outcome of a completed pick.
type Choice struct {
	Session *extractor.Session
	Tier    quality.Tier
	URL     string
	Action  Action
}

// ErrCancelled is returned when the picker is closed without a choice.
var ErrCancelled = errors.New("cancelled")

// Run shows the picker until a tier is chosen or the user quits.
func Run(options *Options) (*Choice, error) {
	bubble := newBubble(options)

	model, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	final := model.(*statefulBubble)
	if final.choice == nil {
		return nil, ErrCancelled
	}

	return final.choice, nil
}
