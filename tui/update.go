package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tubex-cli/tubex/history"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		return b, b.onFinished(msg)
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case tiersState:
		return b.updateTiers(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if _, ok := msg.(spinner.TickMsg); ok {
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	}

	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.historyC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.historyC.SelectedItem().(*listItem); ok {
				return b, b.extract(item.internal.(*history.Record).VideoID)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.remove):
			return b, b.removeSelectedRecord()
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateTiers(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.tiersC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.choose(Print)
		case bubblesKey.Matches(msg, b.keymap.play):
			return b, b.choose(Play)
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.choose(Open)
		case bubblesKey.Matches(msg, b.keymap.back) && b.tiersC.FilterState() == list.Unfiltered:
			if b.options.Input != "" {
				return b, tea.Quit
			}
			b.tiersC.ResetSelected()
			b.previousState()
			return b, nil
		}
	}

	b.tiersC, cmd = b.tiersC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.back):
		if _, ok := b.previous.Get(); !ok {
			return b, tea.Quit
		}
		b.lastError = nil
		b.previousState()
	}

	return b, nil
}
