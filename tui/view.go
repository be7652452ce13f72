package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case historyState:
		return listExtraPaddingStyle.Render(b.historyC.View())
	case tiersState:
		return listExtraPaddingStyle.Render(b.tiersC.View())
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		style.Title("Extracting"),
		"",
		b.spinnerC.View()+" "+style.Faint(b.input),
	)
}

func (b *statefulBubble) viewError() string {
	message := "unknown error"
	if b.lastError != nil {
		message = b.lastError.Error()
	}

	return b.renderLines(
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail)+" "+wrap.String(message, b.width),
		"",
		b.helpC.View(b.keymap),
	)
}

func (b *statefulBubble) renderLines(lines ...string) string {
	return paddingStyle.Render(strings.Join(lines, "\n"))
}
