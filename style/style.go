// Package style composes lipgloss styles for tubex output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/quality"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a renderer applying the background color.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Truncate cuts s to max cells, appending an ellipsis when something was cut.
func Truncate(max int) func(string) string {
	return func(s string) string { return truncate.StringWithTail(s, uint(max), "…") }
}

// Wrap word-wraps s at width cells.
func Wrap(width int) func(string) string {
	return func(s string) string {
		if width <= 0 {
			return s
		}
		return wordwrap.String(s, width)
	}
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.New("230"), AccentColor).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer that puts s in a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// TierColor picks the container color for a tier.
func TierColor(t quality.Tier) lipgloss.Color {
	name := t.String()
	switch {
	case strings.HasPrefix(name, "mp4"):
		return color.MP4
	case strings.HasPrefix(name, "webm"):
		return color.WebM
	case strings.HasPrefix(name, "flv"):
		return color.FLV
	case strings.HasPrefix(name, "3gp"), strings.HasPrefix(name, "gp3"):
		return color.GP3
	default:
		return color.Gray
	}
}

// Tier renders the tier name in its container color.
func Tier(t quality.Tier) string {
	return Fg(TierColor(t))(t.String())
}
