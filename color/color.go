// Package color holds the terminal colors used by tubex output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, so plain output follows the terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")

	HiRed   = New("9")
	HiGreen = New("10")
	HiBlack = New("16")
)

// Container colors. Each video container gets its own so tier lists scan quickly.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")

	MP4  = New("#89b4fa")
	WebM = New("#a6e3a1")
	FLV  = New("#f9e2af")
	GP3  = New("#fab387")
)
