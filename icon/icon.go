// Package icon renders status symbols in the variant selected by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Question
	Video
	Image
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔᵕᵔ)◜",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "...",
		kaomoji: "(•_•)",
		squares: "🟦",
	},
	Mark: {
		emoji:   "➡️",
		nerd:    "\uf061",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟧",
	},
	Question: {
		emoji:   "🤨",
		nerd:    "\uf128",
		plain:   "?",
		kaomoji: "(°ロ°)?",
		squares: "🟨",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "\uf03d",
		plain:   "▶",
		kaomoji: "(⌐■_■)",
		squares: "🟪",
	},
	Image: {
		emoji:   "🖼️",
		nerd:    "\uf03e",
		plain:   "#",
		kaomoji: "(◕‿◕)",
		squares: "🟫",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "\uf0c1",
		plain:   "@",
		kaomoji: "(っ˘ω˘ς)",
		squares: "⬜",
	},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant, or returns "" for an unknown variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
