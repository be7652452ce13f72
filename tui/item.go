package tui

import (
	"fmt"
	"strings"

	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/style"
)

type tierEntry struct {
	tier quality.Tier
	url  string
}

type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *tierEntry:
		itag, _ := e.tier.Itag()
		return fmt.Sprintf("%s %s", style.Tier(e.tier), style.Faint(fmt.Sprintf("itag %d", itag)))
	case *history.Record:
		return e.Label()
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *tierEntry:
		return e.url
	case *history.Record:
		var parts []string
		if e.Author != "" {
			parts = append(parts, e.Author)
		}
		parts = append(parts, e.VideoID, e.ResolvedAt.Format("2006-01-02 15:04"))
		return strings.Join(parts, " • ")
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *tierEntry:
		return e.tier.String()
	case *history.Record:
		return e.Label() + " " + e.VideoID
	default:
		return ""
	}
}
