package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/quality"
)

func (b *statefulBubble) loadHistory() tea.Cmd {
	records, err := history.Sorted()
	if err != nil {
		b.raiseError(err)
		return nil
	}

	items := lo.Map(records, func(r *history.Record, _ int) list.Item {
		return &listItem{internal: r}
	})

	return b.historyC.SetItems(items)
}

func (b *statefulBubble) removeSelectedRecord() tea.Cmd {
	item, ok := b.historyC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	record := item.internal.(*history.Record)
	if err := history.Remove(record.VideoID); err != nil {
		b.raiseError(err)
		return nil
	}

	b.historyC.RemoveItem(b.historyC.Index())
	return b.historyC.NewStatusMessage("Removed " + record.Label())
}

// tierEntries lists resolved tiers with the session's preferred tier first, then by itag.
func tierEntries(s *extractor.Session) []*tierEntry {
	streams := s.Streams()
	tiers := lo.Keys(streams)
	slices.SortFunc(tiers, func(a, b quality.Tier) int {
		ia, _ := a.Itag()
		ib, _ := b.Itag()
		return ia - ib
	})

	if preferred, ok := s.PreferredTier().Get(); ok {
		tiers = append([]quality.Tier{preferred}, lo.Without(tiers, preferred)...)
	}

	return lo.Map(tiers, func(t quality.Tier, _ int) *tierEntry {
		return &tierEntry{tier: t, url: streams[t]}
	})
}

func (b *statefulBubble) onFinished(msg finishedMsg) tea.Cmd {
	if msg.err != nil {
		b.raiseError(msg.err)
		return nil
	}

	b.session = msg.session
	entries := tierEntries(msg.session)

	title := msg.session.Meta().Title
	if title == "" {
		title = msg.session.VideoID()
	}
	b.tiersC.Title = title

	b.newState(tiersState)
	return b.tiersC.SetItems(lo.Map(entries, func(e *tierEntry, _ int) list.Item {
		return &listItem{internal: e}
	}))
}

func (b *statefulBubble) choose(action Action) tea.Cmd {
	item, ok := b.tiersC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	entry := item.internal.(*tierEntry)
	b.choice = &Choice{
		Session: b.session,
		Tier:    entry.tier,
		URL:     entry.url,
		Action:  action,
	}

	return tea.Quit
}
