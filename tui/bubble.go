package tui

import (
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/style"
	"github.com/tubex-cli/tubex/util"
)

type statefulBubble struct {
	state    state
	previous mo.Option[state]

	keymap *statefulKeymap

	spinnerC spinner.Model
	historyC list.Model
	tiersC   list.Model
	helpC    help.Model

	input     string
	session   *extractor.Session
	choice    *Choice
	lastError error

	width, height int

	options *Options
}

// finishedMsg carries the completion of an extraction started by the picker.
type finishedMsg struct {
	session *extractor.Session
	err     error
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState {
		b.previous = mo.Some(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if s, ok := b.previous.Get(); ok {
		b.previous = mo.None[state]()
		b.setState(s)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.historyC.SetSize(listWidth, listHeight)
	b.historyC.Help.Width = listWidth

	b.tiersC.SetSize(listWidth, listHeight)
	b.tiersC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

// extract runs the session in the background and reports back with a finishedMsg.
func (b *statefulBubble) extract(input string) tea.Cmd {
	b.input = input
	b.newState(loadingState)

	s := b.options.NewSession(input)
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		if err := s.Err(); err != nil {
			return finishedMsg{session: s, err: err}
		}

		done := <-s.Start()
		return finishedMsg{session: s, err: done.Err}
	})
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		keymap:  keymap,
		options: options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = keymap.forList()
		listC.AdditionalShortHelpKeys = keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.historyC = makeList("History", style.Yellow)
	bubble.historyC.SetStatusBarItemName("video", "videos")

	bubble.tiersC = makeList("Qualities", style.Peach)
	bubble.tiersC.SetStatusBarItemName("quality", "qualities")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	if options.Input == "" {
		bubble.setState(historyState)
	} else {
		bubble.setState(loadingState)
	}

	return bubble
}
