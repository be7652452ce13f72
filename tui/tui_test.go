package tui

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	c "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/network"
	"github.com/tubex-cli/tubex/quality"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeFetcher struct{}

func (fakeFetcher) Fetch(u string, tag network.Tag) <-chan network.Response {
	out := make(chan network.Response, 1)
	res := network.Response{Tag: tag, URL: u, Status: 200}

	if strings.Contains(u, "video_id=dQw4w9WgXcQ") {
		streams := strings.Join([]string{
			"itag=22&type=video%2Fmp4&url=" + url.QueryEscape("http://v/22") + "&sig=S22",
			"itag=43&type=video%2Fwebm&url=" + url.QueryEscape("http://v/43") + "&sig=S43",
		}, ",")
		res.Body = []byte("title=Rick&url_encoded_fmt_stream_map=" + url.QueryEscape(streams))
	} else {
		res.Err = errors.New("unexpected status: 404 Not Found")
	}

	out <- res
	close(out)
	return out
}

func newSession(input string) *extractor.Session {
	return extractor.NewFromID(input,
		extractor.WithFetcher(fakeFetcher{}),
		extractor.WithPreferredQualities(quality.WEBM_360),
	)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func finished(input string) finishedMsg {
	s := newSession(input)
	done := <-s.Start()
	return finishedMsg{session: s, err: done.Err}
}

func TestTiers(t *testing.T) {
	c.Convey("Given a picker started with an input", t, func() {
		b := newBubble(&Options{Input: "dQw4w9WgXcQ", NewSession: newSession})
		c.So(b.state, c.ShouldEqual, loadingState)

		c.Convey("When the extraction finishes", func() {
			b.Update(finished("dQw4w9WgXcQ"))

			c.Convey("The resolved tiers are listed with the preferred one first", func() {
				c.So(b.state, c.ShouldEqual, tiersState)
				c.So(b.tiersC.Title, c.ShouldEqual, "Rick")

				items := b.tiersC.Items()
				c.So(items, c.ShouldHaveLength, 2)
				c.So(items[0].(*listItem).internal.(*tierEntry).tier, c.ShouldEqual, quality.WEBM_360)
				c.So(items[1].(*listItem).internal.(*tierEntry).tier, c.ShouldEqual, quality.MP4_720)
			})

			c.Convey("Enter chooses the selected tier for printing", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

				c.So(cmd, c.ShouldNotBeNil)
				c.So(b.choice, c.ShouldNotBeNil)
				c.So(b.choice.Action, c.ShouldEqual, Print)
				c.So(b.choice.Tier, c.ShouldEqual, quality.WEBM_360)
				c.So(b.choice.URL, c.ShouldEqual, "http://v/43?signature=S43")
			})

			c.Convey("p chooses the tier for playback", func() {
				b.Update(runes("p"))

				c.So(b.choice, c.ShouldNotBeNil)
				c.So(b.choice.Action, c.ShouldEqual, Play)
			})

			c.Convey("o chooses the tier for the browser", func() {
				b.Update(runes("o"))

				c.So(b.choice, c.ShouldNotBeNil)
				c.So(b.choice.Action, c.ShouldEqual, Open)
			})
		})

		c.Convey("When the extraction fails", func() {
			b.Update(finished("aaaaaaaaaaa"))

			c.Convey("The error is shown and esc quits", func() {
				c.So(b.state, c.ShouldEqual, errorState)
				c.So(b.lastError, c.ShouldNotBeNil)
				c.So(b.View(), c.ShouldContainSubstring, "404")

				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				c.So(cmd, c.ShouldNotBeNil)
				c.So(b.choice, c.ShouldBeNil)
			})
		})
	})
}

func TestHistory(t *testing.T) {
	c.Convey("Given a picker without input and a saved video", t, func() {
		c.So(history.Clear(), c.ShouldBeNil)
		c.So(history.Save(history.Record{VideoID: "dQw4w9WgXcQ", Title: "Rick"}), c.ShouldBeNil)

		b := newBubble(&Options{NewSession: newSession})
		b.Init()

		c.Convey("The history is listed", func() {
			c.So(b.state, c.ShouldEqual, historyState)
			c.So(b.historyC.Items(), c.ShouldHaveLength, 1)
		})

		c.Convey("d removes the record", func() {
			b.Update(runes("d"))

			c.So(b.historyC.Items(), c.ShouldHaveLength, 0)
			saved, err := history.Get()
			c.So(err, c.ShouldBeNil)
			c.So(saved, c.ShouldBeEmpty)
		})

		c.Convey("Enter starts the extraction and esc returns from the tiers", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			c.So(cmd, c.ShouldNotBeNil)
			c.So(b.state, c.ShouldEqual, loadingState)

			b.Update(finished("dQw4w9WgXcQ"))
			c.So(b.state, c.ShouldEqual, tiersState)

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			c.So(b.state, c.ShouldEqual, historyState)
		})
	})
}
