package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
)

func TestArgs(t *testing.T) {
	Convey("Given mpv", t, func() {
		p := New("mpv")

		Convey("Title and user agent become flags", func() {
			args, err := p.Args("https://v/22?signature=S", "Rick\nAstley", "UA")
			So(err, ShouldBeNil)
			So(args, ShouldResemble, []string{
				"--no-terminal",
				"--force-window=yes",
				"--force-media-title=Rick Astley",
				"--user-agent=UA",
				"https://v/22?signature=S",
			})
		})

		Convey("Flag-like targets are rejected", func() {
			_, err := p.Args("--script=evil.lua", "", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Other schemes are rejected", func() {
			_, err := p.Args("file:///etc/passwd", "", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty targets are rejected", func() {
			_, err := p.Args("  ", "", "")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an unknown player", t, func() {
		p := New("/usr/bin/someplayer")

		Convey("Only the target is passed", func() {
			args, err := p.Args("https://v/1", "title", "UA")
			So(err, ShouldBeNil)
			So(args, ShouldResemble, []string{"https://v/1"})
		})
	})

	Convey("Given no binary", t, func() {
		defer viper.Reset()

		Convey("The configured player is used", func() {
			viper.Set(key.Player, "vlc")
			So(New("").Binary(), ShouldEqual, "vlc")
		})

		Convey("mpv is the fallback", func() {
			So(New("").Binary(), ShouldEqual, "mpv")
		})
	})

	Convey("Close without Play is a no-op", t, func() {
		So(New("mpv").Close(), ShouldBeNil)
	})
}
