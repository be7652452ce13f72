package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		Convey("Uses xdg-open on linux", func() {
			cmd, err := Command("linux", "https://v/1", "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "https://v/1"})
		})

		Convey("Uses the app on darwin", func() {
			cmd, err := Command("darwin", "https://v/1", "IINA")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "IINA", "https://v/1"})
		})

		Convey("Escapes ampersands for start", func() {
			cmd, err := Command("windows", "https://v/1?a=1&b=2", "vlc")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://v/1?a=1^&b=2")
		})

		Convey("Fails on unknown systems", func() {
			_, err := Command("plan9", "x", "")
			So(err, ShouldNotBeNil)
		})
	})
}
