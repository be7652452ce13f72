package videoid

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/fault"
)

func TestResolve(t *testing.T) {
	Convey("Given the default resolver", t, func() {
		r := New("youtube.com", "youtu.be")

		Convey("It resolves common page URLs", func() {
			for _, url := range []string{
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				"http://youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
				"https://www.youtube.com/embed/dQw4w9WgXcQ",
				"https://www.youtube.com/v/dQw4w9WgXcQ",
				"https://youtu.be/dQw4w9WgXcQ",
				"www.youtube.com/watch?v=dQw4w9WgXcQ",
			} {
				id, err := r.Resolve(url)
				So(err, ShouldBeNil)
				So(id, ShouldEqual, "dQw4w9WgXcQ")
			}
		})

		Convey("An empty URL is a URL error", func() {
			_, err := r.Resolve("")
			So(fault.KindOf(err), ShouldEqual, fault.URL)
		})

		Convey("A URL of another host is a regex error", func() {
			_, err := r.Resolve("https://example.com/watch?v=dQw4w9WgXcQ")
			So(fault.KindOf(err), ShouldEqual, fault.Regex)
		})

		Convey("A too short id does not match", func() {
			_, err := r.Resolve("https://youtu.be/abc")
			So(fault.KindOf(err), ShouldEqual, fault.Regex)
		})
	})

	Convey("Given hosts with regex metacharacters", t, func() {
		r := New("video.example", "v.ex")

		Convey("Dots are matched literally", func() {
			_, err := r.Resolve("https://videoXexample/watch?v=dQw4w9WgXcQ")
			So(fault.KindOf(err), ShouldEqual, fault.Regex)

			id, err := r.Resolve("https://v.ex/abcdef")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "abcdef")
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		r := New("youtube.com", "youtu.be")

		Convey("Accepts a bare id", func() {
			id, err := r.Normalize("  dQw4w9WgXcQ ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
			So(IsID("dQw4w9WgXcQ"), ShouldBeTrue)
			So(IsID("dQw4w9WgXcQ-toolong"), ShouldBeFalse)
		})

		Convey("Falls back to URL resolution", func() {
			id, err := r.Normalize("https://youtu.be/dQw4w9WgXcQ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "dQw4w9WgXcQ")
		})
	})
}
