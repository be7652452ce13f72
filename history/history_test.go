package history

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(Clear(), ShouldBeNil)

		clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		now = func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}

		Convey("When saving a video", func() {
			So(Save(Record{VideoID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", Quality: "mp4_720"}), ShouldBeNil)

			Convey("Then it is stored under its id", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 1)
				So(saved["dQw4w9WgXcQ"].Rank, ShouldEqual, 1)
			})

			Convey("Then saving it again bumps the rank and keeps known fields", func() {
				So(Save(Record{VideoID: "dQw4w9WgXcQ", Quality: "medium"}), ShouldBeNil)

				saved, _ := Get()
				record := saved["dQw4w9WgXcQ"]
				So(record.Rank, ShouldEqual, 2)
				So(record.Title, ShouldEqual, "Never Gonna Give You Up")
				So(record.Quality, ShouldEqual, "medium")
			})

			Convey("Then it can be removed", func() {
				So(Remove("dQw4w9WgXcQ"), ShouldBeNil)
				saved, _ := Get()
				So(saved, ShouldBeEmpty)
			})
		})

		Convey("When several videos are saved", func() {
			So(Save(Record{VideoID: "aaaaaaaaaaa", Title: "Cat compilation"}), ShouldBeNil)
			So(Save(Record{VideoID: "bbbbbbbbbbb", Title: "Catchy song"}), ShouldBeNil)
			So(Save(Record{VideoID: "bbbbbbbbbbb"}), ShouldBeNil)
			So(Save(Record{VideoID: "ccccccccccc", Title: "Dog video"}), ShouldBeNil)

			Convey("Suggestions are ranked", func() {
				matches := SuggestMany("cat")
				So(matches, ShouldHaveLength, 2)
				So(matches[0].VideoID, ShouldEqual, "bbbbbbbbbbb")
				So(Suggest("CAT").MustGet(), ShouldEqual, "bbbbbbbbbbb")
			})

			Convey("Nothing is suggested for unknown input", func() {
				So(Suggest("zebra").IsAbsent(), ShouldBeTrue)
			})

			Convey("Sorted lists the latest first", func() {
				records, err := Sorted()
				So(err, ShouldBeNil)
				So(records[0].VideoID, ShouldEqual, "ccccccccccc")
				So(records[0].String(), ShouldEqual, "Dog video [ccccccccccc]")
			})
		})
	})
}
