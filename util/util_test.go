package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("Never Gonna: Give?.jpg"), ShouldEqual, "Never_Gonna_Give_.jpg")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("a__b.jpg"), ShouldEqual, "a_b.jpg")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-dQw4w9WgXcQ-"), ShouldEqual, "dQw4w9WgXcQ")
		})
	})
}

func TestFormatting(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "tier", "tiers"), ShouldEqual, "1 tier")
		So(Quantify(3, "tier", "tiers"), ShouldEqual, "3 tiers")
	})

	Convey("Duration", t, func() {
		So(Duration(0), ShouldEqual, "0:00")
		So(Duration(212), ShouldEqual, "3:32")
		So(Duration(3725), ShouldEqual, "1:02:05")
	})

	Convey("Count", t, func() {
		So(Count(999), ShouldEqual, "999")
		So(Count(1500), ShouldEqual, "1.5K")
		So(Count(1_600_000_000), ShouldEqual, "1.6B")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("thumbs/dQw4w9WgXcQ.jpg"), ShouldEqual, "dQw4w9WgXcQ")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/cache/thumbs", 0o755))
		lo.Must0(fs.WriteFile("/cache/thumbs/a.jpg", []byte("x"), 0o644))

		Convey("Removes a single file", func() {
			So(Delete("/cache/thumbs/a.jpg"), ShouldBeNil)
			So(lo.Must(fs.Exists("/cache/thumbs/a.jpg")), ShouldBeFalse)
		})

		Convey("Removes a directory tree", func() {
			So(Delete("/cache"), ShouldBeNil)
			So(lo.Must(fs.Exists("/cache")), ShouldBeFalse)
		})

		Convey("Fails for missing paths", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}
