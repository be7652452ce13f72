package cache

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

type entry struct {
	Body []byte
}

func TestStore(t *testing.T) {
	Convey("Given a store", t, func() {
		store := New("/cache/test", time.Hour)
		k := Key("https://example.com/a", "extract")

		Convey("Keys are stable and distinct", func() {
			So(k, ShouldEqual, Key("https://example.com/a", "extract"))
			So(k, ShouldNotEqual, Key("https://example.com/a", "thumbnail"))
			So(k, ShouldHaveLength, 64)
		})

		Convey("A written entry can be read back", func() {
			So(store.Write(k, entry{Body: []byte("hello")}), ShouldBeNil)

			var got entry
			So(store.Read(k, &got), ShouldBeTrue)
			So(string(got.Body), ShouldEqual, "hello")
		})

		Convey("A missing entry is not read", func() {
			var got entry
			So(store.Read(Key("missing"), &got), ShouldBeFalse)
		})

		Convey("An expired entry is ignored and collected", func() {
			So(store.Write(k, entry{Body: []byte("old")}), ShouldBeNil)

			old := time.Now().Add(-2 * time.Hour)
			So(filesystem.API().Chtimes(store.path(k), old, old), ShouldBeNil)

			var got entry
			So(store.Read(k, &got), ShouldBeFalse)
			So(store.CollectGarbage(), ShouldEqual, 1)

			exists, err := filesystem.API().Exists(store.path(k))
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
