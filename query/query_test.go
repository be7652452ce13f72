package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Given an empty payload", t, func() {
		values := Decode("")

		Convey("It decodes to an empty map", func() {
			So(values, ShouldBeEmpty)
		})
	})

	Convey("Given a well formed payload", t, func() {
		values := Decode("status=ok&title=Hello%20World&itag=22")

		Convey("Every field is decoded", func() {
			So(values, ShouldHaveLength, 3)
			So(values.Get("status"), ShouldEqual, "ok")
			So(values.Get("title"), ShouldEqual, "Hello World")
			So(values.Get("itag"), ShouldEqual, "22")
		})
	})

	Convey("Given malformed fields", t, func() {
		values := Decode("a=1&broken&b=2=3&c=")

		Convey("Fields without exactly one '=' are dropped", func() {
			So(values.Has("broken"), ShouldBeFalse)
			So(values.Has("b"), ShouldBeFalse)
		})

		Convey("Empty values are kept", func() {
			So(values.Has("c"), ShouldBeTrue)
			So(values.Get("c"), ShouldEqual, "")
			So(values.Get("a"), ShouldEqual, "1")
		})
	})

	Convey("Given duplicate keys", t, func() {
		values := Decode("k=first&k=second")

		Convey("The last one wins", func() {
			So(values.Get("k"), ShouldEqual, "second")
		})
	})

	Convey("Given plus signs", t, func() {
		values := Decode("reason=Video+unavailable")

		Convey("They are kept literally", func() {
			So(values.Get("reason"), ShouldEqual, "Video+unavailable")
			So(Unplus(values.Get("reason")), ShouldEqual, "Video unavailable")
		})
	})

	Convey("Given a nested encoded map", t, func() {
		inner := "itag%3D22%26url%3Dhttps%253A%252F%252Fexample.com%252Fv"
		outer := Decode("url_encoded_fmt_stream_map=" + inner)
		values := Decode(outer.Get("url_encoded_fmt_stream_map"))

		Convey("Each layer decodes once", func() {
			So(values.Get("itag"), ShouldEqual, "22")
			So(values.Get("url"), ShouldEqual, "https%3A%2F%2Fexample.com%2Fv")
			So(Decode("u="+values.Get("url")).Get("u"), ShouldEqual, "https://example.com/v")
		})
	})

	Convey("Given an escaped key", t, func() {
		values := Decode("a%5Fb=1%2B1")

		Convey("Only the value is decoded", func() {
			So(values.Has("a%5Fb"), ShouldBeTrue)
			So(values.Has("a_b"), ShouldBeFalse)
			So(values.Get("a%5Fb"), ShouldEqual, "1+1")
		})
	})

	Convey("Given malformed escapes", t, func() {
		values := Decode("a=100%25%zz&b=%4")

		Convey("They are decoded leniently", func() {
			So(values.Get("a"), ShouldEqual, "100%%zz")
			So(values.Get("b"), ShouldEqual, "%4")
		})
	})
}
