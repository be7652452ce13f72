package fault

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFault(t *testing.T) {
	Convey("Given a parse error", t, func() {
		err := New(Parse, "Video unavailable")

		Convey("It keeps the message verbatim", func() {
			So(err.Error(), ShouldEqual, "Video unavailable")
		})

		Convey("It matches its own sentinel only", func() {
			So(errors.Is(err, ErrParse), ShouldBeTrue)
			So(errors.Is(err, ErrNetwork), ShouldBeFalse)
		})

		Convey("It is still matched after wrapping", func() {
			wrapped := fmt.Errorf("extract: %w", err)
			So(errors.Is(wrapped, ErrParse), ShouldBeTrue)
			So(KindOf(wrapped), ShouldEqual, Parse)
		})
	})

	Convey("Wrap", t, func() {
		Convey("Returns nil for nil", func() {
			So(Wrap(Network, nil), ShouldBeNil)
		})

		Convey("Keeps the cause", func() {
			cause := errors.New("connection refused")
			err := Wrap(Network, cause)
			So(err.Error(), ShouldEqual, "connection refused")
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Kind.String(), ShouldEqual, "network error")
		})
	})

	Convey("KindOf a foreign error is zero", t, func() {
		So(KindOf(errors.New("x")), ShouldEqual, Kind(0))
		So(Kind(0).String(), ShouldEqual, "unknown error")
	})
}
