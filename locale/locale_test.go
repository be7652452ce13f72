package locale

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Handles POSIX locales", func() {
			code, ok := Parse("de_DE.UTF-8")
			So(ok, ShouldBeTrue)
			So(code, ShouldEqual, "de")
		})

		Convey("Handles BCP 47 tags", func() {
			code, ok := Parse("pt-BR")
			So(ok, ShouldBeTrue)
			So(code, ShouldEqual, "pt")
		})

		Convey("Rejects the C locale and garbage", func() {
			for _, raw := range []string{"", "C", "POSIX", "C.UTF-8", "not a locale"} {
				_, ok := Parse(raw)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestLanguage(t *testing.T) {
	Convey("Language", t, func() {
		defer viper.Reset()

		Convey("Prefers the configured language", func() {
			viper.Set(key.ExtractLanguage, "fr")
			So(Language(), ShouldEqual, "fr")
		})

		Convey("Reads the environment", func() {
			t.Setenv("LC_ALL", "")
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", "ja_JP.UTF-8")
			So(Language(), ShouldEqual, "ja")
		})

		Convey("Falls back to English", func() {
			t.Setenv("LC_ALL", "C")
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", "")
			So(Language(), ShouldEqual, "en")
		})
	})
}
