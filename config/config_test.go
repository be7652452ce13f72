package config

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		defer viper.Reset()

		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetStringSlice(key.ExtractElFields), ShouldResemble, []string{"embedded", "detailpage", "vevo", ""})
		})

		Convey("Should read tubex.toml", func() {
			path := filepath.Join(where.Config(), "tubex.toml")
			So(filesystem.API().WriteFile(path, []byte("[thumbnail]\nquality = \"high\"\n"), 0o644), ShouldBeNil)
			defer filesystem.API().Remove(path)

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ThumbnailQuality), ShouldEqual, "high")
		})

		Convey("Should validate the defaults", func() {
			_ = Setup()
			So(Validate(), ShouldBeNil)
		})

		Convey("Should reject unknown qualities", func() {
			_ = Setup()
			viper.Set(key.ExtractPreferredQualities, []string{"mp4_720", "8k"})
			So(Validate(), ShouldNotBeNil)
		})

		Convey("Should reject bad timeouts", func() {
			_ = Setup()
			viper.Set(key.NetworkTimeout, "soon")
			So(Validate(), ShouldNotBeNil)
		})
	})

	Convey("Field", t, func() {
		f := Default[key.NetworkTimeout]

		Convey("Env is prefixed", func() {
			So(f.Env(), ShouldEqual, "TUBEX_NETWORK_TIMEOUT")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("extract.el_fields"), ShouldEqual, "extract_el_fields")
		})
	})
}
