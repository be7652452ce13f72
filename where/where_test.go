package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubex-cli/tubex/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Directories are created", func() {
			for _, path := range []string{Config(), Cache(), Logs(), Thumbnails(), Temp()} {
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}
		})

		Convey("Files live in their directories", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
			So(filepath.Dir(Version()), ShouldEqual, Cache())
		})

		Convey("The config path can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "tubex-custom")
			lo.Must0(os.Setenv(EnvConfigPath, custom))
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(filepath.Dir(Logs()), ShouldEqual, custom)
		})
	})
}
