package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/style"
	"github.com/tubex-cli/tubex/util"
)

// Notify prints a banner when a newer release exists. Lookup failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(ReleaseURL(version)),
	)
}
