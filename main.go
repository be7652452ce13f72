// Package main is the tubex entry point.
package main

import (
	"github.com/samber/lo"
	"github.com/tubex-cli/tubex/cmd"
	"github.com/tubex-cli/tubex/config"
	"github.com/tubex-cli/tubex/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
