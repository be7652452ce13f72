package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/style"
	"github.com/tubex-cli/tubex/where"
)

type location struct {
	flag   string
	short  string
	label  string
	path   func() string
	hidden bool
}

var locations = []location{
	{"config", "c", "Config", where.Config, false},
	{"thumbnails", "t", "Thumbnails", where.Thumbnails, false},
	{"logs", "l", "Logs", where.Logs, false},
	{"history", "", "History", where.History, false},
	{"cache", "", "Cache", where.Cache, true},
	{"temp", "", "Temp", where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, "Print only the "+l.label+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.Flags().BoolP("json", "j", false, "Print every path as JSON")
	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	}), "json")...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where tubex keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		if picked, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(picked.path())
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.path()
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		label := style.New().Bold(true).Foreground(color.HiRed).Render
		visible := lo.Reject(locations, func(l location, _ int) bool {
			return l.hidden
		})

		for i, l := range visible {
			cmd.Printf("%s %s\n%s\n", label(l.label), style.Fg(color.Yellow)("--"+l.flag), l.path())
			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
