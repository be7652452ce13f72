package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.Flags().StringP("search", "s", "", "Only show videos matching the query")
	lo.Must0(historyCmd.RegisterFlagCompletionFunc("search", completionHistory))

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List resolved videos, most frequent first",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			records []*history.Record
			err     error
		)

		if q := lo.Must(cmd.Flags().GetString("search")); q != "" {
			records = history.SuggestMany(q)
		} else {
			records, err = history.Sorted()
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			handleErr(enc.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for _, r := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(r.VideoID),
				style.Bold(r.Label()),
				style.Faint(fmt.Sprintf("%s ×%d", r.Quality, r.Rank)),
			)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:               "remove [id]...",
	Aliases:           []string{"rm"},
	Short:             "Forget videos",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range args {
			handleErr(history.Remove(id))
			printSuccess("removed %s", style.Fg(color.Purple)(id))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every video",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		printSuccess("history cleared")
	},
}
