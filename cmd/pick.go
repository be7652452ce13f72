package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tubex-cli/tubex/open"
	"github.com/tubex-cli/tubex/player"
	"github.com/tubex-cli/tubex/tui"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:               "pick [url|id]",
	Short:             "Choose a quality interactively",
	Long:              "Choose a quality interactively. Without an argument the history is listed first.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		var input string
		if len(args) > 0 {
			input = args[0]
		}

		choice, err := tui.Run(&tui.Options{Input: input, NewSession: newSession})
		if errors.Is(err, tui.ErrCancelled) {
			return
		}
		handleErr(err)

		switch choice.Action {
		case tui.Play:
			p := player.New("")
			checkPlayer(p)
			handleErr(play(p, choice.Session, choice.Tier, choice.URL))
		case tui.Open:
			rememberVideo(choice.Session, choice.Tier, choice.URL)
			handleErr(open.Start(choice.URL, ""))
		default:
			rememberVideo(choice.Session, choice.Tier, choice.URL)
			fmt.Println(choice.URL)
		}
	},
}
