package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/open"
	"github.com/tubex-cli/tubex/util"
)

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringP("quality", "q", "", "Quality to open, a tier name or itag")
	lo.Must0(openCmd.RegisterFlagCompletionFunc("quality", completionQualities))

	openCmd.Flags().BoolP("thumbnail", "t", false, "Open the thumbnail instead of the video")
	openCmd.Flags().StringP("app", "a", "", "Application to open with instead of the system default")
}

var openCmd = &cobra.Command{
	Use:               "open [url|id]",
	Short:             "Open the resolved video or thumbnail URL in the default application",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		thumbnail := lo.Must(cmd.Flags().GetBool("thumbnail"))

		configKey := key.ExtractDefaultQuality
		if thumbnail {
			configKey = key.ThumbnailQuality
		}
		tier := tierFlag(cmd, "quality", configKey)

		erase := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), args[0]))
		s, err := extract(args[0])
		erase()
		handleErr(err)

		link := s.VideoURL(tier)
		if thumbnail {
			link = s.ThumbnailURL(tier)
		}

		if link == "" {
			handleErr(fmt.Errorf("nothing resolved for quality %s", tier))
		}

		if !thumbnail {
			rememberVideo(s, tier, link)
		}

		handleErr(open.Start(link, lo.Must(cmd.Flags().GetString("app"))))
		printSuccess("opened %s", tier)
	},
}
