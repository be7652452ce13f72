package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/open"
	"github.com/tubex-cli/tubex/util"
	"github.com/tubex-cli/tubex/where"
)

func init() {
	rootCmd.AddCommand(thumbnailCmd)

	thumbnailCmd.Flags().StringP("quality", "q", "", "Thumbnail quality: small, medium, high, default, standard or any")
	lo.Must0(thumbnailCmd.RegisterFlagCompletionFunc("quality", completionThumbnailQualities))

	thumbnailCmd.Flags().StringP("output", "o", "", "Destination file, defaults to the thumbnails directory")
	thumbnailCmd.Flags().BoolP("yes", "y", false, "Overwrite an existing file without asking")
	thumbnailCmd.Flags().Bool("open", false, "Open the downloaded file")
}

var thumbnailCmd = &cobra.Command{
	Use:               "thumbnail [url|id]",
	Aliases:           []string{"thumb"},
	Short:             "Download the thumbnail of a video",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		tier := tierFlag(cmd, "quality", key.ThumbnailQuality)

		erase := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), args[0]))
		s, err := extract(args[0])
		erase()
		handleErr(err)

		path := lo.Must(cmd.Flags().GetString("output"))
		if path == "" {
			name := s.VideoID()
			if title := s.Meta().Title; title != "" {
				name = title + " [" + s.VideoID() + "]"
			}
			path = filepath.Join(where.Thumbnails(), util.SanitizeFilename(name)+".jpg")
		}

		if !confirmOverwrite(path, lo.Must(cmd.Flags().GetBool("yes"))) {
			return
		}

		erase = util.PrintErasable(fmt.Sprintf("%s Downloading %s thumbnail...", icon.Get(icon.Progress), tier))
		done := <-s.DownloadThumbnail(path, tier)
		erase()
		handleErr(done.Err)

		printSuccess("saved %s", done.Path)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(done.Path, ""))
		}
	},
}

func confirmOverwrite(path string, yes bool) bool {
	exists, err := filesystem.API().Exists(path)
	handleErr(err)

	if !exists || yes || !viper.GetBool(key.ThumbnailOverwritePrompt) || !util.IsTerminal() {
		return true
	}

	var overwrite bool
	handleErr(survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(path)),
		Default: false,
	}, &overwrite))

	return overwrite
}
