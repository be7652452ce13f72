package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/player"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/util"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("quality", "q", "", "Quality to play, a tier name or itag")
	lo.Must0(playCmd.RegisterFlagCompletionFunc("quality", completionQualities))

	playCmd.Flags().StringP("player", "p", "", "Player binary, defaults to "+key.Player)
	lo.Must0(viper.BindPFlag(key.Player, playCmd.Flags().Lookup("player")))
}

var playCmd = &cobra.Command{
	Use:               "play [url|id]",
	Short:             "Resolve a video and play it with an external player",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		p := player.New("")
		checkPlayer(p)

		tier := tierFlag(cmd, "quality", key.ExtractDefaultQuality)

		erase := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), args[0]))
		s, err := extract(args[0])
		erase()
		handleErr(err)

		handleErr(play(p, s, tier, s.VideoURL(tier)))
	},
}

func play(p *player.Player, s *extractor.Session, tier quality.Tier, link string) error {
	if link == "" {
		return fmt.Errorf("no stream for quality %s", tier)
	}

	rememberVideo(s, tier, link)

	title := s.Meta().Title
	if title == "" {
		title = s.VideoID()
	}

	if err := p.Play(link, title, viper.GetString(key.NetworkUserAgent)); err != nil {
		return err
	}

	fmt.Printf("%s Playing %s with %s\n", icon.Get(icon.Video), title, p.Binary())
	<-p.Wait()
	return p.Close()
}

func rememberVideo(s *extractor.Session, tier quality.Tier, link string) {
	if !viper.GetBool(key.HistorySaveOnExtract) {
		return
	}

	meta := s.Meta()
	_ = history.Save(history.Record{
		VideoID: s.VideoID(),
		Title:   meta.Title,
		Author:  meta.Author,
		Quality: tier.String(),
		URL:     link,
	})
}
