package cmd

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/style"
	"github.com/tubex-cli/tubex/util"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Bool("qualities", false, "List every known quality name and exit")
	infoCmd.Flags().BoolP("candidates", "C", false, "Also list descriptors with unknown formats")
}

var infoCmd = &cobra.Command{
	Use:               "info [url|id]",
	Short:             "Show every resolved quality, thumbnail and metadata of a video",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("qualities")) {
			printQualities(cmd)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), args[0]))
		s, err := extract(args[0])
		erase()
		handleErr(err)

		printInfo(cmd, s, lo.Must(cmd.Flags().GetBool("candidates")))
	},
}

func printQualities(cmd *cobra.Command) {
	for _, name := range quality.Names() {
		tier, _ := quality.Parse(name)
		if itag, ok := tier.Itag(); ok {
			cmd.Printf("%-10s %s\n", style.Tier(tier), style.Faint(fmt.Sprintf("itag %d", itag)))
		} else {
			cmd.Printf("%-10s %s\n", name, style.Faint("meta"))
		}
	}
}

func printInfo(cmd *cobra.Command, s *extractor.Session, withCandidates bool) {
	var (
		header = style.New().Bold(true).Foreground(color.HiRed).Render
		faint  = style.Faint
		meta   = s.Meta()
	)

	title := meta.Title
	if title == "" {
		title = s.VideoID()
	}

	cmd.Println(style.Title(title))
	if meta.Author != "" {
		cmd.Println(faint("by " + meta.Author))
	}
	if meta.LengthSeconds > 0 {
		cmd.Printf("%s %s\n", faint("length"), util.Duration(meta.LengthSeconds))
	}
	if meta.ViewCount > 0 {
		cmd.Printf("%s %s\n", faint("views"), util.Count(meta.ViewCount))
	}
	cmd.Println()

	streams := s.Streams()
	preferred, hasPreferred := s.PreferredTier().Get()

	cmd.Printf("%s %s\n", icon.Get(icon.Video), header(util.Quantify(len(streams), "quality", "qualities")))
	for _, tier := range quality.VideoFallback {
		link, ok := streams[tier]
		if !ok {
			continue
		}

		mark := " "
		if hasPreferred && tier == preferred {
			mark = style.Fg(color.Green)(icon.Get(icon.Mark))
		}
		cmd.Printf("%s %-10s %s\n", mark, style.Tier(tier), link)
	}
	cmd.Println()

	thumbnails := s.Thumbnails()
	cmd.Printf("%s %s\n", icon.Get(icon.Image), header(util.Quantify(len(thumbnails), "thumbnail", "thumbnails")))
	for _, tier := range quality.ThumbnailTiers {
		if link, ok := thumbnails[tier]; ok {
			cmd.Printf("  %-10s %s\n", tier, link)
		}
	}

	if !withCandidates {
		return
	}

	candidates := slices.Clone(s.Candidates())
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Itag < candidates[j].Itag
	})

	cmd.Println()
	cmd.Printf("%s %s\n", icon.Get(icon.Link), header(util.Quantify(len(candidates), "candidate", "candidates")))
	for _, d := range candidates {
		cmd.Printf("  %-4d %-24s %s\n", d.Itag, d.MimeType, faint(d.Quality))
	}
}
