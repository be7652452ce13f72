package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/videoid"
)

// newSession builds a configured session for a URL, a bare id, or a title remembered in the history.
func newSession(input string) *extractor.Session {
	opts := extractor.FromConfig()

	if strings.Contains(input, "/") {
		return extractor.NewFromURL(input, opts...)
	}

	if !videoid.IsID(input) {
		if id, ok := history.Suggest(input).Get(); ok {
			input = id
		}
	}

	return extractor.NewFromID(input, opts...)
}

// extract runs a session to completion.
func extract(input string) (*extractor.Session, error) {
	s := newSession(input)
	if err := s.Err(); err != nil {
		return nil, err
	}

	if done := <-s.Start(); done.Err != nil {
		return nil, done.Err
	}

	return s, nil
}

func completionHistory(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	records := history.SuggestMany(toComplete)
	return lo.Map(records, func(r *history.Record, _ int) string {
		return r.VideoID + "\t" + r.Label()
	}), cobra.ShellCompDirectiveNoFileComp
}

func completionQualities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return quality.Names(), cobra.ShellCompDirectiveNoFileComp
}

func completionThumbnailQualities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := lo.Map(quality.ThumbnailTiers, func(t quality.Tier, _ int) string {
		return t.String()
	})
	return append(names, quality.Any.String()), cobra.ShellCompDirectiveNoFileComp
}

func tierFlag(cmd *cobra.Command, name, configKey string) quality.Tier {
	raw := lo.Must(cmd.Flags().GetString(name))
	if raw == "" {
		raw = viper.GetString(configKey)
	}

	tier, err := quality.Parse(raw)
	handleErr(err)
	return tier
}
