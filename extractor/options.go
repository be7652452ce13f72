package extractor

import (
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/locale"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/network"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/videoid"
)

// Option configures a Session.
type Option func(*Session)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f network.Fetcher) Option {
	return func(s *Session) {
		s.fetcher = f
	}
}

// WithResolver replaces the video id resolver used by SetRequestURL.
func WithResolver(r *videoid.Resolver) Option {
	return func(s *Session) {
		s.resolver = r
	}
}

// WithEndpoint sets the video info endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Session) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithLanguage sets the hl request parameter.
func WithLanguage(lang string) Option {
	return func(s *Session) {
		if lang != "" {
			s.language = lang
		}
	}
}

// WithElFields sets the candidate el request parameters. Only the first is sent.
func WithElFields(fields ...string) Option {
	return func(s *Session) {
		if len(fields) > 0 {
			s.elFields = fields
		}
	}
}

// WithSupportedMedia restricts the accepted MIME types.
func WithSupportedMedia(types ...string) Option {
	return func(s *Session) {
		s.SetSupportedMedia(types)
	}
}

// WithPreferredQualities sets the preferred concrete tiers, best first.
func WithPreferredQualities(tiers ...quality.Tier) Option {
	return func(s *Session) {
		s.SetPreferredQualities(tiers)
	}
}

// FromConfig returns the options described by the extract.*, provider.* and network.* settings.
func FromConfig() []Option {
	endpoint := viper.GetString(key.ProviderEndpoint)
	if endpoint == "" {
		endpoint = constant.InfoEndpoint
	}

	return []Option{
		WithFetcher(network.Default()),
		WithResolver(videoid.Default()),
		WithEndpoint(endpoint),
		WithLanguage(locale.Language()),
		WithElFields(viper.GetStringSlice(key.ExtractElFields)...),
		WithSupportedMedia(viper.GetStringSlice(key.ExtractSupportedMedia)...),
		WithPreferredQualities(preferredFromConfig()...),
	}
}

// preferredFromConfig parses extract.preferred_qualities, skipping unknown names.
func preferredFromConfig() []quality.Tier {
	var tiers []quality.Tier
	for _, name := range viper.GetStringSlice(key.ExtractPreferredQualities) {
		t, err := quality.Parse(name)
		if err != nil {
			log.Warnf("%s: skipping %s", key.ExtractPreferredQualities, err)
			continue
		}
		tiers = append(tiers, t)
	}

	return tiers
}
