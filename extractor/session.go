// Package extractor runs the fetch, parse and resolve cycle for one video.
//
// A Session is configured, started, and then read once its completion value
// has been received:
//
//	s := extractor.NewFromURL(url, extractor.FromConfig()...)
//	if done := <-s.Start(); done.Err != nil {
//		return done.Err
//	}
//	fmt.Println(s.VideoURL(quality.Any))
//
// A session runs one operation at a time and has no internal locking.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/fault"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/network"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/stream"
	"github.com/tubex-cli/tubex/videoid"
)

// DefaultElFields are the el request parameter candidates.
var DefaultElFields = []string{"embedded", "detailpage", "vevo", ""}

// Finished is delivered once per Start.
type Finished struct {
	Err error
}

// ThumbnailReady is delivered once per DownloadThumbnail.
type ThumbnailReady struct {
	Path string
	Tier quality.Tier
	Err  error
}

// Session holds the configuration and results of an extraction.
type Session struct {
	fetcher  network.Fetcher
	resolver *videoid.Resolver
	endpoint string
	language string
	elFields []string

	media     stream.MediaSet
	preferred []quality.Tier

	videoID    string
	requestURL string

	streams    stream.Resolved
	thumbnails stream.Thumbnails
	candidates []*stream.Descriptor
	meta       stream.Meta
	err        error
}

// New creates a session without a video id.
func New(opts ...Option) *Session {
	s := &Session{
		resolver:   videoid.New(constant.ProviderHost, constant.ProviderShortHost),
		endpoint:   constant.InfoEndpoint,
		language:   "en",
		elFields:   DefaultElFields,
		media:      stream.NewMediaSet(),
		streams:    make(stream.Resolved),
		thumbnails: make(stream.Thumbnails),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = network.NewHTTPFetcher(nil, "")
	}

	return s
}

// NewFromID creates a session for a known video id.
func NewFromID(id string, opts ...Option) *Session {
	s := New(opts...)
	s.SetVideoID(id)
	return s
}

// NewFromURL creates a session for a page URL. A resolution failure is kept in Err.
func NewFromURL(pageURL string, opts ...Option) *Session {
	s := New(opts...)
	_ = s.SetRequestURL(pageURL)
	return s
}

// SetVideoID sets the id. Blank input is ignored.
func (s *Session) SetVideoID(id string) {
	if id = strings.TrimSpace(id); id == "" {
		return
	}
	s.videoID = id
}

// SetRequestURL derives the video id from a page URL.
// On failure the error is recorded and the current id is kept.
func (s *Session) SetRequestURL(pageURL string) error {
	s.requestURL = pageURL

	id, err := s.resolver.Resolve(pageURL)
	if err != nil {
		log.Warnf("resolve %q: %s", pageURL, err)
		s.err = err
		return err
	}

	s.videoID = id
	return nil
}

// SetPreferredQualities keeps the concrete tiers of the list, in order.
func (s *Session) SetPreferredQualities(tiers []quality.Tier) {
	s.preferred = quality.Concrete(tiers)
}

// PreferredQualities returns the preferred tier order.
func (s *Session) PreferredQualities() []quality.Tier {
	return s.preferred
}

// SetSupportedMedia replaces the MIME set. An empty list is ignored.
func (s *Session) SetSupportedMedia(types []string) {
	s.media.Set(types)
}

// SupportedMedia returns the accepted MIME types.
func (s *Session) SupportedMedia() []string {
	return s.media.Slice()
}

// IsSupportedMedia reports whether mime is in the supported set.
func (s *Session) IsSupportedMedia(mime string) bool {
	return s.media.Has(mime)
}

func (s *Session) VideoID() string {
	return s.videoID
}

func (s *Session) RequestURL() string {
	return s.requestURL
}

// Err is the error of the last operation, or nil.
func (s *Session) Err() error {
	return s.err
}

// InfoURL is the request Start would issue.
func (s *Session) InfoURL() string {
	var el string
	if first, ok := lo.First(s.elFields); ok && first != "" {
		el = "&el=" + url.QueryEscape(first)
	}

	return s.endpoint + fmt.Sprintf(constant.InfoQueryTemplate, url.QueryEscape(s.videoID), el, s.language)
}

// Start fetches and parses the video info. A blank id fails without a request.
func (s *Session) Start() <-chan Finished {
	out := make(chan Finished, 1)

	if strings.TrimSpace(s.videoID) == "" {
		s.err = fault.New(fault.ID, "video id is empty")
		out <- Finished{Err: s.err}
		close(out)
		return out
	}

	s.err = nil
	responses := s.fetcher.Fetch(s.InfoURL(), network.TagExtract)
	log.WithField("video", s.videoID).Info("extraction started")

	go func() {
		defer close(out)
		s.err = s.handle(<-responses, "")
		out <- Finished{Err: s.err}
	}()

	return out
}

func (s *Session) handle(resp network.Response, dest string) error {
	if resp.Err != nil {
		log.Errorf("%s fetch failed: %s", resp.Tag, resp.Err)
		return fault.Wrap(fault.Network, resp.Err)
	}

	switch resp.Tag {
	case network.TagExtract:
		return s.applyInfo(resp.Body)
	case network.TagThumbnail:
		return writeThumbnail(dest, resp.Body)
	default:
		return fault.Newf(fault.Network, "unexpected response tag %s", resp.Tag)
	}
}

func (s *Session) applyInfo(body []byte) error {
	parsed, err := stream.Parse(string(body), s.media)

	for tier, u := range parsed.Thumbnails {
		s.thumbnails[tier] = u
	}
	s.meta = parsed.Meta

	if err != nil {
		return err
	}

	for tier, u := range parsed.Streams {
		s.streams[tier] = u
	}
	s.candidates = parsed.Candidates

	log.WithField("video", s.videoID).Infof("resolved %d tiers", len(parsed.Streams))
	return nil
}

// VideoURL returns the URL of a tier, walking the fallback chain for meta tiers.
func (s *Session) VideoURL(tier quality.Tier) string {
	return s.streams.VideoURL(tier)
}

// ThumbnailURL returns the thumbnail URL of a tier. Any walks the thumbnail fallback chain.
func (s *Session) ThumbnailURL(tier quality.Tier) string {
	return s.thumbnails.ThumbnailURL(tier)
}

// Streams returns a copy of every resolved tier.
func (s *Session) Streams() stream.Resolved {
	return lo.Assign(s.streams)
}

// Thumbnails returns a copy of every known thumbnail.
func (s *Session) Thumbnails() stream.Thumbnails {
	return lo.Assign(s.thumbnails)
}

// Candidates returns the descriptors kept by the last successful parse.
func (s *Session) Candidates() []*stream.Descriptor {
	return s.candidates
}

// Meta returns the title, author and counters of the video.
func (s *Session) Meta() stream.Meta {
	return s.meta
}

// PreferredTier is the first preferred tier that was resolved.
func (s *Session) PreferredTier() mo.Option[quality.Tier] {
	tier, _, ok := quality.Best(s.streams, s.preferred)
	if !ok {
		return mo.None[quality.Tier]()
	}
	return mo.Some(tier)
}

// PreferredURL is the URL of PreferredTier.
func (s *Session) PreferredURL() mo.Option[string] {
	tier, ok := s.PreferredTier().Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(s.streams[tier])
}
