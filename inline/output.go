package inline

import (
	"github.com/samber/lo"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/stream"
	"golang.org/x/exp/slices"
)

// Stream is one resolved tier.
type Stream struct {
	Quality string `json:"quality" yaml:"quality" jsonschema:"description=Tier name such as mp4_720."`
	Itag    int    `json:"itag" yaml:"itag" jsonschema:"description=Provider format number of the tier."`
	URL     string `json:"url" yaml:"url" jsonschema:"description=Playable URL, signature included."`
}

// Result is the extraction outcome of one input.
type Result struct {
	Input      string               `json:"input" yaml:"input" jsonschema:"description=URL or video id as given."`
	VideoID    string               `json:"video_id,omitempty" yaml:"video_id,omitempty" jsonschema:"description=Resolved video id."`
	Meta       stream.Meta          `json:"meta" yaml:"meta" jsonschema:"description=Title and counters reported by the provider."`
	Requested  string               `json:"requested" yaml:"requested" jsonschema:"description=Quality that was asked for."`
	URL        string               `json:"url,omitempty" yaml:"url,omitempty" jsonschema:"description=URL of the requested quality. Empty when nothing matched."`
	Preferred  string               `json:"preferred,omitempty" yaml:"preferred,omitempty" jsonschema:"description=First resolved tier of the preferred order."`
	Streams    []Stream             `json:"streams" yaml:"streams" jsonschema:"description=Every resolved tier from best to worst."`
	Thumbnails map[string]string    `json:"thumbnails" yaml:"thumbnails" jsonschema:"description=Thumbnail URLs by tier name."`
	Candidates []*stream.Descriptor `json:"candidates,omitempty" yaml:"candidates,omitempty" jsonschema:"description=Every kept descriptor including unknown formats."`
	Error      string               `json:"error,omitempty" yaml:"error,omitempty" jsonschema:"description=Failure message of the extraction."`
}

// Output is what inline mode prints.
type Output struct {
	Results []*Result `json:"results" yaml:"results"`
}

// NewResult collects the state of a finished session.
func NewResult(input string, requested quality.Tier, s *extractor.Session, withCandidates bool) *Result {
	r := &Result{
		Input:      input,
		VideoID:    s.VideoID(),
		Meta:       s.Meta(),
		Requested:  requested.String(),
		URL:        s.VideoURL(requested),
		Thumbnails: make(map[string]string),
	}

	if err := s.Err(); err != nil {
		r.Error = err.Error()
	}

	if tier, ok := s.PreferredTier().Get(); ok {
		r.Preferred = tier.String()
	}

	streams := s.Streams()
	for _, tier := range quality.VideoFallback {
		link, ok := streams[tier]
		if !ok {
			continue
		}

		itag, _ := tier.Itag()
		r.Streams = append(r.Streams, Stream{Quality: tier.String(), Itag: itag, URL: link})
	}

	for tier, link := range s.Thumbnails() {
		r.Thumbnails[tier.String()] = link
	}

	if withCandidates {
		r.Candidates = slices.Clone(s.Candidates())
	}

	return r
}

// Failed reports whether any result carries an error.
func (o *Output) Failed() bool {
	return lo.SomeBy(o.Results, func(r *Result) bool {
		return r.Error != ""
	})
}
