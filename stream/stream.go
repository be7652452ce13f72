// Package stream parses a video info response into stream candidates,
// resolved per-tier URLs and thumbnail URLs.
package stream

import (
	"strconv"
	"strings"

	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/fault"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/query"
)

// Descriptor is one playable candidate offered by the provider.
type Descriptor struct {
	// Tier is quality.Unknown when the itag is not in the tier table.
	Tier         quality.Tier `json:"tier"`
	Itag         int          `json:"itag"`
	MimeType     string       `json:"mime_type"`
	URL          string       `json:"url"`
	Signature    string       `json:"signature,omitempty"`
	Quality      string       `json:"quality,omitempty"`
	FallbackHost string       `json:"fallback_host,omitempty"`
}

// Resolved maps concrete tiers to playable URLs.
type Resolved map[quality.Tier]string

// Thumbnails maps thumbnail tiers to image URLs.
type Thumbnails map[quality.Tier]string

// Meta holds descriptive fields of the video.
type Meta struct {
	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	LengthSeconds int    `json:"length_seconds,omitempty"`
	ViewCount     int64  `json:"view_count,omitempty"`
}

// Parsed is the outcome of Parse.
type Parsed struct {
	Candidates []*Descriptor
	Streams    Resolved
	Thumbnails Thumbnails
	Meta       Meta
}

var thumbnailFields = []struct {
	field string
	tier  quality.Tier
}{
	{"iurlmq", quality.Medium},
	{"iurlhq", quality.High},
	{"iurl", quality.Default},
	{"iurlsd", quality.Standard},
}

// Parse decodes a video info body. Thumbnails and metadata are filled even when
// an error is returned, so the result is never nil.
func Parse(body string, media MediaSet) (*Parsed, error) {
	if media == nil {
		media = NewMediaSet()
	}

	values := query.Decode(body)
	parsed := &Parsed{
		Streams:    make(Resolved),
		Thumbnails: make(Thumbnails),
		Meta:       parseMeta(values),
	}

	for _, f := range thumbnailFields {
		if u := values.Get(f.field); u != "" {
			parsed.Thumbnails[f.tier] = u
		}
	}

	if !values.Has(constant.FieldStreamMap) {
		reason := query.Unplus(values.Get(constant.FieldReason))
		if reason == "" {
			reason = "no stream map in response"
		}

		log.Warnf("stream map missing: %s", reason)
		return parsed, fault.New(fault.Parse, reason)
	}

	raw := strings.Split(values.Get(constant.FieldStreamMap), ",")
	if adaptive := values.Get(constant.FieldAdaptiveFormats); adaptive != "" {
		raw = append(raw, strings.Split(adaptive, ",")...)
	}

	for _, r := range raw {
		d, ok := parseDescriptor(r, media)
		if !ok {
			continue
		}

		parsed.Candidates = append(parsed.Candidates, d)
		if d.Tier != quality.Unknown {
			parsed.Streams[d.Tier] = d.URL
		}
	}

	log.Debugf("parsed %d candidates, %d resolved tiers", len(parsed.Candidates), len(parsed.Streams))
	return parsed, nil
}

func parseDescriptor(raw string, media MediaSet) (*Descriptor, bool) {
	fields := query.Decode(raw)

	mime := baseMime(fields.Get(constant.StreamType))
	link := fields.Get(constant.StreamURL)
	if link == "" || !media.Contains(mime) {
		return nil, false
	}

	sig := fields.Get(constant.StreamSig)
	if sig != "" {
		sep := "&"
		if !strings.Contains(link, "?") {
			sep = "?"
		}
		link += sep + constant.StreamSignature + "=" + sig
	}

	_, rawQuery, _ := strings.Cut(link, "?")
	if !query.Decode(rawQuery).Has(constant.StreamSignature) {
		return nil, false
	}

	d := &Descriptor{
		MimeType:     mime,
		URL:          link,
		Signature:    sig,
		Quality:      fields.Get(constant.StreamQuality),
		FallbackHost: fields.Get(constant.StreamFallbackHost),
	}

	if itag, err := strconv.Atoi(fields.Get(constant.StreamItag)); err == nil {
		d.Itag = itag
		if tier, ok := quality.FromItag(itag); ok {
			d.Tier = tier
		}
	}

	return d, true
}

func parseMeta(values query.Values) Meta {
	meta := Meta{
		Title:  query.Unplus(values.Get(constant.FieldTitle)),
		Author: query.Unplus(values.Get(constant.FieldAuthor)),
	}

	if n, err := strconv.Atoi(values.Get(constant.FieldLengthSeconds)); err == nil {
		meta.LengthSeconds = n
	}

	if n, err := strconv.ParseInt(values.Get(constant.FieldViewCount), 10, 64); err == nil {
		meta.ViewCount = n
	}

	return meta
}

// VideoURL looks up a tier. Concrete tiers are read directly, meta tiers walk
// quality.VideoFallback. An empty string means nothing matched.
func (r Resolved) VideoURL(tier quality.Tier) string {
	if tier.IsConcrete() {
		return r[tier]
	}

	if !tier.IsMeta() {
		return ""
	}

	_, url, _ := quality.Best(r, quality.VideoFallback)
	return url
}

// ThumbnailURL looks up a thumbnail tier. Any returns the first non-empty URL
// along quality.ThumbnailFallback.
func (t Thumbnails) ThumbnailURL(tier quality.Tier) string {
	if tier != quality.Any {
		return t[tier]
	}

	for _, q := range quality.ThumbnailFallback {
		if url := t[q]; url != "" {
			return url
		}
	}

	return ""
}
