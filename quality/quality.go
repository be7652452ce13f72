// Package quality defines the quality tiers a stream or thumbnail can have,
// the authoritative tier/itag table and the fallback chains used by lookups.
package quality

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Tier is a named quality level. It is independent of the provider's itag numbering.
type Tier uint8

const (
	Unknown Tier = iota

	Small
	Medium
	FLV_360
	FLV_480
	GP3_240
	GP3_144
	MP4_720
	MP4_360
	MP4_480
	MP4_1080
	MP4_3072
	WEBM_360
	WEBM_720

	// meta tiers, not tied to an itag

	High
	Default
	Standard
	Any
)

type entry struct {
	tier Tier
	itag int
	name string
}

// table is the single source of truth for tier <-> itag.
var table = []entry{
	{Small, 36, "small"},
	{Medium, 18, "medium"},
	{FLV_360, 5, "flv_360"},
	{FLV_480, 6, "flv_480"},
	{GP3_240, 13, "3gp_240"},
	{GP3_144, 17, "3gp_144"},
	{MP4_720, 22, "mp4_720"},
	{MP4_360, 34, "mp4_360"},
	{MP4_480, 35, "mp4_480"},
	{MP4_1080, 37, "mp4_1080"},
	{MP4_3072, 38, "mp4_3072"},
	{WEBM_360, 43, "webm_360"},
	{WEBM_720, 45, "webm_720"},
}

var metaNames = map[Tier]string{
	High:     "high",
	Default:  "default",
	Standard: "standard",
	Any:      "any",
}

var (
	byItag = lo.SliceToMap(table, func(e entry) (int, Tier) {
		return e.itag, e.tier
	})

	byTier = make(map[Tier]int, len(table))
	names  = make(map[Tier]string, len(table)+len(metaNames))
	parsed = make(map[string]Tier, len(table)+len(metaNames))
)

func init() {
	for _, e := range table {
		byTier[e.tier] = e.itag
		names[e.tier] = e.name
	}

	for t, n := range metaNames {
		names[t] = n
	}

	for t, n := range names {
		parsed[n] = t
	}
}

// VideoFallback is the order in which concrete tiers are tried when a meta tier is requested.
var VideoFallback = []Tier{
	MP4_3072, MP4_1080, MP4_720, MP4_480, MP4_360, Medium,
	WEBM_720, WEBM_360, FLV_480, FLV_360, GP3_240, Small, GP3_144,
}

// ThumbnailTiers are the tiers a thumbnail can be published in.
var ThumbnailTiers = []Tier{Small, Medium, High, Default, Standard}

// ThumbnailFallback is the order walked when Any thumbnail is requested.
var ThumbnailFallback = []Tier{Standard, Default, High, Medium, Small}

// FromItag returns the concrete tier for a provider itag.
func FromItag(itag int) (Tier, bool) {
	t, ok := byItag[itag]
	return t, ok
}

// Itag returns the provider itag of a concrete tier.
func (t Tier) Itag() (int, bool) {
	i, ok := byTier[t]
	return i, ok
}

// IsConcrete reports whether the tier maps to a provider itag.
func (t Tier) IsConcrete() bool {
	_, ok := byTier[t]
	return ok
}

// IsMeta reports whether the tier is one of High, Default, Standard or Any.
func (t Tier) IsMeta() bool {
	_, ok := metaNames[t]
	return ok
}

func (t Tier) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse converts a tier name such as "mp4_720" or "high" into a Tier.
// A bare itag number is accepted as well.
func Parse(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := parsed[s]; ok {
		return t, nil
	}

	if itag, err := strconv.Atoi(s); err == nil {
		if t, ok := FromItag(itag); ok {
			return t, nil
		}
	}

	return Unknown, fmt.Errorf("unknown quality %q", s)
}

// ParseAll parses every name, skipping meta tiers and duplicates.
func ParseAll(ss []string) ([]Tier, error) {
	tiers := make([]Tier, 0, len(ss))
	for _, s := range ss {
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}

	return Concrete(tiers), nil
}

// Concrete keeps only concrete tiers, preserving order and dropping duplicates.
func Concrete(tiers []Tier) []Tier {
	return lo.Uniq(lo.Filter(tiers, func(t Tier, _ int) bool {
		return t.IsConcrete()
	}))
}

// Names lists every known tier name, concrete ones first.
func Names() []string {
	out := lo.Map(table, func(e entry, _ int) string {
		return e.name
	})

	return append(out, metaNames[High], metaNames[Default], metaNames[Standard], metaNames[Any])
}

// Best walks order and returns the first tier present in available.
func Best[V any](available map[Tier]V, order []Tier) (Tier, V, bool) {
	for _, t := range order {
		if v, ok := available[t]; ok {
			return t, v, true
		}
	}

	var zero V
	return Unknown, zero, false
}
