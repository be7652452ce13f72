package stream

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultMedia is the MIME set accepted when none is configured.
var DefaultMedia = []string{"video/mp4", "video/webm", "video/3gpp"}

// MediaSet is the set of MIME types a descriptor must have to be kept.
type MediaSet map[string]struct{}

// NewMediaSet builds a set from MIME types. An empty list yields the default set.
func NewMediaSet(types ...string) MediaSet {
	set := make(MediaSet)
	if !set.Set(types) {
		set.Set(DefaultMedia)
	}
	return set
}

// Set replaces the contents of the set with the types as given. Blank entries are
// skipped, and a list with none left leaves the set untouched and reports false.
func (m MediaSet) Set(types []string) bool {
	types = lo.Filter(types, func(t string, _ int) bool {
		return strings.TrimSpace(t) != ""
	})

	if len(types) == 0 {
		return false
	}

	for k := range m {
		delete(m, k)
	}

	for _, t := range types {
		m[t] = struct{}{}
	}

	return true
}

// Has reports whether mime is a member, compared exactly.
func (m MediaSet) Has(mime string) bool {
	_, ok := m[mime]
	return ok
}

// Contains reports whether the MIME type, without codec parameters, is in the set
// ignoring case.
func (m MediaSet) Contains(mime string) bool {
	base := baseMime(mime)
	if m.Has(base) {
		return true
	}

	return lo.SomeBy(lo.Keys(m), func(t string) bool {
		return strings.EqualFold(strings.TrimSpace(t), base)
	})
}

// Slice returns the members in no particular order.
func (m MediaSet) Slice() []string {
	return lo.Keys(m)
}

func baseMime(mime string) string {
	mime, _, _ = strings.Cut(mime, ";")
	return strings.ToLower(strings.TrimSpace(mime))
}
