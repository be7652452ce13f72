// Package history keeps track of resolved videos.
package history

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/where"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is replaced in tests.
var now = time.Now

// Get returns every record keyed by video id.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Sorted returns the records, most recently resolved first.
func Sorted() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.ResolvedAt.Compare(a.ResolvedAt)
	})

	return records, nil
}

// Save stores r, bumping the rank of an already known video.
// Empty fields of r keep their previous value.
func Save(r Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	r.ResolvedAt = now()
	r.Rank = 1

	if existing, ok := saved[r.VideoID]; ok {
		r.Rank = existing.Rank + 1
		r.Title = lo.Ternary(r.Title == "", existing.Title, r.Title)
		r.Author = lo.Ternary(r.Author == "", existing.Author, r.Author)
		r.Quality = lo.Ternary(r.Quality == "", existing.Quality, r.Quality)
		r.URL = lo.Ternary(r.URL == "", existing.URL, r.URL)
	}

	saved[r.VideoID] = &r
	return cacher.Set(saved)
}

// Remove forgets a video.
func Remove(videoID string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, videoID)
	return cacher.Set(saved)
}

// Clear forgets every video.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}

// Suggest returns the best matching video id for a partial title or id.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0].VideoID)
}

// SuggestMany returns records whose id or title fuzzily matches q, highest rank first.
func SuggestMany(q string) []*Record {
	saved, err := Get()
	if err != nil {
		return nil
	}

	q = sanitize(q)
	matches := lo.Filter(lo.Values(saved), func(r *Record, _ int) bool {
		return fuzzy.Match(q, sanitize(r.VideoID)) || fuzzy.Match(q, sanitize(r.Title))
	})

	slices.SortFunc(matches, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.VideoID, b.VideoID)
	})

	return matches
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
