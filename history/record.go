package history

import (
	"fmt"
	"time"
)

// Record is a resolved video remembered between runs.
type Record struct {
	VideoID    string    `json:"video_id"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	Quality    string    `json:"quality,omitempty"`
	URL        string    `json:"url,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
	// Rank grows every time the same video is resolved again.
	Rank int `json:"rank"`
}

// Label is what shell completion and the history listing show.
func (r *Record) Label() string {
	if r.Title == "" {
		return r.VideoID
	}
	return r.Title
}

func (r *Record) String() string {
	if r.Author == "" {
		return fmt.Sprintf("%s [%s]", r.Label(), r.VideoID)
	}
	return fmt.Sprintf("%s by %s [%s]", r.Label(), r.Author, r.VideoID)
}
