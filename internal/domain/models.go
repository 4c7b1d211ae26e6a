package domain

import "context"

// Post is the clean, fixed-shape record derived from one raw API post.
// Variant-specific fields (Title/Body for text posts, Caption for photo
// posts, Text/Source for quote posts) are empty unless the post type
// matches.
type Post struct {
	ID              int64    `json:"id"`
	BlogName        string   `json:"blog_name"`
	PostURL         string   `json:"post_url"`
	Type            string   `json:"type"`
	Timestamp       int64    `json:"timestamp"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
	NoteCount       int64    `json:"note_count"`
	Summary         string   `json:"summary"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	Caption         string   `json:"caption"`
	Text            string   `json:"text"`
	Source          string   `json:"source"`
	ScrapedAt       string   `json:"scraped_at"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// Target represents one batch-mode scraping task.
type Target struct {
	Blog     string
	Keywords []string
}

// Client defines the upstream API surface the collector depends on.
type Client interface {
	// Tagged returns one reverse-chronological page of posts carrying the
	// tag, starting before the given timestamp (0 means most recent).
	Tagged(ctx context.Context, tag string, before int64, limit int) ([]RawPost, error)
	// Posts returns one page of a blog's posts at the given offset.
	Posts(ctx context.Context, blog string, offset, limit int) ([]RawPost, error)
}

// StopReason records why a collection run ended.
type StopReason string

const (
	// StopLimit: the requested number of posts was gathered.
	StopLimit StopReason = "limit"
	// StopExhausted: the upstream returned an empty page.
	StopExhausted StopReason = "exhausted"
	// StopStalled: the pagination cursor could not advance.
	StopStalled StopReason = "stalled"
	// StopError: a page fetch failed; Posts holds what was gathered so far.
	StopError StopReason = "error"
)

// Result carries the posts gathered by one collection run together with
// the reason it stopped, so callers can tell a short result apart from a
// full one without reading logs.
type Result struct {
	Posts  []Post
	Reason StopReason
	Err    error
}
