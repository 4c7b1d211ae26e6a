package collector

import (
	"time"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// Normalize flattens a raw API post into the canonical record. Missing
// fields degrade to zero values; variant-specific text fields are only
// populated when the post type matches. Pure given its inputs, so a fixed
// clock yields an identical record.
func Normalize(raw domain.RawPost, scrapedAt time.Time) domain.Post {
	typ := raw.String("type")

	p := domain.Post{
		ID:        raw.Int64("id"),
		BlogName:  raw.String("blog_name"),
		PostURL:   raw.String("post_url"),
		Type:      typ,
		Timestamp: raw.Int64("timestamp"),
		Date:      raw.String("date"),
		Tags:      raw.Strings("tags"),
		NoteCount: raw.Int64("note_count"),
		Summary:   raw.String("summary"),
		ScrapedAt: scrapedAt.Format(time.RFC3339),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	switch typ {
	case "text":
		p.Title = raw.String("title")
		p.Body = raw.String("body")
	case "photo":
		p.Caption = raw.String("caption")
	case "quote":
		p.Text = raw.String("text")
		p.Source = raw.String("source")
	}
	return p
}
