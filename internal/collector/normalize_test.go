package collector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

func TestNormalizeTextPost(t *testing.T) {
	raw := domain.RawPost{
		"id":         json.Number("4796827108874668123"),
		"blog_name":  "example.tumblr.com",
		"post_url":   "https://example.tumblr.com/post/1",
		"type":       "text",
		"timestamp":  json.Number("1700000000"),
		"date":       "2023-11-14 22:13:20 GMT",
		"tags":       []any{"art", "painting"},
		"note_count": json.Number("42"),
		"summary":    "A post",
		"title":      "Hello",
		"body":       "World",
	}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Normalize(raw, now)

	assert.Equal(t, int64(4796827108874668123), p.ID)
	assert.Equal(t, "example.tumblr.com", p.BlogName)
	assert.Equal(t, "text", p.Type)
	assert.Equal(t, int64(1700000000), p.Timestamp)
	assert.Equal(t, []string{"art", "painting"}, p.Tags)
	assert.Equal(t, int64(42), p.NoteCount)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "World", p.Body)
	assert.Equal(t, "2024-03-01T12:00:00Z", p.ScrapedAt)
	assert.Empty(t, p.Caption)
	assert.Empty(t, p.Text)
	assert.Empty(t, p.Source)
}

func TestNormalizeDeterministicWithFrozenClock(t *testing.T) {
	raw := domain.RawPost{
		"id":     json.Number("7"),
		"type":   "quote",
		"text":   "to be or not to be",
		"source": "someone",
		"tags":   []any{"quotes"},
	}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Normalize(raw, now), Normalize(raw, now))
}

func TestNormalizePhotoVariantIsolation(t *testing.T) {
	// Text/quote fields present on a photo post must not leak through.
	raw := domain.RawPost{
		"id":      json.Number("9"),
		"type":    "photo",
		"caption": "a sunset",
		"title":   "should be dropped",
		"body":    "should be dropped",
		"text":    "should be dropped",
		"source":  "should be dropped",
	}
	p := Normalize(raw, time.Now())

	assert.Equal(t, "a sunset", p.Caption)
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Body)
	assert.Empty(t, p.Text)
	assert.Empty(t, p.Source)
}

func TestNormalizeMissingFieldsDefault(t *testing.T) {
	p := Normalize(domain.RawPost{}, time.Now())

	assert.Zero(t, p.ID)
	assert.Empty(t, p.BlogName)
	assert.Empty(t, p.Type)
	assert.Zero(t, p.NoteCount)
	assert.Equal(t, []string{}, p.Tags)
	assert.NotEmpty(t, p.ScrapedAt)
}
