package collector

import (
	"strings"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// ExtractText assembles a post's searchable text surface: the
// variant-appropriate content fields, then all tags, then the summary,
// space-joined with empty fields skipped.
func ExtractText(raw domain.RawPost) string {
	var parts []string
	switch raw.String("type") {
	case "text":
		parts = append(parts, raw.String("title"), raw.String("body"))
	case "photo":
		parts = append(parts, raw.String("caption"))
	case "quote":
		parts = append(parts, raw.String("text"), raw.String("source"))
	}
	parts = append(parts, raw.Strings("tags")...)
	parts = append(parts, raw.String("summary"))

	nonEmpty := parts[:0]
	for _, s := range parts {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// Matches reports whether at least one keyword occurs in the post's text
// surface. Matching is a case-insensitive substring test: no tokenization,
// no word boundaries, so a keyword inside a larger word still counts.
func Matches(raw domain.RawPost, keywords []string) bool {
	text := strings.ToLower(ExtractText(raw))
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MatchedKeywords returns every keyword that occurs in the post's text
// surface, in the order the keywords were given.
func MatchedKeywords(raw domain.RawPost, keywords []string) []string {
	text := strings.ToLower(ExtractText(raw))
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}
