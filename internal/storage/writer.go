package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// baseColumns are the fields every normalized post carries.
var baseColumns = []string{
	"blog_name", "body", "caption", "date", "id", "note_count", "post_url",
	"scraped_at", "source", "summary", "tags", "text", "timestamp", "title",
	"type",
}

// Writer serializes collected posts under one output directory, created
// on first write.
type Writer struct {
	Dir string
}

// WriteCSV writes one header row plus one row per post. Columns are the
// sorted union of field names across all posts: matched_keywords only
// appears when some post carries it. Empty input writes nothing and
// returns an empty path.
func (w *Writer) WriteCSV(posts []domain.Post, filename string) (string, error) {
	if len(posts) == 0 {
		return "", nil
	}
	f, path, err := w.create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	columns := columnsFor(posts)
	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return "", err
	}
	for _, p := range posts {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fieldValue(p, col)
		}
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON writes the posts as an indented JSON array with non-ASCII
// text preserved as-is. Empty input writes nothing and returns an empty
// path.
func (w *Writer) WriteJSON(posts []domain.Post, filename string) (string, error) {
	if len(posts) == 0 {
		return "", nil
	}
	f, path, err := w.create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) create(filename string) (*os.File, string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(w.Dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func columnsFor(posts []domain.Post) []string {
	columns := append([]string(nil), baseColumns...)
	for _, p := range posts {
		if p.MatchedKeywords != nil {
			columns = append(columns, "matched_keywords")
			break
		}
	}
	sort.Strings(columns)
	return columns
}

func fieldValue(p domain.Post, column string) string {
	switch column {
	case "blog_name":
		return p.BlogName
	case "body":
		return p.Body
	case "caption":
		return p.Caption
	case "date":
		return p.Date
	case "id":
		return strconv.FormatInt(p.ID, 10)
	case "matched_keywords":
		return strings.Join(p.MatchedKeywords, ", ")
	case "note_count":
		return strconv.FormatInt(p.NoteCount, 10)
	case "post_url":
		return p.PostURL
	case "scraped_at":
		return p.ScrapedAt
	case "source":
		return p.Source
	case "summary":
		return p.Summary
	case "tags":
		return strings.Join(p.Tags, ", ")
	case "text":
		return p.Text
	case "timestamp":
		return strconv.FormatInt(p.Timestamp, 10)
	case "title":
		return p.Title
	case "type":
		return p.Type
	}
	return ""
}
