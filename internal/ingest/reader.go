package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// Regex for valid blog host names
var blogNameRegex = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// LoadTargets reads batch-mode targets from a CSV of blog,keywords rows
// (keywords separated by ';'). The first row is a header. Invalid rows
// are skipped rather than failing the load.
func LoadTargets(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))

	var targets []domain.Target
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		line++
		if line == 1 {
			continue // Skip header
		}
		if len(record) < 2 {
			continue
		}

		// Validation (Fail-Soft)
		blog := strings.TrimSpace(record[0])
		if !blogNameRegex.MatchString(blog) {
			continue
		}

		var keywords []string
		for _, kw := range strings.Split(record[1], ";") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			continue
		}

		targets = append(targets, domain.Target{Blog: blog, Keywords: keywords})
	}
	return targets, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
