package tumblr

import (
	"context"
	"fmt"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// mockEpoch anchors the fake timeline so runs are reproducible.
const mockEpoch int64 = 1700000000

var mockTypes = []string{"text", "photo", "quote"}

// MockClient implements domain.Client with deterministic fake data.
type MockClient struct {
	total int
}

func NewMockClient() *MockClient {
	return &MockClient{total: 60}
}

func (m *MockClient) Tagged(_ context.Context, tag string, before int64, limit int) ([]domain.RawPost, error) {
	start := mockEpoch
	if before > 0 {
		start = before
	}
	floor := mockEpoch - int64(m.total)

	var posts []domain.RawPost
	for ts := start - 1; ts > floor && len(posts) < limit; ts-- {
		posts = append(posts, m.post(mockEpoch-ts, "simulated.tumblr.com", ts, tag))
	}
	return posts, nil
}

func (m *MockClient) Posts(_ context.Context, blog string, offset, limit int) ([]domain.RawPost, error) {
	var posts []domain.RawPost
	for i := offset; i < m.total && len(posts) < limit; i++ {
		posts = append(posts, m.post(int64(i+1), blog, mockEpoch-int64(i), "simulated"))
	}
	return posts, nil
}

func (m *MockClient) post(n int64, blog string, ts int64, tag string) domain.RawPost {
	typ := mockTypes[n%int64(len(mockTypes))]
	p := domain.RawPost{
		"id":         n,
		"blog_name":  blog,
		"post_url":   fmt.Sprintf("https://%s/post/%d", blog, n),
		"type":       typ,
		"timestamp":  ts,
		"date":       "2023-11-14 22:13:20 GMT",
		"tags":       []string{tag, "mock"},
		"note_count": n * 3,
		"summary":    fmt.Sprintf("Simulated %s post #%d", typ, n),
	}
	switch typ {
	case "text":
		p["title"] = fmt.Sprintf("Mock post %d", n)
		p["body"] = "Simulated body text."
	case "photo":
		p["caption"] = "Simulated photo caption."
	case "quote":
		p["text"] = "Simulated quote."
		p["source"] = "simulated source"
	}
	return p
}
