package collector

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/pquin/tumblr-scraper/internal/config"
	"github.com/pquin/tumblr-scraper/internal/domain"
)

// ErrClientUnavailable is reported when no API client could be built;
// collection returns empty rather than failing the process.
var ErrClientUnavailable = errors.New("collector: api client unavailable")

// Collector drives paginated retrieval against the API client, pacing one
// request per page and bounding results by the requested limit.
type Collector struct {
	client   domain.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	pageSize int
	now      func() time.Time
}

func New(client domain.Client, cfg *config.Config) *Collector {
	return &Collector{
		client: client,
		// Burst 1: the first page is free, every later page waits out the
		// configured delay. rate.Every(0) disables pacing entirely.
		limiter:  rate.NewLimiter(rate.Every(cfg.PageDelay), 1),
		logger:   slog.Default(),
		pageSize: cfg.PageSize,
		now:      time.Now,
	}
}

// CollectByTag gathers up to limit posts carrying the tag, paginating by
// the timestamp of each page's last post. Any fetch error ends the run
// early with the posts gathered so far.
func (c *Collector) CollectByTag(ctx context.Context, tag string, limit int) domain.Result {
	if c.client == nil {
		c.logger.Error("api client not available", "tag", tag)
		return domain.Result{Reason: domain.StopError, Err: ErrClientUnavailable}
	}

	var posts []domain.Post
	var before int64

	for len(posts) < limit {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.Result{Posts: posts, Reason: domain.StopError, Err: err}
		}

		page, err := c.client.Tagged(ctx, tag, before, c.pageSize)
		if err != nil {
			c.logger.Error("tag page fetch failed", "tag", tag, "err", err)
			return domain.Result{Posts: posts, Reason: domain.StopError, Err: err}
		}
		if len(page) == 0 {
			return domain.Result{Posts: posts, Reason: domain.StopExhausted}
		}

		for _, raw := range page {
			if len(posts) >= limit {
				break
			}
			posts = append(posts, Normalize(raw, c.now()))
		}

		last := page[len(page)-1].Int64("timestamp")
		if last == 0 {
			// Cursor cannot advance; stop rather than refetch the same page.
			c.logger.Warn("tag pagination stalled, last post has no timestamp", "tag", tag)
			return domain.Result{Posts: posts, Reason: domain.StopStalled}
		}
		before = last
	}

	return domain.Result{Posts: posts, Reason: domain.StopLimit}
}

// CollectByBlog gathers up to limit of a blog's posts whose text surface
// contains at least one keyword, paginating by numeric offset. Matching
// posts are annotated with the keywords that hit.
func (c *Collector) CollectByBlog(ctx context.Context, blog string, keywords []string, limit int) domain.Result {
	if c.client == nil {
		c.logger.Error("api client not available", "blog", blog)
		return domain.Result{Reason: domain.StopError, Err: ErrClientUnavailable}
	}

	var posts []domain.Post
	offset := 0

	for len(posts) < limit {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.Result{Posts: posts, Reason: domain.StopError, Err: err}
		}

		page, err := c.client.Posts(ctx, blog, offset, c.pageSize)
		if err != nil {
			c.logger.Error("blog page fetch failed", "blog", blog, "err", err)
			return domain.Result{Posts: posts, Reason: domain.StopError, Err: err}
		}
		if len(page) == 0 {
			return domain.Result{Posts: posts, Reason: domain.StopExhausted}
		}

		for _, raw := range page {
			if !Matches(raw, keywords) {
				continue
			}
			p := Normalize(raw, c.now())
			p.MatchedKeywords = MatchedKeywords(raw, keywords)
			posts = append(posts, p)
			if len(posts) >= limit {
				break
			}
		}

		// Offset advances by the full page size even when few posts matched.
		offset += c.pageSize
	}

	return domain.Result{Posts: posts, Reason: domain.StopLimit}
}
