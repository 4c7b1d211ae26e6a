package tumblr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/pquin/tumblr-scraper/internal/domain"
)

const defaultBaseURL = "https://api.tumblr.com/v2"

// ErrNoCredentials means no consumer key/secret could be resolved; the
// collector treats this as an unavailable client, not a fatal condition.
var ErrNoCredentials = errors.New("tumblr: no API credentials configured")

// Credentials holds the four OAuth1 strings the API expects. A consumer
// key/secret alone is enough for public endpoints; a full token enables
// signed requests.
type Credentials struct {
	ConsumerKey      string
	ConsumerSecret   string
	OAuthToken       string
	OAuthTokenSecret string
}

// Client talks to the Tumblr v2 REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	userAgent  string
}

type Option func(*Client)

// WithBaseURL points the client at a different API root. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds an API client from credentials. With a full OAuth
// token the underlying transport signs every request; with only a
// consumer key, requests carry it as the api_key query parameter.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" {
		return nil, ErrNoCredentials
	}

	c := &Client{
		baseURL:   defaultBaseURL,
		userAgent: "tumblr-scraper/1.0",
	}

	if creds.OAuthToken != "" && creds.OAuthTokenSecret != "" {
		conf := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		token := oauth1.NewToken(creds.OAuthToken, creds.OAuthTokenSecret)
		c.httpClient = conf.Client(context.Background(), token)
	} else {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
		c.apiKey = creds.ConsumerKey
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tagged fetches one page of posts carrying the tag, newest first. A zero
// before cursor starts at the most recent post.
func (c *Client) Tagged(ctx context.Context, tag string, before int64, limit int) ([]domain.RawPost, error) {
	q := url.Values{}
	q.Set("tag", tag)
	q.Set("limit", strconv.Itoa(limit))
	if before > 0 {
		q.Set("before", strconv.FormatInt(before, 10))
	}

	var env struct {
		Response []domain.RawPost `json:"response"`
	}
	if err := c.get(ctx, "/tagged", q, &env); err != nil {
		return nil, err
	}
	return env.Response, nil
}

// Posts fetches one page of a blog's posts at the given offset.
func (c *Client) Posts(ctx context.Context, blog string, offset, limit int) ([]domain.RawPost, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var env struct {
		Response struct {
			Posts []domain.RawPost `json:"posts"`
		} `json:"response"`
	}
	if err := c.get(ctx, "/blog/"+url.PathEscape(blog)+"/posts", q, &env); err != nil {
		return nil, err
	}
	return env.Response.Posts, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tumblr api status: %d", resp.StatusCode)
	}

	// UseNumber keeps 64-bit post IDs exact through the RawPost maps.
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(out)
}
