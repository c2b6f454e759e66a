package statsbomb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coachos/pitchpilot/internal/adapters/cache"
	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/pkg/logger"
	"github.com/coachos/pitchpilot/pkg/metrics"
)

// DefaultBaseURL serves the StatsBomb open-data repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"

const fetchTimeout = 30 * time.Second

// Client fetches open-data match files, going through the configured cache
// first and writing fetched payloads back to it.
type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
	log     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the open-data base URL (tests point it at a local
// server).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCache sets the match data cache.
func WithCache(store cache.Cache) Option {
	return func(c *Client) {
		if store != nil {
			c.cache = store
		}
	}
}

// WithLogger sets the client's logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates an open-data client. Without options it fetches
// directly with no cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: fetchTimeout},
		cache:   cache.Nop(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MatchEvents returns the decoded event list for a match.
func (c *Client) MatchEvents(ctx context.Context, matchID int) ([]event.Event, error) {
	data, err := c.load(ctx, fmt.Sprintf("events/%d", matchID), fmt.Sprintf("%s/events/%d.json", c.baseURL, matchID))
	if err != nil {
		return nil, err
	}
	return DecodeEvents(data)
}

// Lineups returns the decoded roster for a match.
func (c *Client) Lineups(ctx context.Context, matchID int) (event.Roster, error) {
	data, err := c.load(ctx, fmt.Sprintf("lineups/%d", matchID), fmt.Sprintf("%s/lineups/%d.json", c.baseURL, matchID))
	if err != nil {
		return nil, err
	}
	return DecodeLineups(data)
}

// load is the cache-aside path: cache hit wins, misses fetch upstream and
// write back. A failing cache write is logged, never fatal.
func (c *Client) load(ctx context.Context, key, url string) ([]byte, error) {
	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.Warn(ctx, "cache read failed; fetching upstream", logger.String("key", key), logger.Error(err))
	} else if ok {
		return data, nil
	}

	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, data); err != nil {
		c.log.Warn(ctx, "cache write failed", logger.String("key", key), logger.Error(err))
	}
	return data, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	started := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	metrics.ObserveFetchDuration(time.Since(started).Seconds())
	c.log.Debug(ctx, "fetched upstream match data",
		logger.String("url", url), logger.Int("bytes", len(data)))
	return data, nil
}
