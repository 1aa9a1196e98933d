// Package currency proxies an upstream exchange-rate feed, serving the
// raw upstream JSON with a short-lived cache in front of it.
package currency

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/profel/inventory-api/internal/config"
	"github.com/profel/inventory-api/internal/platform/logger"
)

// upstreamTimeout bounds one round trip to the rate feed.
const upstreamTimeout = 10 * time.Second

// cacheKey is the single cache entry holding the latest upstream body.
const cacheKey = "currency:rates"

// Cache stores the upstream response body between requests. A miss is
// reported as (nil, nil), not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Client fetches the currency list, consulting the cache first. Cache
// failures are logged and skipped so the upstream still answers.
type Client struct {
	httpClient *http.Client
	url        string
	cache      Cache
	ttl        time.Duration
	logger     *slog.Logger
}

// NewClient creates a currency proxy client. cache may be nil, in which
// case every request hits the upstream.
func NewClient(cfg config.CurrencyConfig, cache Cache, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: upstreamTimeout},
		url:        cfg.URL,
		cache:      cache,
		ttl:        time.Duration(cfg.CacheTTLSeconds) * time.Second,
		logger:     log.With(slog.String("component", "currency_client")),
	}
}

// Rates returns the raw JSON body of the currency list.
func (c *Client) Rates(ctx context.Context) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey)
		if err != nil {
			log.Warn("currency cache read failed", slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build currency request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("currency upstream unreachable", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch currency rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Error("currency upstream returned non-200", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("currency upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read currency response: %w", err)
	}

	if c.cache != nil && c.ttl > 0 {
		if err := c.cache.Set(ctx, cacheKey, body, c.ttl); err != nil {
			log.Warn("currency cache write failed", slog.String("error", err.Error()))
		}
	}

	return body, nil
}
