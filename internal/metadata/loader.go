package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/initforge/initforge/internal/metadata/cache"
)

const cacheKey = "catalog"

// Parse parses a raw catalog document and builds its lookup indexes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	c.buildIndexes()
	return &c, nil
}

// Loader fetches the catalog document from a static file or a remote HTTP
// endpoint, keeping the raw document in a cache between refreshes.
type Loader struct {
	source string
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCache sets the document cache and its TTL.
func WithCache(c cache.Cache, ttl time.Duration) LoaderOption {
	return func(l *Loader) {
		l.cache = c
		l.ttl = ttl
	}
}

// WithHTTPClient replaces the HTTP client used for remote sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader creates a loader for the given source. A source starting with
// http:// or https:// is fetched remotely; anything else is read as a file
// path.
func NewLoader(source string, logger *zap.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: source,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the catalog, serving the raw document from the cache when
// present and fetching the source otherwise.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if l.cache != nil {
		if data, err := l.cache.Get(ctx, cacheKey); err == nil {
			l.logger.Debug("metadata served from cache", zap.String("source", l.source))
			return Parse(data)
		} else if !cache.IsMiss(err) {
			l.logger.Warn("metadata cache read failed", zap.Error(err))
		}
	}

	data, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, cacheKey, data, l.ttl); err != nil {
			l.logger.Warn("metadata cache write failed", zap.Error(err))
		}
	}

	l.logger.Info("metadata loaded",
		zap.String("source", l.source),
		zap.Int("types", len(c.Types)),
		zap.Int("dependencies", len(c.Dependencies)))
	return c, nil
}

// Invalidate drops the cached document so the next Load hits the source.
func (l *Loader) Invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Delete(ctx, cacheKey)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchRemote(ctx)
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	return data, nil
}

func (l *Loader) fetchRemote(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata response: %w", err)
	}
	return data, nil
}
