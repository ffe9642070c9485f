package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process cache with TTL support. It is the default backend
// when no Redis address is configured.
type Memory struct {
	data   sync.Map
	config Config
	cancel context.CancelFunc
}

type memoryItem struct {
	value      []byte
	expiration time.Time
}

// NewMemory creates an in-memory cache with the default configuration.
func NewMemory() *Memory {
	return NewMemoryWithConfig(DefaultConfig())
}

// NewMemoryWithConfig creates an in-memory cache with a custom configuration.
func NewMemoryWithConfig(config Config) *Memory {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Memory{
		config: config,
		cancel: cancel,
	}
	go m.cleanupExpired(ctx)
	return m
}

// Get retrieves a cached document.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fullKey := m.config.Prefix + key
	value, ok := m.data.Load(fullKey)
	if !ok {
		return nil, ErrMiss{Key: key}
	}

	item := value.(memoryItem)
	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		m.data.Delete(fullKey)
		return nil, ErrMiss{Key: key}
	}
	return item.value, nil
}

// Set stores a document with a TTL.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if ttl == 0 {
		ttl = m.config.DefaultTTL
	}

	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiration = time.Now().Add(ttl)
	}

	m.data.Store(m.config.Prefix+key, item)
	return nil
}

// Delete removes a cached document.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.data.Delete(m.config.Prefix + key)
	return nil
}

// Close stops the background cleanup goroutine.
func (m *Memory) Close() error {
	m.cancel()
	return nil
}

// cleanupExpired periodically evicts expired items so stale documents do
// not accumulate between refreshes.
func (m *Memory) cleanupExpired(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			m.data.Range(func(key, value any) bool {
				item := value.(memoryItem)
				if !item.expiration.IsZero() && now.After(item.expiration) {
					m.data.Delete(key)
				}
				return true
			})
		}
	}
}
