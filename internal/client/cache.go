package client

import (
	"sync"
	"time"
)

// DefaultTTL 缓存新鲜期
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	payload   []byte
	fetchedAt time.Time
}

// Cache 以请求 URL 为键的短期响应缓存，时钟与 TTL 可注入
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

// NewCache ttl <= 0 时使用 DefaultTTL，now 为 nil 时使用 time.Now
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get 返回新鲜期内的缓存
func (c *Cache) Get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[url]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.payload, true
}

// Set 写入或刷新缓存，后写覆盖
func (c *Cache) Set(url string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{payload: payload, fetchedAt: c.now()}
}

// Clear 清空全部缓存
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len 当前条目数（含已过期）
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
