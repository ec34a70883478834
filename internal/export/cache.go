package export

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// DefaultCacheEntries bounds a Cache built with a non-positive capacity.
const DefaultCacheEntries = 16

// Cache memoizes encoded exports keyed by a content hash of the table.
//
// Identical tables map to the same key, so a repeated download reuses the
// bytes; any change in header or cells changes the key. The oldest entry is
// evicted once capacity is reached. Returned slices are shared and must not be
// modified by callers.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]byte
	order    []string
	hits     int
	misses   int
}

func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheEntries
	}
	return &Cache{capacity: capacity, entries: make(map[string][]byte)}
}

// ContentKey hashes the format, header and every cell of t.
func ContentKey(f Format, t Table) string {
	h := sha256.New()
	h.Write([]byte(f))
	h.Write([]byte{0x1d})
	for _, name := range t.Header() {
		h.Write([]byte(name))
		h.Write([]byte{0x1f})
	}
	for _, row := range t.Text() {
		h.Write([]byte{0x1e})
		for _, cell := range row {
			h.Write([]byte(cell))
			h.Write([]byte{0x1f})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached encoding of t, encoding and storing it on a miss.
// Encoding errors are returned and never cached.
func (c *Cache) Get(f Format, t Table) ([]byte, error) {
	key := ContentKey(f, t)

	c.mu.Lock()
	if b, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return b, nil
	}
	c.misses++
	c.mu.Unlock()

	b, err := Encode(f, t)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
		c.entries[key] = b
	}
	return c.entries[key], nil
}

// Invalidate drops every cached encoding.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	c.order = nil
}

// Stats reports entries held, hits and misses since creation.
func (c *Cache) Stats() (entries, hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), c.hits, c.misses
}
