package repository

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/zeebo/xxh3"
)

const queryCacheTTL = 30 // seconds

// QueryCache is a best-effort memcached cache for translated list queries.
// Invalidation uses a per-collection generation counter: every mutation bumps
// the counter, which rotates all keys for that collection without having to
// enumerate them. A nil *QueryCache is valid and disables caching.
type QueryCache struct {
	mc *memcache.Client
}

func NewQueryCache(mc *memcache.Client) *QueryCache {
	if mc == nil {
		return nil
	}
	return &QueryCache{mc: mc}
}

// Key derives a stable cache key from the collection's current generation and
// the serialized query. Returns false when the cache is unavailable.
func (c *QueryCache) Key(collection string, query any) (string, bool) {
	if c == nil {
		return "", false
	}

	gen := c.generation(collection)
	payload, err := json.Marshal(query)
	if err != nil {
		return "", false
	}

	sum := xxh3.Hash(append([]byte(collection+"|"+gen+"|"), payload...))
	return fmt.Sprintf("q:%s:%s:%016x", collection, gen, sum), true
}

func (c *QueryCache) Get(key string, out any) bool {
	if c == nil {
		return false
	}
	item, err := c.mc.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(item.Value, out) == nil
}

func (c *QueryCache) Set(key string, value any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.mc.Set(&memcache.Item{Key: key, Value: payload, Expiration: queryCacheTTL})
}

// Invalidate rotates the collection's generation. Called after every mutation.
func (c *QueryCache) Invalidate(collection string) {
	if c == nil {
		return
	}
	key := "gen:" + collection
	if _, err := c.mc.Increment(key, 1); err != nil {
		_ = c.mc.Set(&memcache.Item{Key: key, Value: []byte("1")})
	}
}

func (c *QueryCache) generation(collection string) string {
	item, err := c.mc.Get("gen:" + collection)
	if err != nil {
		return "0"
	}
	if _, err := strconv.ParseUint(string(item.Value), 10, 64); err != nil {
		return "0"
	}
	return string(item.Value)
}

// searchPage is the cached shape of a list query result.
type searchPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
