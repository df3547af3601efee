package repository

import "testing"

func TestNilQueryCacheIsDisabled(t *testing.T) {
	var c *QueryCache

	if _, ok := c.Key("posts", map[string]int{"page": 1}); ok {
		t.Fatal("nil cache must not produce keys")
	}

	var out searchPage[int]
	if c.Get("q:posts:0:0", &out) {
		t.Fatal("nil cache must never hit")
	}

	// Writes and invalidations are no-ops, not panics.
	c.Set("q:posts:0:0", searchPage[int]{Items: []int{1}, Total: 1})
	c.Invalidate("posts")
}

func TestNewQueryCacheNilClient(t *testing.T) {
	if NewQueryCache(nil) != nil {
		t.Fatal("a cache without a client should collapse to the disabled form")
	}
}
