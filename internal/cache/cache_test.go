package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}
}

func TestCacheSetReplaces(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d; want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d; want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d; want 42", v)
	}
	if calls != 1 {
		t.Errorf("create ran %d times; want 1", calls)
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	c := New[string, int](4)

	for i := 0; i < 4; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	// Touch "0" so "1" becomes the oldest.
	c.Get("0")

	// Exceed the soft limit; eviction drops to 3/4 of the limit (3).
	c.Set("4", 4)

	if c.Len() != 3 {
		t.Fatalf("Len() after eviction = %d; want 3", c.Len())
	}
	if _, ok := c.Get("1"); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok := c.Get("0"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("4"); !ok {
		t.Error("newest entry was evicted")
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[string, int](0)

	for i := 0; i < 1000; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	if c.Len() != 1000 {
		t.Errorf("Len() = %d; want 1000 (no eviction with softLimit 0)", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear")
	}

	// The cache stays usable after Clear.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", v, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (g*7 + i) % 100
				c.GetOrCreate(key, func() int { return key * 2 })
				if v, ok := c.Get(key); ok && v != key*2 {
					t.Errorf("Get(%d) = %d; want %d", key, v, key*2)
				}
			}
		}(g)
	}
	wg.Wait()
}
