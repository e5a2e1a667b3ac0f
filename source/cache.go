package source

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	mdb "github.com/skypies/manifestdb"
)

// A Cache memoizes the loaded table for the process lifetime. The load is
// single-flight: concurrent first callers all wait on the one in-flight
// load rather than kicking off their own. A failed load is NOT memoized,
// so a later request will try again once the config is fixed.
type Cache struct {
	loadFn func(context.Context) (*mdb.Table, error)

	group singleflight.Group
	mu    sync.RWMutex
	table *mdb.Table
}

func NewCache(cfg Config) *Cache {
	return &Cache{loadFn: cfg.Load}
}

// NewCacheFromTable returns a pre-populated cache; handy for the CLI and
// for tests that don't want a loader in the way.
func NewCacheFromTable(t *mdb.Table) *Cache {
	return &Cache{table: t}
}

// Table returns the memoized table, loading it on first use.
func (c *Cache) Table(ctx context.Context) (*mdb.Table, error) {
	c.mu.RLock()
	t := c.table
	c.mu.RUnlock()
	if t != nil {
		return t, nil
	}

	v, err, _ := c.group.Do("table", func() (interface{}, error) {
		// A previous flight may have landed while we queued for the group
		c.mu.RLock()
		t := c.table
		c.mu.RUnlock()
		if t != nil {
			return t, nil
		}

		t, err := c.loadFn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.table = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*mdb.Table), nil
}

func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table != nil
}
