package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// RistrettoCurrencyIDCache keeps NB RB currency ids resolved by code.
// Ids are immutable on the bank side, so entries are never invalidated.
type RistrettoCurrencyIDCache struct {
	cache *ristretto.Cache
}

func NewCurrencyIDCache(maxItems int64) (*RistrettoCurrencyIDCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create currency id cache failed: %w", err)
	}
	return &RistrettoCurrencyIDCache{cache: c}, nil
}

func (c *RistrettoCurrencyIDCache) Get(code string) (int, bool) {
	if v, ok := c.cache.Get(code); ok {
		id, ok := v.(int)
		return id, ok
	}
	return 0, false
}

func (c *RistrettoCurrencyIDCache) Set(code string, currencyID int) {
	c.cache.Set(code, currencyID, 1)
}

func (c *RistrettoCurrencyIDCache) Close() { c.cache.Close() }
