package cache

import (
	"fmt"
	"time"
	"walletfx/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RistrettoActivationCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewActivationCache keeps at most maxItems activations; ttl <= 0 means entries
// live until evicted by cost.
func NewActivationCache(maxItems int64, ttl time.Duration) (*RistrettoActivationCache, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("activation cache size must be positive, got %d", maxItems)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// cost is counted in activations, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create activation cache failed: %w", err)
	}
	return &RistrettoActivationCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoActivationCache) Get(id uuid.UUID) (domain.ViewSource, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		src, ok := v.(domain.ViewSource)
		return src, ok
	}
	return nil, false
}

// Set is synchronous so a freshly returned activation ID is immediately readable.
// A rejected activation stays readable while it is current, but not by ID afterwards.
func (c *RistrettoActivationCache) Set(id uuid.UUID, source domain.ViewSource) {
	var accepted bool
	if c.ttl > 0 {
		accepted = c.cache.SetWithTTL(id.String(), source, 1, c.ttl)
	} else {
		accepted = c.cache.Set(id.String(), source, 1)
	}
	if !accepted {
		logrus.WithField("activation_id", id).Debug("Activation cache rejected entry")
		return
	}
	c.cache.Wait()
}

func (c *RistrettoActivationCache) Close() { c.cache.Close() }
