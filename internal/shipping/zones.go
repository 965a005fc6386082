package shipping

import (
	"context"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/pkg/cache"
)

const zonesKey = "zones"

// CachedZones serves zone reference data from memory and reloads it from the
// underlying source once the entry expires.
type CachedZones struct {
	source ZoneSource
	cache  *cache.LRUCache[[]entities.ShippingZone]
}

func NewCachedZones(source ZoneSource, ttl time.Duration) *CachedZones {
	return &CachedZones{
		source: source,
		cache:  cache.NewLRUCache[[]entities.ShippingZone](1, ttl),
	}
}

func (c *CachedZones) Zones(ctx context.Context) ([]entities.ShippingZone, error) {
	if zones, ok := c.cache.Get(zonesKey); ok {
		return zones, nil
	}
	zones, err := c.source.Zones(ctx)
	if err != nil {
		return nil, err
	}
	// an empty table is a configuration error; don't pin it in the cache
	if len(zones) > 0 {
		c.cache.Set(zonesKey, zones)
	}
	return zones, nil
}

func (c *CachedZones) Invalidate() {
	c.cache.Delete(zonesKey)
}

func (c *CachedZones) Start(ctx context.Context) error {
	return c.cache.Start(ctx)
}

func (c *CachedZones) Stop() error {
	return c.cache.Stop()
}

// StaticZones is a fixed zone table.
type StaticZones []entities.ShippingZone

func (s StaticZones) Zones(context.Context) ([]entities.ShippingZone, error) {
	return s, nil
}
