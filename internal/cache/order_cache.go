package cache

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

// OrderCache holds the latest order snapshot. It is only ever replaced
// wholesale; readers get copies and never see a half-applied snapshot.
type OrderCache struct {
	mu         sync.RWMutex
	orders     []orders.Order
	index      map[string]int
	replacedAt time.Time
	logger     *zap.Logger
}

func NewOrderCache(logger *zap.Logger) *OrderCache {
	return &OrderCache{
		orders: []orders.Order{},
		index:  make(map[string]int),
		logger: logger,
	}
}

// Replace swaps in a new snapshot. Orders whose code already appeared earlier
// in the snapshot are dropped and their codes returned.
func (c *OrderCache) Replace(list []orders.Order, at time.Time) []string {
	next := make([]orders.Order, 0, len(list))
	index := make(map[string]int, len(list))
	var dropped []string

	for _, o := range list {
		if _, dup := index[o.Code]; dup {
			dropped = append(dropped, o.Code)
			continue
		}
		index[o.Code] = len(next)
		next = append(next, o.Clone())
	}

	c.mu.Lock()
	c.orders = next
	c.index = index
	c.replacedAt = at
	c.mu.Unlock()

	metrics.OrderCacheItems.Set(float64(len(next)))
	if len(dropped) > 0 {
		metrics.DuplicateOrdersTotal.Add(float64(len(dropped)))
		c.logger.Warn("Cache: dropped duplicate order codes", zap.Strings("codes", dropped))
	}
	c.logger.Debug("Cache: replaced snapshot", zap.Int("orders", len(next)))

	return dropped
}

func (c *OrderCache) Get(code string) (orders.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, found := c.index[code]
	if !found {
		return orders.Order{}, false
	}
	return c.orders[i].Clone(), true
}

// All returns a copy of the snapshot in feed order.
func (c *OrderCache) All() []orders.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]orders.Order, len(c.orders))
	for i, o := range c.orders {
		out[i] = o.Clone()
	}
	return out
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

func (c *OrderCache) ReplacedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.replacedAt
}
