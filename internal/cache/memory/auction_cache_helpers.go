package memory

import (
	"time"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/pkg/metrics"
	"github.com/google/uuid"
)

// livePartition — живая партиция статуса или nil.
// Истёкшая партиция удаляется целиком (вместе с актуальными внутри записями).
func (c *StatusCacheTTL) livePartition(status domain.AuctionStatus, now time.Time) *partition {
	p, ok := c.parts[status]
	if !ok {
		return nil
	}
	if c.isExpired(p, now) {
		delete(c.parts, status)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(c.size(now)))
		return nil
	}
	return p
}

// ensurePartition — живая партиция статуса; создаётся при отсутствии.
func (c *StatusCacheTTL) ensurePartition(status domain.AuctionStatus, now time.Time) *partition {
	if p := c.livePartition(status, now); p != nil {
		return p
	}
	p := &partition{records: make(map[uuid.UUID]*domain.Auction)}
	c.parts[status] = p
	return p
}

// isExpired — проверяет истечение TTL партиции.
func (c *StatusCacheTTL) isExpired(p *partition, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(p.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *StatusCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// size — суммарное число записей в живых партициях.
func (c *StatusCacheTTL) size(now time.Time) int {
	total := 0
	for _, p := range c.parts {
		if !c.isExpired(p, now) {
			total += len(p.records)
		}
	}
	return total
}

// cloneAuction — возвращает копию записи, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneAuction(a *domain.Auction) *domain.Auction {
	if a == nil {
		return nil
	}
	cloned := *a
	return &cloned
}
