package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/Gunvolt24/bidsvc/pkg/metrics"
	"github.com/google/uuid"
)

// Проверка, что кэш удовлетворяет порту приложения.
var _ ports.AuctionCache = (*StatusCacheTTL)(nil)

// partition — одна статусная партиция: записи по id + абсолютный срок жизни.
type partition struct {
	records   map[uuid.UUID]*domain.Auction
	expiresAt time.Time
}

// StatusCacheTTL — кэш аукционов, партиционированный по статусу.
// TTL абсолютный и действует на партицию целиком: отсчитывается от последней
// записи в партицию, чтение срок не продлевает. Истёкшая партиция на следующем
// обращении ведёт себя как отсутствующая.
//
// Все партиции защищены одним мьютексом, поэтому Upsert (запись в новую
// партицию + зачистка остальных) выполняется как одна критическая секция:
// инвариант «один id — ровно одна партиция» не нарушается даже при
// конкурирующих сменах статуса.
type StatusCacheTTL struct {
	ttl   time.Duration
	parts map[domain.AuctionStatus]*partition

	mu sync.Mutex
}

// NewStatusCacheTTL — конструктор; ttl <= 0 отключает истечение.
func NewStatusCacheTTL(ttl time.Duration) *StatusCacheTTL {
	return &StatusCacheTTL{
		ttl:   ttl,
		parts: make(map[domain.AuctionStatus]*partition),
	}
}

// GetByID — обход всех статусных партиций (их фиксированное малое число);
// первая найденная запись возвращается копией. Не мутирует кэш, кроме
// ленивого сброса истёкших партиций.
func (c *StatusCacheTTL) GetByID(_ context.Context, id uuid.UUID) (*domain.Auction, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, status := range domain.Statuses() {
		p := c.livePartition(status, now)
		if p == nil {
			continue
		}
		if a, ok := p.records[id]; ok {
			metrics.CacheOps.WithLabelValues("hit").Inc()
			return cloneAuction(a), true
		}
	}

	metrics.CacheOps.WithLabelValues("miss").Inc()
	return nil, false
}

// GetByStatus — полное содержимое одной партиции (копии записей);
// пустой срез при отсутствии или истечении партиции, это не ошибка.
func (c *StatusCacheTTL) GetByStatus(_ context.Context, status domain.AuctionStatus) []*domain.Auction {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.livePartition(status, now)
	if p == nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return []*domain.Auction{}
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	out := make([]*domain.Auction, 0, len(p.records))
	for _, a := range p.records {
		out = append(out, cloneAuction(a))
	}
	return out
}

// Upsert — записать аукцион в партицию его статуса (замена по id), затем
// убрать тот же id из остальных партиций. Обе стороны операции продлевают
// TTL затронутых партиций.
func (c *StatusCacheTTL) Upsert(_ context.Context, auction *domain.Auction) error {
	if auction == nil || auction.ID == uuid.Nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.ensurePartition(auction.Status, now)
	p.records[auction.ID] = cloneAuction(auction)
	p.expiresAt = c.expiryFrom(now)

	// Смена статуса: запись переезжает, а не дублируется.
	for _, status := range domain.Statuses() {
		if status == auction.Status {
			continue
		}
		other := c.livePartition(status, now)
		if other == nil {
			continue
		}
		if _, ok := other.records[auction.ID]; ok {
			delete(other.records, auction.ID)
			other.expiresAt = c.expiryFrom(now)
			metrics.CacheOps.WithLabelValues("moved").Inc()
		}
	}

	metrics.CacheSize.Set(float64(c.size(now)))
	return nil
}

// Insert — добавление заведомо новой записи без межпартиционной зачистки.
// Дешевле Upsert, но не восстанавливает инвариант, если id уже лежит
// в другой партиции.
func (c *StatusCacheTTL) Insert(_ context.Context, auction *domain.Auction) error {
	if auction == nil || auction.ID == uuid.Nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.ensurePartition(auction.Status, now)
	p.records[auction.ID] = cloneAuction(auction)
	p.expiresAt = c.expiryFrom(now)

	metrics.CacheSize.Set(float64(c.size(now)))
	return nil
}
