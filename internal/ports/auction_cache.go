package ports

import (
	"context"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/google/uuid"
)

// AuctionCache — интерфейс кэша аукционов, партиционированного по статусу.
// Требования к реализации: потокобезопасность; возврат копий сущности;
// истёкшая партиция ведёт себя как отсутствующая (промах, а не ошибка).
type AuctionCache interface {
	// GetByID — найти аукцион в любой партиции; (auction, true) при попадании,
	// (nil, false) при промахе либо истечении TTL.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Auction, bool)

	// GetByStatus — полное содержимое одной партиции;
	// пустой срез, если партиция отсутствует или истекла.
	GetByStatus(ctx context.Context, status domain.AuctionStatus) []*domain.Auction

	// Upsert — записать аукцион в партицию его статуса (замена по id)
	// и убрать тот же id из всех остальных партиций.
	Upsert(ctx context.Context, auction *domain.Auction) error

	// Insert — добавить заведомо новую запись в партицию её статуса
	// без межпартиционной зачистки. Если запись уже есть в другой партиции,
	// инвариант «один id — одна партиция» не гарантируется: при сомнении — Upsert.
	Insert(ctx context.Context, auction *domain.Auction) error
}
