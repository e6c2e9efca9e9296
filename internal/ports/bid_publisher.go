package ports

import (
	"context"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

// BidPublisher — доставка принятой ставки во внешний канал.
// Семантика at-most-once: без внутренних ретраев, ошибка уходит вызывающему.
type BidPublisher interface {
	Publish(ctx context.Context, bid *domain.Bid) error
}
