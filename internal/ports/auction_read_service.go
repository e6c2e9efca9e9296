package ports

import (
	"context"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/google/uuid"
)

// AuctionReadService — сервис чтения аукционов для транспортного слоя.
type AuctionReadService interface {
	AuctionByID(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	ActiveAuctions(ctx context.Context) ([]*domain.Auction, error)
}
