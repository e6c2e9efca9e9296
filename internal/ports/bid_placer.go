package ports

import (
	"context"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

// BidPlacer — протокол размещения ставки для транспортного слоя.
type BidPlacer interface {
	PlaceBid(ctx context.Context, req domain.BidRequest) (*domain.Bid, error)
}
