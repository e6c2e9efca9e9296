package ports

import (
	"context"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

type AuctionValidator interface {
	Validate(ctx context.Context, auction *domain.Auction) error
}
