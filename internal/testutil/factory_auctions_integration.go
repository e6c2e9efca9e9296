//go:build integration

package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

// Мини-генератор валидного аукциона
func MakeAuction(opts ...func(*domain.Auction)) domain.Auction {
	a := domain.Auction{
		ID:         uuid.New(),
		Status:     domain.StatusActive,
		MinBid:     decimal.NewFromInt(100),
		CurrentBid: decimal.NewFromInt(100),
		EndDate:    time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func WithStatus(status domain.AuctionStatus) func(*domain.Auction) {
	return func(a *domain.Auction) { a.Status = status }
}

func WithCurrentBid(amount int64) func(*domain.Auction) {
	return func(a *domain.Auction) { a.CurrentBid = decimal.NewFromInt(amount) }
}
