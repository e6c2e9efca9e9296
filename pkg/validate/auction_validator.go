package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/google/uuid"
)

// Проверка, что AuctionValidator удовлетворяет интерфейсу AuctionValidator.
var _ ports.AuctionValidator = (*AuctionValidator)(nil)

// ErrInvalidAuction — базовая (sentinel error) ошибка валидации входящего
// события синхронизации. Консьюмер по ней отличает безнадёжно битое сообщение
// (пропустить навсегда) от временной ошибки (повторить).
var ErrInvalidAuction = errors.New("auction validation failed")

// AuctionValidator — доменная валидация записи аукциона из внешнего события.
type AuctionValidator struct{}

// NewAuctionValidator — конструктор AuctionValidator.
// Validate возвращает ErrInvalidAuction (с обёрнутой причиной) при любой проблеме.
func NewAuctionValidator() *AuctionValidator { return &AuctionValidator{} }

// Validate — проверяет корректность полей записи аукциона.
// Неизвестные поля во входном JSON не считаются ошибкой (внешний источник
// может расширять схему), проверяются только обязательные.
func (v *AuctionValidator) Validate(_ context.Context, auction *domain.Auction) error {
	if auction == nil {
		return fmt.Errorf("%w: запись не может быть nil", ErrInvalidAuction)
	}
	if auction.ID == uuid.Nil {
		return fmt.Errorf("%w: auction_id обязателен", ErrInvalidAuction)
	}
	if !knownStatus(auction.Status) {
		return fmt.Errorf("%w: неизвестный статус %q", ErrInvalidAuction, auction.Status)
	}
	if auction.MinBid.IsNegative() {
		return fmt.Errorf("%w: min_bid не может быть отрицательным", ErrInvalidAuction)
	}
	if auction.CurrentBid.IsNegative() {
		return fmt.Errorf("%w: current_bid не может быть отрицательным", ErrInvalidAuction)
	}
	return nil
}

func knownStatus(s domain.AuctionStatus) bool {
	for _, known := range domain.Statuses() {
		if s == known {
			return true
		}
	}
	return false
}
