package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuctionStatus — статус аукциона; определяет партицию кэша, в которой лежит запись.
type AuctionStatus string

const (
	StatusInactive AuctionStatus = "Inactive"
	StatusActive   AuctionStatus = "Active"
	StatusClosed   AuctionStatus = "Closed"
)

// Statuses — полный набор статусов (порядок фиксирован, используется при обходе партиций).
func Statuses() []AuctionStatus {
	return []AuctionStatus{StatusInactive, StatusActive, StatusClosed}
}

// ParseStatus — разбирает статус из строки (без учёта регистра)
// или из числового значения исходного enum (0/1/2).
func ParseStatus(raw string) (AuctionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inactive", "0":
		return StatusInactive, true
	case "active", "1":
		return StatusActive, true
	case "closed", "2":
		return StatusClosed, true
	}
	return "", false
}

// UnmarshalJSON — принимает как имя статуса ("Active", регистр не важен),
// так и числовое значение (1); внешний источник шлёт и то, и другое.
func (s *AuctionStatus) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		var asInt int
		if intErr := json.Unmarshal(data, &asInt); intErr != nil {
			return fmt.Errorf("auction status: %w", err)
		}
		asString = fmt.Sprintf("%d", asInt)
	}
	parsed, ok := ParseStatus(asString)
	if !ok {
		// Неизвестный статус оставляем как есть — отбраковка происходит в валидаторе.
		*s = AuctionStatus(asString)
		return nil
	}
	*s = parsed
	return nil
}

// Auction — запись аукциона в том виде, в котором её хранит кэш.
// Источник истины по статусам — внешний сервис аукционов;
// локально меняется только CurrentBid (при принятом ставке).
type Auction struct {
	ID         uuid.UUID       `json:"auction_id"`
	Status     AuctionStatus   `json:"status"`
	MinBid     decimal.Decimal `json:"min_bid"`
	CurrentBid decimal.Decimal `json:"current_bid"`
	EndDate    time.Time       `json:"end_date"`
}
