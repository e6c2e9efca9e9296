package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
)

// ValidateAuctionFromJSON — строгая валидация события аукциона из JSON.
// В отличие от консьюмера (который терпит неизвестные поля), офлайн-проверка
// строгая: лишние поля и хвостовые данные считаются ошибкой.
func ValidateAuctionFromJSON(ctx context.Context, validator ports.AuctionValidator, raw []byte) (*domain.Auction, error) {
	var auction domain.Auction
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&auction); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &auction); err != nil {
		return nil, err
	}
	return &auction, nil
}
