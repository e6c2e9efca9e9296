package validate

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func minimalValidAuctionJSON(id uuid.UUID, status string) string {
	return `{
  "auction_id": "` + id.String() + `",
  "status": "` + status + `",
  "min_bid": "100",
  "current_bid": "150",
  "end_date": "2026-09-01T12:00:00Z"
}`
}

func TestValidateAuctionFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewAuctionValidator()

	id := uuid.New()
	auction, err := ValidateAuctionFromJSON(ctx, validator, []byte(minimalValidAuctionJSON(id, "Active")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auction.ID != id {
		t.Fatalf("unexpected auction id: %s", auction.ID)
	}
}

func TestValidateAuctionFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewAuctionValidator()

	// строгий режим: лишние поля — ошибка (в отличие от консьюмера)
	raw := `{"unknown":"x",` + minimalValidAuctionJSON(uuid.New(), "Active")[1:]
	_, err := ValidateAuctionFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateAuctionFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewAuctionValidator()

	raw := minimalValidAuctionJSON(uuid.New(), "Active") + "{}"
	_, err := ValidateAuctionFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateAuctionFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewAuctionValidator()

	// Не валиден: неизвестный статус
	raw := minimalValidAuctionJSON(uuid.New(), "Paused")
	_, err := ValidateAuctionFromJSON(ctx, validator, []byte(raw))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}
