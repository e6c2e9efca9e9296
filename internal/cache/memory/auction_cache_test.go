package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

func newAuction(id uuid.UUID, status domain.AuctionStatus) *domain.Auction {
	return &domain.Auction{
		ID:         id,
		Status:     status,
		MinBid:     decimal.NewFromInt(100),
		CurrentBid: decimal.NewFromInt(150),
		EndDate:    time.Now().Add(24 * time.Hour),
	}
}

func TestGetByID_HitMiss(t *testing.T) {
	c := NewStatusCacheTTL(5 * time.Minute)
	ctx := context.Background()
	id := uuid.New()

	// miss до записи
	if _, ok := c.GetByID(ctx, id); ok {
		t.Fatalf("expected miss before Upsert")
	}

	// hit после Upsert
	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))
	got, ok := c.GetByID(ctx, id)
	if !ok || got.ID != id {
		t.Fatalf("expected hit for %s", id)
	}
}

func TestGetByStatus_EmptyOnMiss(t *testing.T) {
	c := NewStatusCacheTTL(5 * time.Minute)
	ctx := context.Background()

	// отсутствие партиции — пустой срез, не nil-паника
	got := c.GetByStatus(ctx, domain.StatusActive)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice on miss, got %v", got)
	}

	_ = c.Upsert(ctx, newAuction(uuid.New(), domain.StatusActive))
	_ = c.Upsert(ctx, newAuction(uuid.New(), domain.StatusActive))
	_ = c.Upsert(ctx, newAuction(uuid.New(), domain.StatusClosed))

	if got := c.GetByStatus(ctx, domain.StatusActive); len(got) != 2 {
		t.Fatalf("expected 2 active auctions, got %d", len(got))
	}
}

func TestUpsert_MovesBetweenPartitions(t *testing.T) {
	c := NewStatusCacheTTL(5 * time.Minute)
	ctx := context.Background()
	id := uuid.New()

	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))

	// смена статуса: запись переезжает, дубликата не остаётся
	closed := newAuction(id, domain.StatusClosed)
	_ = c.Upsert(ctx, closed)

	if got := c.GetByStatus(ctx, domain.StatusActive); len(got) != 0 {
		t.Fatalf("expected old partition cleaned, got %d records", len(got))
	}
	got := c.GetByStatus(ctx, domain.StatusClosed)
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("expected record in Closed partition")
	}

	// GetByID находит ровно одну (новую) версию
	byID, ok := c.GetByID(ctx, id)
	if !ok || byID.Status != domain.StatusClosed {
		t.Fatalf("expected Closed version by id, got %+v", byID)
	}
}

func TestUpsert_ReplacesByID(t *testing.T) {
	c := NewStatusCacheTTL(5 * time.Minute)
	ctx := context.Background()
	id := uuid.New()

	a := newAuction(id, domain.StatusActive)
	_ = c.Upsert(ctx, a)

	updated := newAuction(id, domain.StatusActive)
	updated.CurrentBid = decimal.NewFromInt(500)
	_ = c.Upsert(ctx, updated)

	got, _ := c.GetByID(ctx, id)
	if !got.CurrentBid.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected replaced record, got current_bid=%s", got.CurrentBid)
	}
	if len(c.GetByStatus(ctx, domain.StatusActive)) != 1 {
		t.Fatalf("expected single record after replace")
	}
}

func TestTTL_PartitionExpiry(t *testing.T) {
	c := NewStatusCacheTTL(100 * time.Millisecond)
	ctx := context.Background()
	id := uuid.New()

	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))
	if _, ok := c.GetByID(ctx, id); !ok {
		t.Fatalf("expected hit right after Upsert")
	}

	time.Sleep(150 * time.Millisecond)

	// истечение партиции — как будто её не было
	if _, ok := c.GetByID(ctx, id); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if got := c.GetByStatus(ctx, domain.StatusActive); len(got) != 0 {
		t.Fatalf("expected empty partition after TTL expires")
	}
}

func TestTTL_WriteRefreshesPartition(t *testing.T) {
	c := NewStatusCacheTTL(200 * time.Millisecond)
	ctx := context.Background()
	old := uuid.New()

	_ = c.Upsert(ctx, newAuction(old, domain.StatusActive))
	time.Sleep(120 * time.Millisecond)

	// запись в партицию продлевает срок и старой записи тоже
	_ = c.Upsert(ctx, newAuction(uuid.New(), domain.StatusActive))
	time.Sleep(120 * time.Millisecond)

	if _, ok := c.GetByID(ctx, old); !ok {
		t.Fatalf("expected old record alive after partition refresh")
	}
}

func TestTTL_ReadsDoNotRefresh(t *testing.T) {
	c := NewStatusCacheTTL(150 * time.Millisecond)
	ctx := context.Background()
	id := uuid.New()

	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))

	// читаем чаще, чем TTL — чтения срок не продлевают
	for i := 0; i < 4; i++ {
		time.Sleep(50 * time.Millisecond)
		c.GetByID(ctx, id)
	}
	if _, ok := c.GetByID(ctx, id); ok {
		t.Fatalf("expected miss: reads must not refresh TTL")
	}
}

func TestZeroTTL_DisablesExpiry(t *testing.T) {
	c := NewStatusCacheTTL(0)
	ctx := context.Background()
	id := uuid.New()

	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))
	time.Sleep(50 * time.Millisecond)
	if _, ok := c.GetByID(ctx, id); !ok {
		t.Fatalf("expected record alive with ttl=0")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewStatusCacheTTL(0)
	ctx := context.Background()
	id := uuid.New()

	_ = c.Upsert(ctx, newAuction(id, domain.StatusActive))

	// меняем то, что вернул GetByID — не должно влиять на кэш
	a1, _ := c.GetByID(ctx, id)
	a1.CurrentBid = decimal.NewFromInt(999999)

	a2, _ := c.GetByID(ctx, id)
	if a2.CurrentBid.Equal(decimal.NewFromInt(999999)) {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}

func TestUpsert_NilAndZeroID(t *testing.T) {
	c := NewStatusCacheTTL(0)
	ctx := context.Background()

	if err := c.Upsert(ctx, nil); err != nil {
		t.Fatalf("nil auction: %v", err)
	}
	if err := c.Upsert(ctx, &domain.Auction{}); err != nil {
		t.Fatalf("zero id: %v", err)
	}
	if got := c.GetByStatus(ctx, domain.StatusInactive); len(got) != 0 {
		t.Fatalf("nothing should be stored")
	}
}
