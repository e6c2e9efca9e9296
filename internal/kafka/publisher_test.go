package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/kafka/mocks"
)

func testBid() *domain.Bid {
	return &domain.Bid{
		BidID:     uuid.New(),
		AuctionID: uuid.New(),
		BidderID:  uuid.New(),
		Amount:    decimal.NewFromInt(200),
		PlacedAt:  time.Now().UTC(),
	}
}

func TestPublish_KeyAndPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	bid := testBid()

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafkago.Message) error {
			if len(msgs) != 1 {
				t.Fatalf("want single message, got %d", len(msgs))
			}
			// ключ — id аукциона
			if string(msgs[0].Key) != bid.AuctionID.String() {
				t.Fatalf("key: want %s, got %s", bid.AuctionID, msgs[0].Key)
			}
			var got domain.Bid
			if err := json.Unmarshal(msgs[0].Value, &got); err != nil {
				t.Fatalf("payload is not valid json: %v", err)
			}
			if got.BidID != bid.BidID || !got.Amount.Equal(bid.Amount) {
				t.Fatalf("payload mismatch: %+v", got)
			}
			return nil
		})

	p := &Publisher{writer: w, log: nopLogger{}, topic: "bids"}
	if err := p.Publish(context.Background(), bid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublish_WriterError_Propagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	// одна попытка записи, внутренних ретраев нет
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down")).Times(1)

	p := &Publisher{writer: w, log: nopLogger{}, topic: "bids"}
	if err := p.Publish(context.Background(), testBid()); err == nil {
		t.Fatalf("expected error from writer")
	}
}

func TestPublisherClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	w.EXPECT().Close().Return(nil).Times(1)

	p := &Publisher{writer: w, log: nopLogger{}, topic: "bids"}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("repeated Close must be no-op, got %v", err)
	}
}
