package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/Gunvolt24/bidsvc/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет порту приложения.
var _ ports.BidPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer для подмены моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Publisher — отправка принятых ставок в Kafka-топик.
// Семантика at-most-once: одна попытка записи, без внутренних ретраев;
// ошибка уходит вызывающему. kafka.Writer переиспользуется между вызовами
// и безопасен для конкурентного использования.
type Publisher struct {
	writer    writer
	log       ports.Logger
	topic     string
	closeOnce sync.Once
}

// NewPublisher — конструктор. RequireAll: запись подтверждается всеми репликами.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	return &Publisher{writer: w, log: log, topic: cfg.Topic}
}

// Publish — сериализовать ставку и отправить одним сообщением.
// Ключ — id аукциона, чтобы ставки одного аукциона попадали в одну партицию.
func (p *Publisher) Publish(ctx context.Context, bid *domain.Bid) error {
	raw, err := json.Marshal(bid)
	if err != nil {
		return fmt.Errorf("marshal bid: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(bid.AuctionID.String()),
		Value: raw,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write bid message: %w", err)
	}

	metrics.BidsPublished.WithLabelValues(p.topic).Inc()
	p.log.Infof(ctx, "bid published bid=%s auction=%s topic=%s", bid.BidID, bid.AuctionID, p.topic)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
