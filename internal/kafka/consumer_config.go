package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string

	ProcessTimeout time.Duration // таймаут обработки одного события
	RetryBackoff   time.Duration // фиксированная пауза между попытками подключения
	MaxAttempts    int           // бюджет попыток до терминального отказа
}

// ReaderConfig — конфигурация kafka.Reader: ручной коммит оффсетов
// (CommitInterval=0), StartOffset нормализуется ("first" → с начала,
// всё остальное → только новые).
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
