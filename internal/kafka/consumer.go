package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/Gunvolt24/bidsvc/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// ErrAttemptsExhausted — терминальная ошибка: бюджет попыток подключения
// исчерпан, воркер останавливается и больше не ретраит. Остальная система
// продолжает работать на устаревающем кэше.
var ErrAttemptsExhausted = errors.New("kafka consumer: connection attempts exhausted")

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventApplier — зависимость на бизнес-логику,
// которая парсит/валидирует событие и применяет его к кэшу.
type eventApplier interface {
	ApplyFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — воркер синхронизации: обёртка над kafka.Reader + зависимостями
// (usecase, logger). Жизненный цикл — явный автомат: подключение
// (ограниченные попытки с фиксированной паузой) → чтение → остановка
// по отмене контекста либо терминальный отказ по исчерпании попыток.
type Consumer struct {
	reader         reader
	service        eventApplier
	log            ports.Logger
	processTimeout time.Duration
	retryBackoff   time.Duration
	maxAttempts    int
	closeOnce      sync.Once
}

// NewConsumer — конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, service eventApplier, log ports.Logger) *Consumer {
	reader := kafka.NewReader(cfg.ReaderConfig())

	// Параметры по умолчанию (если не заданы в конфиге)
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 5 * time.Second
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 50
	}

	return &Consumer{
		reader:         reader,
		service:        service,
		log:            log,
		processTimeout: pt,
		retryBackoff:   backoff,
		maxAttempts:    attempts,
	}
}

// Run — основной цикл:
//  1. читаем сообщение без авто-коммита; ошибка чтения трактуется как потеря
//     соединения — пауза retryBackoff (фиксированная, без экспоненты) и повтор;
//  2. успешное чтение обнуляет счётчик попыток;
//  3. успешная обработка → CommitMessages;
//  4. битое событие → лог и CommitMessages (пропускаем навсегда);
//  5. подряд maxAttempts неудачных чтений → ErrAttemptsExhausted (терминально).
//
// Отмена контекста проверяется на каждом ожидании; Run возвращает ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "sync consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	attempt := 0

	for {
		// Читаем сообщение (без автокоммита)
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			// Если контекст отменен -> выходим
			if ctx.Err() != nil {
				return ctx.Err()
			}
			attempt++
			if attempt >= c.maxAttempts {
				c.log.Errorf(ctx, "fetch failed after %d attempts, giving up: %v", attempt, fetchErr)
				return ErrAttemptsExhausted
			}
			c.log.Warnf(ctx, "fetch failed: %v (attempt %d/%d, retry in %s)", fetchErr, attempt, c.maxAttempts, c.retryBackoff)
			if !c.sleepOrDone(ctx, c.retryBackoff) {
				return ctx.Err()
			}
			continue
		}

		// Успешный FetchMessage -> соединение живо, счётчик попыток обнуляется
		attempt = 0
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		// Обрабатываем сообщение (с таймаутом внутри)
		if shouldCommit := c.handleMessage(ctx, rc.Topic, &msg); shouldCommit {
			c.commitSafely(ctx, &msg)
		}
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
