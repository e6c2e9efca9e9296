package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/Gunvolt24/bidsvc/pkg/metrics"
	"github.com/Gunvolt24/bidsvc/pkg/validate"
	"github.com/google/uuid"
)

// Проверка, что сервис закрывает порт чтения для транспортного слоя.
var _ ports.AuctionReadService = (*BidService)(nil)

// Типизированные причины отказа в ставке. Стабильная часть контракта:
// транспортный слой превращает их в коды ответа.
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrAuctionNotActive = errors.New("auction not active")
	ErrBidTooLow        = errors.New("bid too low")
)

// BidService — прикладная логика ставок (без знаний о транспорте):
// протокол размещения ставки и применение событий синхронизации к кэшу.
type BidService struct {
	cache     ports.AuctionCache     // прямой доступ к кэшу
	publisher ports.BidPublisher     // отправка принятых ставок
	log       ports.Logger           // прямой доступ к логгеру
	validator ports.AuctionValidator // валидация входящих событий

	// Пер-аукционная сериализация read-validate-write:
	// конкурирующие ставки на один аукцион разрешаются детерминированно,
	// меньшая не перетирает уже принятую большую.
	// Фиксированный пул полосатых мьютексов — память не растёт с числом
	// аукционов, коллизия полос лишь добавляет сериализации.
	locks [lockStripes]sync.Mutex
}

// lockStripes — размер пула мьютексов для пер-аукционной сериализации.
const lockStripes = 256

// NewBidService — DI-конструктор.
func NewBidService(
	cache ports.AuctionCache,
	publisher ports.BidPublisher,
	log ports.Logger,
	validator ports.AuctionValidator,
) *BidService {
	return &BidService{
		cache:     cache,
		publisher: publisher,
		log:       log,
		validator: validator,
	}
}

// PlaceBid — проверить и зафиксировать одну ставку по текущему состоянию кэша.
// Шаги:
//  1. чтение записи аукциона из кэша;
//  2. отказы: ErrAuctionNotFound / ErrAuctionNotActive / ErrBidTooLow
//     (ставка проходит при amount >= minBid И amount > currentBid, равная отклоняется);
//  3. фиксация: CurrentBid = amount, Upsert в ту же партицию;
//  4. отправка Bid во внешний канал.
//
// Ошибка публикации возвращается вызывающему, но запись в кэше уже обновлена —
// отката нет, это принятое окно рассинхронизации.
func (s *BidService) PlaceBid(ctx context.Context, req domain.BidRequest) (*domain.Bid, error) {
	s.log.Infof(ctx, "bid received auction=%s bidder=%s amount=%s",
		req.AuctionID, req.BidderID, req.Amount)

	unlock := s.lockAuction(req.AuctionID)
	defer unlock()

	auction, found := s.cache.GetByID(ctx, req.AuctionID)
	if !found {
		s.log.Warnf(ctx, "bid rejected: auction not found auction=%s", req.AuctionID)
		metrics.BidsRejected.WithLabelValues("not_found").Inc()
		return nil, ErrAuctionNotFound
	}

	if auction.Status != domain.StatusActive {
		s.log.Warnf(ctx, "bid rejected: auction not active auction=%s status=%s", auction.ID, auction.Status)
		metrics.BidsRejected.WithLabelValues("not_active").Inc()
		return nil, ErrAuctionNotActive
	}

	if req.Amount.LessThan(auction.MinBid) || !req.Amount.GreaterThan(auction.CurrentBid) {
		s.log.Warnf(ctx, "bid rejected: too low auction=%s amount=%s min_bid=%s current_bid=%s",
			auction.ID, req.Amount, auction.MinBid, auction.CurrentBid)
		metrics.BidsRejected.WithLabelValues("too_low").Inc()
		return nil, ErrBidTooLow
	}

	// Единственная мутация этого пути: статус не меняется,
	// Upsert остаётся заменой в той же партиции.
	auction.CurrentBid = req.Amount
	if err := s.cache.Upsert(ctx, auction); err != nil {
		s.log.Errorf(ctx, "cache.Upsert failed auction=%s err=%v", auction.ID, err)
		return nil, fmt.Errorf("failed to commit bid: %w", err)
	}
	s.log.Infof(ctx, "auction updated auction=%s current_bid=%s", auction.ID, auction.CurrentBid)

	bid := &domain.Bid{
		BidID:     uuid.New(),
		AuctionID: req.AuctionID,
		BidderID:  req.BidderID,
		Amount:    req.Amount,
		PlacedAt:  time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, bid); err != nil {
		s.log.Errorf(ctx, "publish failed bid=%s auction=%s err=%v", bid.BidID, bid.AuctionID, err)
		return nil, fmt.Errorf("failed to publish bid: %w", err)
	}

	metrics.BidsPlaced.Inc()
	s.log.Infof(ctx, "bid placed bid=%s auction=%s amount=%s", bid.BidID, bid.AuctionID, bid.Amount)
	return bid, nil
}

// ApplyFromMessage — применить событие синхронизации, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. толерантный парсинг JSON (неизвестные поля допускаются);
//  2. доменная валидация (вернёт validate.ErrInvalidAuction — сообщение пропускается навсегда);
//  3. запись в кэш: если id уже есть в какой-то партиции — Upsert (с переездом
//     между партициями при смене статуса), иначе Insert.
//
// Это единственный путь, по которому в систему входят смены статуса аукциона.
func (s *BidService) ApplyFromMessage(ctx context.Context, raw []byte) error {
	var auction domain.Auction
	if err := json.Unmarshal(raw, &auction); err != nil {
		s.log.Warnf(ctx, "invalid sync event err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidAuction, err)
	}

	if err := s.validator.Validate(ctx, &auction); err != nil {
		s.log.Warnf(ctx, "sync event validation failed auction=%s err=%v", auction.ID, err)
		return err
	}

	if _, found := s.cache.GetByID(ctx, auction.ID); found {
		if err := s.cache.Upsert(ctx, &auction); err != nil {
			s.log.Errorf(ctx, "cache.Upsert failed auction=%s err=%v", auction.ID, err)
			return fmt.Errorf("failed to upsert auction: %w", err)
		}
		s.log.Infof(ctx, "auction updated from sync auction=%s status=%s", auction.ID, auction.Status)
		return nil
	}

	if err := s.cache.Insert(ctx, &auction); err != nil {
		s.log.Errorf(ctx, "cache.Insert failed auction=%s err=%v", auction.ID, err)
		return fmt.Errorf("failed to insert auction: %w", err)
	}
	s.log.Infof(ctx, "auction added from sync auction=%s status=%s", auction.ID, auction.Status)
	return nil
}

// AuctionByID — прочитать запись аукциона из кэша.
// Возвращает (*Auction, nil) или (nil, nil), если записи нет: промах кэша — не ошибка.
func (s *BidService) AuctionByID(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	auction, found := s.cache.GetByID(ctx, id)
	if !found {
		return nil, nil
	}
	return auction, nil
}

// ActiveAuctions — список аукционов в партиции Active (пустой список при промахе).
func (s *BidService) ActiveAuctions(ctx context.Context) ([]*domain.Auction, error) {
	return s.cache.GetByStatus(ctx, domain.StatusActive), nil
}

// lockAuction — взять мьютекс полосы аукциона; возвращает функцию освобождения.
func (s *BidService) lockAuction(id uuid.UUID) func() {
	mu := &s.locks[stripeIndex(id)]
	mu.Lock()
	return mu.Unlock
}

// stripeIndex — детерминированная полоса для id аукциона.
func stripeIndex(id uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write(id[:])
	return int(h.Sum32() % lockStripes)
}
