package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/bidsvc/internal/domain"
	"github.com/Gunvolt24/bidsvc/internal/ports"
	"github.com/Gunvolt24/bidsvc/internal/usecase"
	"github.com/Gunvolt24/bidsvc/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обвязка над прикладным слоем: читает аукционы из кэша
// и транслирует результат размещения ставки в коды ответа.
type Handler struct {
	reads          ports.AuctionReadService
	bids           ports.BidPlacer
	log            ports.Logger
	handlerTimeout time.Duration
}

func NewHandler(reads ports.AuctionReadService, bids ports.BidPlacer, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{reads: reads, bids: bids, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — маршруты и middleware; otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/auctions/active", h.listActiveAuctions)
	r.GET("/auction/:id", h.getAuctionByID)
	r.POST("/auction/:id/bid", h.placeBid)

	return r
}

// placeBidRequest — тело POST /auction/:id/bid.
type placeBidRequest struct {
	BidderID uuid.UUID       `json:"bidder_id"`
	Amount   decimal.Decimal `json:"amount"`
}

func (h *Handler) listActiveAuctions(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	auctions, err := h.reads.ActiveAuctions(ctx)
	if err != nil {
		h.log.Errorf(ctx, "ActiveAuctions failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	// Промах кэша — пустой список, не ошибка.
	c.JSON(http.StatusOK, auctions)
}

func (h *Handler) getAuctionByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auction id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	auction, err := h.reads.AuctionByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "AuctionByID failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if auction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "auction not found"})
		return
	}
	c.JSON(http.StatusOK, auction)
}

func (h *Handler) placeBid(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auction id"})
		return
	}

	var body placeBidRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.BidderID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bidder_id is required"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	bid, err := h.bids.PlaceBid(ctx, domain.BidRequest{
		AuctionID: auctionID,
		BidderID:  body.BidderID,
		Amount:    body.Amount,
	})
	if err != nil {
		h.rejectBid(c, ctx, auctionID, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

// rejectBid — типизированные причины отказа → стабильные коды и reason-строки.
func (h *Handler) rejectBid(c *gin.Context, ctx context.Context, auctionID uuid.UUID, err error) {
	switch {
	case errors.Is(err, usecase.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "auction not found", "reason": "AuctionNotFound"})
	case errors.Is(err, usecase.ErrAuctionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "auction not active", "reason": "AuctionNotActive"})
	case errors.Is(err, usecase.ErrBidTooLow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "bid too low", "reason": "BidTooLow"})
	default:
		h.log.Errorf(ctx, "PlaceBid failed auction=%s err=%v", auctionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestContext — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.handlerTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.handlerTimeout)
}
