// Пакет logger — адаптер zap под порт ports.Logger сервиса ставок.
// Каждая запись обогащается метаданными запроса из контекста (ctxmeta):
// request_id и, в сборке с тегом otel, trace_id/span_id.
package logger

import (
	"context"

	"github.com/Gunvolt24/bidsvc/pkg/ctxmeta"
	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap с контекстными полями запроса.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — создаёт логгер (production/development) и функцию сброса буферов.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		zl  *zap.Logger
		err error
	)

	if isProd {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	wrap := &ZapLogger{
		base:   zl,
		sugar:  zl.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return wrap.base.Sync() }
	return wrap, cleanup, nil
}

// withMeta — приклеивает к записи request_id/trace_id/span_id,
// если консьюмер или HTTP-слой положили их в контекст.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if ctx == nil {
		return s
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", tid)
	}
	if sid, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		s = s.With("span_id", sid)
	}
	return s
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
