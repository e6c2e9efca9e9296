package logger

import (
	"context"
	"testing"

	"github.com/Gunvolt24/bidsvc/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)
	return &ZapLogger{base: base, sugar: base.Sugar()}, logs
}

// TestInfof_AttachesRequestID — request_id из контекста попадает в поля записи.
func TestInfof_AttachesRequestID(t *testing.T) {
	zl, logs := newObserved()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-42")
	zl.Infof(ctx, "bid accepted auction=%s", "a1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "bid accepted auction=a1" {
		t.Fatalf("message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Fatalf("request_id field: %v", got)
	}
}

// TestErrorf_NoMetaInContext — без метаданных запись остаётся без доп. полей.
func TestErrorf_NoMetaInContext(t *testing.T) {
	zl, logs := newObserved()

	zl.Errorf(context.Background(), "sync failed: %v", "boom")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("level: %v", entries[0].Level)
	}
	if _, ok := entries[0].ContextMap()["request_id"]; ok {
		t.Fatalf("request_id must be absent without context metadata")
	}
}

// TestWarnf_NilContext — nil-контекст не должен приводить к панике.
func TestWarnf_NilContext(t *testing.T) {
	zl, logs := newObserved()

	var nilCtx context.Context
	zl.Warnf(nilCtx, "stale cache")

	if len(logs.All()) != 1 {
		t.Fatalf("want 1 entry, got %d", len(logs.All()))
	}
}
