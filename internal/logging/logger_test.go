package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "debug"})

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); !enabled {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if got := parseLevel("not-a-level"); got != slog.LevelInfo {
		t.Fatalf("expected info fallback, got %v", got)
	}
}

func TestFromContextReturnsStoredLogger(t *testing.T) {
	base := NewLogger(Config{})
	stored := base.With(slog.String(FieldLeagueID, "42"))

	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, base); got != stored {
		t.Fatal("expected stored logger from context")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	base := NewLogger(Config{})

	if got := FromContext(context.Background(), base); got != base {
		t.Fatal("expected fallback logger when none stored")
	}
	if got := FromContext(nil, base); got != base { //nolint:staticcheck // nil ctx is part of the contract
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}
