package scenic

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Error("configured logger did not receive the record")
	}

	// Nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestSetLoggerUsedByScene(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	sc := NewScene(Black, 10, 10)
	sc.StartLayer(MixNormal, CompositeSourceOver, Circle{Radius: 1}, Identity(), nil, 1)
	if err := sc.Finish(); err == nil {
		t.Fatal("Finish() with an open layer should fail")
	}

	if !strings.Contains(buf.String(), "open layers") {
		t.Error("unbalanced Finish should log a diagnostic")
	}
}
