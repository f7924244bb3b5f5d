package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureDefault(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(&FanoutHandler{handlers: []slog.Handler{h}}))
	return &buf
}

func TestLogFormatsArgs(t *testing.T) {
	buf := captureDefault(t, LevelTrace)

	Notice(context.Background(), "Loaded %d variable(s) from '%s'", 3, ".env")
	if !strings.Contains(buf.String(), `msg="Loaded 3 variable(s) from '.env'"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestLogSplitsLines(t *testing.T) {
	buf := captureDefault(t, LevelTrace)

	Warn(context.Background(), []string{"first", "second"})
	if n := strings.Count(buf.String(), "level=WARN"); n != 2 {
		t.Errorf("got %d records; want 2:\n%s", n, buf.String())
	}
}

func TestLogRespectsLevel(t *testing.T) {
	buf := captureDefault(t, LevelNotice)

	Debug(context.Background(), "hidden")
	Trace(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output leaked: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"trace", LevelTrace, true},
		{"DEBUG", LevelDebug, true},
		{" info ", LevelInfo, true},
		{"", LevelNotice, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelNotice, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(LevelNotice)

	SetLevel(LevelDebug)
	if LevelVar.Level() != LevelDebug || FileLevelVar.Level() != LevelDebug {
		t.Errorf("SetLevel(Debug) = %v/%v", LevelVar.Level(), FileLevelVar.Level())
	}
	SetLevel(LevelWarn)
	if FileLevelVar.Level() != LevelInfo {
		t.Errorf("file level = %v; want Info", FileLevelVar.Level())
	}
}

func TestRecoverConvertsPanics(t *testing.T) {
	buf := captureDefault(t, LevelTrace)

	func() {
		defer func() {
			if _, ok := recover().(FatalError); !ok {
				t.Errorf("Recover did not re-panic with FatalError")
			}
		}()
		func() {
			defer Recover(context.Background())
			panic("unexpected")
		}()
	}()

	if !strings.Contains(buf.String(), "panic: unexpected") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}
