package logger

import (
	"DotEnv/internal/console"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// logAt formats msg and hands one record per line to the default handler.
// Tags in the message are rendered by each handler.
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}

	for i, line := range strings.Split(msgStr, "\n") {
		r := slog.NewRecord(t, level, line, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	// File level should be at least Info, or lower if Debug is requested
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

// ParseLevel converts a level name (trace, debug, info, notice, warn,
// error) to a level. Unknown names return LevelNotice and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "notice", "":
		return LevelNotice, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelNotice, false
}

func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	case LevelFatal:
		return "[FATAL ]"
	}
	return "[" + level.String() + "]"
}

func levelColor(level slog.Level) string {
	switch level {
	case LevelTrace, LevelDebug, LevelInfo:
		return console.CodeBlue
	case LevelNotice:
		return console.CodeGreen
	case LevelWarn:
		return console.CodeYellow
	case LevelError:
		return console.CodeRed
	case LevelFatal:
		return console.CodeRedBg + console.CodeWhite
	}
	return ""
}

// NewLogger builds the console handler on stderr and, if logFilePath is
// not empty, a plain-text file handler. The file is truncated.
func NewLogger(logFilePath string) *slog.Logger {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.LevelKey:
			level := a.Value.Any().(slog.Level)
			label := levelLabel(level)
			if isTTY {
				label = levelColor(level) + label + console.CodeReset
			}
			a.Value = slog.StringValue(label + "  ")
		case slog.MessageKey:
			msg := console.Render(a.Value.String(), isTTY)
			if isTTY {
				// Prevent color bleed into the next record
				msg += console.CodeReset
			}
			a.Value = slog.StringValue(msg)
		}
		return a
	}

	consoleHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttrConsole,
	})

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log folder: %v\n", err)
		}
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFile = f

			replaceAttrFile := func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Value = slog.StringValue(levelLabel(a.Value.Any().(slog.Level)) + "  ")
				case slog.MessageKey:
					a.Value = slog.StringValue(console.Strip(a.Value.String()))
				}
				return a
			}

			handlers = append(handlers, tint.NewHandler(f, &tint.Options{
				Level:       FileLevelVar,
				TimeFormat:  "2006-01-02 15:04:05",
				NoColor:     true,
				ReplaceAttr: replaceAttrFile,
			}))
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// Cleanup closes the log file, if one was opened.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Display prints msg to stdout, outside the log stream.
func Display(ctx context.Context, msg any, args ...any) {
	msgStr := resolveMsg(msg)
	if len(args) > 0 {
		msgStr = fmt.Sprintf(msgStr, args...)
	}
	console.Println(msgStr)
}
