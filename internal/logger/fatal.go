package logger

import (
	"DotEnv/internal/version"
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:             %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:               %s", runtime.GOOS))

	currentUser, err := user.Current()
	if err == nil {
		info = append(info, fmt.Sprintf("DETECTED_UNAME:   %s", currentUser.Username))
		info = append(info, fmt.Sprintf("DETECTED_HOMEDIR: %s", currentUser.HomeDir))
	} else {
		info = append(info, fmt.Sprintf("User Info Error: %v", err))
	}

	return info
}

// fatalWithStack skips the given number of frames above runtime.Callers.
func fatalWithStack(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			infoLines = append(infoLines, "  "+i)
		} else {
			infoLines = append(infoLines, "")
		}
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	width := len(fmt.Sprintf("%d", len(allFrames)-1))
	wd, _ := os.Getwd()

	// Main (last) -> Fatal (first)
	var traceLines []string
	indent := ""
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]

		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil {
				if !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, string(filepath.Separator)) {
					frame.File = "./" + filepath.ToSlash(rel)
				}
			}
		}

		suffix := ""
		arrowIndent := indent
		if i < len(allFrames)-1 {
			suffix = "└>"
			if len(indent) >= 2 {
				arrowIndent = indent[:len(indent)-2]
			}
		}

		line := fmt.Sprintf("{{_TraceFrameNumber_}}%*d{{|-|}}: %s{{_TraceFrameLines_}}%s{{|-|}}{{_TraceSourceFile_}}%s{{|-|}}:{{_TraceLineNumber_}}%d{{|-|}} ({{_TraceFunction_}}%s{{|-|}})",
			width, i,
			arrowIndent,
			suffix,
			frame.File,
			frame.Line,
			filepath.Base(frame.Function),
		)
		traceLines = append(traceLines, "  "+line)
		indent += "  "
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(resolveMsg(msg), args...)
	}

	output := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
	}
	logAt(ctx, now, LevelFatal, output)

	panic(FatalError{})
}

// Recover traps panics and displays them using the Fatal stack trace.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		if _, ok := r.(FatalError); ok {
			// Already reported; let the caller's recovery see it
			panic(r)
		}
		// Skip Recover and runtime.gopanic
		fatalWithStack(ctx, 3, "panic: %v", r)
	}
}
