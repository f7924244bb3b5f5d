package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "DotEnv"

// CommandName is the name of the executable command (e.g., "dotenv").
// It is initialized dynamically from the executable filename.
var CommandName = "dotenv"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X DotEnv/internal/version.Version=v1.YYYYMMDD.N"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	baseName := filepath.Base(os.Args[0])
	CommandName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// Fallback for dev runs (go run, go test)
	if strings.EqualFold(CommandName, ApplicationName) || strings.EqualFold(CommandName, "main") || strings.HasSuffix(CommandName, ".test") {
		CommandName = "dotenv"
	}
}
