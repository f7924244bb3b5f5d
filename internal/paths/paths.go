package paths

import (
	"DotEnv/internal/constants"
	"DotEnv/internal/version"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
)

func appDirName() string {
	return strings.ToLower(version.ApplicationName)
}

// GetConfigDir returns the absolute path to the application configuration directory
// (e.g., ~/.config/dotenv).
func GetConfigDir() string {
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appDirName())
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appDirName())
	}
	return filepath.Join(xdg.ConfigHome, appDirName())
}

// GetConfigFilePath returns the absolute path to the dotenv.toml file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetStateDir returns the absolute path to the application state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, appDirName())
	}
	return filepath.Join(xdg.StateHome, appDirName())
}

// GetDefaultLogFilePath returns the log file path inside the state directory.
func GetDefaultLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}
