package config

import (
	"DotEnv/internal/constants"
	"DotEnv/internal/logger"
	"DotEnv/internal/paths"
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Load   LoadConfig   `toml:"load"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// These are helper fields for runtime use, not saved to TOML
	EnvFile string `toml:"-"`
	LogFile string `toml:"-"`
}

// LoadConfig holds the defaults used when loading env files.
type LoadConfig struct {
	File          string `toml:"file"`
	Overwrite     bool   `toml:"overwrite"`
	SkipMalformed bool   `toml:"skip_malformed"`
	Substitute    bool   `toml:"substitute"`
}

// OutputConfig holds settings for listing output.
type OutputConfig struct {
	Format         string `toml:"format"` // text, json, yaml or toml
	LineCharacters bool   `toml:"line_characters"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `toml:"file"` // empty logs to dotenv.log in the state directory
	Level string `toml:"level"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	conf := AppConfig{
		Load: LoadConfig{
			File:       constants.EnvFileName,
			Overwrite:  true,
			Substitute: true,
		},
		Output: OutputConfig{
			Format:         constants.FormatText,
			LineCharacters: true,
		},
		Log: LogConfig{
			Level: "notice",
		},
	}
	conf.expand()
	return conf
}

func (c *AppConfig) expand() {
	c.EnvFile = ExpandVariables(c.Load.File)
	c.LogFile = ExpandVariables(c.Log.File)
	if c.LogFile == "" {
		c.LogFile = paths.GetDefaultLogFilePath()
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// Any other name is looked up in the environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file is created with the defaults; an unreadable or invalid
// one is reported and the defaults are used.
func LoadAppConfig(ctx context.Context) AppConfig {
	conf := Defaults()
	path := paths.GetConfigFilePath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := SaveAppConfig(conf); err != nil {
				logger.Debug(ctx, "Could not write default configuration to '{{_File_}}%s{{|-|}}': %v", path, err)
			}
		} else {
			logger.Warn(ctx, "Could not read '{{_File_}}%s{{|-|}}': %v", path, err)
		}
		return conf
	}

	if err := toml.Unmarshal(data, &conf); err != nil {
		logger.Warn(ctx, "Invalid configuration in '{{_File_}}%s{{|-|}}', using defaults: %v", path, err)
		return Defaults()
	}

	conf.Output.Format = strings.ToLower(conf.Output.Format)
	conf.expand()
	return conf
}

// SaveAppConfig writes the configuration to dotenv.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
