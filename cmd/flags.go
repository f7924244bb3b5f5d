package cmd

import (
	"github.com/spf13/pflag"
)

// InitFlags defines the pflags used for argument validation and help.
// Parsing itself is done by Parse, which groups flags with their command.
func InitFlags() {
	if pflag.Lookup("help") != nil {
		return
	}

	// Modifiers
	pflag.BoolP("verbose", "v", false, "Verbose output")
	pflag.BoolP("debug", "x", false, "Debug output")
	pflag.BoolP("no-overwrite", "n", false, "Keep variables that are already set")
	pflag.BoolP("skip-malformed", "k", false, "Skip malformed lines instead of stopping")
	pflag.BoolP("no-substitute", "N", false, "Do not resolve $NAME references")
	pflag.BoolP("help", "h", false, "Show help")

	// Loading
	pflag.StringP("env", "e", "", "Load env file(s)")
	pflag.StringP("watch", "w", "", "Load an env file and reload it on change")

	// Listing
	pflag.StringP("list", "l", "", "List variables loaded from env files")
	pflag.BoolP("list-all", "L", false, "List all environment variables")
	pflag.StringP("table", "t", "", "Show loaded variables as a table")
	pflag.StringP("output", "o", "", "Output format (text, json, yaml, toml)")

	// Reading
	pflag.StringP("get", "g", "", "Get variable value(s)")
	pflag.String("get-or", "", "Get variable value or a default")

	// Running
	pflag.String("exec", "", "Run a command with the loaded environment")

	// Information
	pflag.Bool("config-show", false, "Show configuration")
	pflag.BoolP("version", "V", false, "Show version")
}
