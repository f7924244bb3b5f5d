package constants

// File Names
const (
	EnvFileName       = ".env"
	AppConfigFileName = "dotenv.toml"
	LogFileName       = "dotenv.log"
)

// Output Formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Environment variables the example program reports after loading
const (
	HomeVar = "HOME"
)

// Display limits
const (
	// TableValueWidth is the widest value shown by the table command
	TableValueWidth = 60
)
