package console

// Raw ANSI Color Codes
const (
	CodeReset     = "\033[0m"
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"

	CodeRed    = "\033[31m"
	CodeGreen  = "\033[32m"
	CodeYellow = "\033[33m"
	CodeBlue   = "\033[34m"
	CodeWhite  = "\033[37m"
	CodeRedBg  = "\033[41m"
)

// ansiColors maps color names to the ANSI palette index termenv expects.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// semanticStyles maps semantic tags ({{_Name_}}) to fg:bg:flags style codes.
// Keys are lower case.
var semanticStyles = map[string]string{
	"applicationname":        "cyan::b",
	"version":                "cyan",
	"file":                   "cyan::b",
	"folder":                 "cyan::b",
	"var":                    "magenta",
	"value":                  "green",
	"runningcommand":         "green::b",
	"failingcommand":         "red",
	"usercommand":            "yellow::b",
	"usercommanderror":       "red::u",
	"usercommanderrormarker": "red",
	"usagecommand":           "yellow::b",
	"usageoption":            "yellow",
	"usagefile":              "cyan::b",
	"usagevar":               "magenta",
	"traceheader":            "red",
	"tracefooter":            "red",
	"traceframenumber":       "red",
	"traceframelines":        "red",
	"tracesourcefile":        "cyan::b",
	"tracelinenumber":        "yellow::b",
	"tracefunction":          "green::b",
	"fatalfooter":            "-",
}
