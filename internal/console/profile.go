package console

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

func init() {
	isTTYGlobal = term.IsTerminal(int(os.Stdout.Fd()))
	preferredProfile = detectProfile()
}

// SetTTY allows forcing the TTY status (useful for testing ANSI output in non-interactive tests).
// Returns the previous value so it can be restored.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) termenv.Profile {
	old := preferredProfile
	preferredProfile = p
	return old
}

// detectProfile determines the appropriate color profile based on environment variables.
// Priority: NO_COLOR > COLORTERM > TERM > automatic detection
func detectProfile() termenv.Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return termenv.Ascii
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "4bit", "16color", "8color", "3bit":
		return termenv.ANSI
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	t := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.Contains(t, "direct"):
		return termenv.TrueColor
	case strings.Contains(t, "256color"):
		return termenv.ANSI256
	case t == "dumb":
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}
