package cmd

import (
	"DotEnv/internal/version"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var ErrHelp = errors.New("help shown")

// ParseError wraps argument parsing errors, pointing at the failing argument
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--get-or")
}

func (e *ParseError) Error() string {
	indent := "   "

	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	// "   " + "'" + command + " "
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	// Message might contain %c (command) or %o (option)
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// CommandSlice returns the command and its arguments as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// Parse parses the raw command line arguments into groups of command operations.
// Modifier flags attach to the command that follows them.
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	modifiers := map[string]bool{
		"-v": true, "--verbose": true,
		"-x": true, "--debug": true,
		"-n": true, "--no-overwrite": true,
		"-k": true, "--skip-malformed": true,
		"-N": true, "--no-substitute": true,
	}

	// Expand combined short flags (e.g. -nl -> -n -l), but never past --exec
	var expandedArgs []string
	for i, arg := range args {
		if arg == "--exec" {
			expandedArgs = append(expandedArgs, args[i:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: fmt.Sprintf("invalid option '%s'", arg), FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// Handle key=value formats (e.g. --get=VAR)
		cmdToCheck, _, _ := strings.Cut(arg, "=")
		cmdName := strings.TrimLeft(cmdToCheck, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(cmdToCheck, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := cmdToCheck
		i++

		consumesUntilDash := false

		switch cmd {
		// Commands that take any number of arguments (until next flag)
		case "-e", "--env",
			"-l", "--list",
			"-t", "--table",
			"-g", "--get":
			consumesUntilDash = true

		// Commands that take everything that follows
		case "--exec":
			if i >= len(expandedArgs) {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c requires a command to run."}
			}
			currentGroup.Args = append(currentGroup.Args, expandedArgs[i:]...)
			i = len(expandedArgs)

		// Commands that require exactly ONE argument
		case "-o", "--output":
			if arg != cmd {
				break
			}
			if i >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i], "-") {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c requires an argument."}
			}
			currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
			i++

		// Commands that require exactly TWO arguments
		case "--get-or":
			for range 2 {
				if i >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i], "-") {
					return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c requires a variable name and a default value."}
				}
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		// Commands that accept an OPTIONAL argument (Max 1)
		case "-w", "--watch":
			if i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		case "-h", "--help":
			// Help allows an optional command to describe
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		// Commands that take NO arguments
		case "-L", "--list-all",
			"--config-show",
			"-V", "--version":
		}

		if consumesUntilDash {
			for i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers apply to the default command
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
