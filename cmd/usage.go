package cmd

import (
	"DotEnv/internal/console"
	"DotEnv/internal/constants"
	"DotEnv/internal/version"
	"fmt"
	"io"
	"strings"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fprintHelp(stdout, target)
}

func fprintHelp(w io.Writer, target string) {
	fmt.Fprint(w, console.ToANSI(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr(fmt.Sprintf("Loads {{_UsageVar_}}NAME=value{{|-|}} lines from '{{_UsageFile_}}%s{{|-|}}' files into the environment.", constants.EnvFileName))
		printStr("Run without options to load the configured file and print what was loaded.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Values may reference other variables as '{{_UsageVar_}}$NAME{{|-|}}'. A reference is the '$'")
		printStr("followed by letters and digits only, so '{{_UsageVar_}}$MY_VAR{{|-|}}' reads '{{_UsageVar_}}$MY{{|-|}}' then '_VAR'.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}
	if match("-n", "--no-overwrite") {
		printStr("{{_UsageCommand_}}-n --no-overwrite{{|-|}}")
		printStr("	Keep the value of variables that are already set")
	}
	if match("-k", "--skip-malformed") {
		printStr("{{_UsageCommand_}}-k --skip-malformed{{|-|}}")
		printStr("	Warn about lines without '=' and keep going instead of stopping")
	}
	if match("-N", "--no-substitute") {
		printStr("{{_UsageCommand_}}-N --no-substitute{{|-|}}")
		printStr("	Store values as written, without resolving '{{_UsageVar_}}$NAME{{|-|}}' references")
	}

	if showAll {
		printStr("")
		printStr("CLI Commands:")
		printStr("")
	}

	if match("--config-show", "--show-config") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("-e", "--env") {
		printStr("{{_UsageCommand_}}-e --env{{|-|}} [{{_UsageFile_}}<file>{{|-|}} ...]")
		printStr("	Load the file(s) given, or the configured file, and print each loaded variable")
	}
	if match("--exec") {
		printStr("{{_UsageCommand_}}--exec{{|-|}} {{_UsageOption_}}<command>{{|-|}} [{{_UsageOption_}}<args>{{|-|}} ...]")
		printStr("	Run a command with the variables loaded so far. Everything after")
		printStr("	'{{_UsageCommand_}}--exec{{|-|}}' is passed to the command")
	}
	if match("-g", "--get") {
		printStr("{{_UsageCommand_}}-g --get{{|-|}} {{_UsageVar_}}<var>{{|-|}} [{{_UsageVar_}}<var>{{|-|}} ...]")
		printStr("	Print the value of the variable(s) given")
	}
	if match("--get-or") {
		printStr("{{_UsageCommand_}}--get-or{{|-|}} {{_UsageVar_}}<var>{{|-|}} {{_UsageOption_}}<default>{{|-|}}")
		printStr("	Print the value of the variable, or the default if it is not set")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-l", "--list") {
		printStr("{{_UsageCommand_}}-l --list{{|-|}} [{{_UsageFile_}}<file>{{|-|}} ...]")
		printStr("	Load the file(s) given, if any, then list the names of all loaded variables")
	}
	if match("-L", "--list-all") {
		printStr("{{_UsageCommand_}}-L --list-all{{|-|}}")
		printStr("	List the names of every variable in the environment")
	}
	if match("-o", "--output") {
		printStr("{{_UsageCommand_}}-o --output{{|-|}} < {{_UsageOption_}}text{{|-|}} | {{_UsageOption_}}json{{|-|}} | {{_UsageOption_}}yaml{{|-|}} | {{_UsageOption_}}toml{{|-|}} >")
		printStr("	Set the output format of the commands that follow")
	}
	if match("-t", "--table") {
		printStr("{{_UsageCommand_}}-t --table{{|-|}} [{{_UsageFile_}}<file>{{|-|}} ...]")
		printStr("	Load the file(s) given, if any, then show the loaded variables in a table")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Show the version")
	}
	if match("-w", "--watch") {
		printStr("{{_UsageCommand_}}-w --watch{{|-|}} [{{_UsageFile_}}<file>{{|-|}}]")
		printStr("	Load the file, then reload and print it each time it changes. Stops on Ctrl-C")
	}

	return sb.String()
}
