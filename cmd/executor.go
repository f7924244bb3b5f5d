package cmd

import (
	"DotEnv/internal/config"
	"DotEnv/internal/console"
	"DotEnv/internal/constants"
	"DotEnv/internal/dotenv"
	"DotEnv/internal/envstore"
	"DotEnv/internal/exec"
	"DotEnv/internal/logger"
	"DotEnv/internal/output"
	"DotEnv/internal/paths"
	"DotEnv/internal/strutil"
	"DotEnv/internal/version"
	"DotEnv/internal/watch"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Overridden in tests.
var (
	stdout        io.Writer = os.Stdout
	newStore                = func() envstore.Store { return envstore.OS{} }
	watchFile               = watch.File
	watchDebounce           = watch.DefaultDebounce
)

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	Overwrite     bool
	SkipMalformed bool
	Substitute    bool
}

func newCmdState(conf config.AppConfig) CmdState {
	return CmdState{
		Overwrite:     conf.Load.Overwrite,
		SkipMalformed: conf.Load.SkipMalformed,
		Substitute:    conf.Load.Substitute,
	}
}

// applyFlags sets the log level and load options for one command group.
func applyFlags(flags []string, state *CmdState) {
	for _, flag := range flags {
		switch flag {
		case "-v", "--verbose":
			logger.SetLevel(logger.LevelInfo)
		case "-x", "--debug":
			logger.SetLevel(logger.LevelDebug)
		case "-n", "--no-overwrite":
			state.Overwrite = false
		case "-k", "--skip-malformed":
			state.SkipMalformed = true
		case "-N", "--no-substitute":
			state.Substitute = false
		}
	}
}

// session is the state shared by every command group of one invocation.
type session struct {
	conf     config.AppConfig
	store    envstore.Store
	registry *dotenv.Registry
	format   string
}

func (s *session) loader(state CmdState) *dotenv.Loader {
	opts := []dotenv.Option{dotenv.WithRegistry(s.registry)}
	if state.SkipMalformed {
		opts = append(opts, dotenv.WithSkipMalformed())
	}
	if !state.Substitute {
		opts = append(opts, dotenv.WithoutSubstitution())
	}
	return dotenv.New(s.store, opts...)
}

// Execute runs the logic for a sequence of command groups.
// It handles flag application, command switching, and state resetting.
// Execution stops at the first failing command.
func Execute(ctx context.Context, conf config.AppConfig, groups []CommandGroup) int {
	baseLevel, ok := logger.ParseLevel(conf.Log.Level)
	if !ok {
		logger.Warn(ctx, "Unknown log level '{{_Var_}}%s{{|-|}}', using notice", conf.Log.Level)
	}
	logger.SetLevel(baseLevel)

	s := &session{
		conf:     conf,
		store:    newStore(),
		registry: dotenv.NewRegistry(),
		format:   conf.Output.Format,
	}
	if !output.ValidFormat(s.format) {
		logger.Warn(ctx, "Unknown output format '{{_Var_}}%s{{|-|}}' in configuration, using text", s.format)
		s.format = constants.FormatText
	}

	ranCommand := false

	for _, group := range groups {
		state := newCmdState(conf)
		applyFlags(group.Flags, &state)

		cmdStr := version.CommandName
		for _, part := range group.FullSlice() {
			cmdStr += " " + part
		}
		logger.Info(ctx, "%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr)
		logger.Debug(ctx, "Execution Args -> State: %+v, Command: %v", state, group.CommandSlice())

		exitCode := 0
		var err error
		cmd, _, _ := strings.Cut(group.Command, "=")

		switch cmd {
		case "-h", "--help":
			handleHelp(&group)
		case "-V", "--version":
			handleVersion(ctx)
		case "-e", "--env":
			err = handleEnv(ctx, s, &group, state)
		case "-w", "--watch":
			err = handleWatch(ctx, s, &group, state)
		case "-l", "--list":
			err = handleList(ctx, s, &group, state)
		case "-L", "--list-all":
			err = handleListAll(s)
		case "-t", "--table":
			err = handleTable(ctx, s, &group, state)
		case "-o", "--output":
			err = handleOutput(ctx, s, &group)
		case "-g", "--get":
			err = handleGet(s, &group)
		case "--get-or":
			err = handleGetOr(s, &group)
		case "--exec":
			exitCode, err = handleExec(ctx, s, &group)
		case "--config-show", "--show-config":
			handleConfigShow(ctx, &s.conf)
		default:
			// Only flags were given, the default command runs once the loop ends
			logger.SetLevel(baseLevel)
			continue
		}
		ranCommand = true

		// Reset Flags
		logger.SetLevel(baseLevel)

		if err != nil {
			logger.Error(ctx, "'{{_UserCommand_}}%s{{|-|}}' failed: %v", cmdStr, err)
			return 1
		}
		if exitCode != 0 {
			return exitCode
		}
	}

	if !ranCommand {
		// Flags without a command still apply to the default run
		state := newCmdState(conf)
		if len(groups) > 0 {
			applyFlags(groups[len(groups)-1].Flags, &state)
		}
		defer logger.SetLevel(baseLevel)
		if err := handleDefault(ctx, s, state); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}

	return 0
}

func handleHelp(group *CommandGroup) {
	target := ""
	if args := commandArgs(group); len(args) > 0 {
		target = args[0]
	}
	PrintHelp(target)
}

func handleVersion(ctx context.Context) {
	logger.Display(ctx, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	logger.Debug(ctx, "Commit %s, built %s", version.Commit, version.BuildDate)
}

// loadFiles loads each file in order into the session's store. With no
// files given, the configured file is loaded when useDefault is set.
func loadFiles(ctx context.Context, s *session, state CmdState, files []string, useDefault bool) error {
	if len(files) == 0 && useDefault {
		files = []string{s.conf.EnvFile}
	}
	l := s.loader(state)
	for _, file := range files {
		logger.Info(ctx, "Loading '{{_File_}}%s{{|-|}}'", file)
		if err := l.Load(ctx, file, state.Overwrite); err != nil {
			return err
		}
	}
	return nil
}

// loadedVariables returns every registered name with its current value.
func loadedVariables(s *session) []output.Variable {
	names := s.registry.Names()
	vars := make([]output.Variable, 0, len(names))
	for _, name := range names {
		value, _ := s.store.Lookup(name)
		vars = append(vars, output.Variable{Name: name, Value: value})
	}
	return vars
}

func handleEnv(ctx context.Context, s *session, group *CommandGroup, state CmdState) error {
	if err := loadFiles(ctx, s, state, commandArgs(group), true); err != nil {
		return err
	}
	return output.WriteVariables(stdout, s.format, loadedVariables(s))
}

// handleDefault loads the configured file, prints what was loaded, then
// the value of HOME when it is set.
func handleDefault(ctx context.Context, s *session, state CmdState) error {
	if err := loadFiles(ctx, s, state, nil, true); err != nil {
		return err
	}
	if err := output.WriteVariables(stdout, s.format, loadedVariables(s)); err != nil {
		return err
	}
	if s.format != constants.FormatText {
		return nil
	}
	if home, ok := s.store.Lookup(constants.HomeVar); ok {
		_, err := fmt.Fprintln(stdout, home)
		return err
	}
	return nil
}

func handleWatch(ctx context.Context, s *session, group *CommandGroup, state CmdState) error {
	file := s.conf.EnvFile
	if args := commandArgs(group); len(args) > 0 {
		file = args[0]
	}

	reload := func(ctx context.Context) error {
		if err := loadFiles(ctx, s, state, []string{file}, false); err != nil {
			return err
		}
		return output.WriteVariables(stdout, s.format, loadedVariables(s))
	}

	if err := reload(ctx); err != nil {
		return err
	}
	// Later writes to the file always replace what the first load set
	state.Overwrite = true
	return watchFile(ctx, file, watchDebounce, reload)
}

func handleList(ctx context.Context, s *session, group *CommandGroup, state CmdState) error {
	if err := loadFiles(ctx, s, state, commandArgs(group), false); err != nil {
		return err
	}
	return output.WriteNames(stdout, s.format, s.registry.Names())
}

func handleListAll(s *session) error {
	names := s.store.Names()
	slices.Sort(names)
	return output.WriteNames(stdout, s.format, names)
}

func handleTable(ctx context.Context, s *session, group *CommandGroup, state CmdState) error {
	if err := loadFiles(ctx, s, state, commandArgs(group), false); err != nil {
		return err
	}

	headers := []string{
		"{{_UsageCommand_}}Variable{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
	}
	var data []string
	for _, v := range loadedVariables(s) {
		data = append(data, fmt.Sprintf("{{_Var_}}%s{{|-|}}", v.Name), strutil.Truncate(v.Value, constants.TableValueWidth))
	}
	console.FprintTable(stdout, headers, data, s.conf.Output.LineCharacters)
	return nil
}

func handleOutput(ctx context.Context, s *session, group *CommandGroup) error {
	format := ""
	if args := commandArgs(group); len(args) > 0 {
		format = args[0]
	}
	format = strings.ToLower(format)
	if !output.ValidFormat(format) {
		return output.ErrUnknownFormat(format)
	}
	s.format = format
	logger.Info(ctx, "Output format set to '{{_Var_}}%s{{|-|}}'", format)
	return nil
}

// commandArgs returns the group arguments, including a value given as
// --command=value.
func commandArgs(group *CommandGroup) []string {
	if _, value, ok := strings.Cut(group.Command, "="); ok {
		return append([]string{value}, group.Args...)
	}
	return group.Args
}

func handleGet(s *session, group *CommandGroup) error {
	names := commandArgs(group)
	if len(names) == 0 {
		return fmt.Errorf("no variable name given")
	}

	vars := make([]output.Variable, 0, len(names))
	for _, name := range names {
		value, ok := s.store.Lookup(name)
		if !ok {
			return fmt.Errorf("variable %q is not set", name)
		}
		vars = append(vars, output.Variable{Name: name, Value: value})
	}

	if s.format == constants.FormatText {
		for _, v := range vars {
			if _, err := fmt.Fprintln(stdout, v.Value); err != nil {
				return err
			}
		}
		return nil
	}
	return output.WriteVariables(stdout, s.format, vars)
}

func handleGetOr(s *session, group *CommandGroup) error {
	args := commandArgs(group)
	if len(args) != 2 {
		return fmt.Errorf("expected a variable name and a default value")
	}
	value := args[1]
	if v, ok := s.store.Lookup(args[0]); ok {
		value = v
	}
	_, err := fmt.Fprintln(stdout, value)
	return err
}

func handleExec(ctx context.Context, s *session, group *CommandGroup) (int, error) {
	if len(group.Args) == 0 {
		return 0, fmt.Errorf("no command given")
	}

	names := s.store.Names()
	env := make([]string, 0, len(names))
	for _, name := range names {
		if value, ok := s.store.Lookup(name); ok {
			env = append(env, name+"="+value)
		}
	}
	return exec.RunWithEnv(ctx, env, group.Args[0], group.Args[1:]...)
}

func handleConfigShow(ctx context.Context, conf *config.AppConfig) {
	headers := []string{
		"{{_UsageCommand_}}Option{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
		"{{_UsageCommand_}}Expanded Value{{|-|}}",
	}

	boolToYesNo := func(val bool) string {
		if val {
			return "{{_Var_}}yes{{|-|}}"
		}
		return "{{_Var_}}no{{|-|}}"
	}

	file := func(value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("{{_File_}}%s{{|-|}}", value)
	}

	data := []string{
		"Env File", file(conf.Load.File), file(conf.EnvFile),
		"Overwrite", boolToYesNo(conf.Load.Overwrite), "",
		"Skip Malformed", boolToYesNo(conf.Load.SkipMalformed), "",
		"Substitute", boolToYesNo(conf.Load.Substitute), "",
		"Output Format", fmt.Sprintf("{{_Var_}}%s{{|-|}}", conf.Output.Format), "",
		"Line Characters", boolToYesNo(conf.Output.LineCharacters), "",
		"Log File", file(conf.Log.File), file(conf.LogFile),
		"Log Level", fmt.Sprintf("{{_Var_}}%s{{|-|}}", conf.Log.Level), "",
	}

	logger.Info(ctx, "Configuration options stored in '{{_File_}}%s{{|-|}}':", paths.GetConfigFilePath())
	console.FprintTable(stdout, headers, data, conf.Output.LineCharacters)
}
