package exec

import (
	"DotEnv/internal/logger"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunWithEnv executes command with env (in os.Environ form), connected
// to this process's stdin, stdout and stderr. It returns the command's
// exit code; err is only set when the command could not be started.
func RunWithEnv(ctx context.Context, env []string, command string, args ...string) (int, error) {
	cmdText := command
	if len(args) > 0 {
		cmdText = fmt.Sprintf("%s %s", command, strings.Join(args, " "))
	}
	logger.Info(ctx, "Running: {{_RunningCommand_}}%s{{|-|}}", cmdText)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug(ctx, "Failing command: {{_FailingCommand_}}%s{{|-|}} (exit code %d)", cmdText, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("command failed: %w", err)
}
