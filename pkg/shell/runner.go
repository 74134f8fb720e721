// Package shell runs external commands for deployment hooks, capturing
// and reporting their output. A non-zero exit is reported, not returned
// as an error; callers that need fatal behavior check Result.ExitCode.
package shell

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/logging"
)

// DefaultTimeout bounds a single command invocation
const DefaultTimeout = 5 * time.Minute

// Result holds the captured outcome of a command invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes shell command lines
type Runner struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewRunner creates a Runner with the default timeout
func NewRunner() *Runner {
	return &Runner{
		logger:  logging.GetLogger("shell"),
		timeout: DefaultTimeout,
	}
}

// Run executes command through the shell, printing and logging stdout,
// stderr and the exit code. It returns an error only when the command
// could not be started at all; a command that ran and exited non-zero
// is reported through Result.ExitCode.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	if command == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "command must not be empty")
	}

	r.logger.Info().Str("command", command).Msg("Executing command")
	fmt.Println("Running CMD: " + command)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			return result, errors.Wrapf(err, errors.ErrCommandExecute, "failed to run command: %s", command)
		}
	}

	fmt.Println("STDOUT: " + result.Stdout)
	fmt.Println("STDERR: " + result.Stderr)
	fmt.Printf("ReturnCode: %d\n", result.ExitCode)

	r.logger.Debug().
		Str("stdout", result.Stdout).
		Str("stderr", result.Stderr).
		Int("exitCode", result.ExitCode).
		Msg("Command finished")

	return result, nil
}
