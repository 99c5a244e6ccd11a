package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrLaunchFailed is returned when the child server cannot be started.
var ErrLaunchFailed = errors.New("failed to launch server")

// InterruptedExitCode is reported when the child was stopped by an interrupt.
const InterruptedExitCode = 130

// Command is a child invocation as an argument vector. It is never passed
// through a shell.
type Command struct {
	Path string
	Args []string
}

// String renders the command for display with each argument quoted when needed.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, s := range append([]string{c.Path}, c.Args...) {
		if s == "" || strings.ContainsAny(s, " \t\n'\"\\$`") {
			s = strconv.Quote(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Runner starts child processes.
type Runner interface {
	// Start launches the command and returns once it is running.
	Start(ctx context.Context, c Command) (Process, error)
}

// Process is a started child.
type Process interface {
	// Wait blocks until the child exits and returns its exit code. The error is
	// reserved for failures other than a non-zero exit.
	Wait() (int, error)
}

// ExecRunner runs commands with os/exec in the foreground, sharing the
// launcher's standard streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// WaitDelay bounds how long the child may take to exit after being
	// interrupted before it is killed.
	WaitDelay time.Duration
}

// NewExecRunner creates a runner bound to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: 5 * time.Second,
	}
}

// Start implements Runner. Cancelling ctx forwards an interrupt to the child.
func (r *ExecRunner) Start(ctx context.Context, c Command) (Process, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunchFailed, c.Path, err)
	}
	return &execProcess{ctx: ctx, cmd: cmd}, nil
}

type execProcess struct {
	ctx context.Context
	cmd *exec.Cmd
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			if p.ctx.Err() != nil {
				return InterruptedExitCode, nil
			}
			return 1, nil
		}
		return code, nil
	}

	// the child exited cleanly after being interrupted
	if p.ctx.Err() != nil && errors.Is(err, p.ctx.Err()) {
		return InterruptedExitCode, nil
	}
	return 1, fmt.Errorf("failed waiting for server: %w", err)
}
