package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"devserver/core/arguments"
	"devserver/core/logger"
	"devserver/core/probe"

	"go.uber.org/zap"
)

// PortFinder locates a free port, see probe.Prober.
type PortFinder interface {
	FindAvailablePort(ctx context.Context, host string, startPort, maxRetries int) (int, error)
}

// Launcher probes for a free port and runs the child server on it.
type Launcher struct {
	cfg        Config
	finder     PortFinder
	runner     Runner
	logger     *zap.Logger
	out        io.Writer
	version    string
	maxRetries int
	now        func() time.Time
}

// New creates a launcher writing its banner to stdout.
func New(cfg Config, finder PortFinder, runner Runner, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{
		cfg:        cfg,
		finder:     finder,
		runner:     runner,
		logger:     logger,
		out:        os.Stdout,
		version:    "dev",
		maxRetries: probe.DefaultMaxRetries,
		now:        time.Now,
	}
}

// WithOutput sets where the banner and diagnostics are written.
func (l *Launcher) WithOutput(w io.Writer) *Launcher {
	l.out = w
	return l
}

// WithVersion sets the version shown in the banner.
func (l *Launcher) WithVersion(v string) *Launcher {
	l.version = v
	return l
}

// WithMaxRetries sets the size of the probed port window.
func (l *Launcher) WithMaxRetries(n int) *Launcher {
	if n > 0 {
		l.maxRetries = n
	}
	return l
}

// WithClock replaces the time source used for the banner.
func (l *Launcher) WithClock(now func() time.Time) *Launcher {
	l.now = now
	return l
}

// Command composes the child invocation for host, port and document root.
func (l *Launcher) Command(host string, port int, directory string) Command {
	return Command{
		Path: l.cfg.Binary,
		Args: []string{"-S", net.JoinHostPort(host, strconv.Itoa(port)), "-t", directory},
	}
}

// Launch runs one attempt: probe, then start the child and block until it exits.
//
// When no port is free the child is never started, a diagnostic is printed and a
// *probe.PortUnavailableError is returned. A non-zero child exit is not an error;
// it is reported in Attempt.ExitCode.
func (l *Launcher) Launch(ctx context.Context, opts arguments.Options) (*Attempt, error) {
	a := newAttempt(opts, l.now())
	log := logger.WithAttempt(l.logger, a.ID)
	defer func() { a.Finished = l.now() }()

	l.move(log, a, StateProbingPort)
	port, err := l.finder.FindAvailablePort(ctx, opts.Host, opts.Port, l.maxRetries)
	if err != nil {
		var pu *probe.PortUnavailableError
		if errors.As(err, &pu) {
			l.move(log, a, StatePortExhausted)
			printExhausted(l.out, pu.StartedAt, pu.TriedThrough)
		}
		l.move(log, a, StateAborted)
		return a, err
	}
	a.Port = port
	l.move(log, a, StatePortFound)

	root, err := filepath.Abs(opts.Directory)
	if err != nil {
		l.move(log, a, StateAborted)
		return a, fmt.Errorf("failed to resolve document root: %w", err)
	}

	l.move(log, a, StateLaunching)
	a.Command = l.Command(opts.Host, port, root)
	if l.cfg.Banner {
		PrintBanner(l.out, l.version, a.Started, opts.Host, port, root)
	}

	log.Info("Starting server", zap.Stringer("command", a.Command))
	proc, err := l.runner.Start(ctx, a.Command)
	if err != nil {
		l.move(log, a, StateAborted)
		return a, err
	}
	l.move(log, a, StateRunning)

	code, err := proc.Wait()
	a.ExitCode = code
	l.move(log, a, StateExited)
	if err != nil {
		return a, err
	}

	log.Info("Server exited", zap.Int("exit_code", code))
	return a, nil
}

func (l *Launcher) move(log *zap.Logger, a *Attempt, s State) {
	a.moveTo(s)
	log.Debug("Attempt state changed", zap.Stringer("state", s))
}
