package cmd

import (
	"errors"
	"fmt"
	"os"

	"devserver/core/arguments"
	"devserver/core/logger"
	"devserver/core/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X devserver/cmd.version=...".
var version = "1.0.0"

// Exit codes used when no child exit code is available.
const (
	ExitFailure         = 1
	ExitUsage           = 2
	ExitPortUnavailable = 3
)

// RootCmd represents the base command when called without any subcommands.
// Flag parsing is left to the arguments package so that --opt:value and the
// -h host alias keep working.
var RootCmd = &cobra.Command{
	Use:   "devserver [--host|-h HOST] [--port|-p PORT] [--directory|-d DIR]",
	Short: "Launch a local development web server",
	Long: `devserver starts the PHP built-in web server for local development.

It looks for a free port starting at the requested one (up to 100 ports by
default), prints where the server is listening and then runs it in the
foreground until it exits or Ctrl-C is pressed.

Options accept --name=value, --name:value and --name value:
  --host, -h        bind address (default 127.0.0.1)
  --port, -p        first port to try (default 8000)
  --directory, -d   document root (default: install directory)

Not intended for production use.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLaunch,
}

// exitCodeError carries a child exit code through cobra without being reported.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("server exited with status %d", e.code)
}

func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	var ec *exitCodeError
	if errors.As(err, &ec) {
		os.Exit(ec.code)
	}

	// The launcher already printed the exhausted range.
	if !errors.Is(err, probe.ErrPortUnavailable) {
		reportError(err)
	}
	os.Exit(exitCodeFor(err))
}

// reportError logs with the console logger regardless of the configured level.
func reportError(err error) {
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
}

func exitCodeFor(err error) int {
	var ec *exitCodeError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ec):
		return ec.code
	case errors.Is(err, probe.ErrPortUnavailable):
		return ExitPortUnavailable
	case errors.Is(err, arguments.ErrMalformedArgument), errors.Is(err, arguments.ErrInvalidPort):
		return ExitUsage
	default:
		return ExitFailure
	}
}
