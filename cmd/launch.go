package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"devserver/core/launcher"
	"devserver/core/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runLaunch(cmd *cobra.Command, args []string) error {
	parsed, err := parseArgs(cmd, args)
	if err != nil {
		return err
	}
	if wantsHelp(parsed) {
		return cmd.Help()
	}

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	opts, err := resolveOptions(parsed, cfg, logg)
	if err != nil {
		return err
	}

	prober := probe.New(cfg.Probe, logg)
	l := launcher.New(cfg.Launcher, prober, launcher.NewExecRunner(), logg).
		WithOutput(cmd.OutOrStdout()).
		WithVersion(version).
		WithMaxRetries(prober.MaxRetries())

	// The child shares our terminal and gets the interrupt too; the context
	// keeps us alive until it has exited.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg.Debug("Launching",
		zap.String("host", opts.Host),
		zap.Int("port", opts.Port),
		zap.String("directory", opts.Directory),
	)

	attempt, err := l.Launch(ctx, opts)
	if err != nil {
		return err
	}
	if attempt.ExitCode != 0 {
		return &exitCodeError{code: attempt.ExitCode}
	}
	return nil
}
