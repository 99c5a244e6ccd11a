package cmd

import (
	"fmt"

	"devserver/core/arguments"
	"devserver/core/config"
	"devserver/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the logger shared by all commands.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

// parseArgs runs the tolerant parser over the command's raw arguments.
func parseArgs(cmd *cobra.Command, args []string) (arguments.Arguments, error) {
	return arguments.Parse(append([]string{cmd.CommandPath()}, args...))
}

// resolveOptions merges parsed arguments over the configured defaults.
func resolveOptions(parsed arguments.Arguments, cfg *config.Config, logg *zap.Logger) (arguments.Options, error) {
	installDir := cfg.Launcher.Directory
	if installDir == "" {
		dir, err := arguments.InstallDirectory()
		if err != nil {
			return arguments.Options{}, err
		}
		installDir = dir
	}

	opts, ignored, err := arguments.Resolve(parsed, cfg.Launcher.Defaults(installDir))
	if err != nil {
		return arguments.Options{}, err
	}

	for _, key := range ignored {
		logg.Warn("Flag given without a value, keeping default", zap.String("flag", key))
	}
	for _, key := range parsed.Keys() {
		switch key {
		case arguments.KeyHost, arguments.KeyPort, arguments.KeyDirectory, "retries", "help":
		default:
			logg.Debug("Ignoring unknown flag", zap.String("flag", key))
		}
	}

	return opts, nil
}

// wantsHelp reports whether --help was given. -h is the host alias.
func wantsHelp(parsed arguments.Arguments) bool {
	return parsed.Get("help").Presence != arguments.Absent
}
