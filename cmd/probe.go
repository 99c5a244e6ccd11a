package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"devserver/core/arguments"
	"devserver/core/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe [--host|-h HOST] [--port|-p PORT] [--retries N]",
	Short: "Print the first available port without starting a server",
	Long: `Probes successive ports on the given host, starting at --port, and prints the
first one nothing is listening on. Exits with status 3 when the whole window is taken.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		retries := prober.MaxRetries()
		if v := parsed.Get("retries"); v.Presence == arguments.WithValue {
			n, err := strconv.Atoi(v.Text)
			if err != nil || n < 1 {
				return fmt.Errorf("%w: retries %q", arguments.ErrMalformedArgument, v.Text)
			}
			retries = n
		}

		port, err := prober.FindAvailablePort(cmd.Context(), opts.Host, opts.Port, retries)
		if err != nil {
			var pu *probe.PortUnavailableError
			if errors.As(err, &pu) {
				fmt.Fprintf(cmd.OutOrStdout(), "Port from %d to %d are not available.\n", pu.StartedAt, pu.TriedThrough)
			}
			return err
		}

		logg.Debug("Found available port", zap.String("host", opts.Host), zap.Int("port", port))
		fmt.Fprintln(cmd.OutOrStdout(), port)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
