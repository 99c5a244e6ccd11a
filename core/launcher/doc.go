// Package launcher starts the local development server as a foreground child.
//
// A Launcher ties the pieces together for one launch attempt:
//
//	Init -> ProbingPort -> PortFound -> Launching -> Running -> Exited
//	                    \-> PortExhausted -> Aborted
//
// The child is composed as an argument vector (by default `php -S host:port -t
// root`) and started through a Runner. ExecRunner shares the launcher's standard
// streams with the child, so the server's own log lines appear live, and forwards
// an interrupt to it when the launch context is cancelled.
//
// When every probed port is occupied the Runner is never called; the exhausted
// range is printed instead and a *probe.PortUnavailableError is returned.
//
// # Usage
//
//	l := launcher.New(cfg.Launcher, prober, launcher.NewExecRunner(), log).
//	    WithVersion(version).
//	    WithMaxRetries(cfg.Probe.MaxRetries)
//	attempt, err := l.Launch(ctx, opts)
//	os.Exit(attempt.ExitCode)
package launcher
