// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding (the default for an interactive launcher) and a JSON encoding for
// machine consumption.
//
// # Attempt Awareness
//
// Every launch attempt carries a UUID. The WithAttempt helper attaches it to the
// logger so all entries produced while probing and running the child server can
// be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: console (default) or json
//
// All output is written to stderr; stdout is reserved for the launch banner and
// for the child server's own output.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Probing ports")
//
//	l := logger.WithAttempt(log, attempt.ID)
//	l.Warn("Port is not available", zap.Int("port", 8000))
package logger
