// Package config provides configuration management for devserver.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Command-line arguments are handled separately by the
// arguments package and always take precedence over what is loaded here.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Launcher: server binary, default host/port/directory, banner toggle
//   - Probe: maximum number of probed ports and the per-probe dial timeout
//   - Log: logging level and format
//
// Defaults are declared with `default` struct tags next to each field and are
// registered with Viper by reflection, so every key can be overridden from the
// environment (LAUNCHER_BINARY, PROBE_MAX_RETRIES, LOG_LEVEL, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Launcher.Binary)
package config
