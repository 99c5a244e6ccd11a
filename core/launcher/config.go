package launcher

import "devserver/core/arguments"

// Config holds configuration for the launcher.
type Config struct {
	// Binary is the server executable started as the child process.
	Binary string `mapstructure:"binary" default:"php"`
	// Host is the default bind address when none is given on the command line.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the default starting port when none is given on the command line.
	Port int `mapstructure:"port" default:"8000"`
	// Directory is the default document root. Empty means the install directory.
	Directory string `mapstructure:"directory" default:""`
	// Banner toggles the startup banner.
	Banner bool `mapstructure:"banner" default:"true"`
}

// Defaults returns the options used before command-line arguments are merged in.
func (c Config) Defaults(installDir string) arguments.Options {
	opts := arguments.DefaultOptions(installDir)
	if c.Host != "" {
		opts.Host = c.Host
	}
	if c.Port > 0 {
		opts.Port = c.Port
	}
	if c.Directory != "" {
		opts.Directory = c.Directory
	}
	return opts
}
