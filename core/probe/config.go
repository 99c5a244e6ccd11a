package probe

// Config holds configuration for the port prober.
type Config struct {
	// MaxRetries is the number of successive ports probed before giving up.
	MaxRetries int `mapstructure:"max_retries" default:"100"`
	// TimeoutMillis is the dial timeout of a single probe in milliseconds.
	TimeoutMillis int `mapstructure:"timeout_ms" default:"1000"`
}
