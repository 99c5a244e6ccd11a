package arguments

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrInvalidPort is returned when the port value is not an integer in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Default launch options.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8000
)

// Options are the resolved launch parameters. All fields are always populated.
type Options struct {
	Host      string
	Port      int
	Directory string
}

// DefaultOptions returns the documented defaults with installDir as document root.
func DefaultOptions(installDir string) Options {
	return Options{
		Host:      DefaultHost,
		Port:      DefaultPort,
		Directory: installDir,
	}
}

// InstallDirectory returns the directory holding the running executable.
func InstallDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Resolve merges args over defaults.
//
// A key given with a value overrides the default. A key given as a bare flag
// with nothing after it, or joined to an empty value (--host=, -d:), keeps the
// default; such keys are returned in ignored so the caller can warn about them. Keys other than host, port and directory are
// ignored.
func Resolve(args Arguments, defaults Options) (opts Options, ignored []string, err error) {
	opts = defaults

	for _, key := range []string{KeyHost, KeyPort, KeyDirectory} {
		v := args.Get(key)
		switch v.Presence {
		case Absent:
			continue
		case NoValue:
			ignored = append(ignored, key)
			continue
		}
		if v.Text == "" {
			ignored = append(ignored, key)
			continue
		}

		switch key {
		case KeyHost:
			opts.Host = v.Text
		case KeyPort:
			port, err := ParsePort(v.Text)
			if err != nil {
				return defaults, nil, err
			}
			opts.Port = port
		case KeyDirectory:
			opts.Directory = v.Text
		}
	}

	return opts, ignored, nil
}

// ParsePort parses a TCP port number.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return port, nil
}
