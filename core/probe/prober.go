package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultMaxRetries is used when no positive retry count is configured.
	DefaultMaxRetries = 100
	// DefaultTimeout is used when no positive dial timeout is configured.
	DefaultTimeout = time.Second

	maxPort = 65535
)

// Dialer opens probe connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Prober finds a free TCP port by connecting to successive candidates.
// A successful connect means something is listening and the port is taken.
// The result is best effort: another process may bind the port after it was probed.
type Prober struct {
	dialer     Dialer
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger
}

// New creates a prober from configuration.
func New(cfg Config, logger *zap.Logger) *Prober {
	timeout := time.Duration(cfg.TimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		dialer:     &net.Dialer{},
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// WithDialer replaces the dialer used for probing.
func (p *Prober) WithDialer(d Dialer) *Prober {
	p.dialer = d
	return p
}

// MaxRetries returns the configured probe window, falling back to DefaultMaxRetries.
func (p *Prober) MaxRetries() int {
	if p.maxRetries <= 0 {
		return DefaultMaxRetries
	}
	return p.maxRetries
}

// FindAvailablePort probes host starting at startPort and returns the first port
// nothing is listening on. When maxRetries ports in a row are occupied it returns
// a *PortUnavailableError. The scan never goes past port 65535, and neither
// does the reported range. A maxRetries of zero or less uses the configured window.
func (p *Prober) FindAvailablePort(ctx context.Context, host string, startPort, maxRetries int) (int, error) {
	if maxRetries <= 0 {
		maxRetries = p.MaxRetries()
	}

	port := startPort
	for i := 0; i < maxRetries && port <= maxPort; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if !p.occupied(ctx, host, port) {
			p.logger.Debug("Port is available", zap.String("host", host), zap.Int("port", port))
			return port, nil
		}

		p.logger.Warn("Port is not available", zap.String("host", host), zap.Int("port", port))
		port++
	}

	through := startPort + maxRetries
	if through > maxPort {
		through = maxPort
	}
	return 0, &PortUnavailableError{StartedAt: startPort, TriedThrough: through}
}

// occupied reports whether a connection to host:port succeeds. The probe
// connection is always closed before returning.
func (p *Prober) occupied(ctx context.Context, host string, port int) bool {
	dctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(dctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
