// Package probe finds the first free TCP port at or after a requested one.
//
// The child server the launcher starts has no "address in use" fallback of its
// own, so availability is inferred from the outside: the prober connects to
// host:port and treats a successful connect as "occupied" and a failed one
// (refused or timed out) as "free". Every probe connection is closed before the
// next candidate is tried.
//
// This is a heuristic. Another process can bind the chosen port between the
// probe and the moment the child server starts listening.
//
// # Usage
//
//	p := probe.New(cfg.Probe, log)
//	port, err := p.FindAvailablePort(ctx, "127.0.0.1", 8000, 100)
//	var pu *probe.PortUnavailableError
//	if errors.As(err, &pu) {
//	    fmt.Printf("ports %d-%d are taken\n", pu.StartedAt, pu.TriedThrough)
//	}
package probe
