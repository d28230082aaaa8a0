// Package connectivity tracks whether the server is reachable and notifies
// subscribers when reachability is restored.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Prober answers a single reachability question. The HTTP implementation
// probes the server's unauthenticated health endpoint.
type Prober interface {
	// Probe returns nil when the server answered the probe
	Probe(ctx context.Context) error
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context) error

// Probe implements Prober.
func (f ProberFunc) Probe(ctx context.Context) error { return f(ctx) }

const probeTimeout = 5 * time.Second

// Monitor polls a Prober and keeps the current reachable/unreachable state.
// Subscribers are notified on the transition into the reachable state, once
// per transition; staying reachable produces no further notifications.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	known     bool
	reachable bool
	subs      []chan struct{}
}

// New creates a monitor polling at the given interval.
func New(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   logger,
	}
}

// Run establishes the initial state with an immediate probe, then keeps
// polling until ctx is cancelled. The initial probe notifies subscribers
// when the server is already reachable, so a queue built up before startup
// gets drained without waiting for a flap.
func (m *Monitor) Run(ctx context.Context) {
	m.CheckNow(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow probes immediately, updates the state and returns it.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := m.prober.Probe(probeCtx)
	return m.setState(err == nil)
}

// Reachable returns the current state.
func (m *Monitor) Reachable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.known && m.reachable
}

// Subscribe returns a channel that receives one value each time the server
// transitions into the reachable state. The channel is buffered; a
// notification that arrives while a previous one is still pending is
// coalesced with it.
func (m *Monitor) Subscribe() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan struct{}, 1)
	m.subs = append(m.subs, ch)
	return ch
}

func (m *Monitor) setState(reachable bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	restored := reachable && (!m.known || !m.reachable)
	lost := !reachable && m.known && m.reachable

	m.known = true
	m.reachable = reachable

	if restored {
		m.logger.Info("server reachable")
		for _, ch := range m.subs {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
	if lost {
		m.logger.Info("server unreachable")
	}

	return reachable
}
