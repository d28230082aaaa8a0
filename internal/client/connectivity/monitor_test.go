package connectivity

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProbeFailed = errors.New("connection refused")

// fakeProber returns a scripted sequence of probe results and then repeats
// the last one.
type fakeProber struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (p *fakeProber) Probe(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.calls
	if i >= len(p.results) {
		i = len(p.results) - 1
	}
	p.calls++
	return p.results[i]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMonitor_InitialStateFromProbe(t *testing.T) {
	up := New(ProberFunc(func(ctx context.Context) error { return nil }), time.Minute, testLogger())
	assert.False(t, up.Reachable(), "state is unknown before the first probe")
	assert.True(t, up.CheckNow(context.Background()))
	assert.True(t, up.Reachable())

	down := New(ProberFunc(func(ctx context.Context) error { return errProbeFailed }), time.Minute, testLogger())
	assert.False(t, down.CheckNow(context.Background()))
	assert.False(t, down.Reachable())
}

func TestMonitor_NotifiesOnRestoredReachability(t *testing.T) {
	prober := &fakeProber{results: []error{errProbeFailed, errProbeFailed, nil}}
	monitor := New(prober, time.Minute, testLogger())
	ch := monitor.Subscribe()

	ctx := context.Background()

	assert.False(t, monitor.CheckNow(ctx))
	assert.False(t, monitor.CheckNow(ctx))
	select {
	case <-ch:
		t.Fatal("no notification expected while unreachable")
	default:
	}

	assert.True(t, monitor.CheckNow(ctx))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification on restored reachability")
	}
}

func TestMonitor_NotifiesExactlyOncePerTransition(t *testing.T) {
	prober := &fakeProber{results: []error{errProbeFailed, nil, nil, nil}}
	monitor := New(prober, time.Minute, testLogger())
	ch := monitor.Subscribe()

	ctx := context.Background()
	monitor.CheckNow(ctx) // unreachable
	monitor.CheckNow(ctx) // reachable: fires
	monitor.CheckNow(ctx) // still reachable: no new edge
	monitor.CheckNow(ctx)

	<-ch
	select {
	case <-ch:
		t.Fatal("staying reachable must not notify again")
	default:
	}
}

func TestMonitor_FlappingFiresPerRestore(t *testing.T) {
	prober := &fakeProber{results: []error{errProbeFailed, nil, errProbeFailed, nil}}
	monitor := New(prober, time.Minute, testLogger())
	ch := monitor.Subscribe()

	ctx := context.Background()
	monitor.CheckNow(ctx) // down
	monitor.CheckNow(ctx) // up: fires
	<-ch
	monitor.CheckNow(ctx) // down
	monitor.CheckNow(ctx) // up again: fires again

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a second notification after the second restore")
	}
}

func TestMonitor_InitialReachableNotifies(t *testing.T) {
	monitor := New(ProberFunc(func(ctx context.Context) error { return nil }), time.Minute, testLogger())
	ch := monitor.Subscribe()

	assert.True(t, monitor.CheckNow(context.Background()))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification when the server is reachable at startup")
	}
}

func TestMonitor_RunPollsUntilCancelled(t *testing.T) {
	prober := &fakeProber{results: []error{errProbeFailed, nil}}
	monitor := New(prober, 10*time.Millisecond, testLogger())
	ch := monitor.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the poll loop to detect the restored server")
	}
	require.True(t, monitor.Reachable())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
