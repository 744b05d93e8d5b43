package sdk

import (
	"context"
	"sync"
)

// ReadyGate waits for the runtime's single readiness hook to fire. The hook
// slot is process-wide shared state: only one controller may drive the gate
// at a time; concurrent controllers must share a gate or coordinate
// externally.
type ReadyGate struct {
	rt       Runtime
	once     sync.Once
	fired    chan struct{}
	register sync.Once
}

// NewReadyGate creates a gate bound to the given runtime.
func NewReadyGate(rt Runtime) *ReadyGate {
	return &ReadyGate{
		rt:    rt,
		fired: make(chan struct{}),
	}
}

// AwaitReady blocks until the runtime signals engine readiness. The first
// call installs this gate into the runtime's hook slot; once the hook has
// fired, all waits past and future resolve immediately.
func (g *ReadyGate) AwaitReady(ctx context.Context) error {
	g.register.Do(func() {
		g.rt.SetReadyHook(func() {
			g.once.Do(func() { close(g.fired) })
		})
	})

	select {
	case <-g.fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fired reports whether the readiness hook has already been invoked.
func (g *ReadyGate) Fired() bool {
	select {
	case <-g.fired:
		return true
	default:
		return false
	}
}
