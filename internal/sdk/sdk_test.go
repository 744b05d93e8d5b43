package sdk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeRuntime implements Runtime for tests.
type fakeRuntime struct {
	mu         sync.Mutex
	hasScript  bool
	loadCalls  int
	loadErr    error
	readyHook  func()
	hookSets   int
	newDevice  func(cfg DeviceConfig) (Device, error)
	lastConfig DeviceConfig
}

func (f *fakeRuntime) HasScript(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasScript
}

func (f *fakeRuntime) LoadScript(ctx context.Context, id, src string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCalls++
	if f.loadErr != nil {
		return f.loadErr
	}
	f.hasScript = true
	return nil
}

func (f *fakeRuntime) SetReadyHook(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readyHook = fn
	f.hookSets++
}

func (f *fakeRuntime) fireReady() {
	f.mu.Lock()
	hook := f.readyHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (f *fakeRuntime) NewDevice(cfg DeviceConfig) (Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastConfig = cfg
	if f.newDevice != nil {
		return f.newDevice(cfg)
	}
	return nil, errors.New("no device factory")
}

func TestLoaderInjectsOnce(t *testing.T) {
	rt := &fakeRuntime{}
	l := NewLoader(rt)

	if err := l.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded() error = %v", err)
	}
	if err := l.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded() second call error = %v", err)
	}

	if rt.loadCalls != 1 {
		t.Errorf("LoadScript called %d times, want 1", rt.loadCalls)
	}
}

func TestLoaderSkipsExistingScript(t *testing.T) {
	rt := &fakeRuntime{hasScript: true}
	l := NewLoader(rt)

	if err := l.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded() error = %v", err)
	}
	if rt.loadCalls != 0 {
		t.Errorf("LoadScript called %d times, want 0", rt.loadCalls)
	}
}

func TestLoaderWrapsLoadFailure(t *testing.T) {
	cause := errors.New("404")
	rt := &fakeRuntime{loadErr: cause}
	l := NewLoader(rt)

	err := l.EnsureLoaded(context.Background())
	if err == nil {
		t.Fatal("EnsureLoaded() error = nil, want *LoadError")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error type = %T, want *LoadError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("LoadError should wrap the underlying cause")
	}
}

func TestReadyGateResolvesOnHook(t *testing.T) {
	rt := &fakeRuntime{}
	g := NewReadyGate(rt)

	done := make(chan error, 1)
	go func() {
		done <- g.AwaitReady(context.Background())
	}()

	// Wait for the hook to be installed, then fire it.
	for i := 0; i < 100; i++ {
		rt.mu.Lock()
		installed := rt.readyHook != nil
		rt.mu.Unlock()
		if installed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	rt.fireReady()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("AwaitReady() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("AwaitReady() did not resolve after hook fired")
	}

	if !g.Fired() {
		t.Error("Fired() = false after hook fired")
	}
}

func TestReadyGateIdempotentAfterFire(t *testing.T) {
	rt := &fakeRuntime{}
	g := NewReadyGate(rt)

	// First wait installs the hook; let it expire, then fire.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_ = g.AwaitReady(ctx)
	rt.fireReady()
	rt.fireReady() // a second fire must be harmless

	// Subsequent waits resolve immediately.
	if err := g.AwaitReady(context.Background()); err != nil {
		t.Errorf("AwaitReady() after fire error = %v", err)
	}
	if rt.hookSets != 1 {
		t.Errorf("SetReadyHook called %d times, want 1", rt.hookSets)
	}
}

func TestReadyGateHonorsContext(t *testing.T) {
	rt := &fakeRuntime{}
	g := NewReadyGate(rt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.AwaitReady(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("AwaitReady() error = %v, want context.Canceled", err)
	}
}
