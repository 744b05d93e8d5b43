// Package sdk defines the boundary to the vendor playback-engine runtime.
// The runtime itself lives outside this module; hosts supply a binding and
// tests supply fakes.
package sdk

import "context"

const (
	// ScriptID is the marker identifying the engine script in the host.
	ScriptID = "spotify-player"

	// ScriptURL is the fixed vendor URL the engine script is loaded from.
	ScriptURL = "https://sdk.scdn.co/spotify-player.js"
)

// Runtime is the host environment the playback engine runs in. It owns the
// injected engine script and the single process-wide readiness hook.
type Runtime interface {
	// HasScript reports whether the engine script is already present.
	HasScript(id string) bool

	// LoadScript injects the engine script and blocks until it has loaded
	// or fails. Called at most once per process.
	LoadScript(ctx context.Context, id, src string) error

	// SetReadyHook installs fn into the runtime's single readiness slot.
	// The runtime invokes the hook exactly once when the engine is ready.
	// A later call replaces any previously installed hook.
	SetReadyHook(fn func())

	// NewDevice constructs a playback device with the given identity.
	NewDevice(cfg DeviceConfig) (Device, error)
}

// DeviceConfig carries the identity a device is constructed with.
type DeviceConfig struct {
	Name   string
	Volume float64 // initial volume in [0, 1]

	// Token returns the credential used by the engine. It is invoked on
	// every engine-side authorization, so replacing the controller's token
	// takes effect without reconnecting.
	Token func() string
}

// Device is the vendor-runtime playback endpoint. A controller owns at most
// one live device at a time and releases it on fatal error.
type Device interface {
	AddListener(t EventType, h Handler)
	RemoveListener(t EventType)

	// Connect asks the engine to bring the device online. Readiness is
	// signaled separately through the ready/not_ready events.
	Connect(ctx context.Context) error

	Disconnect()
}

// LoadError indicates the engine script failed to load. It is fatal to the
// connection attempt and is not retried.
type LoadError struct {
	Src string
	Err error
}

func (e *LoadError) Error() string {
	return "sdk: failed to load engine script " + e.Src + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
