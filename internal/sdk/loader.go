package sdk

import "context"

// Loader ensures the engine script is present in the host, injecting it at
// most once. Safe to call EnsureLoaded repeatedly; the marker check makes it
// idempotent.
type Loader struct {
	rt Runtime
}

// NewLoader creates a loader bound to the given runtime.
func NewLoader(rt Runtime) *Loader {
	return &Loader{rt: rt}
}

// EnsureLoaded injects the engine script if it is not already present and
// blocks until it has loaded. A load failure returns a *LoadError and is not
// retried.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	if l.rt.HasScript(ScriptID) {
		return nil
	}
	if err := l.rt.LoadScript(ctx, ScriptID, ScriptURL); err != nil {
		return &LoadError{Src: ScriptURL, Err: err}
	}
	return nil
}
