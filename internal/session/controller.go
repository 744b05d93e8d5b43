// Package session implements the playback session controller: it sequences
// the engine connection handshake, folds device push events into a pollable
// snapshot and routes transport commands to the control API.
package session

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/soneb/vamp/internal/core"
	"github.com/soneb/vamp/internal/sdk"
	"github.com/soneb/vamp/internal/spotify/client"
)

// Controller owns one playback session against the vendor engine. Identity
// (name, initial volume) is fixed at construction; the token may be replaced
// at any time and every outbound call observes the current one.
type Controller struct {
	rt     sdk.Runtime
	loader *sdk.Loader
	gate   *sdk.ReadyGate
	api    *client.Client

	name   string
	volume float64

	mu        sync.Mutex
	token     string
	device    sdk.Device
	deviceID  string
	snap      core.Snapshot
	playlists []core.Playlist
}

// New creates a controller with the given device identity. volume is the
// initial engine volume in [0, 1].
func New(rt sdk.Runtime, name string, volume float64) *Controller {
	c := &Controller{
		rt:     rt,
		loader: sdk.NewLoader(rt),
		gate:   sdk.NewReadyGate(rt),
		name:   name,
		volume: volume,
	}
	c.api = client.New(c.Token)
	return c
}

// API exposes the underlying control-API client, mainly so hosts can tune
// logging or the base URL.
func (c *Controller) API() *client.Client {
	return c.api
}

// Connect establishes the playback session. It loads the engine script and
// waits for engine readiness concurrently, constructs the device, attaches
// all listeners and drives the ready/not_ready handshake. The returned bool
// reflects whichever of the two terminal events fired first; readiness flips
// after that are visible only through Ready.
//
// If the device cannot be constructed at all, Connect returns (false, nil).
func (c *Controller) Connect(ctx context.Context, token string) (bool, error) {
	c.SetToken(token)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.loader.EnsureLoaded(gctx) })
	g.Go(func() error { return c.gate.AwaitReady(gctx) })
	if err := g.Wait(); err != nil {
		return false, err
	}

	dev, err := c.rt.NewDevice(sdk.DeviceConfig{
		Name:   c.name,
		Volume: c.volume,
		Token:  c.Token,
	})
	if err != nil || dev == nil {
		return false, nil
	}

	c.mu.Lock()
	c.device = dev
	c.deviceID = ""
	c.snap.Err = ""
	c.snap.ErrKind = core.ErrorNone
	c.mu.Unlock()

	// Push listeners must be attached before the device goes online.
	dev.AddListener(sdk.EventStateChanged, c.handleState)
	dev.AddListener(sdk.EventInitializationError, c.errorHandler(core.ErrorInitialization))
	dev.AddListener(sdk.EventAuthenticationError, c.errorHandler(core.ErrorAuthentication))
	dev.AddListener(sdk.EventAccountError, c.errorHandler(core.ErrorAccount))
	dev.AddListener(sdk.EventPlaybackError, c.errorHandler(core.ErrorPlayback))

	// Race the two terminal events. Only the first decides the result;
	// later flips just update the snapshot.
	result := make(chan bool, 1)
	var decide sync.Once

	dev.AddListener(sdk.EventReady, func(ev sdk.Event) {
		c.mu.Lock()
		c.deviceID = ev.DeviceID
		c.snap.Ready = true
		c.mu.Unlock()
		decide.Do(func() { result <- true })
	})
	dev.AddListener(sdk.EventNotReady, func(ev sdk.Event) {
		c.mu.Lock()
		c.snap.Ready = false
		c.mu.Unlock()
		decide.Do(func() { result <- false })
	})

	if err := dev.Connect(ctx); err != nil {
		return false, err
	}

	select {
	case ok := <-result:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// handleState folds an engine state event into the snapshot. A nil state
// means the device lost its session: media resets but readiness is
// untouched.
func (c *Controller) handleState(ev sdk.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ev.State == nil {
		c.snap.Track = core.EmptyTrack
		c.snap.Position = 0
		c.snap.Playing = false
		return
	}

	c.snap.Playing = !ev.State.Paused
	c.snap.Position = ev.State.Position
	c.snap.Track = trackFromState(ev.State)
}

// errorHandler records the error and, for every kind except playback,
// tears the session down: readiness drops, all listeners are removed and
// the device is disconnected.
func (c *Controller) errorHandler(kind core.ErrorKind) sdk.Handler {
	return func(ev sdk.Event) {
		c.mu.Lock()
		c.snap.Err = ev.Message
		c.snap.ErrKind = kind
		c.snap.Ready = false
		dev := c.device
		if kind.Fatal() {
			c.device = nil
			c.deviceID = ""
		}
		c.mu.Unlock()

		if kind.Fatal() && dev != nil {
			releaseDevice(dev)
		}
	}
}

// releaseDevice removes every listener, then disconnects. Nothing suspends
// between the removals, so no partial listener state is observable.
func releaseDevice(dev sdk.Device) {
	for _, t := range []sdk.EventType{
		sdk.EventStateChanged,
		sdk.EventInitializationError,
		sdk.EventAuthenticationError,
		sdk.EventAccountError,
		sdk.EventPlaybackError,
		sdk.EventReady,
		sdk.EventNotReady,
	} {
		dev.RemoveListener(t)
	}
	dev.Disconnect()
}

// trackFromState builds the snapshot track from the engine's current-track
// descriptor. The image is the album image with the minimum width present.
func trackFromState(st *sdk.PlayerState) core.Track {
	cur := st.TrackWindow.CurrentTrack
	if cur == nil {
		return core.EmptyTrack
	}

	artists := make([]string, len(cur.Artists))
	for i, a := range cur.Artists {
		artists[i] = a.Name
	}

	return core.Track{
		ID:         cur.ID,
		Name:       cur.Name,
		URI:        cur.URI,
		Artists:    artists,
		DurationMS: cur.DurationMS,
		Image:      smallestImage(cur.Album.Images),
	}
}

func smallestImage(images []sdk.Image) string {
	if len(images) == 0 {
		return ""
	}
	min := images[0]
	for _, img := range images[1:] {
		if img.Width < min.Width {
			min = img
		}
	}
	return min.URL
}
