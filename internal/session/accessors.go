package session

import (
	"context"

	"github.com/soneb/vamp/internal/core"
	"github.com/soneb/vamp/internal/spotify/client"
)

// SetToken replaces the session credential. Takes effect on the next
// outbound call and the next engine token callback; no reconnect needed.
func (c *Controller) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current credential.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Snapshot returns a copy of the current playback state.
func (c *Controller) Snapshot() core.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Playing reports whether the device is currently playing.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Playing
}

// Ready reports whether the connection handshake has succeeded and no fatal
// error has occurred since.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Ready
}

// Err returns the last pushed error message, or "" if none.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Err
}

// ErrKind returns the classification of the last pushed error.
func (c *Controller) ErrKind() core.ErrorKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.ErrKind
}

// Position returns the playback position in milliseconds.
func (c *Controller) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Position
}

// Track returns the current track, or core.EmptyTrack if none.
func (c *Controller) Track() core.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Track
}

// DeviceID returns the identifier bound by the last successful ready event,
// or "" before one arrives.
func (c *Controller) DeviceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deviceID
}

// Playlists returns the result of the last FetchAllPlaylists call.
func (c *Controller) Playlists() []core.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Playlist, len(c.playlists))
	copy(out, c.playlists)
	return out
}

// Resume issues a bare resume command.
func (c *Controller) Resume(ctx context.Context) error {
	return c.api.Play(ctx, c.DeviceID(), nil)
}

// PlayTracks plays an explicit URI sequence starting at offset.
func (c *Controller) PlayTracks(ctx context.Context, uris []string, offset int) error {
	return c.api.Play(ctx, c.DeviceID(), &client.PlayOptions{
		URIs:   uris,
		Offset: &client.PlayOffset{Position: offset},
	})
}

// PlayURI plays a single target URI, branching on whether it denotes a
// track, an artist or another context. See client.PlayOptionsFor.
func (c *Controller) PlayURI(ctx context.Context, uri string, offset int) error {
	return c.api.Play(ctx, c.DeviceID(), client.PlayOptionsFor(uri, offset))
}

// Pause pauses playback.
func (c *Controller) Pause(ctx context.Context) error {
	return c.api.Pause(ctx)
}

// Next skips to the next track.
func (c *Controller) Next(ctx context.Context) error {
	return c.api.Next(ctx)
}

// Previous skips to the previous track.
func (c *Controller) Previous(ctx context.Context) error {
	return c.api.Previous(ctx)
}

// Seek seeks to a position in the current track.
func (c *Controller) Seek(ctx context.Context, positionMs int) error {
	return c.api.Seek(ctx, positionMs)
}

// SetVolume sets the playback volume (0-100).
func (c *Controller) SetVolume(ctx context.Context, percent int) error {
	return c.api.SetVolume(ctx, percent)
}

// PlaybackState queries the control API for the current playback state.
// Returns nil when nothing is playing.
func (c *Controller) PlaybackState(ctx context.Context) (*client.PlaybackState, error) {
	return c.api.CurrentPlayback(ctx)
}

// FetchAllPlaylists aggregates the user's playlists and caches the result
// for the Playlists accessor.
func (c *Controller) FetchAllPlaylists(ctx context.Context) ([]core.Playlist, error) {
	playlists, err := c.api.FetchAllPlaylists(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.playlists = playlists
	c.mu.Unlock()
	return playlists, nil
}
