package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// PlayOptions configures a play request.
type PlayOptions struct {
	ContextURI string      `json:"context_uri,omitempty"`
	URIs       []string    `json:"uris,omitempty"`
	Offset     *PlayOffset `json:"offset,omitempty"`
}

// PlayOffset specifies where to start playback. Position zero is meaningful,
// so it always serializes.
type PlayOffset struct {
	Position int `json:"position"`
}

// PlayOptionsFor builds play options for a single URI target. A track URI
// plays as a one-element URI list with an offset wrapper; an artist URI
// plays as a context with no offset, since artists have no linear position;
// any other context carries the offset through.
func PlayOptionsFor(uri string, offset int) *PlayOptions {
	switch {
	case IsTrackURI(uri):
		return &PlayOptions{URIs: []string{uri}, Offset: &PlayOffset{Position: offset}}
	case IsArtistURI(uri):
		return &PlayOptions{ContextURI: uri}
	default:
		return &PlayOptions{ContextURI: uri, Offset: &PlayOffset{Position: offset}}
	}
}

// IsTrackURI reports whether uri denotes a single track.
func IsTrackURI(uri string) bool {
	return strings.Contains(uri, ":track:")
}

// IsArtistURI reports whether uri denotes an artist context.
func IsArtistURI(uri string) bool {
	return strings.Contains(uri, ":artist:")
}

// Play starts or resumes playback. A nil opts issues a bare resume with no
// body. If deviceID is empty, the currently active device is used.
func (c *Client) Play(ctx context.Context, deviceID string, opts *PlayOptions) error {
	path := "/me/player/play"
	if deviceID != "" {
		path = BuildURL(path, map[string]string{"device_id": deviceID})
	}
	if opts == nil {
		return c.Put(ctx, path, nil)
	}
	return c.Put(ctx, path, opts)
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context) error {
	return c.Put(ctx, "/me/player/pause", nil)
}

// Next skips to the next track.
func (c *Client) Next(ctx context.Context) error {
	return c.Post(ctx, "/me/player/next", nil)
}

// Previous skips to the previous track.
func (c *Client) Previous(ctx context.Context) error {
	return c.Post(ctx, "/me/player/previous", nil)
}

// Seek seeks to a position in the current track.
func (c *Client) Seek(ctx context.Context, positionMs int) error {
	return c.Put(ctx, BuildURL("/me/player/seek", map[string]string{
		"position_ms": strconv.Itoa(positionMs),
	}), nil)
}

// SetVolume sets the playback volume (0-100).
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	return c.Put(ctx, BuildURL("/me/player/volume", map[string]string{
		"volume_percent": strconv.Itoa(percent),
	}), nil)
}

// CurrentPlayback returns the current playback state, or nil when the API
// reports no active playback (204 No Content).
func (c *Client) CurrentPlayback(ctx context.Context) (*PlaybackState, error) {
	status, body, err := c.do(ctx, "GET", "/me/player", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent || len(body) == 0 {
		return nil, nil
	}
	var state PlaybackState
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("failed to parse playback state: %w", err)
	}
	return &state, nil
}
