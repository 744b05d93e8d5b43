package client

import (
	"context"
	"strconv"

	"github.com/soneb/vamp/internal/core"
)

const (
	playlistPageSize = 50
	trackPageSize    = 100
	savedPageSize    = 50
)

// FetchAllPlaylists retrieves the user's playlists with their full track
// lists and prepends the synthetic favorites playlist built from saved
// tracks. Playlists keep the remote listing order; tracks keep page
// concatenation order. Any page failure abandons the whole aggregation.
func (c *Client) FetchAllPlaylists(ctx context.Context) ([]core.Playlist, error) {
	items, err := c.playlistItems(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := c.savedTracks(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]core.Playlist, 0, len(items)+1)
	result = append(result, core.Playlist{Name: core.FavoritesName, Tracks: saved})

	for _, item := range items {
		tracks, err := c.playlistTracks(ctx, item)
		if err != nil {
			return nil, err
		}
		result = append(result, core.Playlist{Name: item.Name, Tracks: tracks})
	}

	return result, nil
}

// playlistItems pages through the user's playlist listing until the cursor
// is exhausted.
func (c *Client) playlistItems(ctx context.Context) ([]PlaylistItem, error) {
	next := BuildURL("/me/playlists", map[string]string{
		"limit": strconv.Itoa(playlistPageSize),
	})

	var items []PlaylistItem
	for next != "" {
		var page PlaylistPage
		if err := c.Get(ctx, next, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		next = page.Next
	}
	return items, nil
}

// playlistTracks pages through one playlist's track listing via its own
// tracks href.
func (c *Client) playlistTracks(ctx context.Context, item PlaylistItem) ([]core.Track, error) {
	next := BuildURL(item.Tracks.Href, map[string]string{
		"limit": strconv.Itoa(trackPageSize),
	})

	var tracks []core.Track
	for next != "" {
		var page TrackPage
		if err := c.Get(ctx, next, &page); err != nil {
			return nil, err
		}
		for _, entry := range page.Items {
			tracks = append(tracks, normalizeTrack(entry.Track))
		}
		next = page.Next
	}
	return tracks, nil
}

// savedTracks fetches the first page of the user's saved tracks. The cursor
// is deliberately not followed: favorites are capped at one page.
func (c *Client) savedTracks(ctx context.Context) ([]core.Track, error) {
	var page TrackPage
	err := c.Get(ctx, BuildURL("/me/tracks", map[string]string{
		"limit": strconv.Itoa(savedPageSize),
	}), &page)
	if err != nil {
		return nil, err
	}

	tracks := make([]core.Track, 0, len(page.Items))
	for _, entry := range page.Items {
		tracks = append(tracks, normalizeTrack(entry.Track))
	}
	return tracks, nil
}

// normalizeTrack converts an API track to the domain shape. Aggregated
// tracks take the first album image in listed order; live push state
// selects by minimum width instead, and the two must not be unified.
func normalizeTrack(t Track) core.Track {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	image := ""
	if len(t.Album.Images) > 0 {
		image = t.Album.Images[0].URL
	}

	return core.Track{
		ID:         t.ID,
		Name:       t.Name,
		URI:        t.URI,
		Artists:    artists,
		DurationMS: t.DurationMS,
		Image:      image,
	}
}
