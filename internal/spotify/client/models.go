package client

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Device represents a Spotify playback device.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent *int   `json:"volume_percent"` // Nullable
}

// PlaybackState represents the current playback state.
type PlaybackState struct {
	Device       Device `json:"device"`
	ShuffleState bool   `json:"shuffle_state"`
	RepeatState  string `json:"repeat_state"` // off, track, context
	Timestamp    int64  `json:"timestamp"`
	ProgressMS   int    `json:"progress_ms"`
	IsPlaying    bool   `json:"is_playing"`
	Item         *Track `json:"item"`
}

// Track represents a Spotify track.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	DurationMS int      `json:"duration_ms"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
}

// Artist represents a Spotify artist.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Album represents a Spotify album.
type Album struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	URI    string  `json:"uri"`
	Images []Image `json:"images"`
}

// PlaylistItem is one entry of the user's playlist listing. Tracks.Href is
// the cursor root for that playlist's own track pages.
type PlaylistItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URI    string `json:"uri"`
	Tracks struct {
		Total int    `json:"total"`
		Href  string `json:"href"`
	} `json:"tracks"`
}

// PlaylistPage is one page of the user's playlist listing. Next is the
// absolute URL of the following page, or "" when exhausted.
type PlaylistPage struct {
	Items []PlaylistItem `json:"items"`
	Next  string         `json:"next"`
	Total int            `json:"total"`
}

// TrackEntry wraps a track inside a playlist or saved-tracks page.
type TrackEntry struct {
	Track Track `json:"track"`
}

// TrackPage is one page of a playlist's tracks or of the saved-tracks
// listing.
type TrackPage struct {
	Items []TrackEntry `json:"items"`
	Next  string       `json:"next"`
	Total int          `json:"total"`
}
