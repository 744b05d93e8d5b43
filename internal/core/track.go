package core

// Track represents a playable audio track.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	Artists    []string `json:"artists"`
	DurationMS int      `json:"duration_ms"`
	Image      string   `json:"image"`
}

// EmptyTrack is the sentinel used whenever no media is loaded.
var EmptyTrack = Track{}

// IsEmpty returns true if the track carries no media.
func (t Track) IsEmpty() bool {
	return t.ID == "" && t.URI == "" && t.Name == ""
}

// Artist returns the primary artist name, or "" if there are none.
func (t Track) Artist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}
