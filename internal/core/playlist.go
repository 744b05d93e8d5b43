package core

// FavoritesName is the name given to the synthetic playlist built from the
// user's saved tracks. It is always the first entry of an aggregated result.
const FavoritesName = "Your Music"

// Playlist is an ordered collection of tracks. Track order matches the order
// returned by the remote listing, page by page.
type Playlist struct {
	Name   string  `json:"name"`
	Tracks []Track `json:"tracks"`
}

// Len returns the number of tracks in the playlist.
func (p Playlist) Len() int {
	return len(p.Tracks)
}

// IsFavorites reports whether this is the synthetic saved-tracks playlist.
func (p Playlist) IsFavorites() bool {
	return p.Name == FavoritesName
}
