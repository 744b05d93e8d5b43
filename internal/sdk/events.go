package sdk

// EventType names a device push event. The set is fixed by the vendor
// runtime contract.
type EventType string

const (
	EventReady               EventType = "ready"
	EventNotReady            EventType = "not_ready"
	EventStateChanged        EventType = "player_state_changed"
	EventInitializationError EventType = "initialization_error"
	EventAuthenticationError EventType = "authentication_error"
	EventAccountError        EventType = "account_error"
	EventPlaybackError       EventType = "playback_error"
)

// Event is a single device push notification. Which fields are set depends
// on the type: ready/not_ready carry DeviceID, player_state_changed carries
// State (nil when the device lost its session), error events carry Message.
type Event struct {
	Type     EventType
	DeviceID string
	State    *PlayerState
	Message  string
}

// Handler receives device push events. Handlers for one device are invoked
// strictly one at a time, in delivery order.
type Handler func(Event)

// PlayerState is the engine-reported playback state.
type PlayerState struct {
	Paused      bool
	Position    int // milliseconds
	TrackWindow TrackWindow
}

// TrackWindow holds the engine's view of the current track.
type TrackWindow struct {
	CurrentTrack *PlayerTrack
}

// PlayerTrack is the engine's track descriptor.
type PlayerTrack struct {
	ID         string
	Name       string
	URI        string
	DurationMS int
	Artists    []PlayerArtist
	Album      PlayerAlbum
}

// PlayerArtist is an artist entry within a track descriptor.
type PlayerArtist struct {
	Name string
	URI  string
}

// PlayerAlbum holds album metadata, including the image set the controller
// selects a thumbnail from.
type PlayerAlbum struct {
	Name   string
	URI    string
	Images []Image
}

// Image is an album image resource.
type Image struct {
	URL    string
	Width  int
	Height int
}
