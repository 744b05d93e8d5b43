package core

// ErrorKind classifies errors pushed by the playback device.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorInitialization
	ErrorAuthentication
	ErrorAccount
	ErrorPlayback
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorInitialization:
		return "initialization"
	case ErrorAuthentication:
		return "authentication"
	case ErrorAccount:
		return "account"
	case ErrorPlayback:
		return "playback"
	default:
		return "unknown"
	}
}

// Fatal reports whether an error of this kind tears down the session.
// Playback errors are transient and leave the connection alive.
func (k ErrorKind) Fatal() bool {
	switch k {
	case ErrorInitialization, ErrorAuthentication, ErrorAccount:
		return true
	default:
		return false
	}
}

// Snapshot is the externally observable playback state. The session
// controller is the only writer; everything else reads a copy.
type Snapshot struct {
	Playing  bool      `json:"playing"`
	Ready    bool      `json:"ready"`
	Position int       `json:"position_ms"`
	Track    Track     `json:"track"`
	Err      string    `json:"error,omitempty"`
	ErrKind  ErrorKind `json:"-"`
}

// HasTrack returns true if there is an active track.
func (s Snapshot) HasTrack() bool {
	return !s.Track.IsEmpty()
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s Snapshot) ProgressPercent() float64 {
	if s.Track.DurationMS == 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Track.DurationMS) * 100
}
