package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no token sentinel", ErrNoToken, "VAMP_SPOTIFY_TOKEN"},
		{"wrapped no token", fmt.Errorf("startup: %w", ErrNoToken), "VAMP_SPOTIFY_TOKEN"},
		{"401 status", errors.New("spotify API error (401): invalid access token"), "VAMP_SPOTIFY_TOKEN"},
		{"no active device", ErrNoActiveDevice, "Open Spotify on a device"},
		{"premium", errors.New("spotify API error (403): Premium required"), "Spotify Premium"},
		{"rate limit", errors.New("429 too many requests"), "Wait a moment"},
		{"network", errors.New("dial tcp: connection refused"), "internet connection"},
		{"server", errors.New("spotify API error (500): oops"), "having issues"},
		{"unknown", errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestWithSuggestionOverrides(t *testing.T) {
	err := WithSuggestion(errors.New("401 denied"), "run vamp login first")
	if got := GetSuggestion(err); got != "run vamp login first" {
		t.Errorf("GetSuggestion() = %q, want explicit suggestion", got)
	}

	var vampErr *VampError
	if !errors.As(err, &vampErr) {
		t.Error("WithSuggestion() result should unwrap to *VampError")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	plain := Format(errors.New("boom"))
	if plain != "Error: boom" {
		t.Errorf("Format() = %q, want %q", plain, "Error: boom")
	}

	withHint := Format(ErrNoToken)
	if !strings.HasPrefix(withHint, "Error: no API token configured") ||
		!strings.Contains(withHint, "Suggestion:") {
		t.Errorf("Format() = %q, want message with suggestion", withHint)
	}
}
