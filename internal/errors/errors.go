// Package errors maps failures to user-facing suggestions for the CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoToken        = errors.New("no API token configured")
	ErrNoActiveDevice = errors.New("no active device")
	ErrNetworkError   = errors.New("network error")
)

// VampError wraps an error with a user-friendly suggestion.
type VampError struct {
	Err        error
	Suggestion string
}

func (e *VampError) Error() string {
	return e.Err.Error()
}

func (e *VampError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &VampError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var vampErr *VampError
	if errors.As(err, &vampErr) && vampErr.Suggestion != "" {
		return vampErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNoToken) || strings.Contains(errStr, "no api token") ||
		strings.Contains(errStr, "invalid access token") || strings.Contains(errStr, "401") {
		return "Set spotify.token in ~/.vamprc or export VAMP_SPOTIFY_TOKEN"
	}

	if errors.Is(err, ErrNoActiveDevice) || strings.Contains(errStr, "no active device") ||
		strings.Contains(errStr, "404") {
		return "Open Spotify on a device and start playing, then try again"
	}

	if strings.Contains(errStr, "premium") || strings.Contains(errStr, "restriction violated") ||
		strings.Contains(errStr, "403") {
		return "This feature requires Spotify Premium"
	}

	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	if errors.Is(err, ErrNetworkError) || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "timeout") || strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "Spotify is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
