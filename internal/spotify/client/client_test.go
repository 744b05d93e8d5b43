package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params map[string]string
		want   string
	}{
		{
			name:   "no params",
			path:   "/me",
			params: nil,
			want:   "/me",
		},
		{
			name:   "single param",
			path:   "/me/player/seek",
			params: map[string]string{"position_ms": "1000"},
			want:   "/me/player/seek?position_ms=1000",
		},
		{
			name:   "absolute url keeps existing query",
			path:   "https://api.spotify.com/v1/me/playlists?offset=50",
			params: map[string]string{"limit": "50"},
			want:   "https://api.spotify.com/v1/me/playlists?limit=50&offset=50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildURL(tt.path, tt.params); got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{}
	err.ErrorInfo.Status = 401
	err.ErrorInfo.Message = "Invalid access token"

	expected := "Spotify API error 401: Invalid access token"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
	if !IsAuthError(err) {
		t.Error("IsAuthError() = false, want true for 401")
	}
}

func TestBearerTokenCurrentAtCallTime(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	token := "first"
	c := New(func() string { return token })
	c.SetBaseURL(srv.URL)

	if err := c.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if gotAuth != "Bearer first" {
		t.Errorf("Authorization = %q, want Bearer first", gotAuth)
	}

	token = "second"
	if err := c.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if gotAuth != "Bearer second" {
		t.Errorf("Authorization = %q, want Bearer second", gotAuth)
	}
}

func TestErrorEnvelopeParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":403,"message":"Premium required"}}`))
	}))
	defer srv.Close()

	c := NewStatic("tok")
	c.SetBaseURL(srv.URL)

	err := c.Next(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.ErrorInfo.Status != 403 || apiErr.ErrorInfo.Message != "Premium required" {
		t.Errorf("parsed error = %+v", apiErr.ErrorInfo)
	}
}
