package cli

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this one is too long", 10, "this on..."},
		{"ab", 2, "ab"},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.s, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{90, "1:30"},
		{3661, "1:01:01"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"90", 90000, false},
		{"0", 0, false},
		{"2:15", 135000, false},
		{"0:05", 5000, false},
		{"2:75", 0, true},
		{"abc", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parsePosition(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTableOutput(t *testing.T) {
	var sb strings.Builder
	table := NewTableWriter(&sb, "NAME", "TRACKS")
	table.Row("Your Music", "12")
	table.Row("Road Trip", "48")
	table.Flush()

	out := sb.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "Road Trip") {
		t.Errorf("table output missing content:\n%s", out)
	}
}
