package utils

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 5*time.Second, "2m:5s"},
		{time.Hour + 3*time.Minute + 7*time.Second, "1h:3m:7s"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/mask.png", true},
		{"http://localhost:8080/a.png", true},
		{"mask.png", false},
		{"/tmp/mask.png", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
