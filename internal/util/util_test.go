package util

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "zero", meters: 0, expected: "0 m"},
		{name: "under a kilometre", meters: 235.4, expected: "235 m"},
		{name: "just under a kilometre", meters: 999.4, expected: "999 m"},
		{name: "exact kilometre", meters: 1000, expected: "1.0 km"},
		{name: "several kilometres", meters: 4260, expected: "4.3 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.meters); got != tt.expected {
				t.Fatalf("FormatDistance(%v) = %s, want %s", tt.meters, got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "fits", input: "pothole", max: 20, expected: "pothole"},
		{name: "ascii cut", input: "broken streetlight", max: 9, expected: "broken…"},
		{name: "multibyte not split", input: "ééééé", max: 7, expected: "éé…"},
		{name: "no room", input: "flooding", max: 2, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TruncateRunes(tt.input, tt.max)
			if got != tt.expected {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
			if !utf8.ValidString(got) || len(got) > tt.max {
				t.Fatalf("TruncateRunes(%q, %d) produced invalid output %q", tt.input, tt.max, got)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
