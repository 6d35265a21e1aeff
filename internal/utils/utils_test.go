package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{3*time.Minute + 20*time.Second, "03:20"},
		{61*time.Minute + 1*time.Second, "01:01:01"},
		{25*time.Hour + 45*time.Minute + 30*time.Second, "25:45:30"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s; expected %s", test.duration, result, test.expected)
		}
	}
}

func TestFormatTags(t *testing.T) {
	if got := FormatTags([]string{"#cat", "#animal"}); got != "[#cat #animal]" {
		t.Errorf("FormatTags = %s; expected [#cat #animal]", got)
	}
	if got := FormatTags(nil); got != "[]" {
		t.Errorf("FormatTags(nil) = %s; expected []", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"Video about nothing", 10, "Video a..."},
		{"abcdef", 3, "abc"},
		{"Котики и собачки", 8, "Котик..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%q, %d) = %q; expected %q", test.input, test.maxLen, result, test.expected)
		}
	}
}
