package models

import (
	"errors"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Interval != 1200 {
		t.Errorf("Expected interval 1200, got %d", settings.Interval)
	}
	if settings.ImagePath != "" {
		t.Errorf("Expected empty image path, got %q", settings.ImagePath)
	}
	if !settings.Valid() {
		t.Error("Default settings should be valid")
	}
}

func TestSettingsValid(t *testing.T) {
	var nilSettings *Settings
	if nilSettings.Valid() {
		t.Error("nil settings should not be valid")
	}
	if (&Settings{Interval: 0}).Valid() {
		t.Error("zero interval should not be valid")
	}
	if (&Settings{Interval: -5}).Valid() {
		t.Error("negative interval should not be valid")
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
		wantErr  bool
	}{
		{name: "plain", input: "300", fallback: 1200, want: 300},
		{name: "spaces", input: "  45 ", fallback: 1200, want: 45},
		{name: "empty reverts", input: "", fallback: 600, want: 600, wantErr: true},
		{name: "letters revert", input: "12a", fallback: 600, want: 600, wantErr: true},
		{name: "zero reverts", input: "0", fallback: 600, want: 600, wantErr: true},
		{name: "negative reverts", input: "-10", fallback: 600, want: 600, wantErr: true},
		{name: "bad fallback uses default", input: "x", fallback: 0, want: DefaultInterval, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input, tt.fallback)
			if got != tt.want {
				t.Errorf("ParseInterval(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("expected ErrInvalidInterval, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewBreak(t *testing.T) {
	first := NewBreak(ReasonExpired, "/tmp/a.png")
	second := NewBreak(ReasonPreview, "")
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("Expected unique non-empty IDs, got %q and %q", first.ID, second.ID)
	}
	if first.Reason != ReasonExpired || first.ImagePath != "/tmp/a.png" {
		t.Errorf("Unexpected break fields: %+v", first)
	}
	if first.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
}
