package models

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultInterval is the break interval used when none is configured (20 minutes).
const DefaultInterval = 1200

// ErrInvalidInterval is returned for interval input that is not a positive integer.
var ErrInvalidInterval = errors.New("interval must be a positive whole number of seconds")

// Settings represents the persisted user settings
type Settings struct {
	Interval  int    `json:"interval"` // in seconds
	ImagePath string `json:"img_path"`
}

// DefaultSettings returns default application settings
func DefaultSettings() *Settings {
	return &Settings{
		Interval:  DefaultInterval,
		ImagePath: "",
	}
}

// Valid reports whether the settings satisfy the interval invariant.
func (s *Settings) Valid() bool {
	return s != nil && s.Interval > 0
}

// ParseInterval parses user input into an interval. On bad input it returns
// fallback (or DefaultInterval when fallback is not positive) together with
// ErrInvalidInterval.
func ParseInterval(text string, fallback int) (int, error) {
	if fallback <= 0 {
		fallback = DefaultInterval
	}
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value <= 0 {
		return fallback, ErrInvalidInterval
	}
	return value, nil
}
