package models

import (
	"time"

	"github.com/google/uuid"
)

// BreakReason tells why a break overlay was opened.
type BreakReason string

const (
	ReasonExpired BreakReason = "expired"
	ReasonPreview BreakReason = "preview"
)

// Break is one overlay session. It is never persisted; the ID ties log lines together.
type Break struct {
	ID        string
	Reason    BreakReason
	ImagePath string
	StartedAt time.Time
}

// NewBreak creates a new break with a unique ID
func NewBreak(reason BreakReason, imagePath string) *Break {
	return &Break{
		ID:        uuid.New().String(),
		Reason:    reason,
		ImagePath: imagePath,
		StartedAt: time.Now(),
	}
}

// Duration returns how long the break has lasted so far.
func (b *Break) Duration() time.Duration {
	return time.Since(b.StartedAt).Round(time.Second)
}
