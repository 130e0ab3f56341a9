// Package sound plays the short chime that announces a break.
package sound

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"breaktimer/logging"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 180 * time.Millisecond
	volume     = 0.3
)

var notes = []float64{880, 660, 880}

// Chime plays a generated three-note tone. The speaker is opened lazily on the
// first Play.
type Chime struct {
	logger  *slog.Logger
	once    sync.Once
	initErr error
}

// NewChime creates a chime.
func NewChime(logger *slog.Logger) *Chime {
	return &Chime{logger: logging.OrDiscard(logger).With(slog.String("component", "sound"))}
}

// Play starts the chime and returns without waiting for it to finish. Audio
// failures are logged, never returned: a silent break is still a break.
func (c *Chime) Play() {
	c.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			c.initErr = fmt.Errorf("open audio output: %w", err)
		}
	})
	if c.initErr != nil {
		c.logger.Warn("chime disabled", "err", c.initErr)
		return
	}
	speaker.Play(Melody())
}

// Melody returns the chime samples as a stream.
func Melody() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		parts = append(parts, tone(freq, noteLength))
	}
	return beep.Seq(parts...)
}

// Samples is the total length of Melody in samples.
func Samples() int {
	return len(notes) * sampleRate.N(noteLength)
}

// tone is a sine wave with a linear fade out so notes do not click.
func tone(freq float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			envelope := 1 - float64(pos)/float64(total)
			v := volume * envelope * math.Sin(2*math.Pi*freq*float64(pos)/float64(sampleRate))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
