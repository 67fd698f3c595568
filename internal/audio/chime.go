// Package audio provides the audible confirmation chime played after a
// volume change, so the user hears the level they just set.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// Chime plays a short sine tone scaled to a session volume.
type Chime struct {
	logger *slog.Logger

	frequency  int
	duration   time.Duration
	sampleRate beep.SampleRate

	initialized bool
}

// NewChime creates a chime generator. frequencyHz and durationMS come
// from config; zero or negative values fall back to audible defaults.
func NewChime(logger *slog.Logger, frequencyHz, durationMS int) *Chime {
	if logger == nil {
		logger = slog.Default()
	}
	if frequencyHz <= 0 {
		frequencyHz = 660
	}
	if durationMS <= 0 {
		durationMS = 120
	}

	return &Chime{
		logger:     logger,
		frequency:  frequencyHz,
		duration:   time.Duration(durationMS) * time.Millisecond,
		sampleRate: beep.SampleRate(44100),
	}
}

// Play synthesizes the tone at the given volume scalar and blocks until
// it finishes. Callers treat failure as non-fatal; a broken speaker must
// never fail the volume command itself.
func (c *Chime) Play(volume float64) error {
	if volume <= 0 {
		// Nothing audible to confirm.
		return nil
	}
	if volume > 1 {
		volume = 1
	}

	if !c.initialized {
		if err := speaker.Init(c.sampleRate, c.sampleRate.N(50*time.Millisecond)); err != nil {
			return fmt.Errorf("failed to initialize speaker: %w", err)
		}
		c.initialized = true
	}

	tone, err := generators.SinTone(c.sampleRate, c.frequency)
	if err != nil {
		return fmt.Errorf("failed to generate tone: %w", err)
	}

	// Gain is additive around unity, so volume-1 scales samples linearly
	// to the session's new level.
	scaled := &effects.Gain{
		Streamer: beep.Take(c.sampleRate.N(c.duration), tone),
		Gain:     volume - 1,
	}

	c.logger.Debug("playing chime", "frequency", c.frequency, "volume", volume)
	speaker.PlayAndWait(scaled)
	return nil
}
