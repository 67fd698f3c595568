// Package core provides session matching and volume normalization logic.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Errors returned by matching and parsing. Callers test with errors.Is;
// the CLI boundary converts them to messages and a non-zero exit.
var (
	ErrNotFound      = errors.New("application not found")
	ErrInvalidVolume = errors.New("invalid volume value")
)

// ParseVolume normalizes user volume input to a scalar in [0.0, 1.0].
//
// Two syntaxes are accepted:
//   - integer 0-100, interpreted as a percentage ("50" -> 0.5, "1" -> 0.01)
//   - fraction 0.0-1.0, taken as-is ("0.5" -> 0.5, "1.0" -> 1.0)
//
// Anything non-numeric or outside both ranges returns ErrInvalidVolume.
func ParseVolume(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidVolume)
	}

	// Integer syntax means percent.
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 100 {
			return 0, fmt.Errorf("%w: %d is outside 0-100", ErrInvalidVolume, n)
		}
		return float64(n) / 100.0, nil
	}

	// Fractional syntax means scalar.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidVolume, raw)
	}
	if f < 0.0 || f > 1.0 {
		return 0, fmt.Errorf("%w: %s is outside 0.0-1.0", ErrInvalidVolume, raw)
	}
	return clampVolume(f), nil
}

// FormatPercent renders a volume scalar as a percentage without
// trailing-zero noise ("0.5" -> "50%", "0.825" -> "82.5%").
func FormatPercent(v float64) string {
	return humanize.Ftoa(clampVolume(v)*100) + "%"
}

// clampVolume bounds a scalar to [0.0, 1.0].
func clampVolume(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
