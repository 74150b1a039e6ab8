// Package proq encodes EQ presets in the FabFilter Pro-Q 4 .ffp text format.
package proq

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jroot3d/eqbridge/internal/preset"
)

// Pro-Q stores band Q on a logarithmic 0..1 scale between these bounds.
const (
	qMin = 0.025
	qMax = 40.0
)

// ErrNonPositiveFrequency is returned when a band frequency cannot be encoded.
var ErrNonPositiveFrequency = errors.New("frequency must be positive")

// BandFrequency converts a centre frequency in Hz to Pro-Q's log2 encoding.
// Returns ErrNonPositiveFrequency for hz <= 0 rather than letting a NaN leak
// into the preset.
func BandFrequency(hz float64) (float64, error) {
	if hz <= 0 {
		return 0, fmt.Errorf("%w: got %g Hz", ErrNonPositiveFrequency, hz)
	}
	return math.Log2(hz), nil
}

// BandQ converts a filter Q to Pro-Q's normalised 0..1 encoding.
// Q is clamped to [0.025, 40] first, then mapped logarithmically so that the
// bounds land exactly on 0 and 1. All filter shapes share the same curve.
func BandQ(q float64) float64 {
	q = math.Max(qMin, math.Min(qMax, q))
	return (math.Log(q) - math.Log(qMin)) / (math.Log(qMax) - math.Log(qMin))
}

// Shape maps a text-export filter type token to Pro-Q's shape code.
// Unrecognised tokens fall back to the peaking shape rather than failing:
// a best-effort band beats a rejected preset.
func Shape(t preset.FilterType) int {
	switch t {
	case preset.TypePeak:
		return 0
	case preset.TypeLowShelf:
		return 1
	case preset.TypeLowPass:
		return 2
	case preset.TypeHighShelf:
		return 3
	case preset.TypeHighPass:
		return 4
	default:
		return 0
	}
}

// OutputLevel converts a preamp gain in dB to Pro-Q's Output Level value.
// The scale is linear (36 dB full scale) and deliberately unclamped: values
// outside the plugin's range are passed through for the plugin to resolve.
func OutputLevel(preampDB float64) float64 {
	return preampDB / 36.0
}

// formatValue renders a float the way Pro-Q presets written by the reference
// tooling do: shortest round-trip representation, with integral values keeping
// a trailing ".0" (so a 3 dB gain reads "3.0", not "3").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
