// Package preset models a parametric EQ preset as exported by measurement
// tools (AutoEQ, REW) in their line-oriented text format.
package preset

// FilterType is the bare type token from a filter line (PK, LSC, HSC, LP, HP).
// Tokens outside the known set are carried verbatim; the emitter decides how
// to map them.
type FilterType string

// Filter type tokens used by the text export format.
const (
	TypePeak      FilterType = "PK"  // peaking/bell
	TypeLowShelf  FilterType = "LSC" // low shelf
	TypeHighShelf FilterType = "HSC" // high shelf
	TypeLowPass   FilterType = "LP"  // low pass (high cut)
	TypeHighPass  FilterType = "HP"  // high pass (low cut)
)

// Filter is one parametric equalizer band. Immutable once parsed.
type Filter struct {
	Enabled   bool
	Type      FilterType
	Frequency float64 // Hz
	Gain      float64 // dB
	Q         float64
}

// Preset is a parsed EQ preset: a global preamp gain plus filters in file
// order. Author and Tags are attached by the caller after parsing.
type Preset struct {
	Preamp  float64 // dB, 0 when the export carries no Preamp line
	Filters []Filter
	Name    string
	Author  string
	Tags    string
}
