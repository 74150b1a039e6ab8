package proq

import "fmt"

// BandCount is the fixed number of parameter slots in a Pro-Q 4 preset.
// Every preset carries all 24 bands; unused slots keep their defaults.
const BandCount = 24

// bandParams holds the full per-band field set as pre-encoded values.
// One record is generated per band from the defaults and selectively
// overridden with converted filter values.
type bandParams struct {
	Used    string
	Enabled string

	Frequency string // log2 Hz
	Gain      string // dB
	Q         string // normalised 0..1
	Shape     string
	Slope     string

	StereoPlacement string
	Speakers        string

	DynamicRange    string
	DynamicsEnabled string
	DynamicsAuto    string
	Threshold       string
	Attack          string
	Release         string

	ExternalSideChain      string
	SideChainFiltering     string
	SideChainLowFrequency  string // log2 Hz
	SideChainHighFrequency string // log2 Hz
	SideChainAudition      string

	SpectralEnabled string
	SpectralDensity string
	Solo            string
}

// defaultBandParams returns the constant field set Pro-Q writes for a band.
// Threshold and the side-chain frequency pair genuinely differ between used
// and unused slots in presets the plugin itself saves; both variants are
// reproduced exactly rather than unified.
func defaultBandParams(used bool) bandParams {
	b := bandParams{
		Used:    "0",
		Enabled: "1",

		Frequency: "9.96578407287598", // ~1000 Hz
		Gain:      "0",
		Q:         "0.5",
		Shape:     "0", // peaking
		Slope:     "2",

		StereoPlacement: "2",
		Speakers:        "1",

		DynamicRange:    "0",
		DynamicsEnabled: "1",
		DynamicsAuto:    "1",
		Threshold:       "0.666666686534882",
		Attack:          "50",
		Release:         "50",

		ExternalSideChain:      "0",
		SideChainFiltering:     "0",
		SideChainLowFrequency:  "3.32192802429199", // ~10 Hz
		SideChainHighFrequency: "14.287712097168",  // ~20 kHz
		SideChainAudition:      "0",

		SpectralEnabled: "0",
		SpectralDensity: "50",
		Solo:            "0",
	}

	if used {
		b.Used = "1"
		b.Threshold = "1"
		b.SideChainLowFrequency = "6.64385604858398"  // ~100 Hz
		b.SideChainHighFrequency = "11.5507469177246" // ~3 kHz
	}

	return b
}

// appendLines writes the band's "Band N <Field>=<value>" lines.
// Fields are emitted in ascending field-name order so the output is
// byte-stable across runs; the order below is that lexicographic order,
// spelled out once.
func (b bandParams) appendLines(lines []string, n int) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"Attack", b.Attack},
		{"Dynamic Range", b.DynamicRange},
		{"Dynamics Auto", b.DynamicsAuto},
		{"Dynamics Enabled", b.DynamicsEnabled},
		{"Enabled", b.Enabled},
		{"External Side Chain", b.ExternalSideChain},
		{"Frequency", b.Frequency},
		{"Gain", b.Gain},
		{"Q", b.Q},
		{"Release", b.Release},
		{"Shape", b.Shape},
		{"Side Chain Audition", b.SideChainAudition},
		{"Side Chain Filtering", b.SideChainFiltering},
		{"Side Chain High Frequency", b.SideChainHighFrequency},
		{"Side Chain Low Frequency", b.SideChainLowFrequency},
		{"Slope", b.Slope},
		{"Solo", b.Solo},
		{"Speakers", b.Speakers},
		{"Spectral Density", b.SpectralDensity},
		{"Spectral Enabled", b.SpectralEnabled},
		{"Stereo Placement", b.StereoPlacement},
		{"Threshold", b.Threshold},
		{"Used", b.Used},
	}

	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("Band %d %s=%s", n, f.name, f.value))
	}
	return lines
}
