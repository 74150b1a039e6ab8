package proq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jroot3d/eqbridge/internal/preset"
)

// Preset file signature and version for Pro-Q 4.
const (
	Signature = "FQ4p"
	Version   = "4"
)

// Encode renders a parsed preset as the complete .ffp text.
//
// Filters fill bands 1..24 in order; remaining bands carry unused defaults
// and filters beyond band 24 are dropped (DroppedFilters reports how many).
// A non-positive centre frequency aborts the whole preset: a partially
// converted curve is worse than a reported failure.
func Encode(p *preset.Preset) (string, error) {
	lines := make([]string, 0, 7+BandCount*24+26)

	lines = append(lines,
		"[Preset]",
		"Signature="+Signature,
		"Version="+Version,
		"Author="+p.Author,
		"Tags="+p.Tags,
		"",
		"[Parameters]",
	)

	for n := 1; n <= BandCount; n++ {
		var b bandParams
		if n <= len(p.Filters) {
			f := p.Filters[n-1]
			b = defaultBandParams(true)

			freq, err := BandFrequency(f.Frequency)
			if err != nil {
				return "", fmt.Errorf("band %d: %w", n, err)
			}

			b.Enabled = boolValue(f.Enabled)
			b.Frequency = formatValue(freq)
			b.Gain = formatValue(f.Gain)
			b.Q = formatValue(BandQ(f.Q))
			b.Shape = strconv.Itoa(Shape(f.Type))
		} else {
			b = defaultBandParams(false)
		}
		lines = b.appendLines(lines, n)
	}

	lines = append(lines, globalLines(p.Preamp)...)

	// One Spectral Tilt flag per band, after the global block.
	for n := 1; n <= BandCount; n++ {
		tilt := "0"
		if n <= len(p.Filters) {
			tilt = "1"
		}
		lines = append(lines, fmt.Sprintf("Band %d Spectral Tilt=%s", n, tilt))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n"), nil
}

// DroppedFilters reports how many filters exceed the 24-band limit.
func DroppedFilters(p *preset.Preset) int {
	if n := len(p.Filters) - BandCount; n > 0 {
		return n
	}
	return 0
}

// globalLines is the fixed global/analyzer parameter block. Only Output Level
// depends on the input; everything else matches a factory-fresh preset.
func globalLines(preampDB float64) []string {
	return []string{
		"Processing Mode=0",
		"Processing Resolution=1",
		"Character=0",
		"Gain Scale=1",
		"Output Level=" + formatValue(OutputLevel(preampDB)),
		"Output Pan=0",
		"Output Pan Mode=0",
		"Bypass=0",
		"Output Invert Phase=0",
		"Auto Gain=0",
		"Analyzer Show Pre-Processing=1",
		"Analyzer Show Post-Processing=1",
		"Analyzer Show External Spectrum=1",
		"Analyzer External Spectrum=-1",
		"Analyzer Range=2",
		"Analyzer Resolution=3",
		"Analyzer Speed=2",
		"Analyzer Tilt=0",
		"Analyzer Freeze=0",
		"Analyzer Show Collisions=0",
		"Spectrum Grab=0",
		"Display Range=2",
		"Receive Midi=0",
		"Solo Gain=0",
	}
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
