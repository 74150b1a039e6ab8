package preset

import (
	"regexp"
	"strconv"
	"strings"
)

// Line shapes recognised in the text export. Anything else is ignored.
//
//	Preamp: -6.4 dB
//	Filter 1: ON PK Fc 105 Hz Gain 8.2 dB Q 0.70
var (
	preampPattern = regexp.MustCompile(`Preamp:\s*(-?\d+\.?\d*)\s*dB`)
	filterPattern = regexp.MustCompile(`Filter\s+\d+:\s+(ON|OFF)\s+(\w+)\s+Fc\s+(\d+\.?\d*)\s*Hz\s+Gain\s+(-?\d+\.?\d*)\s*dB\s+Q\s+(\d+\.?\d*)`)
)

// Parse scans text line by line and returns the preset it describes.
//
// Malformed lines are skipped silently: a line that starts like a filter but
// has a missing field or an unparseable number contributes nothing. If the
// file carries several Preamp lines, the last one wins.
//
// The literal index in "Filter N:" is ignored; filters are appended in scan
// order. Exports with sparse or out-of-order numbering will therefore land on
// different bands than their author numbered them — this matches the
// behaviour of the measurement tools' own converters.
func Parse(text string) *Preset {
	p := &Preset{}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Preamp:"):
			if m := preampPattern.FindStringSubmatch(line); m != nil {
				p.Preamp = mustFloat(m[1])
			}

		case strings.HasPrefix(line, "Filter"):
			m := filterPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			p.Filters = append(p.Filters, Filter{
				Enabled:   m[1] == "ON",
				Type:      FilterType(m[2]),
				Frequency: mustFloat(m[3]),
				Gain:      mustFloat(m[4]),
				Q:         mustFloat(m[5]),
			})
		}
	}

	return p
}

// mustFloat parses a decimal already vetted by the line patterns above.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
