// Package converter turns parametric EQ text exports into Pro-Q 4 presets,
// one file at a time.
package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jroot3d/eqbridge/internal/preset"
	"github.com/jroot3d/eqbridge/internal/proq"
)

// exportSuffix is the filename suffix the measurement tools use for
// parametric EQ text exports.
const exportSuffix = "ParametricEQ.txt"

// Result describes one completed conversion.
type Result struct {
	Output         string // complete .ffp text
	Preset         *preset.Preset
	FilterCount    int // filters mapped onto bands
	DroppedFilters int // filters beyond band 24
}

// Convert parses the export text, attaches metadata, and encodes the preset.
// A transform failure (e.g. a zero centre frequency) aborts this preset only;
// the caller decides whether to continue with the next file.
func Convert(text, author, tags string) (*Result, error) {
	p := preset.Parse(text)
	p.Author = author
	p.Tags = tags

	out, err := proq.Encode(p)
	if err != nil {
		return nil, err
	}

	mapped := len(p.Filters)
	if mapped > proq.BandCount {
		mapped = proq.BandCount
	}

	return &Result{
		Output:         out,
		Preset:         p,
		FilterCount:    mapped,
		DroppedFilters: proq.DroppedFilters(p),
	}, nil
}

// ConvertFile reads an export, converts it, and writes the .ffp preset.
func ConvertFile(inputPath, outputPath, author, tags string) (*Result, error) {
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	res, err := Convert(string(text), author, tags)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", inputPath, err)
	}
	res.Preset.Name = PresetName(inputPath)

	if err := os.WriteFile(outputPath, []byte(res.Output), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}

	return res, nil
}

// OutputName derives the .ffp filename from an export path:
// "Sundara ParametricEQ.txt" becomes "Sundara.ffp".
func OutputName(inputPath string) string {
	return PresetName(inputPath) + ".ffp"
}

// PresetName derives the preset's display name from an export path.
func PresetName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(stem, " ParametricEQ", "")
}
