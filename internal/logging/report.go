package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jroot3d/eqbridge/internal/converter"
	"github.com/jroot3d/eqbridge/internal/mains"
	"github.com/jroot3d/eqbridge/internal/proq"
)

// ReportData collects everything the conversion report needs.
type ReportData struct {
	InputPath  string
	OutputPath string
	When       time.Time
	Result     *converter.Result
	MainsHz    int // local mains frequency for hum-notch labelling
}

// LogPath returns the report path for a given preset output path:
// the same location with a .log extension.
func LogPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".log"
}

// WriteReport writes a plain-text conversion report alongside the preset.
func WriteReport(data ReportData) error {
	logPath := LogPath(data.OutputPath)

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("create report %s: %w", logPath, err)
	}
	defer f.Close()

	var sb strings.Builder
	writeHeader(&sb, data)
	writeSummary(&sb, data)
	writeBandMapping(&sb, data)

	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("write report %s: %w", logPath, err)
	}
	return nil
}

func writeHeader(sb *strings.Builder, data ReportData) {
	title := "Eqbridge Conversion Report"
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	fmt.Fprintf(sb, "Source:    %s\n", data.InputPath)
	fmt.Fprintf(sb, "Output:    %s\n", data.OutputPath)
	fmt.Fprintf(sb, "Converted: %s\n\n", data.When.Format("2006-01-02 15:04:05 MST"))
}

func writeSummary(sb *strings.Builder, data ReportData) {
	writeSection(sb, "Summary")

	res := data.Result
	p := res.Preset

	fmt.Fprintf(sb, "Preamp:  %s dB (Output Level %s)\n",
		formatMetricSigned(p.Preamp, 1), formatMetric(proq.OutputLevel(p.Preamp), 6))
	fmt.Fprintf(sb, "Filters: %d parsed, %d mapped, %d dropped\n",
		len(p.Filters), res.FilterCount, res.DroppedFilters)
	if data.MainsHz > 0 {
		fmt.Fprintf(sb, "Mains:   %d Hz (cut filters near harmonics flagged below)\n", data.MainsHz)
	}
	sb.WriteString("\n")
}

func writeBandMapping(sb *strings.Builder, data ReportData) {
	res := data.Result
	if len(res.Preset.Filters) == 0 {
		return
	}

	writeSection(sb, "Band Mapping")

	table := NewTable("Type", "State", "Fc (Hz)", "Frequency", "Gain (dB)", "Q", "Q (0-1)")
	for i, flt := range res.Preset.Filters {
		if i >= proq.BandCount {
			break
		}

		state := "OFF"
		if flt.Enabled {
			state = "ON"
		}

		freq := MissingValue
		if enc, err := proq.BandFrequency(flt.Frequency); err == nil {
			freq = formatMetric(enc, 6)
		}

		table.AddRow(
			fmt.Sprintf("Band %d", i+1),
			[]string{
				string(flt.Type),
				state,
				formatMetric(flt.Frequency, 1),
				freq,
				formatMetricSigned(flt.Gain, 1),
				formatMetric(flt.Q, 2),
				formatMetric(proq.BandQ(flt.Q), 3),
			},
			bandNotes(flt.Gain, flt.Frequency, data.MainsHz),
		)
	}
	sb.WriteString(table.String())

	if res.DroppedFilters > 0 {
		fmt.Fprintf(sb, "\n%d filter(s) beyond band %d were dropped.\n",
			res.DroppedFilters, proq.BandCount)
	}
}

// bandNotes labels likely hum notches: narrow cuts close to a mains harmonic.
func bandNotes(gainDB, fcHz float64, mainsHz int) string {
	if mainsHz <= 0 || gainDB >= 0 {
		return ""
	}
	n, ok := mains.HumHarmonic(fcHz, mainsHz)
	if !ok {
		return ""
	}
	if n == 1 {
		return fmt.Sprintf("possible hum notch (%d Hz fundamental)", mainsHz)
	}
	return fmt.Sprintf("possible hum notch (harmonic %d of %d Hz)", n, mainsHz)
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", len(title)) + "\n")
}
