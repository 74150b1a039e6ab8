// Package logging generates conversion reports for converted presets.
// This file contains the reusable table formatting infrastructure used by
// the band-mapping section.
package logging

import (
	"fmt"
	"math"
	"strings"
)

// MetricRow is a single row in a report table. Values are pre-formatted
// strings so rows can mix decimals, integers, and flags.
type MetricRow struct {
	Label  string   // row label, e.g. "Band 3"
	Values []string // one value per column
	Notes  string   // optional trailing note (only shown if non-empty)
}

// MetricTable formats aligned columns.
// Labels are left-aligned, values right-aligned under their headers, and the
// notes column is only rendered when at least one row carries a note.
type MetricTable struct {
	Headers []string
	Rows    []MetricRow
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *MetricTable {
	return &MetricTable{Headers: headers}
}

// AddRow appends a row with pre-formatted values.
func (t *MetricTable) AddRow(label string, values []string, notes string) {
	t.Rows = append(t.Rows, MetricRow{Label: label, Values: values, Notes: notes})
}

// String renders the table.
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	hasNotes := false
	for _, row := range t.Rows {
		if row.Notes != "" {
			hasNotes = true
			break
		}
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	var sb strings.Builder

	// Header row: blank label column, then right-aligned headers.
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], header))
	}
	if hasNotes {
		sb.WriteString("Notes")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))
		for i := 0; i < len(t.Headers); i++ {
			val := MissingValue
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], val))
		}
		if hasNotes {
			sb.WriteString(row.Notes)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// MissingValue is the placeholder for unavailable values.
const MissingValue = "-"

// formatMetric formats a numeric value with fixed precision.
// NaN and Inf render as MissingValue; very small non-zero magnitudes switch
// to scientific notation so they remain readable.
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	if value != 0 && math.Abs(value) < 0.0001 {
		return fmt.Sprintf("%.2e", value)
	}
	return fmt.Sprintf("%.*f", decimals, value)
}

// formatMetricSigned formats a value with an explicit sign, for gain deltas
// like "+2.5" or "-1.2".
func formatMetricSigned(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	return fmt.Sprintf("%+.*f", decimals, value)
}
