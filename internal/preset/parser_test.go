package preset

import (
	"math"
	"testing"
)

func TestParsePreamp(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "negative preamp",
			text: "Preamp: -6.4 dB\n",
			want: -6.4,
		},
		{
			name: "positive preamp without sign",
			text: "Preamp: 2.5 dB\n",
			want: 2.5,
		},
		{
			name: "integer preamp",
			text: "Preamp: -3 dB\n",
			want: -3.0,
		},
		{
			name: "extra whitespace tolerated",
			text: "Preamp:    -1.5   dB\n",
			want: -1.5,
		},
		{
			name: "absent preamp defaults to zero",
			text: "Filter 1: ON PK Fc 105 Hz Gain 8.2 dB Q 0.70\n",
			want: 0.0,
		},
		{
			name: "last preamp line wins",
			text: "Preamp: -2.0 dB\nPreamp: -5.0 dB\n",
			want: -5.0,
		},
		{
			name: "malformed preamp ignored",
			text: "Preamp: loud dB\n",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if got.Preamp != tt.want {
				t.Errorf("Parse(%q).Preamp = %v, want %v", tt.text, got.Preamp, tt.want)
			}
		})
	}
}

func TestParseFilterLine(t *testing.T) {
	p := Parse("Filter 1: ON PK Fc 105 Hz Gain 8.2 dB Q 0.70\n")

	if len(p.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(p.Filters))
	}

	f := p.Filters[0]
	if !f.Enabled {
		t.Error("Enabled = false, want true")
	}
	if f.Type != TypePeak {
		t.Errorf("Type = %q, want %q", f.Type, TypePeak)
	}
	if f.Frequency != 105 {
		t.Errorf("Frequency = %v, want 105", f.Frequency)
	}
	if math.Abs(f.Gain-8.2) > 1e-12 {
		t.Errorf("Gain = %v, want 8.2", f.Gain)
	}
	if math.Abs(f.Q-0.70) > 1e-12 {
		t.Errorf("Q = %v, want 0.70", f.Q)
	}
}

func TestParseOffFilter(t *testing.T) {
	p := Parse("Filter 3: OFF LSC Fc 80 Hz Gain -2.0 dB Q 0.71\n")

	if len(p.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(p.Filters))
	}
	if p.Filters[0].Enabled {
		t.Error("OFF filter parsed as enabled")
	}
	if p.Filters[0].Type != TypeLowShelf {
		t.Errorf("Type = %q, want %q", p.Filters[0].Type, TypeLowShelf)
	}
}

func TestParseMalformedFilterLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing Q", "Filter 1: ON PK Fc 105 Hz Gain 8.2 dB"},
		{"missing gain", "Filter 1: ON PK Fc 105 Hz Q 0.70"},
		{"bad state token", "Filter 1: MAYBE PK Fc 105 Hz Gain 8.2 dB Q 0.70"},
		{"non-numeric frequency", "Filter 1: ON PK Fc low Hz Gain 8.2 dB Q 0.70"},
		{"unrelated text", "This file was generated by a measurement tool"},
		{"empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.line + "\n")
			if len(p.Filters) != 0 {
				t.Errorf("malformed line produced %d filters, want 0", len(p.Filters))
			}
		})
	}
}

func TestParseScanOrder(t *testing.T) {
	// The declared index is ignored: filters land in the order their lines
	// appear, even when numbered out of order.
	text := "Filter 7: ON PK Fc 100 Hz Gain 1.0 dB Q 1.0\n" +
		"Filter 2: ON PK Fc 200 Hz Gain 2.0 dB Q 1.0\n" +
		"Filter 5: ON PK Fc 300 Hz Gain 3.0 dB Q 1.0\n"

	p := Parse(text)
	if len(p.Filters) != 3 {
		t.Fatalf("expected 3 filters, got %d", len(p.Filters))
	}

	wantFreqs := []float64{100, 200, 300}
	for i, want := range wantFreqs {
		if p.Filters[i].Frequency != want {
			t.Errorf("Filters[%d].Frequency = %v, want %v", i, p.Filters[i].Frequency, want)
		}
	}
}

func TestParseFullExport(t *testing.T) {
	text := `Notes: measured with a flat mic
Preamp: -4.1 dB
Filter 1: ON LSC Fc 105 Hz Gain 2.5 dB Q 0.70
Filter 2: ON PK Fc 1400 Hz Gain -3.1 dB Q 1.41
Filter 3: OFF HSC Fc 10000 Hz Gain 4.0 dB Q 0.70
`
	p := Parse(text)

	if p.Preamp != -4.1 {
		t.Errorf("Preamp = %v, want -4.1", p.Preamp)
	}
	if len(p.Filters) != 3 {
		t.Fatalf("expected 3 filters, got %d", len(p.Filters))
	}

	wantTypes := []FilterType{TypeLowShelf, TypePeak, TypeHighShelf}
	for i, want := range wantTypes {
		if p.Filters[i].Type != want {
			t.Errorf("Filters[%d].Type = %q, want %q", i, p.Filters[i].Type, want)
		}
	}
	if p.Filters[2].Enabled {
		t.Error("Filters[2] should be disabled")
	}
}

func TestParseUnknownFilterType(t *testing.T) {
	p := Parse("Filter 1: ON NOTCH Fc 50 Hz Gain -20.0 dB Q 30.0\n")

	if len(p.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(p.Filters))
	}
	// Unknown type tokens are carried through; the emitter maps them.
	if p.Filters[0].Type != "NOTCH" {
		t.Errorf("Type = %q, want NOTCH", p.Filters[0].Type)
	}
}
