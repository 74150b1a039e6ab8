package mains

import "testing"

func TestHzForTimezone(t *testing.T) {
	tests := []struct {
		zone string
		want int
	}{
		{"America/New_York", 60},
		{"America/Sao_Paulo", 60},
		{"Asia/Seoul", 60},
		{"Asia/Manila", 60},
		{"Europe/London", 50},
		{"Europe/Berlin", 50},
		{"Australia/Sydney", 50},
		{"Asia/Tokyo", 50}, // split grid, 50 Hz region is most populous
		{"UTC", 50},
		{"GMT", 50},
		{"Etc/UTC", 50},
		{"Not/AZone", 50},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if got := HzForTimezone(tt.zone); got != tt.want {
				t.Errorf("HzForTimezone(%q) = %d, want %d", tt.zone, got, tt.want)
			}
		})
	}
}

func TestHumHarmonic(t *testing.T) {
	tests := []struct {
		name    string
		fc      float64
		mainsHz int
		wantN   int
		wantOK  bool
	}{
		{"50Hz fundamental", 50, 50, 1, true},
		{"50Hz slightly off", 50.8, 50, 1, true},
		{"100Hz second harmonic", 100, 50, 2, true},
		{"150Hz third harmonic", 151, 50, 3, true},
		{"200Hz fourth harmonic", 200, 50, 4, true},
		{"250Hz beyond tracked harmonics", 250, 50, 0, false},
		{"60Hz fundamental", 60, 60, 1, true},
		{"120Hz on 60Hz mains", 120, 60, 2, true},
		{"120Hz on 50Hz mains", 120, 50, 0, false},
		{"1kHz not hum", 1000, 50, 0, false},
		{"outside tolerance", 55, 50, 0, false},
		{"zero frequency", 0, 50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := HumHarmonic(tt.fc, tt.mainsHz)
			if n != tt.wantN || ok != tt.wantOK {
				t.Errorf("HumHarmonic(%v, %d) = (%d, %v), want (%d, %v)",
					tt.fc, tt.mainsHz, n, ok, tt.wantN, tt.wantOK)
			}
		})
	}
}
