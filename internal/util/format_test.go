package util

import "testing"

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0h"},
		{"whole", 48, "48h"},
		{"fractional", 1.5, "1.5h"},
		{"negative", -5, "-5h"},
		{"long fraction", 2.25, "2.25h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHours(tt.in); got != tt.want {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"bytes", 500, "500 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5242880, "5.0 MB"},
		{"boundary", 1023, "1023 B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.in); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDateHuman(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid", "2025-08-15T12:00:00Z", "Aug 15, 2025"},
		{"invalid passes through", "not-a-date", "not-a-date"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateHuman(tt.in); got != tt.want {
				t.Errorf("FormatDateHuman(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid", "2025-08-15T09:30:00Z", "2025-08-15 09:30"},
		{"invalid passes through", "48", "48"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTime(tt.in); got != tt.want {
				t.Errorf("FormatDateTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
