package util

import (
	"testing"
)

func TestFilterRunes_Hex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#00eeec", "#00eeec"},
		{"#00 EE-EC", "#00EEEC"},
		{"zz#1g2h3", "#123"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FilterRunes(tt.in, IsHexInputRune); got != tt.want {
				t.Errorf("FilterRunes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterRunes_RGB(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10,20,30", "10,20,30"},
		{"(10, 20, 30)", "(10,20,30)"},
		{"rgb(1;2;3)", "(123)"},
		{"#ff0000", "0000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FilterRunes(tt.in, IsRGBInputRune); got != tt.want {
				t.Errorf("FilterRunes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  Default-Harmony "); got != "default-harmony" {
		t.Errorf("NormalizeKey = %q", got)
	}
}
