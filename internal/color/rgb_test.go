package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBParser_Parse(t *testing.T) {
	p := NewRGBParser()
	tests := []struct {
		in   string
		want Color
	}{
		{"10,20,30", New(10, 20, 30)},
		{"10, 20, 30", New(10, 20, 30)},
		{"(255,0,128)", New(255, 0, 128)},
		{"0,0,0", New(0, 0, 0)},
		{"rgb(1,2,3)", New(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestRGBParser_Errors(t *testing.T) {
	p := NewRGBParser()
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"no delimiter", "1 2 3", "invalid rgb format: no delimiter, expected r, g, b"},
		{"empty", "", "invalid rgb format: no delimiter, expected r, g, b"},
		{"out of range", "999,1,1", "invalid rgb format: invalid value 999"},
		{"256", "256,1,1", "invalid rgb format: invalid value 256"},
		{"two components", "1,2", "invalid rgb format: expected 3 components, got 2"},
		{"four components", "1,2,3,4", "invalid rgb format: expected 3 components, got 4"},
		{"long run splits", "1000,2,3", "invalid rgb format: expected 3 components, got 4"},
		{"no digits", ",,", "invalid rgb format: expected 3 components, got 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.in)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if !errors.Is(err, ErrInvalidRGBFormat) {
				t.Errorf("expected ErrInvalidRGBFormat, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRandom_IsOpaqueColour(t *testing.T) {
	// HappyColor keeps saturation and value high, so black never appears.
	for range 20 {
		if c := Random(); c == New(0, 0, 0) {
			t.Fatalf("Random() returned black")
		}
	}
}

func TestRGBParser_ErrorKinds(t *testing.T) {
	p := NewRGBParser()

	if _, err := p.Parse("1 2 3"); !errors.Is(err, ErrMissingDelimiter) {
		t.Errorf("expected ErrMissingDelimiter, got %v", err)
	}
	if _, err := p.Parse("1,2"); !errors.Is(err, ErrComponentCount) {
		t.Errorf("expected ErrComponentCount, got %v", err)
	}

	_, err := p.Parse("12,300,4")
	var compErr *ComponentError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected *ComponentError, got %v", err)
	}
	if compErr.Value != "300" {
		t.Errorf("Value = %q, want %q", compErr.Value, "300")
	}
}
