package harmony

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"monochromatic", Monochromatic},
		{"Complementary", Complementary},
		{"split-complementary", SplitComplementary},
		{"Split Complementary", SplitComplementary},
		{"split_complementary", SplitComplementary},
		{" TRIADIC ", Triadic},
		{"tetradic", Tetradic},
		{"analogous", Analogous},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("pentadic")
	if !errors.Is(err, ErrUnknownHarmony) {
		t.Fatalf("expected ErrUnknownHarmony, got %v", err)
	}
}

func TestKinds_Order(t *testing.T) {
	want := []string{"monochromatic", "complementary", "split-complementary", "triadic", "tetradic", "analogous"}
	if diff := cmp.Diff(want, KindNames()); diff != "" {
		t.Errorf("KindNames() (-want +got):\n%s", diff)
	}

	k := Kinds()
	k[0] = Analogous
	if Kinds()[0] != Monochromatic {
		t.Error("Kinds() returned a shared slice")
	}
}

func TestKind_Label(t *testing.T) {
	if got := SplitComplementary.Label(); got != "Split Complementary" {
		t.Errorf("Label() = %q", got)
	}
}

func TestKind_Flag(t *testing.T) {
	k := Complementary
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&k, "harmony", "harmony kind")

	if err := fs.Parse([]string{"--harmony", "Tetradic"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k != Tetradic {
		t.Errorf("flag value = %q, want tetradic", k)
	}

	if err := fs.Parse([]string{"--harmony", "nope"}); err == nil {
		t.Error("expected error for invalid harmony")
	}
	if got := fs.Lookup("harmony").Value.Type(); got != "harmony" {
		t.Errorf("Type() = %q", got)
	}
}
