package harmony

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/palette"
)

var seed = color.MustParseHex("#00EEEC")

func hexes(p palette.Palette) []string {
	var out []string
	for _, c := range p.Colors() {
		out = append(out, c.Hex())
	}
	return out
}

func hues(p palette.Palette) []float64 {
	var out []float64
	for _, c := range p.Colors() {
		out = append(out, c.HSV().H)
	}
	return out
}

func TestGenerate_Fixtures(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{Monochromatic, []string{"#001919", "#004E4D", "#008381", "#00B8B5", "#00EDE9"}},
		{Complementary, []string{"#00EEEC", "#ED0003", "#00EDE9", "#ED0003", "#00EDE9"}},
		{SplitComplementary, []string{"#00FFFF", "#00EEEC", "#ED007A", "#03ED00", "#00BEBB"}},
		{Triadic, []string{"#00FFFF", "#00EEEC", "#E900ED", "#EDE900", "#00BEBB"}},
		{Tetradic, []string{"#00BEBB", "#00EEEC", "#7200ED", "#ED0003", "#7AED00"}},
		{Analogous, []string{"#00EDE9", "#007AED", "#0003ED", "#7200ED", "#E900ED"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, hexes(Generate(tt.kind, seed))); diff != "" {
				t.Errorf("Generate(%s) (-want +got):\n%s", tt.kind, diff)
			}
		})
	}
}

func TestComplementary_HueRelation(t *testing.T) {
	p := ComplementaryPalette(seed, RoleCount)
	if p.Background != seed {
		t.Errorf("background = %v, want seed", p.Background)
	}
	want := color.WrapHue(seed.HSV().H + 180)
	if got := p.AccentA.HSV().H; got != want {
		t.Errorf("accentA hue = %v, want %v", got, want)
	}
}

func TestComplementary_CountClamped(t *testing.T) {
	p := ComplementaryPalette(seed, 2)
	if p.AccentB != seed || p.AccentC != seed || p.Highlight != seed {
		t.Errorf("roles beyond count should keep the seed: %v", hexes(p))
	}
	if p.AccentA == seed {
		t.Error("accentA should be the complement")
	}
	if got := ComplementaryPalette(seed, 0); got != ComplementaryPalette(seed, 1) {
		t.Error("count below 1 should clamp to 1")
	}
	if got := ComplementaryPalette(seed, 99); got != ComplementaryPalette(seed, RoleCount) {
		t.Error("count above RoleCount should clamp")
	}
}

func TestTetradic_QuarterTurns(t *testing.T) {
	p := TetradicPalette(seed)
	got := hues(p)[1:]
	for i := 1; i < len(got); i++ {
		if d := color.WrapHue(got[i] - got[i-1]); d != 90 {
			t.Errorf("hue step %d = %v, want 90 (hues %v)", i, d, got)
		}
	}
}

func TestTetradic_DarkSeedGetsLighterBackground(t *testing.T) {
	dark := color.New(0, 60, 59)
	p := TetradicPalette(dark)
	if p.Background.HSV().V <= dark.HSV().V {
		t.Errorf("background %v should be lighter than seed %v", p.Background, dark)
	}
	if q := TetradicPalette(seed); q.Background.HSV().V >= seed.HSV().V {
		t.Errorf("background %v should be darker than seed", q.Background)
	}
}

func TestAnalogous_HueSteps(t *testing.T) {
	want := []float64{179, 209, 239, 269, 299}
	if diff := cmp.Diff(want, hues(AnalogousPalette(seed))); diff != "" {
		t.Errorf("hues (-want +got):\n%s", diff)
	}
}

func TestAnalogous_WrapsPast360(t *testing.T) {
	got := hues(AnalogousPalette(color.New(255, 0, 127)))
	want := []float64{330, 0, 30, 60, 90}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hues (-want +got):\n%s", diff)
	}
}

func TestMonochromatic_AscendingValue(t *testing.T) {
	for _, s := range []color.Color{seed, color.New(20, 40, 60), color.New(128, 128, 128)} {
		p := MonochromaticPalette(s)
		c := p.Colors()
		for i := 1; i < len(c); i++ {
			if c[i].HSV().V < c[i-1].HSV().V {
				t.Errorf("seed %v: value decreases at role %d: %v", s, i, hexes(p))
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, k := range Kinds() {
		if Generate(k, seed) != Generate(k, seed) {
			t.Errorf("%s is not deterministic", k)
		}
	}
}

func TestGenerate_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Generate(Kind("pentadic"), seed)
}
