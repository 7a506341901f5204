package palette

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want float64
	}{
		{name: "identical", a: Color{1, 2, 3}, b: Color{1, 2, 3}, want: 0},
		{name: "black to white", a: Color{}, b: Color{255, 255, 255}, want: math.Sqrt(3 * 255 * 255)},
		{name: "single channel", a: Color{}, b: Color{R: 3}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}

	// Symmetry
	a, b := Color{10, 200, 30}, Color{250, 5, 90}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance should be symmetric")
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(Color{}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(Color{255, 255, 255}); math.Abs(got-255) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 255", got)
	}
	// Green dominates the weighting
	if Luminance(Color{G: 255}) <= Luminance(Color{R: 255}) {
		t.Error("green should be brighter than red")
	}
	if Luminance(Color{R: 255}) <= Luminance(Color{B: 255}) {
		t.Error("red should be brighter than blue")
	}
}

func TestLightestDarkest(t *testing.T) {
	p := Palette{
		{R: 128, G: 128, B: 128},
		{R: 255, G: 255, B: 255},
		{},
		{R: 200, G: 10, B: 10},
	}
	lightest, darkest := LightestDarkest(p)
	if lightest != (Color{255, 255, 255}) {
		t.Errorf("lightest = %v, want white", lightest)
	}
	if darkest != (Color{}) {
		t.Errorf("darkest = %v, want black", darkest)
	}
}

func TestLightestDarkestSingle(t *testing.T) {
	c := Color{R: 42, G: 42, B: 42}
	lightest, darkest := LightestDarkest(Palette{c})
	if lightest != c || darkest != c {
		t.Errorf("single color palette should return it for both: %v %v", lightest, darkest)
	}
}

func TestNeighbors(t *testing.T) {
	target := Color{}
	// Candidates at increasing distance from black.
	p := Palette{
		target, // exact match, never a candidate
		{R: 10},
		{R: 20},
		{R: 30},
		{R: 40},
		{R: 50},
		{R: 60},
	}

	got := Neighbors(target, p, 3, 2)
	want := []Color{{R: 30}, {R: 40}, {R: 50}}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighborsNeverReturnsTarget(t *testing.T) {
	target := Color{R: 100, G: 100, B: 100}
	p := Palette{target, target, {R: 101, G: 100, B: 100}, {R: 102, G: 100, B: 100}, {R: 103, G: 100, B: 100}}

	got := Neighbors(target, p, 3, 0)
	for _, c := range got {
		if c == target {
			t.Errorf("Neighbors returned the target color %v", c)
		}
	}
}

func TestNeighborsBounds(t *testing.T) {
	p := make(Palette, 0, 20)
	for i := 1; i <= 20; i++ {
		p = append(p, Color{R: uint8(i * 10)})
	}

	for maxN := 1; maxN <= 3; maxN++ {
		got := Neighbors(Color{}, p, maxN, 2)
		if len(got) > maxN {
			t.Errorf("maxNeighbors=%d returned %d entries", maxN, len(got))
		}
	}
}

func TestNeighborsTooFewCandidates(t *testing.T) {
	target := Color{}
	tests := []struct {
		name string
		p    Palette
	}{
		{name: "empty palette", p: Palette{}},
		{name: "only the target", p: Palette{target}},
		{name: "fewer than minDistance", p: Palette{target, {R: 10}, {R: 20}}},
		{name: "exactly minDistance", p: Palette{target, {R: 10}, {R: 20}, {R: 30}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Neighbors(target, tt.p, 3, 3); len(got) != 0 {
				t.Errorf("got %v, want empty", got)
			}
		})
	}
}

func TestNeighborsStableOnTies(t *testing.T) {
	target := Color{}
	// Equidistant colors must keep palette order.
	p := Palette{{R: 10}, {G: 10}, {B: 10}}

	got := Neighbors(target, p, 3, 0)
	want := []Color{{R: 10}, {G: 10}, {B: 10}}
	if len(got) != 3 {
		t.Fatalf("got %d neighbors, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tie order broken at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
