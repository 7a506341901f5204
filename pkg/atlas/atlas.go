package atlas

import (
	"image"
	"image/draw"
	"math/rand"

	"github.com/matzehuels/hexatlas/pkg/palette"
)

// Row-one neighbor gradients pick their parameters uniformly from these
// ranges (inclusive).
const (
	minNeighborCount = 1
	maxNeighborCount = 3
	minNeighborSkip  = 2
	maxNeighborSkip  = 4
)

// Render composes the full atlas for a non-empty palette. All sampling draws
// from rng, so the same palette and seed reproduce the same image.
func Render(p palette.Palette, rng *rand.Rand) *image.RGBA {
	plan := PlanLayout(len(p))

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	// Swatch grid, row-major.
	for i, c := range p {
		draw.Draw(canvas, plan.SquareRect(i), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
	}

	// Full-height palette gradient on the right edge.
	main := Gradient(p, plan.MainGradientWidth, CanvasHeight, true)
	paste(canvas, main, plan.TotalGradientWidth, 0)

	// Row one, slot 0: lightest to darkest.
	lightest, darkest := palette.LightestDarkest(p)
	first := Gradient([]palette.Color{lightest, darkest}, plan.GradientWidth, plan.GradientHeight, true)
	paste(canvas, first, 0, topBandHeight)

	// Row one, remaining slots: random start color plus spaced neighbors.
	for i := 0; i < numGradients; i++ {
		strip := Gradient(neighborColors(p, rng), plan.GradientWidth, plan.GradientHeight, true)
		paste(canvas, strip, (i+1)*plan.GradientWidth, topBandHeight)
	}

	// Row two: small random samples of the palette.
	for i := 0; i < numGradients+1; i++ {
		strip := Gradient(sampleColors(p, rng), plan.GradientWidth, plan.GradientHeight, true)
		paste(canvas, strip, i*plan.GradientWidth, topBandHeight+plan.GradientHeight)
	}

	return canvas
}

// neighborColors picks a random start color and extends it with a random
// slice of its spaced nearest neighbors. With no eligible neighbors the
// strip stays constant.
func neighborColors(p palette.Palette, rng *rand.Rand) []palette.Color {
	start := p[rng.Intn(len(p))]
	neighbors := palette.Neighbors(start, p,
		randBetween(rng, minNeighborCount, maxNeighborCount),
		randBetween(rng, minNeighborSkip, maxNeighborSkip))

	colors := []palette.Color{start}
	if len(neighbors) > 0 {
		keepMax := 2
		if len(neighbors) < keepMax {
			keepMax = len(neighbors)
		}
		colors = append(colors, neighbors[:randBetween(rng, 1, keepMax)]...)
	}
	return colors
}

// sampleColors draws 2-3 palette entries without replacement (positionally;
// duplicate values in the palette may still co-occur), capped at the palette
// size.
func sampleColors(p palette.Palette, rng *rand.Rand) []palette.Color {
	k := randBetween(rng, 2, 3)
	if k > len(p) {
		k = len(p)
	}
	colors := make([]palette.Color, k)
	for i, idx := range rng.Perm(len(p))[:k] {
		colors[i] = p[idx]
	}
	return colors
}

// randBetween returns a uniform int in [lo, hi].
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// paste draws src onto dst with its top-left corner at (x, y).
func paste(dst *image.RGBA, src image.Image, x, y int) {
	r := src.Bounds().Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
}
