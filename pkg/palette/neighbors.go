package palette

import (
	"math"
	"sort"
)

// Distance returns the Euclidean distance between two colors in RGB space.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance returns the weighted brightness of a color
// (0.299*R + 0.587*G + 0.114*B).
func Luminance(c Color) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// LightestDarkest returns the lightest and darkest palette colors by
// luminance. Ties keep palette order. The palette must be non-empty.
func LightestDarkest(p Palette) (lightest, darkest Color) {
	sorted := make(Palette, len(p))
	copy(sorted, p)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Luminance(sorted[i]) < Luminance(sorted[j])
	})
	return sorted[len(sorted)-1], sorted[0]
}

// Neighbors ranks palette colors by RGB distance from target and returns a
// spaced subset: the closest minDistance candidates are skipped on purpose,
// then up to maxNeighbors are taken. Exact value matches of target are never
// candidates. If fewer than minDistance candidates exist the result is empty.
func Neighbors(target Color, p Palette, maxNeighbors, minDistance int) []Color {
	type scored struct {
		dist  float64
		color Color
	}
	candidates := make([]scored, 0, len(p))
	for _, c := range p {
		if c == target {
			continue
		}
		candidates = append(candidates, scored{dist: Distance(target, c), color: c})
	}
	// Stable sort: equal distances keep palette order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if minDistance >= len(candidates) {
		return nil
	}
	end := minDistance + maxNeighbors
	if end > len(candidates) {
		end = len(candidates)
	}
	selected := make([]Color, 0, end-minDistance)
	for _, s := range candidates[minDistance:end] {
		selected = append(selected, s.color)
	}
	return selected
}
