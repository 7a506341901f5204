package atlas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/matzehuels/hexatlas/pkg/palette"
)

// Gradient renders a piecewise-linear gradient over the given colors into a
// width x height buffer. A single color yields a constant fill. With more
// colors the axis is split into len(colors)-1 equal segments and each pixel
// interpolates between its segment's endpoints.
//
// Channel values truncate toward zero instead of rounding; existing atlases
// were produced this way and must reproduce byte-for-byte.
func Gradient(colors []palette.Color, width, height int, vertical bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if len(colors) == 1 {
		draw.Draw(img, img.Bounds(), image.NewUniform(rgba(colors[0])), image.Point{}, draw.Src)
		return img
	}

	if vertical {
		for y := 0; y < height; y++ {
			pos := axisPos(y, height)
			c := rgba(colorAt(colors, pos))
			for x := 0; x < width; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}

	for x := 0; x < width; x++ {
		pos := axisPos(x, width)
		c := rgba(colorAt(colors, pos))
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// axisPos maps an index on an axis of the given length to [0,1].
// A length-1 axis has no extent, so the position is 0.
func axisPos(i, length int) float64 {
	if length <= 1 {
		return 0
	}
	return float64(i) / float64(length-1)
}

// colorAt evaluates the gradient at pos in [0,1]. colors must have at least
// two entries.
func colorAt(colors []palette.Color, pos float64) palette.Color {
	segmentSize := 1.0 / float64(len(colors)-1)
	segment := int(pos / segmentSize)
	if segment > len(colors)-2 {
		segment = len(colors) - 2
	}
	local := (pos - float64(segment)*segmentSize) / segmentSize

	c1 := colors[segment]
	c2 := colors[segment+1]
	return palette.Color{
		R: lerpChannel(c1.R, c2.R, local),
		G: lerpChannel(c1.G, c2.G, local),
		B: lerpChannel(c1.B, c2.B, local),
	}
}

// lerpChannel interpolates one channel, truncating toward zero.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}

// rgba converts a palette color to an opaque color.RGBA.
func rgba(c palette.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
