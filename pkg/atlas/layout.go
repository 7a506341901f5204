package atlas

import "image"

// Fixed canvas geometry. The atlas format is not configurable; consumers of
// the output depend on these exact offsets.
const (
	// CanvasWidth and CanvasHeight are the output image dimensions.
	CanvasWidth  = 2048
	CanvasHeight = 2048

	// nominalMainWidth is the requested width of the right-edge palette
	// gradient. The planner widens it to absorb integer-division shortfall
	// so strips and swatches always tile the canvas exactly.
	nominalMainWidth = 100

	// topBandHeight is the vertical space reserved for the swatch grid.
	topBandHeight = 600

	// numGradients is the number of row-one strips after the leading
	// lightest-to-darkest strip. Both bottom rows have numGradients+1 slots.
	numGradients = 11

	// targetSquareSize is the preferred swatch edge length in pixels.
	targetSquareSize = 100
)

// Plan holds the derived layout values for one palette size. All fields are
// read-only once computed; the compositor consumes them as-is.
type Plan struct {
	GridCols      int // swatch columns
	GridRows      int // swatch rows
	SquareWidth   int // base swatch width; the first RemainderCols columns get one extra pixel
	SquareHeight  int // swatch height
	RemainderCols int // columns widened by one pixel so each row tiles exactly

	GradientWidth      int // width of one bottom strip
	GradientHeight     int // height of one bottom strip row
	TotalGradientWidth int // width of the swatch/strip region; strips tile it exactly
	MainGradientWidth  int // actual right-edge gradient width (nominal + shortfall)
}

// PlanLayout computes the layout for a palette of n colors, n >= 1.
//
// Integer division leaves the strip region slightly narrower than the
// nominal content width; the main gradient absorbs that shortfall so
// MainGradientWidth + TotalGradientWidth == CanvasWidth. Within the swatch
// grid the per-row remainder is distributed one pixel at a time to the
// leading columns, so every row sums to TotalGradientWidth with no gaps.
func PlanLayout(n int) Plan {
	totalContentWidth := CanvasWidth - nominalMainWidth
	gradientWidth := totalContentWidth / (numGradients + 1)
	totalGradientWidth := gradientWidth * (numGradients + 1)

	gridCols := totalGradientWidth / targetSquareSize
	if gridCols > n {
		gridCols = n
	}
	gridRows := 1
	if gridCols < n {
		gridRows = (n + gridCols - 1) / gridCols
	}

	squareWidth := totalGradientWidth / gridCols
	squareHeight := squareWidth
	if h := topBandHeight / gridRows; h < squareHeight {
		squareHeight = h
	}

	return Plan{
		GridCols:           gridCols,
		GridRows:           gridRows,
		SquareWidth:        squareWidth,
		SquareHeight:       squareHeight,
		RemainderCols:      totalGradientWidth % gridCols,
		GradientWidth:      gradientWidth,
		GradientHeight:     (CanvasHeight - topBandHeight) / 2,
		TotalGradientWidth: totalGradientWidth,
		MainGradientWidth:  CanvasWidth - totalGradientWidth,
	}
}

// SquareRect returns the canvas rectangle of the i-th swatch (row-major).
// The first RemainderCols columns in each row are one pixel wider and the
// x-offset accumulates accordingly.
func (p Plan) SquareRect(i int) image.Rectangle {
	row := i / p.GridCols
	col := i % p.GridCols

	x := col * p.SquareWidth
	w := p.SquareWidth
	if col < p.RemainderCols {
		w++
		x += col
	} else {
		x += p.RemainderCols
	}
	y := row * p.SquareHeight

	return image.Rect(x, y, x+w, y+p.SquareHeight)
}
