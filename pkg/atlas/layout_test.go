package atlas

import "testing"

func TestPlanLayoutConstants(t *testing.T) {
	// The derived widths are fixed by the canvas geometry; downstream
	// consumers depend on these exact values.
	p := PlanLayout(5)

	if p.GradientWidth != 162 {
		t.Errorf("GradientWidth = %d, want 162", p.GradientWidth)
	}
	if p.TotalGradientWidth != 1944 {
		t.Errorf("TotalGradientWidth = %d, want 1944", p.TotalGradientWidth)
	}
	if p.MainGradientWidth != 104 {
		t.Errorf("MainGradientWidth = %d, want 104", p.MainGradientWidth)
	}
	if p.GradientHeight != 724 {
		t.Errorf("GradientHeight = %d, want 724", p.GradientHeight)
	}
}

func TestPlanLayoutWidthReconciliation(t *testing.T) {
	// The main gradient absorbs the integer-division shortfall.
	for n := 1; n <= 100; n++ {
		p := PlanLayout(n)
		if p.MainGradientWidth+p.TotalGradientWidth != CanvasWidth {
			t.Fatalf("n=%d: main %d + total %d != %d",
				n, p.MainGradientWidth, p.TotalGradientWidth, CanvasWidth)
		}
	}
}

func TestPlanLayoutRowWidthsSum(t *testing.T) {
	// Every row of swatches must tile TotalGradientWidth exactly: no gaps,
	// no overlap, remainder pixels on the leading columns.
	for n := 1; n <= 100; n++ {
		p := PlanLayout(n)

		sum := 0
		prevMax := 0
		for col := 0; col < p.GridCols; col++ {
			r := p.SquareRect(col)
			if r.Min.X != prevMax {
				t.Fatalf("n=%d col=%d: rect starts at %d, previous ended at %d",
					n, col, r.Min.X, prevMax)
			}
			sum += r.Dx()
			prevMax = r.Max.X
		}
		if sum != p.TotalGradientWidth {
			t.Fatalf("n=%d: row width sum = %d, want %d", n, sum, p.TotalGradientWidth)
		}
	}
}

func TestPlanLayoutGrid(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantCols int
		wantRows int
	}{
		{name: "single color", n: 1, wantCols: 1, wantRows: 1},
		{name: "five colors fit one row", n: 5, wantCols: 5, wantRows: 1},
		{name: "max single row", n: 19, wantCols: 19, wantRows: 1},
		{name: "wraps to second row", n: 20, wantCols: 19, wantRows: 2},
		{name: "many rows", n: 100, wantCols: 19, wantRows: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanLayout(tt.n)
			if p.GridCols != tt.wantCols {
				t.Errorf("GridCols = %d, want %d", p.GridCols, tt.wantCols)
			}
			if p.GridRows != tt.wantRows {
				t.Errorf("GridRows = %d, want %d", p.GridRows, tt.wantRows)
			}
		})
	}
}

func TestPlanLayoutSingleColor(t *testing.T) {
	p := PlanLayout(1)
	if p.SquareWidth != p.TotalGradientWidth {
		t.Errorf("single swatch should span the full row: %d != %d",
			p.SquareWidth, p.TotalGradientWidth)
	}
	if p.SquareHeight != 600 {
		t.Errorf("SquareHeight = %d, want full top band (600)", p.SquareHeight)
	}
	if p.RemainderCols != 0 {
		t.Errorf("RemainderCols = %d, want 0", p.RemainderCols)
	}
}

func TestPlanLayoutSquareHeightFitsBand(t *testing.T) {
	for n := 1; n <= 200; n++ {
		p := PlanLayout(n)
		if p.GridRows*p.SquareHeight > 600 {
			t.Fatalf("n=%d: grid height %d exceeds top band", n, p.GridRows*p.SquareHeight)
		}
		if p.SquareHeight > p.SquareWidth {
			t.Fatalf("n=%d: squares taller than wide (%d > %d)", n, p.SquareHeight, p.SquareWidth)
		}
	}
}

func TestSquareRectSecondRow(t *testing.T) {
	p := PlanLayout(25) // 19 cols, 2 rows

	r := p.SquareRect(p.GridCols) // first swatch of row two
	if r.Min.X != 0 {
		t.Errorf("row two should restart at x=0, got %d", r.Min.X)
	}
	if r.Min.Y != p.SquareHeight {
		t.Errorf("row two should start at y=%d, got %d", p.SquareHeight, r.Min.Y)
	}

	// Remainder widening is identical in every row.
	for col := 0; col < p.GridCols; col++ {
		top := p.SquareRect(col)
		bottom := p.SquareRect(p.GridCols + col)
		if top.Dx() != bottom.Dx() || top.Min.X != bottom.Min.X {
			t.Fatalf("col %d: rows disagree: %v vs %v", col, top, bottom)
		}
	}
}
