package main

import (
	"strings"
	"testing"
)

func TestCellCanvasClipsOutOfBounds(t *testing.T) {
	c := newCellCanvas(4, 3)
	c.setCell(-1, 0, 'x', nil)
	c.setCell(0, -1, 'x', nil)
	c.setCell(4, 0, 'x', nil)
	c.setCell(0, 3, 'x', nil)
	c.drawLine(-5, -5, 10, 10, '#', nil)

	out := c.render()
	if strings.Contains(out, "x") {
		t.Errorf("out-of-bounds cells leaked into render: %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("render produced %d rows, want 3", len(lines))
	}
}

func TestCellCanvasDrawText(t *testing.T) {
	c := newCellCanvas(10, 1)
	c.drawText(2, 0, "abc", nil)
	out := c.render()
	if out != "  abc     " {
		t.Errorf("render = %q", out)
	}
}

func TestCellCanvasDrawTextMultibyte(t *testing.T) {
	c := newCellCanvas(10, 1)
	c.drawText(0, 0, "● ab", nil)

	want := []rune{'●', ' ', 'a', 'b'}
	for i, r := range want {
		if c.cells[0][i].r != r {
			t.Errorf("cell %d = %q, want %q", i, c.cells[0][i].r, r)
		}
	}
	if c.cells[0][4].r != ' ' {
		t.Errorf("cell 4 = %q, want blank", c.cells[0][4].r)
	}
}

func TestPaintHorizontalLinesPositions(t *testing.T) {
	c := newCellCanvas(10, 11)
	group := newHorizontalLinesData(Limits{Min: 0, Max: 100}, 3)
	group.alpha = 1
	group.computeRelative(100, 0)

	paintHorizontalLines(c, &group, rect{X: 0, Y: 0, W: 10, H: 11})

	// Lines at 0, 50, 100 land on rows 10, 5 and 0.
	for _, row := range []int{0, 5, 10} {
		if c.cells[row][0].r != '─' {
			t.Errorf("row %d: rune %q, want rule", row, c.cells[row][0].r)
		}
	}
	if c.cells[1][0].r == '─' {
		t.Error("row 1 unexpectedly carries a rule")
	}
}

func TestPaintHorizontalLinesInvisibleGroupSkipped(t *testing.T) {
	c := newCellCanvas(10, 11)
	group := newHorizontalLinesData(Limits{Min: 0, Max: 100}, 3)
	group.alpha = 0.05

	paintHorizontalLines(c, &group, rect{X: 0, Y: 0, W: 10, H: 11})

	for y := 0; y < 11; y++ {
		if c.cells[y][0].r != ' ' {
			t.Errorf("invisible group painted at row %d", y)
		}
	}
}

func TestPaintLinearChartViewDrawsWithinRect(t *testing.T) {
	data := fivePointData()
	c := newCellCanvas(20, 10)
	r := rect{X: 2, Y: 1, W: 16, H: 8}

	paintLinearChartView(c, data, Limits{0, 1}, Limits{5, 40}, r)

	painted := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if c.cells[y][x].r != ' ' {
				if !r.contains(x, y) {
					t.Errorf("cell (%d,%d) painted outside the target rect", x, y)
				}
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("no cells painted for a non-empty series")
	}
}

func TestGridStyleForRamp(t *testing.T) {
	if gridStyleFor(gridStyles, 0) != nil {
		t.Error("alpha 0 should not produce a style")
	}
	if gridStyleFor(gridStyles, 0.1) != nil {
		t.Error("alpha below threshold should not produce a style")
	}
	if gridStyleFor(gridStyles, 0.5) == nil {
		t.Error("mid alpha should produce a style")
	}
	if got := gridStyleFor(gridStyles, 1); got != &gridStyles[len(gridStyles)-1] {
		t.Error("full alpha should map to the brightest ramp entry")
	}
}
