package main

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: testEpoch}
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestWidget(clock *fakeClock) *chartWidget {
	w := newChartWidget(defaultGridlineCount)
	w.now = clock.now
	w.layout(80, 24)
	return w
}

func TestSetChartDataInstantReset(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)

	w.setChartData(fivePointData())

	if got := w.controller.currentHeightLimits(); got != (Limits{5, 40}) {
		t.Errorf("Y limits = %+v, want {5 40}", got)
	}
	if got := w.controller.currentXLimits(); got != (Limits{0, 1}) {
		t.Errorf("X limits = %+v, want {0 1}", got)
	}
	if len(w.gridlines.groups) != 1 {
		t.Fatalf("group count = %d, want 1", len(w.gridlines.groups))
	}
	if w.gridlines.groups[0].alpha != 1 {
		t.Errorf("group alpha = %v, want 1", w.gridlines.groups[0].alpha)
	}
	if w.animating() {
		t.Error("widget should be idle right after setChartData")
	}
}

func TestSetChartDataEmptyIsNoop(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)

	w.setChartData(newChartData(nil, nil))

	if len(w.gridlines.groups) != 0 {
		t.Errorf("group count = %d, want 0", len(w.gridlines.groups))
	}
	if w.animating() {
		t.Error("widget should stay idle with no data")
	}

	// Painting with no data must not panic or draw series cells.
	c := newCellCanvas(80, 24)
	w.paint(c, clock.now())
}

func TestGridlineGroupThrottle(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	clock.advance(time.Second)
	w.onXPercentageLimitsChange(Limits{0.2, 0.8})
	if len(w.gridlines.groups) != 2 {
		t.Fatalf("group count after first change = %d, want 2", len(w.gridlines.groups))
	}

	// A second change inside the cooldown retargets but must not spawn
	// another group.
	clock.advance(100 * time.Millisecond)
	w.onXPercentageLimitsChange(Limits{0.2, 0.6})
	if len(w.gridlines.groups) != 2 {
		t.Fatalf("group count within cooldown = %d, want 2", len(w.gridlines.groups))
	}
	if w.controller.xMax.to != 0.6 {
		t.Errorf("X max target = %v, want 0.6", w.controller.xMax.to)
	}

	clock.advance(heightLimitsUpdateTimeout)
	w.onXPercentageLimitsChange(Limits{0.2, 0.4})
	if len(w.gridlines.groups) != 3 {
		t.Fatalf("group count after cooldown = %d, want 3", len(w.gridlines.groups))
	}
}

func TestDragRetargetsWithoutJumpAndConverges(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	clock.advance(time.Second)
	w.onXPercentageLimitsChange(Limits{0.2, 0.6})

	if got := w.controller.currentHeightLimits(); got != (Limits{5, 40}) {
		t.Errorf("Y limits jumped on retarget: %+v, want {5 40}", got)
	}
	if w.controller.finalHeightLimits != (Limits{5, 20}) {
		t.Errorf("final Y limits = %+v, want {5 20}", w.controller.finalHeightLimits)
	}

	// Run the repaint loop until the animation settles.
	for i := 0; i < 300 && w.animating(); i++ {
		clock.advance(16 * time.Millisecond)
		w.controller.tick(clock.now(), &w.gridlines)
	}

	if w.animating() {
		t.Fatal("animation did not settle")
	}
	if got := w.controller.currentHeightLimits(); got != (Limits{5, 20}) {
		t.Errorf("Y limits after settling = %+v, want {5 20}", got)
	}
	if got := w.controller.currentXLimits(); got != (Limits{0.2, 0.6}) {
		t.Errorf("X limits after settling = %+v, want {0.2 0.6}", got)
	}

	// Everything but the newest group has been retired.
	if len(w.gridlines.groups) != 1 {
		t.Fatalf("group count after settling = %d, want 1", len(w.gridlines.groups))
	}
	if w.gridlines.groups[0].height != (Limits{5, 20}) {
		t.Errorf("surviving group = %+v, want {5 20}", w.gridlines.groups[0].height)
	}
	if w.gridlines.groups[0].alpha != 1 {
		t.Errorf("surviving group alpha = %v, want 1", w.gridlines.groups[0].alpha)
	}
}

func TestInteractionFinishedSpawnsGroup(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	clock.advance(time.Second)
	w.footer.setSelection(Limits{0.2, 0.6})
	w.footer.mouseDown(w.footer.left)
	w.footer.mouseMove(w.footer.left+1, false)
	groups := len(w.gridlines.groups)

	w.footer.mouseUp()
	if len(w.gridlines.groups) != groups+1 {
		t.Errorf("release spawned %d groups, want exactly 1", len(w.gridlines.groups)-groups)
	}
	if !w.animating() {
		t.Error("release should (re)start the animation loop")
	}
}

func TestSetXRangeGoesThroughEventPath(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	clock.advance(time.Second)
	w.setXRange(Limits{0.5, 1})

	if w.controller.xMin.to == 0 && w.controller.xMax.to == 1 {
		t.Error("setXRange did not retarget the X window")
	}
	if w.controller.finalHeightLimits != (Limits{5, 40}) {
		t.Errorf("final Y limits = %+v, want {5 40}", w.controller.finalHeightLimits)
	}
	if !w.animating() {
		t.Error("setXRange should start the animation")
	}
}

func TestPaintFooterDrawsHandles(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	c := newCellCanvas(80, 24)
	w.paint(c, clock.now())

	r := w.footerRect
	handles := 0
	for y := r.Y; y < r.bottom(); y++ {
		for x := r.X; x < r.right(); x++ {
			cell := c.cells[y][x]
			if cell.r == '▌' || cell.r == '▐' {
				if cell.style != &handleStyle {
					t.Fatalf("handle cell (%d,%d) painted without the handle style", x, y)
				}
				handles++
			}
		}
	}
	if want := 2 * footerHandleWidth * r.H; handles != want {
		t.Errorf("handle cell count = %d, want %d", handles, want)
	}
}

func TestPaintDoesNotPanicDuringAnimation(t *testing.T) {
	clock := newFakeClock()
	w := newTestWidget(clock)
	w.setChartData(fivePointData())

	clock.advance(time.Second)
	w.onXPercentageLimitsChange(Limits{0.1, 0.9})

	c := newCellCanvas(80, 24)
	for i := 0; i < 60; i++ {
		clock.advance(16 * time.Millisecond)
		w.paint(c, clock.now())
	}
}
