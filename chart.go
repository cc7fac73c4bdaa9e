package main

import "time"

// chartWidget wires the footer selector, the animation controller and the
// gridline set together and paints the whole chart each frame.
type chartWidget struct {
	data       *chartData
	footer     *footerSelector
	controller *chartAnimationController
	gridlines  gridlineSet

	lastHeightLimitsChanged time.Time

	chartRect  rect
	footerRect rect

	// now is replaceable in tests.
	now func() time.Time
}

func newChartWidget(gridlineCount int) *chartWidget {
	w := &chartWidget{
		footer:     newFooterSelector(minChartWidth),
		controller: &chartAnimationController{},
		gridlines:  gridlineSet{count: gridlineCount},
		now:        time.Now,
	}
	w.footer.onRangeChange = w.onXPercentageLimitsChange
	w.footer.onInteractionFinished = w.spawnGridlines
	w.controller.onYAnimationStart = w.spawnGridlines
	return w
}

// onXPercentageLimitsChange retargets the animation on every selection
// change. Gridline group creation is throttled so continuous dragging
// spawns at most one new group per cooldown window.
func (w *chartWidget) onXPercentageLimitsChange(limits Limits) {
	if w.data.empty() {
		return
	}
	now := w.now()
	w.controller.setXPercentageLimits(w.data, limits, now)
	if now.Sub(w.lastHeightLimitsChanged) < heightLimitsUpdateTimeout {
		return
	}
	w.lastHeightLimitsChanged = now
	w.controller.resetAlpha()
	w.gridlines.add(w.controller.finalHeightLimits, true)
}

// spawnGridlines restarts the crossfade and adds a gridline group anchored
// at the final Y target. Fired on drag release and when the delayed Y
// rescale begins.
func (w *chartWidget) spawnGridlines() {
	if w.data.empty() {
		return
	}
	w.controller.resetAlpha()
	w.gridlines.add(w.controller.finalHeightLimits, true)
	w.controller.start(w.now())
}

// setChartData replaces the series and resets the view to the full data
// range instantly, with a single fully visible gridline group.
func (w *chartWidget) setChartData(data *chartData) {
	w.data = data
	if data.empty() {
		return
	}
	w.controller.setXPercentageLimits(data, Limits{
		Min: data.xPercentage[0],
		Max: data.xPercentage[len(data.xPercentage)-1],
	}, time.Time{})
	w.controller.finish()
	w.gridlines.add(w.controller.finalHeightLimits, false)
	w.footer.setSelection(w.controller.currentXLimits())
}

// setXRange moves the selection programmatically. It goes through the
// same event path as a drag followed by a release.
func (w *chartWidget) setXRange(limits Limits) {
	w.footer.setSelection(limits)
	w.onXPercentageLimitsChange(w.footer.xLimits())
	w.spawnGridlines()
}

// setSelection positions both handles for a fractional window without
// emitting events.
func (f *footerSelector) setSelection(limits Limits) {
	f.left = clampInt(int(limits.Min*float64(f.width)+0.5), 0, f.width-2*f.handleWidth)
	f.right = clampInt(int(limits.Max*float64(f.width)+0.5)-f.handleWidth, f.left+f.handleWidth, f.width-f.handleWidth)
}

func (w *chartWidget) layout(width, height int) {
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)
	w.chartRect = rect{X: 0, Y: 1, W: width, H: height - footerHeight - 2}
	w.footerRect = rect{X: 0, Y: height - footerHeight, W: width, H: footerHeight}
	w.footer.setWidth(width)
}

func (w *chartWidget) animating() bool {
	return w.controller.animating
}

// paint advances the animation and draws one frame: gridline rules first,
// the series polylines through the interpolated window on top of them,
// captions above everything, then the footer miniature with its handles.
func (w *chartWidget) paint(c *cellCanvas, now time.Time) {
	w.controller.tick(now, &w.gridlines)

	for i := range w.gridlines.groups {
		paintHorizontalLines(c, &w.gridlines.groups[i], w.chartRect)
	}
	if !w.data.empty() {
		paintLinearChartView(c, w.data, w.controller.currentXLimits(), w.controller.currentHeightLimits(), w.chartRect)
	}
	for i := range w.gridlines.groups {
		paintHorizontalLineCaptions(c, &w.gridlines.groups[i], w.chartRect)
	}
	w.paintFooter(c)
}

// paintFooter draws the full-range miniature beneath the selection
// handles, dimming everything outside the selected window.
func (w *chartWidget) paintFooter(c *cellCanvas) {
	r := w.footerRect
	if !w.data.empty() {
		fullY := Limits{
			Min: w.data.findMinValue(0, len(w.data.xPercentage)-1),
			Max: w.data.findMaxValue(0, len(w.data.xPercentage)-1),
		}
		paintLinearChartView(c, w.data, Limits{Min: 0, Max: 1}, fullY, r)
	}

	// Shade the unselected margins.
	for y := r.Y; y < r.bottom(); y++ {
		for x := r.X; x < r.X+w.footer.left; x++ {
			c.dimCell(x, y)
		}
		for x := r.X + w.footer.right + w.footer.handleWidth; x < r.right(); x++ {
			c.dimCell(x, y)
		}
	}

	for y := r.Y; y < r.bottom(); y++ {
		for i := 0; i < w.footer.handleWidth; i++ {
			c.setCell(r.X+w.footer.left+i, y, '▌', &handleStyle)
			c.setCell(r.X+w.footer.right+i, y, '▐', &handleStyle)
		}
	}
}
