package main

import "math"

// footerSelector is the draggable range-selection strip below the chart.
// Two edge handles on a track of width cells define the selected
// fractional X window. It knows nothing about chart data; it only emits
// range-change and interaction-finished events.
type footerSelector struct {
	width       int
	handleWidth int

	// left and right are the left edges of the two handles.
	left  int
	right int

	drag struct {
		side dragSide
		x    int
	}

	onRangeChange         func(Limits)
	onInteractionFinished func()
}

func newFooterSelector(width int) *footerSelector {
	f := &footerSelector{handleWidth: footerHandleWidth}
	f.width = max(width, f.handleWidth*2)
	f.left = 0
	f.right = f.width - f.handleWidth
	return f
}

// xLimits is the selected window as fractions of the track width: the
// left handle's left edge and the right handle's right edge.
func (f *footerSelector) xLimits() Limits {
	return Limits{
		Min: float64(f.left) / float64(f.width),
		Max: float64(f.right+f.handleWidth) / float64(f.width),
	}
}

// setWidth rescales both handles so the fractional selection survives a
// resize.
func (f *footerSelector) setWidth(width int) {
	if width < f.handleWidth*2 {
		width = f.handleWidth * 2
	}
	limits := f.xLimits()
	if f.drag.side != dragNone {
		// Keep the drag anchor in track coordinates across a resize so the
		// next move applies the right delta.
		f.drag.x = int(math.Round(float64(f.drag.x) * float64(width) / float64(f.width)))
	}
	f.width = width
	f.left = clampInt(int(math.Round(limits.Min*float64(width))), 0, width-2*f.handleWidth)
	f.right = clampInt(int(math.Round(limits.Max*float64(width)))-f.handleWidth, f.left+f.handleWidth, width-f.handleWidth)
}

// mouseDown starts a drag if x hits one of the handles.
func (f *footerSelector) mouseDown(x int) {
	switch {
	case x >= f.left && x < f.left+f.handleWidth:
		f.drag.side = dragLeft
	case x >= f.right && x < f.right+f.handleWidth:
		f.drag.side = dragRight
	default:
		return
	}
	f.drag.x = x
}

// mouseMove drags the held handle, clamped so the handles never cross and
// never leave the track. With constrain held, both handles translate
// together preserving the window width, still clamped to track bounds.
func (f *footerSelector) mouseMove(x int, constrain bool) {
	if f.drag.side == dragNone {
		return
	}
	diff := x - f.drag.x
	if constrain {
		diff = clampInt(diff, -f.left, f.width-f.handleWidth-f.right)
		f.left += diff
		f.right += diff
	} else {
		switch f.drag.side {
		case dragLeft:
			f.left = clampInt(f.left+diff, 0, f.right-f.handleWidth)
		case dragRight:
			f.right = clampInt(f.right+diff, f.left+f.handleWidth, f.width-f.handleWidth)
		}
	}
	f.drag.x = x
	if f.onRangeChange != nil {
		f.onRangeChange(f.xLimits())
	}
}

// mouseUp ends the drag, firing interaction-finished and then a final
// range-change.
func (f *footerSelector) mouseUp() {
	if f.drag.side == dragNone {
		return
	}
	f.drag.side = dragNone
	f.drag.x = 0
	if f.onInteractionFinished != nil {
		f.onInteractionFinished()
	}
	if f.onRangeChange != nil {
		f.onRangeChange(f.xLimits())
	}
}

func (f *footerSelector) dragging() bool {
	return f.drag.side != dragNone
}
