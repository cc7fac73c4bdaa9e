package main

import "time"

// Timing of the chart animations. A new gridline group is spawned at most
// once per heightLimitsUpdateTimeout while the selection keeps changing.
const (
	heightLimitsUpdateTimeout = 320 * time.Millisecond
	expandingDelay            = 100 * time.Millisecond
	xExpandingDuration        = 200 * time.Millisecond
	alphaExpandingDuration    = 200 * time.Millisecond
)

// Per-tick speed of the Y rescale, picked from the clamped span ratio
// k = currentSpan/targetSpan. The thresholds are hand-tuned.
const (
	dtHeightSpeed1 = 0.03 / 2
	dtHeightSpeed2 = 0.03 / 2
	dtHeightSpeed3 = 0.045 / 2

	dtHeightSpeedThreshold1  = 0.7
	dtHeightSpeedThreshold2  = 0.1
	dtHeightInstantThreshold = 0.97
)

const (
	frameInterval = time.Second / 30

	defaultGridlineCount = 6
	defaultFrameRate     = 30

	footerHeight      = 6
	footerHandleWidth = 2
	statusLineHeight  = 1

	minChartWidth  = footerHandleWidth*2 + 1
	minChartHeight = footerHeight + statusLineHeight + 2
)

// dragSide identifies which footer handle a pointer drag started on.
type dragSide int

const (
	dragNone dragSide = iota
	dragLeft
	dragRight
)
