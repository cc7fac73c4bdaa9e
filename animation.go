package main

import (
	"math"
	"time"
)

type easingFunc func(float64) float64

func linear(t float64) float64 {
	return t
}

func easeInCubic(t float64) float64 {
	return t * t * t
}

// animValue interpolates between the value it held when the current
// animation run started and its target. The progress fraction lives
// outside the value itself and is fed in through update.
type animValue struct {
	from float64
	cur  float64
	to   float64
}

func newAnimValue(from, to float64) animValue {
	return animValue{from: from, cur: from, to: to}
}

// start re-anchors the animation at the current value so a re-target never
// causes a visual jump.
func (v *animValue) start(to float64) {
	v.from = v.cur
	v.to = to
}

func (v *animValue) update(dt float64, easing easingFunc) {
	if dt >= 1 {
		v.finish()
		return
	}
	v.cur = v.from + (v.to-v.from)*easing(dt)
}

func (v *animValue) finish() {
	v.from = v.to
	v.cur = v.to
}

func (v *animValue) finished() bool {
	return v.cur == v.to
}

// chartAnimationController drives the four interpolated view values (X
// min/max, Y min/max) plus the gridline crossfade alpha. It is advanced
// from the repaint tick; every call is synchronous.
type chartAnimationController struct {
	animating bool
	startedAt time.Time

	xMin   animValue
	xMax   animValue
	yMin   animValue
	yMax   animValue
	yAlpha animValue

	lastUserInteracted      time.Time
	yAnimationStartedAt     time.Time
	alphaAnimationStartedAt time.Time

	// Y progress fractions for min and max, advanced by dtYSpeed per tick.
	dtCurrent Limits
	dtYSpeed  float64

	finalHeightLimits Limits

	// onYAnimationStart fires exactly once each time the delayed Y rescale
	// begins. The chart view uses it to spawn a gridline group at the
	// right moment.
	onYAnimationStart func()
}

// setXPercentageLimits re-targets the visible fractional X window and
// recomputes the final Y window from range queries over the store. A call
// with the exact current X targets is a no-op.
func (c *chartAnimationController) setXPercentageLimits(data *chartData, limits Limits, now time.Time) {
	if c.xMin.to == limits.Min && c.xMax.to == limits.Max {
		return
	}
	c.start(now)
	c.xMin.start(limits.Min)
	c.xMax.start(limits.Max)
	c.lastUserInteracted = now

	startXIndex := data.findStartIndex(c.xMin.to)
	endXIndex := data.findEndIndex(startXIndex, c.xMax.to)
	c.finalHeightLimits = Limits{
		Min: data.findMinValue(startXIndex, endXIndex),
		Max: data.findMaxValue(startXIndex, endXIndex),
	}
	c.yMin = newAnimValue(c.yMin.cur, c.finalHeightLimits.Min)
	c.yMax = newAnimValue(c.yMax.cur, c.finalHeightLimits.Max)

	k := (c.yMax.cur - c.yMin.cur) / c.finalHeightLimits.span()
	if k > 1 {
		k = 1 / k
	}
	switch {
	case k > dtHeightSpeedThreshold1:
		c.dtYSpeed = dtHeightSpeed1
	case k < dtHeightSpeedThreshold2:
		c.dtYSpeed = dtHeightSpeed2
	default:
		c.dtYSpeed = dtHeightSpeed3
	}
	if k < dtHeightInstantThreshold {
		c.dtCurrent = Limits{}
	}
}

func (c *chartAnimationController) start(now time.Time) {
	if !c.animating {
		c.animating = true
		c.startedAt = now
	}
}

// finish snaps every interpolated value to its target and stops the
// ticking loop. Used for instant, non-animated resets.
func (c *chartAnimationController) finish() {
	c.animating = false
	c.xMin.finish()
	c.xMax.finish()
	c.yMin.finish()
	c.yMax.finish()
	c.yAlpha.finish()
}

// resetAlpha restarts the gridline crossfade from zero. Called whenever a
// new gridline group is about to be added.
func (c *chartAnimationController) resetAlpha() {
	c.alphaAnimationStartedAt = time.Time{}
	c.yAlpha = newAnimValue(0, 1)
}

// tick advances the X, Y and alpha sub-animations in that fixed order and
// retires fully transparent gridline groups. No-op while idle.
func (c *chartAnimationController) tick(now time.Time, gridlines *gridlineSet) {
	if !c.animating {
		return
	}

	if c.yAnimationStartedAt.IsZero() && now.Sub(c.lastUserInteracted) >= expandingDelay {
		if c.onYAnimationStart != nil {
			c.onYAnimationStart()
		}
		c.yAnimationStartedAt = c.lastUserInteracted.Add(expandingDelay)
	}
	if c.alphaAnimationStartedAt.IsZero() {
		c.alphaAnimationStartedAt = now
	}

	c.dtCurrent.Min = math.Min(c.dtCurrent.Min+c.dtYSpeed, 1)
	c.dtCurrent.Max = math.Min(c.dtCurrent.Max+c.dtYSpeed, 1)

	dtX := math.Min(float64(now.Sub(c.startedAt))/float64(xExpandingDuration), 1)
	dtAlpha := math.Min(float64(now.Sub(c.alphaAnimationStartedAt))/float64(alphaExpandingDuration), 1)

	xFinished := c.xMin.finished() && c.xMax.finished()
	yFinished := c.yMin.finished() && c.yMax.finished()
	alphaFinished := c.yAlpha.finished()

	if xFinished && yFinished && alphaFinished {
		if last := gridlines.last(); last != nil && len(last.lines) > 0 {
			lines := last.lines
			if lines[0].absoluteValue == c.yMin.to && lines[len(lines)-1].absoluteValue == c.yMax.to {
				c.animating = false
			}
		}
	}
	if xFinished {
		c.xMin.finish()
		c.xMax.finish()
	} else {
		c.xMin.update(dtX, linear)
		c.xMax.update(dtX, linear)
	}
	if !c.yAnimationStartedAt.IsZero() {
		c.yMin.update(c.dtCurrent.Min, easeInCubic)
		c.yMax.update(c.dtCurrent.Max, easeInCubic)
		c.yAlpha.update(dtAlpha, easeInCubic)

		for i := range gridlines.groups {
			gridlines.groups[i].computeRelative(c.yMax.cur, c.yMin.cur)
		}
	}

	if dtAlpha >= 0 && dtAlpha <= 1 {
		value := c.yAlpha.cur
		for i := range gridlines.groups {
			gridlines.groups[i].alpha = gridlines.groups[i].fixedAlpha * (1 - value)
		}
		if last := gridlines.last(); last != nil {
			last.alpha = value
		}
		if value == 1 {
			gridlines.retireInvisible()
		}
	}

	if yFinished && alphaFinished {
		c.alphaAnimationStartedAt = time.Time{}
		c.yAnimationStartedAt = time.Time{}
	}
}

func (c *chartAnimationController) currentXLimits() Limits {
	return Limits{Min: c.xMin.cur, Max: c.xMax.cur}
}

func (c *chartAnimationController) currentHeightLimits() Limits {
	return Limits{Min: c.yMin.cur, Max: c.yMax.cur}
}
