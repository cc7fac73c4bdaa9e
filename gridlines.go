package main

// horizontalLine is one gridline within a group: an absolute value, its
// caption and its screen-relative position against the live Y window.
type horizontalLine struct {
	absoluteValue float64
	relativeValue float64
	caption       string
}

// horizontalLinesData is one gridline group. Its value range is fixed at
// creation; only alpha and the relative positions change afterwards.
type horizontalLinesData struct {
	lines      []horizontalLine
	height     Limits
	alpha      float64
	fixedAlpha float64
}

func newHorizontalLinesData(height Limits, count int) horizontalLinesData {
	if count < 2 {
		count = 2
	}
	d := horizontalLinesData{height: height}
	step := height.span() / float64(count-1)
	for i := 0; i < count; i++ {
		value := height.Min + step*float64(i)
		d.lines = append(d.lines, horizontalLine{
			absoluteValue: value,
			caption:       formatValue(value),
		})
	}
	// Keep the extremes exact so the controller's stop condition can
	// compare them against its targets.
	d.lines[0].absoluteValue = height.Min
	d.lines[count-1].absoluteValue = height.Max
	d.computeRelative(height.Max, height.Min)
	return d
}

// computeRelative maps each line's absolute value into [0,1] against the
// given Y window, top-down: the window maximum lands at 0.
func (d *horizontalLinesData) computeRelative(newMaxHeight, newMinHeight float64) {
	span := newMaxHeight - newMinHeight
	for i := range d.lines {
		if span == 0 {
			d.lines[i].relativeValue = 0
			continue
		}
		d.lines[i].relativeValue = (newMaxHeight - d.lines[i].absoluteValue) / span
	}
}

// gridlineSet is the ordered list of gridline groups, oldest first. The
// newest group is never retired, even at alpha zero.
type gridlineSet struct {
	groups []horizontalLinesData
	count  int
}

// add builds a new group for the given Y window. Animated adds freeze
// every existing group's alpha into fixedAlpha so it fades out from
// exactly where it was; non-animated adds replace the whole list and show
// the new group immediately.
func (s *gridlineSet) add(height Limits, animated bool) {
	count := s.count
	if count == 0 {
		count = defaultGridlineCount
	}
	group := newHorizontalLinesData(height, count)
	if !animated {
		s.groups = s.groups[:0]
	}
	for i := range s.groups {
		s.groups[i].fixedAlpha = s.groups[i].alpha
	}
	s.groups = append(s.groups, group)
	if !animated {
		s.groups[len(s.groups)-1].alpha = 1
	}
}

func (s *gridlineSet) last() *horizontalLinesData {
	if len(s.groups) == 0 {
		return nil
	}
	return &s.groups[len(s.groups)-1]
}

// retireInvisible drops fully transparent groups from the front of the
// list, stopping at the first one still visible.
func (s *gridlineSet) retireInvisible() {
	for len(s.groups) > 1 && s.groups[0].alpha == 0 {
		s.groups = s.groups[1:]
	}
}
