package main

import (
	"math"
	"sort"
)

// segmentTree answers min/max queries over an index interval of a value
// array in O(log n). Both aggregates share one node layout.
type segmentTree struct {
	n    int
	mins []float64
	maxs []float64
}

func newSegmentTree(values []float64) segmentTree {
	t := segmentTree{n: len(values)}
	if t.n == 0 {
		return t
	}
	t.mins = make([]float64, 4*t.n)
	t.maxs = make([]float64, 4*t.n)
	t.build(values, 1, 0, t.n-1)
	return t
}

func (t *segmentTree) build(values []float64, node, lo, hi int) {
	if lo == hi {
		t.mins[node] = values[lo]
		t.maxs[node] = values[lo]
		return
	}
	mid := (lo + hi) / 2
	t.build(values, 2*node, lo, mid)
	t.build(values, 2*node+1, mid+1, hi)
	t.mins[node] = math.Min(t.mins[2*node], t.mins[2*node+1])
	t.maxs[node] = math.Max(t.maxs[2*node], t.maxs[2*node+1])
}

// rangeMin returns the minimum over the inclusive index interval [l, r].
// Degenerate intervals are a caller responsibility.
func (t *segmentTree) rangeMin(l, r int) float64 {
	return t.query(1, 0, t.n-1, l, r, true)
}

// rangeMax returns the maximum over the inclusive index interval [l, r].
func (t *segmentTree) rangeMax(l, r int) float64 {
	return t.query(1, 0, t.n-1, l, r, false)
}

func (t *segmentTree) query(node, lo, hi, l, r int, wantMin bool) float64 {
	if l <= lo && hi <= r {
		if wantMin {
			return t.mins[node]
		}
		return t.maxs[node]
	}
	mid := (lo + hi) / 2
	if r <= mid {
		return t.query(2*node, lo, mid, l, r, wantMin)
	}
	if l > mid {
		return t.query(2*node+1, mid+1, hi, l, r, wantMin)
	}
	a := t.query(2*node, lo, mid, l, r, wantMin)
	b := t.query(2*node+1, mid+1, hi, l, r, wantMin)
	if wantMin {
		return math.Min(a, b)
	}
	return math.Max(a, b)
}

type chartLine struct {
	name   string
	values []float64
	tree   segmentTree
}

// chartData holds the displayed series plus the per-sample fractional X
// positions. xPercentage is strictly increasing; its first and last
// entries span the full data range.
type chartData struct {
	lines       []chartLine
	xPercentage []float64
}

// newChartData builds the range-query structures for a set of equally
// sampled lines. All lines must have the same number of samples.
func newChartData(names []string, values [][]float64) *chartData {
	data := &chartData{}
	for i, vs := range values {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		data.lines = append(data.lines, chartLine{
			name:   name,
			values: vs,
			tree:   newSegmentTree(vs),
		})
	}
	n := 0
	if len(data.lines) > 0 {
		n = len(data.lines[0].values)
	}
	data.xPercentage = make([]float64, n)
	for i := range data.xPercentage {
		if n > 1 {
			data.xPercentage[i] = float64(i) / float64(n-1)
		}
	}
	return data
}

func (c *chartData) empty() bool {
	return c == nil || len(c.lines) == 0 || len(c.xPercentage) == 0
}

// findStartIndex returns the first sample index whose fractional X
// position is not below x.
func (c *chartData) findStartIndex(x float64) int {
	i := sort.SearchFloat64s(c.xPercentage, x)
	if i >= len(c.xPercentage) {
		i = len(c.xPercentage) - 1
	}
	return i
}

// findEndIndex returns the last sample index, not before start, whose
// fractional X position does not exceed x.
func (c *chartData) findEndIndex(start int, x float64) int {
	i := sort.SearchFloat64s(c.xPercentage, x)
	if i >= len(c.xPercentage) || c.xPercentage[i] > x {
		i--
	}
	if i < start {
		i = start
	}
	return i
}

// findMinValue aggregates the range minimum across all lines.
func (c *chartData) findMinValue(start, end int) float64 {
	minValue := math.Inf(1)
	for i := range c.lines {
		minValue = math.Min(minValue, c.lines[i].tree.rangeMin(start, end))
	}
	return minValue
}

// findMaxValue aggregates the range maximum across all lines.
func (c *chartData) findMaxValue(start, end int) float64 {
	maxValue := math.Inf(-1)
	for i := range c.lines {
		maxValue = math.Max(maxValue, c.lines[i].tree.rangeMax(start, end))
	}
	return maxValue
}
