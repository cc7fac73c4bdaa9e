package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatValue renders a gridline caption compactly: thousands and
// millions get K/M suffixes, small values keep at most one decimal.
func formatValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return trimZero(strconv.FormatFloat(v/1e6, 'f', 1, 64)) + "M"
	case abs >= 1e3:
		return trimZero(strconv.FormatFloat(v/1e3, 'f', 1, 64)) + "K"
	case abs == math.Trunc(abs):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
}

func trimZero(s string) string {
	s = strings.TrimSuffix(s, ".0")
	return s
}

// rangeSummary builds the text copied to the clipboard: the selected
// window plus each line's min/max over it.
func rangeSummary(data *chartData, xLimits Limits) string {
	var out strings.Builder
	fmt.Fprintf(&out, "range %.1f%% .. %.1f%%\n", xLimits.Min*100, xLimits.Max*100)
	if data.empty() {
		return out.String()
	}
	start := data.findStartIndex(xLimits.Min)
	end := data.findEndIndex(start, xLimits.Max)
	for i := range data.lines {
		line := &data.lines[i]
		name := line.name
		if name == "" {
			name = fmt.Sprintf("line %d", i+1)
		}
		fmt.Fprintf(&out, "%s: min %s, max %s\n",
			name,
			formatValue(line.tree.rangeMin(start, end)),
			formatValue(line.tree.rangeMax(start, end)))
	}
	return out.String()
}

func copyRangeSummary(data *chartData, xLimits Limits) error {
	return clipboard.WriteAll(rangeSummary(data, xLimits))
}
