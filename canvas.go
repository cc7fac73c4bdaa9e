package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme. Gridlines and captions fade through a small gray ramp because a
// terminal cell has no real opacity; the ramp index is the quantized
// alpha.
var (
	lineStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	gridStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
	captionStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
	}
	handleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// gridStyleFor quantizes a crossfade alpha onto the gray ramp. Returns nil
// when the alpha is too low to draw at all.
func gridStyleFor(ramp []lipgloss.Style, alpha float64) *lipgloss.Style {
	if alpha < 0.125 {
		return nil
	}
	idx := int(alpha * float64(len(ramp)))
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return &ramp[idx]
}

type canvasCell struct {
	r     rune
	style *lipgloss.Style
}

// cellCanvas is a rune/style grid the chart paints into each frame. All
// painters clip against its bounds, so callers never need to.
type cellCanvas struct {
	width  int
	height int
	cells  [][]canvasCell
}

func newCellCanvas(width, height int) *cellCanvas {
	c := &cellCanvas{width: width, height: height}
	c.cells = make([][]canvasCell, height)
	for y := range c.cells {
		row := make([]canvasCell, width)
		for x := range row {
			row[x].r = ' '
		}
		c.cells[y] = row
	}
	return c
}

func (c *cellCanvas) setCell(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = canvasCell{r: r, style: style}
}

// dimCell keeps the rune but repaints it with the dim style.
func (c *cellCanvas) dimCell(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x].style = &dimStyle
}

func (c *cellCanvas) drawText(x, y int, s string, style *lipgloss.Style) {
	i := 0
	for _, r := range s {
		c.setCell(x+i, y, r, style)
		i++
	}
}

// drawLine is a Bresenham walk between two cells.
func (c *cellCanvas) drawLine(x0, y0, x1, y1 int, r rune, style *lipgloss.Style) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.setCell(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// render flattens the grid into one styled string for the view, batching
// runs of equally styled cells.
func (c *cellCanvas) render() string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				out.WriteString(runStyle.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			if cell.style != runStyle {
				flush()
				runStyle = cell.style
			}
			run.WriteRune(cell.r)
		}
		flush()
		if y < c.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// paintLinearChartView draws the series polylines for the given view
// window into the target rectangle. Pure rendering: no state retained.
func paintLinearChartView(c *cellCanvas, data *chartData, xLimits, yLimits Limits, r rect) {
	if data.empty() || r.W < 2 || r.H < 2 {
		return
	}
	xSpan := xLimits.span()
	ySpan := yLimits.span()
	if xSpan <= 0 {
		return
	}

	start := data.findStartIndex(xLimits.Min)
	end := data.findEndIndex(start, xLimits.Max)
	// One sample of margin each side so segments entering the window get
	// clipped instead of dropped.
	start = max(start-1, 0)
	end = min(end+1, len(data.xPercentage)-1)

	for li := range data.lines {
		style := &lineStyles[li%len(lineStyles)]
		line := &data.lines[li]
		lastX, lastY := 0, 0
		for i := start; i <= end; i++ {
			fx := (data.xPercentage[i] - xLimits.Min) / xSpan
			fy := 0.5
			if ySpan != 0 {
				fy = (line.values[i] - yLimits.Min) / ySpan
			}
			x := r.X + int(math.Round(fx*float64(r.W-1)))
			y := r.Y + int(math.Round((1-fy)*float64(r.H-1)))
			if i > start {
				c.drawLine(lastX, lastY, x, y, '•', style)
			}
			lastX, lastY = x, y
		}
	}
}

// paintHorizontalLines draws one gridline group's rules at their current
// relative positions and crossfade alpha.
func paintHorizontalLines(c *cellCanvas, group *horizontalLinesData, r rect) {
	style := gridStyleFor(gridStyles, group.alpha)
	if style == nil {
		return
	}
	for _, line := range group.lines {
		y := r.Y + int(math.Round(line.relativeValue*float64(r.H-1)))
		if y < r.Y || y >= r.bottom() {
			continue
		}
		for x := r.X; x < r.right(); x++ {
			c.setCell(x, y, '─', style)
		}
	}
}

// paintHorizontalLineCaptions draws the value captions over the rules.
func paintHorizontalLineCaptions(c *cellCanvas, group *horizontalLinesData, r rect) {
	style := gridStyleFor(captionStyles, group.alpha)
	if style == nil {
		return
	}
	for _, line := range group.lines {
		y := r.Y + int(math.Round(line.relativeValue*float64(r.H-1)))
		if y < r.Y || y >= r.bottom() {
			continue
		}
		c.drawText(r.X+1, y, line.caption, style)
	}
}
