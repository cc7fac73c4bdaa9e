package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportWidth    = 1200
	exportHeight   = 700
	exportFontSize = 14.0
)

var exportLineColors = []color.RGBA{
	{0x2e, 0xa0, 0x4e, 0xff},
	{0x3d, 0x78, 0xd8, 0xff},
	{0xd8, 0xa0, 0x2e, 0xff},
	{0xb0, 0x4e, 0xc8, 0xff},
}

// exportPNG renders the current interpolated view, gridlines included, to
// a PNG file.
func (w *chartWidget) exportPNG(filename string) error {
	if w.data.empty() {
		return fmt.Errorf("no chart data to export")
	}

	dc := gg.NewContext(exportWidth, exportHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    exportFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	margin := 20.0
	area := exportRect{
		x: margin,
		y: margin,
		w: exportWidth - 2*margin,
		h: exportHeight - 2*margin,
	}

	for i := range w.gridlines.groups {
		drawHorizontalLinesPNG(dc, &w.gridlines.groups[i], area)
	}
	drawLinearChartViewPNG(dc, w.data, w.controller.currentXLimits(), w.controller.currentHeightLimits(), area)
	for i := range w.gridlines.groups {
		drawCaptionsPNG(dc, &w.gridlines.groups[i], area)
	}

	return dc.SavePNG(filename)
}

type exportRect struct {
	x, y, w, h float64
}

// drawLinearChartViewPNG is the raster counterpart of the cell-canvas
// painter: same contract, gg surface instead.
func drawLinearChartViewPNG(dc *gg.Context, data *chartData, xLimits, yLimits Limits, r exportRect) {
	xSpan := xLimits.span()
	ySpan := yLimits.span()
	if data.empty() || xSpan <= 0 {
		return
	}

	start := max(data.findStartIndex(xLimits.Min)-1, 0)
	end := min(data.findEndIndex(start, xLimits.Max)+1, len(data.xPercentage)-1)

	dc.SetLineWidth(2.0)
	for li := range data.lines {
		c := exportLineColors[li%len(exportLineColors)]
		dc.SetColor(c)
		line := &data.lines[li]
		lastX, lastY := 0.0, 0.0
		for i := start; i <= end; i++ {
			fx := (data.xPercentage[i] - xLimits.Min) / xSpan
			fy := 0.5
			if ySpan != 0 {
				fy = (line.values[i] - yLimits.Min) / ySpan
			}
			x := r.x + fx*r.w
			y := r.y + (1-fy)*r.h
			if i > start {
				dc.DrawLine(lastX, lastY, x, y)
				dc.Stroke()
			}
			lastX, lastY = x, y
		}
	}
}

func drawHorizontalLinesPNG(dc *gg.Context, group *horizontalLinesData, r exportRect) {
	if group.alpha <= 0 {
		return
	}
	alpha := math.Min(group.alpha, 1)
	dc.SetRGBA(0.5, 0.5, 0.5, alpha)
	dc.SetLineWidth(1.0)
	for _, line := range group.lines {
		y := r.y + line.relativeValue*r.h
		if y < r.y || y > r.y+r.h {
			continue
		}
		dc.DrawLine(r.x, y, r.x+r.w, y)
		dc.Stroke()
	}
}

func drawCaptionsPNG(dc *gg.Context, group *horizontalLinesData, r exportRect) {
	if group.alpha <= 0 {
		return
	}
	alpha := math.Min(group.alpha, 1)
	dc.SetRGBA(0.2, 0.2, 0.2, alpha)
	for _, line := range group.lines {
		y := r.y + line.relativeValue*r.h
		if y < r.y || y > r.y+r.h {
			continue
		}
		dc.DrawString(line.caption, r.x+4, y-4)
	}
}
