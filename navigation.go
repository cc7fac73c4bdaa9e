package main

import tea "github.com/charmbracelet/bubbletea"

// handleNavigation pans or zooms the selected window with the keyboard.
// Key-driven changes go through the same path as a handle drag.
func (m *model) handleNavigation(key string) (tea.Model, tea.Cmd) {
	limits := m.chart.footer.xLimits()
	width := limits.span()
	step := width * 0.1 * float64(m.getMoveSpeed(key))

	switch key {
	case "h", "left", "H", "shift+left":
		limits.Min -= step
		limits.Max -= step
		if limits.Min < 0 {
			limits.Max -= limits.Min
			limits.Min = 0
		}
	case "l", "right", "L", "shift+right":
		limits.Min += step
		limits.Max += step
		if limits.Max > 1 {
			limits.Min -= limits.Max - 1
			limits.Max = 1
		}
	case "k", "up", "+", "=":
		// Zoom in around the window center.
		limits.Min += step
		limits.Max -= step
		if limits.Min > limits.Max {
			mid := (limits.Min + limits.Max) / 2
			limits.Min, limits.Max = mid, mid
		}
	case "j", "down", "-":
		limits.Min -= step
		limits.Max += step
	default:
		return m, nil
	}

	limits.Min = clampFloat(limits.Min, 0, 1)
	limits.Max = clampFloat(limits.Max, limits.Min, 1)
	m.pushView(m.chart.footer.xLimits())
	m.chart.setXRange(limits)
	return m, nil
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "shift+left", "shift+right":
		return 2
	default:
		return 1
	}
}
