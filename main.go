package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type tickMsg time.Time

type model struct {
	width  int
	height int

	chart  *chartWidget
	config *Config

	help          bool
	statusMessage string
	viewStack     []Limits
	dragStart     Limits
}

func initialModel() model {
	config := loadConfig()
	chart := newChartWidget(config.GridlineCount)
	chart.setChartData(sampleChartData())
	return model{
		chart:  chart,
		config: config,
	}
}

// sampleChartData generates the built-in demo series. Deterministic so
// the chart looks the same on every run.
func sampleChartData() *chartData {
	const n = 180
	rng := rand.New(rand.NewSource(42))

	joined := make([]float64, n)
	left := make([]float64, n)
	a, b := 1200.0, 800.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		a += 60*math.Sin(t*9) + (rng.Float64()-0.48)*180
		b += 40*math.Cos(t*7) + (rng.Float64()-0.5)*120
		joined[i] = math.Max(a, 0)
		left[i] = math.Max(b, 0)
	}
	return newChartData([]string{"joined", "left"}, [][]float64{joined, left})
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) tickCmd() tea.Cmd {
	interval := frameInterval
	if m.config.FrameRate > 0 {
		interval = time.Second / time.Duration(m.config.FrameRate)
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Repaint happens in View; keep the frame clock running.
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.layout(m.width, max(m.height-statusLineHeight, 1))
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	footer := m.chart.footer
	x := msg.X - m.chart.footerRect.X

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.chart.footerRect.contains(msg.X, msg.Y) {
			m.dragStart = footer.xLimits()
			footer.mouseDown(x)
		}
	case tea.MouseActionMotion:
		// Only tracked while a handle is held; the footer ignores the
		// rest.
		footer.mouseMove(x, msg.Ctrl)
	case tea.MouseActionRelease:
		if footer.dragging() {
			m.pushView(m.dragStart)
			footer.mouseUp()
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "escape", "q", "?":
			m.help = false
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	case "r":
		m.pushView(m.chart.footer.xLimits())
		m.chart.setXRange(Limits{Min: 0, Max: 1})
		m.statusMessage = "reset to full range"
		return m, nil
	case "u":
		if limits, ok := m.popView(); ok {
			m.chart.setXRange(limits)
			m.statusMessage = "previous view"
		} else {
			m.statusMessage = "no earlier view"
		}
		return m, nil
	case "e":
		filename := m.config.GetExportPath(
			"statchart-" + time.Now().Format("20060102-150405") + ".png")
		if err := m.chart.exportPNG(filename); err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = "exported " + filename
		}
		return m, nil
	case "c":
		if err := copyRangeSummary(m.chart.data, m.chart.footer.xLimits()); err != nil {
			m.statusMessage = "clipboard: " + err.Error()
		} else {
			m.statusMessage = "copied range summary"
		}
		return m, nil
	}
	return m.handleNavigation(key)
}

func (m model) View() string {
	if m.width < minChartWidth || m.height < minChartHeight {
		return "window too small"
	}
	if m.help {
		return m.helpView()
	}

	canvas := newCellCanvas(m.width, m.height-statusLineHeight)
	m.chart.paint(canvas, time.Now())
	m.paintLegend(canvas)

	var out strings.Builder
	out.WriteString(canvas.render())
	out.WriteByte('\n')
	out.WriteString(m.statusLine())
	return out.String()
}

// paintLegend draws the line names in their colors on the top row.
func (m model) paintLegend(c *cellCanvas) {
	if m.chart.data.empty() {
		return
	}
	x := 1
	for i := range m.chart.data.lines {
		name := m.chart.data.lines[i].name
		if name == "" {
			name = fmt.Sprintf("line %d", i+1)
		}
		c.drawText(x, 0, "● "+name, &lineStyles[i%len(lineStyles)])
		x += len(name) + 4
	}
}

func (m model) statusLine() string {
	limits := m.chart.footer.xLimits()
	left := fmt.Sprintf(" %.0f%%..%.0f%%", limits.Min*100, limits.Max*100)
	if m.statusMessage != "" {
		left += "  " + m.statusMessage
	}
	right := "drag handles | ctrl+drag move | h/l pan | k/j zoom | u back | e png | c copy | ? help | q quit "
	pad := m.width - len(left) - len(right)
	if pad < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", pad) + right)
}

func (m model) helpView() string {
	lines := []string{
		"statchart",
		"",
		"Mouse:",
		"  drag a footer handle     change the selected range edge",
		"  ctrl+drag a handle       move the whole window, width kept",
		"",
		"Keys:",
		"  h/l, arrows              pan the window (shift: faster)",
		"  k/+  j/-                 zoom in / out around the center",
		"  r                        reset to the full range",
		"  u                        back to the previous view",
		"  e                        export the current view as PNG",
		"  c                        copy a range summary to the clipboard",
		"  ?                        toggle this help",
		"  q                        quit",
		"",
		"press q or escape to close help",
	}
	return strings.Join(lines, "\n")
}
