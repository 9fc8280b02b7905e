package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/strange/internal/attractor"
	"github.com/san-kum/strange/internal/dynamo"
	"github.com/san-kum/strange/internal/export"
	"github.com/san-kum/strange/internal/palette"
	"github.com/san-kum/strange/internal/raster"
	"github.com/san-kum/strange/internal/viz"
)

const (
	coeffStep  = 0.05
	previewCap = 200_000
	minSamples = 1_000
	maxSamples = 50_000_000
)

// Explorer is the interactive parameter explorer: every keystroke that
// changes a parameter regenerates the trajectory from scratch and redraws
// the braille preview.
type Explorer struct {
	mapName  string
	m        dynamo.Map
	x0, y0   float64
	samples  int
	palIdx   int
	shadeIdx int
	theme    viz.Theme

	traj      *dynamo.Trajectory
	grid      *raster.Grid
	intensity []float64
	bounds    dynamo.Bounds
	genTime   time.Duration
	status    string

	width  int
	height int
}

var coeffOrder = []string{"a", "b", "c", "d"}

func NewExplorer(m dynamo.Map, samples int, palName, shading, themeName string) *Explorer {
	e := &Explorer{
		mapName: m.Name(),
		m:       m,
		samples: samples,
		theme:   viz.GetTheme(themeName),
		width:   80,
		height:  24,
	}
	if s, ok := m.(dynamo.Starter); ok {
		e.x0, e.y0 = s.DefaultStart()
	}
	for i, p := range palette.Palettes {
		if p.Name == palName {
			e.palIdx = i
		}
	}
	for i, name := range raster.ShaderNames() {
		if name == shading {
			e.shadeIdx = i
		}
	}
	e.regenerate()
	return e
}

func (e *Explorer) Init() tea.Cmd { return nil }

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.regenerate()
		return e, nil
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit

	case "a", "b", "c", "d":
		e.nudge(msg.String(), -coeffStep)
	case "A", "B", "C", "D":
		e.nudge(strings.ToLower(msg.String()), +coeffStep)

	case "+", "=":
		if e.samples*2 <= maxSamples {
			e.samples *= 2
			e.regenerate()
		}
	case "-", "_":
		if e.samples/2 >= minSamples {
			e.samples /= 2
			e.regenerate()
		}

	case "p":
		e.palIdx = (e.palIdx + 1) % len(palette.Palettes)
		e.status = "palette: " + palette.Palettes[e.palIdx].Name
	case "s":
		names := raster.ShaderNames()
		e.shadeIdx = (e.shadeIdx + 1) % len(names)
		e.reshade()
		e.status = "shading: " + names[e.shadeIdx]

	case "m":
		names := attractor.Names()
		next := 0
		for i, name := range names {
			if name == e.mapName {
				next = (i + 1) % len(names)
			}
		}
		m, err := attractor.Lookup(names[next])
		if err != nil {
			e.status = err.Error()
			return e, nil
		}
		e.mapName = names[next]
		e.m = m
		if s, ok := m.(dynamo.Starter); ok {
			e.x0, e.y0 = s.DefaultStart()
		}
		e.regenerate()

	case "r":
		m, err := attractor.Lookup(e.mapName)
		if err == nil {
			e.m = m
			e.regenerate()
			e.status = "coefficients reset"
		}

	case "t":
		for i, t := range viz.Themes {
			if t.Name == e.theme.Name {
				e.theme = viz.Themes[(i+1)%len(viz.Themes)]
				break
			}
		}

	case "e":
		e.exportPNG()
	}
	return e, nil
}

func (e *Explorer) nudge(name string, delta float64) {
	cfg, ok := e.m.(dynamo.Configurable)
	if !ok {
		return
	}
	cur := cfg.Coeffs()[name]
	if err := cfg.SetCoeff(name, cur+delta); err != nil {
		e.status = err.Error()
		return
	}
	e.regenerate()
}

func (e *Explorer) canvasSize() (int, int) {
	w := e.width - 4
	h := e.height - 8
	if w < 20 {
		w = 20
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

// regenerate recomputes the preview trajectory and its density grid. The
// preview is capped so coefficient scrubbing stays responsive; exports use
// the full configured sample count.
func (e *Explorer) regenerate() {
	n := e.samples
	if n > previewCap {
		n = previewCap
	}

	start := time.Now()
	traj, err := dynamo.Generate(e.m, e.x0, e.y0, n)
	if err != nil {
		e.status = err.Error()
		return
	}
	e.genTime = time.Since(start)
	e.traj = traj
	e.bounds = traj.Bounds().Pad(0.05)

	cw, ch := e.canvasSize()
	e.grid = raster.NewGrid(cw*2, ch*4)
	e.grid.Accumulate(traj, e.bounds)
	e.reshade()
	e.status = ""
}

func (e *Explorer) reshade() {
	shade, err := raster.ShaderByName(raster.ShaderNames()[e.shadeIdx])
	if err != nil {
		e.status = err.Error()
		return
	}
	e.intensity = shade(e.grid)
}

func (e *Explorer) exportPNG() {
	cfgName := fmt.Sprintf("%s_%d.png", e.mapName, time.Now().Unix())

	traj, err := dynamo.Generate(e.m, e.x0, e.y0, e.samples)
	if err != nil {
		e.status = err.Error()
		return
	}
	grid := raster.NewGrid(800, 800)
	grid.Accumulate(traj, traj.Bounds().Pad(0.05))

	shade, err := raster.ShaderByName(raster.ShaderNames()[e.shadeIdx])
	if err != nil {
		e.status = err.Error()
		return
	}
	img := raster.Render(grid, shade, palette.Palettes[e.palIdx], color.NRGBA{A: 0xff})
	if err := export.WritePNG(cfgName, img); err != nil {
		e.status = err.Error()
		return
	}
	e.status = "wrote " + cfgName
}

func (e *Explorer) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(e.theme.Primary)
	label := lipgloss.NewStyle().Foreground(e.theme.Muted)
	value := lipgloss.NewStyle().Foreground(e.theme.Accent)
	hint := lipgloss.NewStyle().Foreground(e.theme.Muted).Italic(true)

	var b strings.Builder
	b.WriteString(title.Render("strange · "+e.mapName) + "\n")

	if e.grid != nil && e.intensity != nil {
		cw, ch := e.canvasSize()
		canvas := viz.NewCanvas(cw, ch)
		canvas.PlotGrid(e.grid, e.intensity, 1e-9)
		b.WriteString(lipgloss.NewStyle().Foreground(e.theme.Primary).Render(canvas.String()))
	}

	if cfg, ok := e.m.(dynamo.Configurable); ok {
		coeffs := cfg.Coeffs()
		parts := make([]string, 0, len(coeffOrder))
		for _, name := range coeffOrder {
			parts = append(parts, fmt.Sprintf("%s=%s", name, value.Render(fmt.Sprintf("%+.3f", coeffs[name]))))
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %s\n",
		label.Render("samples"), value.Render(formatCount(e.samples)),
		label.Render("palette"), value.Render(palette.Palettes[e.palIdx].Name),
		label.Render("shading"), value.Render(raster.ShaderNames()[e.shadeIdx]),
		label.Render("gen"), value.Render(e.genTime.Truncate(time.Microsecond).String()),
	))

	if e.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(e.theme.Warning).Render(e.status) + "\n")
	}
	b.WriteString(hint.Render("a-d/A-D coeffs · +/- samples · p palette · s shading · m map · r reset · e export · q quit"))
	return b.String()
}

func formatCount(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000 && n%1_000 == 0:
		return fmt.Sprintf("%dk", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
