package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/clock"
	"github.com/Ege-Guler/solaire/internal/orbit"
)

const (
	canvasWidth  = 78
	canvasHeight = 26
	trailLength  = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).Width(34)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the interactive terminal view of the solar system.
type Model struct {
	bodies     []body.Body
	clk        *clock.Clock
	canvas     *Canvas
	cam        *Camera
	fps        int
	showOrbits bool
	showHelp   bool
	trails     map[string][]orbit.Vec3
	quitting   bool
}

func NewModel(bodies []body.Body, stepHours float64, fps int) Model {
	maxOrbit := 0.0
	for _, b := range bodies {
		if b.OrbitRadius > maxOrbit {
			maxOrbit = b.OrbitRadius
		}
	}

	clk := clock.New()
	clk.SetStepHours(stepHours)

	return Model{
		bodies:     bodies,
		clk:        clk,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		cam:        NewCamera(maxOrbit * 1.1),
		fps:        fps,
		showOrbits: true,
		trails:     make(map[string][]orbit.Vec3, len(bodies)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles input and advances the clock once per frame tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.clk.ToggleRun()
		case "s":
			m.clk.StepOnce()
		case "up":
			m.clk.IncreaseRate()
		case "down":
			m.clk.DecreaseRate()
		case "+", "=":
			m.cam.ZoomIn()
		case "-":
			m.cam.ZoomOut()
		case "o":
			m.showOrbits = !m.showOrbits
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		m.clk.Tick()
		m.clk.FinishStep()
		m.recordTrails()
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *Model) recordTrails() {
	tfs := orbit.System(m.bodies, m.clk.DayOfYear(), m.clk.HourOfDay())
	for _, b := range m.bodies {
		if !b.Orbits() {
			continue
		}
		trail := append(m.trails[b.Name], tfs[b.Name].Position)
		if len(trail) > trailLength {
			trail = trail[1:]
		}
		m.trails[b.Name] = trail
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	sw, sh := canvasWidth*2, canvasHeight*4
	tfs := orbit.System(m.bodies, m.clk.DayOfYear(), m.clk.HourOfDay())

	if m.showOrbits {
		m.drawOrbits(sw, sh)
	}
	for _, b := range m.bodies {
		for _, p := range m.trails[b.Name] {
			x, y := m.cam.Project(p, sw, sh)
			m.canvas.Set(x, y)
		}

		x, y := m.cam.Project(tfs[b.Name].Position, sw, sh)
		r := 1
		if b.Name == "Sun" {
			r = 2
		}
		m.canvas.FillCircle(x, y, r)
	}

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsView(tfs))
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := "[r] run/pause  [s] step  [↑/↓] time step  [+/-] zoom  [o] orbits  [?] help  [esc] quit"
	if m.showHelp {
		help = m.helpView()
	}
	return view + "\n" + helpStyle.Render(help)
}

func (m Model) drawOrbits(sw, sh int) {
	for _, b := range m.bodies {
		if b.Parent != "Sun" {
			continue
		}
		// Project two points on the ring to get its on-screen radii.
		cx, cy := m.cam.Project(orbit.Vec3{}, sw, sh)
		px, _ := m.cam.Project(orbit.Vec3{X: b.OrbitRadius}, sw, sh)
		_, py := m.cam.Project(orbit.Vec3{Z: b.OrbitRadius}, sw, sh)
		m.canvas.DrawEllipse(cx, cy, abs(px-cx), abs(py-cy))
	}
}

func (m Model) statsView(tfs map[string]orbit.Transform) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("solaire") + "\n\n")

	year, day, hour := m.clk.Date()
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("date", fmt.Sprintf("y%d d%03d %04.1fh", year, day, hour))
	row("step", fmt.Sprintf("%.4g h/frame", m.clk.StepHours()))

	state := m.clk.State().String()
	if m.clk.State() != clock.Running {
		state = pausedStyle.Render(state)
	}
	row("state", state)
	b.WriteString("\n")

	for _, bd := range m.bodies {
		if !bd.Orbits() {
			continue
		}
		deg := orbit.Normalize(tfs[bd.Name].OrbitalAngle)
		row(bd.Name, fmt.Sprintf("%6.1f°", deg))
	}

	return b.String()
}

func (m Model) helpView() string {
	return strings.Join([]string{
		"r      toggle run / pause",
		"s      single-step one tick",
		"up     double the time step",
		"down   halve the time step",
		"+/-    zoom",
		"o      toggle orbit rings",
		"esc/q  quit",
	}, "\n")
}
