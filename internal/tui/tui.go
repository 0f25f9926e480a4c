// Package tui provides an interactive terminal explorer for the diffusion
// solver: refine or coarsen the grid, switch schemes, and watch the profile
// and its deviation from the closed-form solution update live.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/pillarlab/radiff/internal/convergence"
	"github.com/pillarlab/radiff/internal/diffusion"
	"github.com/pillarlab/radiff/internal/solver"
)

const (
	graphHeight = 14
	graphWidth  = 72
	maxGrid     = 1 << 14
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the current case and the latest solve results.
type Model struct {
	n      int
	scheme solver.Scheme
	params diffusion.Params

	grid  []float64
	field []float64
	norms convergence.Norms
	err   error
}

// NewModel solves the initial case and returns the ready model.
func NewModel(n int, s solver.Scheme, p diffusion.Params) Model {
	m := Model{n: n, scheme: s, params: p}
	m.resolve()
	return m
}

// Run launches the explorer and blocks until the user quits.
func Run(n int, s solver.Scheme, p diffusion.Params) error {
	prog := tea.NewProgram(NewModel(n, s, p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

func (m *Model) resolve() {
	grid, field, err := solver.Solve(m.n, m.scheme, m.params)
	if err != nil {
		m.err = err
		return
	}
	norms, err := convergence.ErrorNorms(field, diffusion.Profile(grid, m.params))
	if err != nil {
		m.err = err
		return
	}
	m.grid, m.field, m.norms, m.err = grid, field, norms, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "+", "=":
		// Halve the spacing, keeping boundary alignment.
		if next := (m.n-1)*2 + 1; next <= maxGrid {
			m.n = next
			m.resolve()
		}
	case "-", "_":
		if next := (m.n-1)/2 + 1; next >= solver.MinGridSize && (m.n-1)%2 == 0 {
			m.n = next
			m.resolve()
		}
	case "s", "tab":
		if m.scheme == solver.Forward {
			m.scheme = solver.Central
		} else {
			m.scheme = solver.Forward
		}
		m.resolve()
	}
	return m, nil
}

func (m Model) View() string {
	var b []string
	b = append(b, headerStyle.Render("radiff explorer"))

	if m.err != nil {
		b = append(b, errStyle.Render(fmt.Sprintf("solve failed: %v", m.err)))
		b = append(b, helpStyle.Render("q quit"))
		return lipgloss.JoinVertical(lipgloss.Left, b...)
	}

	graph := asciigraph.Plot(m.field,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("C(r), r in [0, %g]", m.params.Radius)))
	b = append(b, graphStyle.Render(graph))

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	b = append(b,
		row("scheme", m.scheme.String()),
		row("grid points", fmt.Sprintf("%d (dr=%.3e)", m.n, m.grid[1]-m.grid[0])),
		row("center C(0)", fmt.Sprintf("%.6f", m.field[0])),
		row("wall C(R)", fmt.Sprintf("%.6f", m.field[len(m.field)-1])),
		row("Linf error", fmtNorm(m.norms.Linf)),
		row("L2 error", fmtNorm(m.norms.L2)),
	)

	b = append(b, helpStyle.Render("+/- refine/coarsen grid  s switch scheme  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func fmtNorm(v float64) string {
	if v == 0 {
		return "0 (exact)"
	}
	if v < 1e-10 {
		return fmt.Sprintf("%.3e (roundoff)", v)
	}
	return fmt.Sprintf("%.3e", v)
}
