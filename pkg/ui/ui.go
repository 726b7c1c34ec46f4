// Package ui provides the interactive Mandelbrot viewer.
package ui

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/termbrot/pkg/render"
	"github.com/macropower/termbrot/pkg/viewport"
)

// NewProgram returns a new Tea program running m on the alternate screen.
func NewProgram(m *Model, opts ...tea.ProgramOption) *tea.Program {
	slog.Debug("starting termbrot ui")

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	return tea.NewProgram(m, opts...)
}

// ConfigReloadedMsg carries a new UI configuration. The viewport is kept.
type ConfigReloadedMsg struct {
	Config *Config
}

// Model is the viewport controller. It has a single state, waiting for a
// key; every key is followed by a full repopulate and repaint.
//
// The surface size is taken from the first [tea.WindowSizeMsg] and never
// changes afterwards.
type Model struct {
	cfg     *Config
	grid    *render.Grid
	painter *render.Painter
	frame   string
	vp      viewport.Viewport
	workers int
}

type ModelOpt func(*Model)

// WithWorkers sets the number of goroutines used to populate the grid.
func WithWorkers(n int) ModelOpt {
	return func(m *Model) {
		m.workers = n
	}
}

// NewModel creates a [Model] starting at vp.
func NewModel(cfg *Config, vp viewport.Viewport, opts ...ModelOpt) *Model {
	if cfg == nil {
		cfg = NewConfig()
	}

	m := &Model{
		cfg:     cfg,
		vp:      vp,
		workers: 1,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.grid != nil {
			slog.Debug("ignoring window resize",
				slog.Int("width", msg.Width),
				slog.Int("height", msg.Height),
			)

			break
		}

		m.setSurface(msg.Width, msg.Height)
		m.redraw()

	case tea.KeyMsg:
		key := msg.String()
		if m.cfg.KeyBinds.IsQuit(key) {
			return m, tea.Quit
		}

		action := m.cfg.KeyBinds.Action(key)
		m.vp = m.vp.Apply(action)

		slog.Debug("handled key",
			slog.String("key", key),
			slog.String("action", action.String()),
			slog.String("viewport", m.vp.String()),
		)

		m.redraw()

	case ConfigReloadedMsg:
		if msg.Config == nil {
			break
		}

		m.cfg = msg.Config
		if m.painter != nil {
			m.painter.Configure(m.painterOpts()...)
			m.frame = m.painter.Paint(m.grid)
		}

		slog.Info("applied reloaded configuration")
	}

	return m, nil
}

func (m *Model) View() string {
	return m.frame
}

// Viewport returns the current viewport.
func (m *Model) Viewport() viewport.Viewport {
	return m.vp
}

// Grid returns the membership grid, or nil before the surface size is known.
func (m *Model) Grid() *render.Grid {
	return m.grid
}

// setSurface allocates the grid for a terminal of width×height cells, one
// row of which is reserved for the title.
func (m *Model) setSurface(width, height int) {
	gridHeight := max(0, height-1)

	m.grid = render.NewGrid(width, gridHeight)
	m.painter = render.NewPainter(width, gridHeight, m.painterOpts()...)

	slog.Debug("allocated grid",
		slog.Int("width", width),
		slog.Int("height", gridHeight),
		slog.String("samples", humanize.Comma(int64(width*gridHeight*2))),
	)
}

func (m *Model) painterOpts() []render.PainterOpt {
	return []render.PainterOpt{
		render.WithTitle(m.cfg.Title),
		render.WithStyles(m.cfg.GetTheme().Styles()),
	}
}

// redraw repopulates the grid for the current viewport and repaints the
// frame. It does nothing before the surface size is known.
func (m *Model) redraw() {
	if m.grid == nil {
		return
	}

	start := time.Now()

	render.Populate(m.grid, m.vp, render.WithWorkers(m.workers))
	m.frame = m.painter.Paint(m.grid)

	slog.Debug("rendered frame",
		slog.String("viewport", m.vp.String()),
		slog.String("members", humanize.Comma(int64(m.grid.Members()))),
		slog.Duration("took", time.Since(start)),
	)
}

// Snapshot renders a single frame for a width×height terminal without
// starting a program.
func Snapshot(cfg *Config, vp viewport.Viewport, width, height int, opts ...ModelOpt) string {
	m := NewModel(cfg, vp, opts...)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return m.View()
}
