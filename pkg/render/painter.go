package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Block glyphs.
const (
	GlyphFull  = '█'
	GlyphUpper = '▀'
	GlyphLower = '▄'
	GlyphBlank = ' '

	Ellipsis = "…"

	// DefaultTitle is drawn on the reserved top row.
	DefaultTitle = "Mandelbrot Set"
)

// Glyph selects the character for a cell whose upper sample is top and
// lower sample is bottom.
func Glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return GlyphFull
	case top:
		return GlyphUpper
	case bottom:
		return GlyphLower
	}

	return GlyphBlank
}

// Styles holds the lipgloss styles used by a [Painter].
type Styles struct {
	// Set is applied to every non-blank glyph.
	Set lipgloss.Style
	// Blank is applied to empty cells.
	Blank lipgloss.Style
	// Title is applied to the title text.
	Title lipgloss.Style
}

// Painter composes a [Grid] into the text of a full frame: one title row
// followed by one row per character row of the grid.
type Painter struct {
	styles Styles
	title  string
	width  int
	height int
}

// PainterOpt configures a [Painter].
type PainterOpt func(*Painter)

// WithTitle sets the title drawn on the top row.
func WithTitle(title string) PainterOpt {
	return func(p *Painter) {
		p.title = title
	}
}

// WithStyles sets the styles used for glyphs and the title.
func WithStyles(s Styles) PainterOpt {
	return func(p *Painter) {
		p.styles = s
	}
}

// NewPainter creates a [Painter] for a grid area of width×height character
// cells. The frame it paints is one row taller than the grid area.
func NewPainter(width, height int, opts ...PainterOpt) *Painter {
	p := &Painter{
		title:  DefaultTitle,
		width:  max(0, width),
		height: max(0, height),
		styles: Styles{
			Set:   lipgloss.NewStyle(),
			Blank: lipgloss.NewStyle(),
			Title: lipgloss.NewStyle(),
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Configure applies opts to an existing painter.
func (p *Painter) Configure(opts ...PainterOpt) {
	for _, opt := range opts {
		opt(p)
	}
}

// Title returns the painted title row.
func (p *Painter) Title() string {
	if p.width == 0 {
		return ""
	}

	title := p.title

	titleWidth := ansi.PrintableRuneWidth(title)
	if titleWidth > p.width {
		//nolint:gosec // G115: width is never negative.
		title = truncate.StringWithTail(title, uint(p.width), Ellipsis)
		titleWidth = ansi.PrintableRuneWidth(title)
	}

	col := max(0, p.width/2-titleWidth/2)

	return strings.Repeat(" ", col) + p.styles.Title.Render(title)
}

// Paint renders g. It panics if the grid does not match the painter's
// dimensions.
func (p *Painter) Paint(g *Grid) string {
	if g.Width() != p.width || g.Height() != p.height {
		panic(fmt.Sprintf("render: grid is %dx%d, surface is %dx%d",
			g.Width(), g.Height(), p.width, p.height))
	}

	var sb strings.Builder

	sb.WriteString(p.Title())

	for y := range p.height {
		sb.WriteByte('\n')
		p.paintRow(&sb, g, y)
	}

	return sb.String()
}

// paintRow writes character row y. Consecutive cells that share a style are
// rendered together.
func (p *Painter) paintRow(sb *strings.Builder, g *Grid, y int) {
	var (
		run      strings.Builder
		runBlank bool
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}

		style := p.styles.Set
		if runBlank {
			style = p.styles.Blank
		}

		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for x := range p.width {
		r := Glyph(g.At(x, 2*y), g.At(x, 2*y+1))

		blank := r == GlyphBlank
		if blank != runBlank {
			flush()

			runBlank = blank
		}

		run.WriteRune(r)
	}

	flush()
}
