// Package render turns a [viewport.Viewport] into a terminal frame.
//
// A [Grid] holds one membership sample per half cell: a surface of width×height
// character cells is backed by a grid of width×(2·height) samples. [Populate]
// fills the grid from the escape-time evaluator, and a [Painter] composes
// each vertical pair of samples into a single block glyph.
package render

import (
	"golang.org/x/sync/errgroup"

	"github.com/macropower/termbrot/pkg/fractal"
	"github.com/macropower/termbrot/pkg/viewport"
)

// Grid is a row-major boolean membership buffer with the origin at the top
// left. Its dimensions are fixed at construction.
type Grid struct {
	cells  [][]bool
	width  int
	height int
}

// NewGrid allocates a grid for a surface of width×height character cells.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(0, width)
	height = max(0, height)

	cells := make([][]bool, 2*height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}

	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of character rows the grid paints onto.
func (g *Grid) Height() int {
	return g.height
}

// Rows returns the number of sample rows, which is twice [Grid.Height].
func (g *Grid) Rows() int {
	return len(g.cells)
}

// At reports whether the sample at column x of sample row y is a member.
func (g *Grid) At(x, y int) bool {
	return g.cells[y][x]
}

// Set stores the sample at column x of sample row y.
func (g *Grid) Set(x, y int, v bool) {
	g.cells[y][x] = v
}

// Members returns the number of samples that are in the set.
func (g *Grid) Members() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v {
				n++
			}
		}
	}

	return n
}

// Equal reports whether both grids have the same dimensions and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}

	for y, row := range g.cells {
		for x, v := range row {
			if o.cells[y][x] != v {
				return false
			}
		}
	}

	return true
}

type populateOptions struct {
	evaluator fractal.Evaluator
	workers   int
}

// PopulateOpt configures [Populate].
type PopulateOpt func(*populateOptions)

// WithEvaluator replaces [fractal.Default].
func WithEvaluator(e fractal.Evaluator) PopulateOpt {
	return func(o *populateOptions) {
		o.evaluator = e
	}
}

// WithWorkers splits rows across up to n goroutines. Values below 2 keep
// the computation on the calling goroutine.
func WithWorkers(n int) PopulateOpt {
	return func(o *populateOptions) {
		o.workers = n
	}
}

// Populate recomputes every sample of g for the viewport vp. Sample (x, y)
// maps to vp with pixel maxima (g.Width(), g.Rows()). The result does not
// depend on the number of workers.
func Populate(g *Grid, vp viewport.Viewport, opts ...PopulateOpt) {
	o := &populateOptions{
		evaluator: fractal.Default,
		workers:   1,
	}
	for _, opt := range opts {
		opt(o)
	}

	rows := g.Rows()

	if o.workers < 2 {
		for y := range rows {
			populateRow(g, vp, y, o.evaluator)
		}

		return
	}

	var eg errgroup.Group

	eg.SetLimit(o.workers)

	for y := range rows {
		eg.Go(func() error {
			populateRow(g, vp, y, o.evaluator)

			return nil
		})
	}

	// Rows never fail.
	_ = eg.Wait()
}

func populateRow(g *Grid, vp viewport.Viewport, y int, e fractal.Evaluator) {
	row := g.cells[y]
	for x := range row {
		row[x] = e.IsInSet(vp.PointAt(x, y, g.width, len(g.cells)))
	}
}
