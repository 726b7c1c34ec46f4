// Package viewport describes the rectangle of the complex plane that is
// mapped onto the terminal, and the keyboard-driven pan and zoom steps that
// move it.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/macropower/termbrot/pkg/fractal"
)

// Step is the fraction of the current span that a single pan or zoom moves a
// bound by.
const Step = 0.02

var ErrInvalidViewport = errors.New("invalid viewport")

// Default is the viewport shown at startup.
var Default = Viewport{
	StartX: -2.0,
	StartY: -0.95,
	EndX:   0.5,
	EndY:   0.95,
}

// Viewport is the visible rectangle of the complex plane. Start maps to the
// top-left cell and End to the (exclusive) bottom-right cell.
//
// Pan and zoom steps do not keep Start below End; repeated steps can shrink
// a span towards zero, and nothing stops the bounds from crossing.
type Viewport struct {
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
}

// Span returns the width and height of the viewport.
func (v Viewport) Span() (float64, float64) {
	return v.EndX - v.StartX, v.EndY - v.StartY
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() fractal.Complex {
	return fractal.Complex{
		Re: v.StartX + (v.EndX-v.StartX)/2,
		Im: v.StartY + (v.EndY-v.StartY)/2,
	}
}

// PointAt maps the cell (x, y) of a w×h grid into the viewport.
func (v Viewport) PointAt(x, y, w, h int) fractal.Complex {
	return PixelToComplex(x, y, w, h, v.StartX, v.EndX, v.StartY, v.EndY)
}

// Validate checks that the viewport is finite and non-degenerate. It is only
// applied to viewports supplied by the user, never after pan or zoom steps.
func (v Viewport) Validate() error {
	bounds := []struct {
		name string
		f    float64
	}{
		{"startX", v.StartX},
		{"startY", v.StartY},
		{"endX", v.EndX},
		{"endY", v.EndY},
	}
	for _, b := range bounds {
		if math.IsNaN(b.f) || math.IsInf(b.f, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidViewport, b.name)
		}
	}

	if v.StartX >= v.EndX {
		return fmt.Errorf("%w: startX (%g) must be less than endX (%g)", ErrInvalidViewport, v.StartX, v.EndX)
	}
	if v.StartY >= v.EndY {
		return fmt.Errorf("%w: startY (%g) must be less than endY (%g)", ErrInvalidViewport, v.StartY, v.EndY)
	}

	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", v.StartX, v.EndX, v.StartY, v.EndY)
}
