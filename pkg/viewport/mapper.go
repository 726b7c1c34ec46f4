package viewport

import "github.com/macropower/termbrot/pkg/fractal"

// PixelToComplex linearly maps the pixel (x, y) onto the given ranges.
// xPixelMax and yPixelMax are exclusive bounds, so pixel 0 maps exactly to
// the range minimum and the last pixel stops one step short of the maximum.
// Pixels outside the grid extrapolate.
func PixelToComplex(x, y, xPixelMax, yPixelMax int, xMin, xMax, yMin, yMax float64) fractal.Complex {
	fx := float64(x) / float64(xPixelMax)
	fy := float64(y) / float64(yPixelMax)

	return fractal.Complex{
		Re: xMin + (xMax-xMin)*fx,
		Im: yMin + (yMax-yMin)*fy,
	}
}
