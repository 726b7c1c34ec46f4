package fractal

const (
	// DefaultMaxIterations is the iteration cap of the escape-time loop.
	DefaultMaxIterations = 500
	// DefaultEscapeRadius is the magnitude past which a point has escaped.
	DefaultEscapeRadius = 5.0
)

// Default is the [Evaluator] used by [IsInSet].
var Default = Evaluator{
	MaxIterations: DefaultMaxIterations,
	EscapeRadius:  DefaultEscapeRadius,
}

// Evaluator classifies points with the escape-time algorithm.
type Evaluator struct {
	// MaxIterations bounds the number of z = z² + c steps.
	MaxIterations int
	// EscapeRadius is the magnitude at which iteration stops early.
	EscapeRadius float64
}

// IsInSet reports whether c is a member of the Mandelbrot set using the
// [Default] evaluator.
func IsInSet(c Complex) bool {
	return Default.IsInSet(c)
}

// IsInSet iterates z = z² + c from the origin, stopping once |z| exceeds the
// escape radius or the iteration cap is reached. The point is a member iff
// |z| is strictly below the escape radius at that moment.
func (e Evaluator) IsInSet(c Complex) bool {
	z := Complex{}
	for range e.MaxIterations {
		z = Add(Square(z), c)
		if Abs(z) > e.EscapeRadius {
			break
		}
	}

	return Abs(z) < e.EscapeRadius
}

// Iterations returns how many steps were taken before c escaped, or
// MaxIterations if it never did. It mirrors the loop in [Evaluator.IsInSet].
func (e Evaluator) Iterations(c Complex) int {
	z := Complex{}
	for i := range e.MaxIterations {
		z = Add(Square(z), c)
		if Abs(z) > e.EscapeRadius {
			return i + 1
		}
	}

	return e.MaxIterations
}
