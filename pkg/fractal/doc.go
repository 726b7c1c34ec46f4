// Package fractal provides the numeric core of termbrot: a small complex
// value type and the escape-time classification of points in the complex
// plane.
//
// The arithmetic is written out by hand rather than using the built-in
// complex128 type, so that magnitudes are computed with the exact formula
// sqrt(re*re + im*im). [math/cmplx.Abs] uses [math.Hypot], which rounds
// differently near the escape radius and would change which cells are
// classified as members.
package fractal
