package fractal

import (
	"math"
	"strconv"
)

// Complex is a point in the complex plane.
type Complex struct {
	Re float64
	Im float64
}

// Add returns the componentwise sum of a and b.
func Add(a, b Complex) Complex {
	return Complex{
		Re: a.Re + b.Re,
		Im: a.Im + b.Im,
	}
}

// Mul returns the product of a and b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Square returns a*a.
func Square(a Complex) Complex {
	return Mul(a, a)
}

// Abs returns the distance of a from the origin.
func Abs(a Complex) float64 {
	return math.Sqrt(a.Re*a.Re + a.Im*a.Im)
}

func (c Complex) String() string {
	sign := "+"
	if math.Signbit(c.Im) {
		sign = "-"
	}

	return strconv.FormatFloat(c.Re, 'g', -1, 64) + sign +
		strconv.FormatFloat(math.Abs(c.Im), 'g', -1, 64) + "i"
}
