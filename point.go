package shapeops

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for all floating point comparisons.
const Epsilon = 1e-10

// Equal returns true if a and b are equal within tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if t is in [a,b] within tolerance Epsilon.
func Interval(t, a, b float64) bool {
	return a-Epsilon < t && t < b+Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal within tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle spanned between its lower-left corner (X0,Y0) and its upper-right corner (X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Add returns the union of rectangles R and Q.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X0, q.X0)
	y0 := math.Min(r.Y0, q.Y0)
	x1 := math.Max(r.X1, q.X1)
	y1 := math.Max(r.Y1, q.Y1)
	return Rect{x0, y0, x1, y1}
}

// AddPoint returns rectangle R extended to contain point P.
func (r Rect) AddPoint(p Point) Rect {
	if p.X < r.X0 {
		r.X0 = p.X
	}
	if p.X > r.X1 {
		r.X1 = p.X
	}
	if p.Y < r.Y0 {
		r.Y0 = p.Y
	}
	if p.Y > r.Y1 {
		r.Y1 = p.Y
	}
	return r
}

// Overlaps returns true if rectangles R and Q overlap, even when either rectangle has zero area.
func (r Rect) Overlaps(q Rect) bool {
	return r.X0 <= q.X1 && q.X0 <= r.X1 && r.Y0 <= q.Y1 && q.Y0 <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}

func rectFromPoints(p, q Point) Rect {
	r := Rect{p.X, p.Y, p.X, p.Y}
	return r.AddPoint(q)
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error.
	// This can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same.
	// Instead we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// solveCubicFormula returns the real roots of ax^3 + bx^2 + cx + d = 0, padded by NaN.
// see https://quarticequations.com/Cubic.pdf
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	if Equal(a, 0.0) {
		x1, x2 := solveQuadraticFormula(b, c, d)
		return x1, x2, math.NaN()
	}

	// Cardano-Viete in depressed form t^3 + 3qt - 2r = 0
	b /= a
	c /= a
	d /= a
	q := c/3.0 - b*b/9.0
	r := (c*b-3.0*d)/6.0 - b*b*b/27.0

	if disc := r*r + q*q*q; disc > 0.0 {
		// one real root
		big := math.Cbrt(math.Abs(r) + math.Sqrt(disc))
		x1 := big - q/big
		if r < 0.0 {
			x1 = q/big - big
		}
		return x1 - b/3.0, math.NaN(), math.NaN()
	}

	// three real roots
	var phi float64
	if !Equal(q, 0.0) {
		phi = math.Acos(r/math.Pow(-q, 1.5)) / 3.0
	}
	sq := 2.0 * math.Sqrt(-q)
	x1 := sq*math.Cos(phi) - b/3.0
	x2 := sq*math.Cos(phi+2.0*math.Pi/3.0) - b/3.0
	x3 := sq*math.Cos(phi-2.0*math.Pi/3.0) - b/3.0
	return x1, x2, x3
}

// Gauss-Legendre quadrature integration from a to b with n=5
// see https://pomax.github.io/bezierinfo/legendre-gauss.html for more values
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.90618*c + d)
	Qd2 := f(-0.538469*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469*c + d)
	Qd5 := f(0.90618*c + d)
	return c * (0.236927*(Qd1+Qd5) + 0.478629*(Qd2+Qd4) + 0.568889*Qd3)
}
