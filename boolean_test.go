package shapeops

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// circlePath approximates a circle with four cubic beziers, wound counter clockwise.
func circlePath(cx, cy, r float64) *Path {
	k := kappa * r
	p := &Path{}
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}

func shapeFromSVG(d string, style Style) *Shape {
	return NewShape(MustParseSVGPath(d), style)
}

func TestBooleanUnion(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", Style{Fill: Red})
	beta := shapeFromSVG("M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z", Style{Fill: Blue})
	shapes, err := Boolean(Union, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 1.75)
	test.T(t, shapes[0].Style, alpha.Style)

	// the union region does not depend on operand order
	swapped, err := Boolean(Union, beta, alpha)
	test.Error(t, err)
	test.T(t, len(swapped), 1)
	test.Float(t, swapped[0].Area(), 1.75)
}

func TestBooleanIntersection(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", Style{Fill: Red})
	beta := shapeFromSVG("M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z", Style{Fill: Blue})
	shapes, err := Boolean(Intersection, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 0.25)
	test.T(t, shapes[0].Style, alpha.Style)

	bounds := shapes[0].Path.Bounds()
	test.Float(t, bounds.X0, 0.5)
	test.Float(t, bounds.Y0, 0.5)
	test.Float(t, bounds.X1, 1.0)
	test.Float(t, bounds.Y1, 1.0)
}

func TestBooleanDifference(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", Style{Fill: Red})
	beta := shapeFromSVG("M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z", Style{Fill: Blue})
	shapes, err := Boolean(Difference, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 2)

	// one fragment per operand, each styled after the shape it came from
	sum := 0.0
	for _, shape := range shapes {
		test.Float(t, math.Abs(shape.Area()), 0.75)
		sum += shape.Area()
		if 0.0 < shape.Area() {
			test.T(t, shape.Style, alpha.Style)
		} else {
			test.T(t, shape.Style, beta.Style)
		}
	}
	test.Float(t, sum, 0.0)
}

func TestBooleanSubtract(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", Style{Fill: Red})
	beta := shapeFromSVG("M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z", Style{Fill: Blue})

	shapes, err := Boolean(SubtractBack, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 0.75)
	test.T(t, shapes[0].Style, alpha.Style)
	bounds := shapes[0].Path.Bounds()
	test.Float(t, bounds.X0, 0.0)
	test.Float(t, bounds.Y0, 0.0)

	shapes, err = Boolean(SubtractFront, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 0.75)
	test.T(t, shapes[0].Style, beta.Style)
	bounds = shapes[0].Path.Bounds()
	test.Float(t, bounds.X0, 0.5)
	test.Float(t, bounds.Y0, 0.5)
	test.Float(t, bounds.X1, 1.5)
	test.Float(t, bounds.Y1, 1.5)
}

func TestBooleanAreaRoundTrip(t *testing.T) {
	// what subtraction removes is exactly the intersection: the areas add back up to alpha
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	beta := shapeFromSVG("M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z", DefaultStyle)

	remains, err := Boolean(SubtractBack, alpha, beta)
	test.Error(t, err)
	overlap, err := Boolean(Intersection, alpha, beta)
	test.Error(t, err)

	total := 0.0
	for _, shape := range append(remains, overlap...) {
		total += shape.Area()
	}
	test.Float(t, total, alpha.Area())
}

func TestBooleanReversedOperand(t *testing.T) {
	// a clockwise beta is rewound, the result is the same as for counter clockwise
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	beta := shapeFromSVG("M0.5 0.5L0.5 1.5L1.5 1.5L1.5 0.5z", DefaultStyle)
	shapes, err := Boolean(Union, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 1.75)
}

func TestBooleanIdenticalOperands(t *testing.T) {
	// coincident boundaries produce no crossings, the union falls back to either operand
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	beta := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	shapes, err := Boolean(Union, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 1.0)
}

func TestBooleanNested(t *testing.T) {
	square := shapeFromSVG("M0 0L1 0L1 1L0 1z", Style{Fill: Red})
	circle := NewShape(circlePath(0.5, 0.5, 0.25), Style{Fill: Blue})
	circleArea := math.Pi * 0.25 * 0.25

	shapes, err := Boolean(Union, square, circle)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.Float(t, shapes[0].Area(), 1.0)

	shapes, err = Boolean(Intersection, square, circle)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.That(t, math.Abs(shapes[0].Area()-circleArea) < 1e-3)
	test.T(t, shapes[0].Style, square.Style)

	shapes, err = Boolean(SubtractBack, square, circle)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.T(t, len(shapes[0].Path.subs), 2)
	test.That(t, math.Abs(shapes[0].Area()-(1.0-circleArea)) < 1e-3)
}

func TestBooleanCircles(t *testing.T) {
	alpha := NewShape(circlePath(0.0, 0.0, 1.0), DefaultStyle)
	beta := NewShape(circlePath(1.0, 0.0, 1.0), DefaultStyle)

	// two unit circles with centers one apart overlap in a lens of area
	// 2*acos(1/2) - sqrt(3)/2
	lens := 2.0*math.Acos(0.5) - math.Sqrt(3.0)/2.0

	shapes, err := Boolean(Union, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.That(t, math.Abs(shapes[0].Area()-(2.0*math.Pi-lens)) < 5e-3)

	shapes, err = Boolean(Intersection, alpha, beta)
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	test.That(t, math.Abs(shapes[0].Area()-lens) < 5e-3)
}

func TestBooleanDisjoint(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	beta := shapeFromSVG("M5 5L6 5L6 6L5 6z", DefaultStyle)
	for _, op := range []Op{Union, Intersection, SubtractBack} {
		_, err := Boolean(op, alpha, beta)
		test.That(t, errors.Is(err, ErrNothingDone))
	}
	_, err := Boolean(Difference, alpha, beta)
	test.That(t, errors.Is(err, ErrNoIntersections))
}

func TestBooleanEmptyOperand(t *testing.T) {
	alpha := shapeFromSVG("M0 0L1 0L1 1L0 1z", DefaultStyle)
	empty := &Shape{Path: &Path{}, Style: DefaultStyle}
	_, err := Boolean(Union, alpha, empty)
	test.That(t, errors.Is(err, ErrInvalidSelection))
	_, err = Boolean(Union, empty, alpha)
	test.That(t, errors.Is(err, ErrInvalidSelection))
}

func TestOpString(t *testing.T) {
	test.String(t, Union.String(), "union")
	test.String(t, SubtractFront.String(), "subtract-front")
	test.String(t, Op(99).String(), "unknown")
}
