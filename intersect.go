package shapeops

import (
	"fmt"
	"math"
)

// curveFidelity is the tolerance below which a Bézier sub-curve is treated as its chord
// during recursive curve-curve intersection.
const curveFidelity = 1e-8

// rayFudge offsets the interior test ray so that it does not pass exactly through path
// vertices.
const rayFudge = 1e-5

// Origin tags which operand of a boolean operation an edge or intersection came from.
type Origin int

const (
	OriginAlpha Origin = iota
	OriginBeta
)

func (o Origin) String() string {
	if o == OriginAlpha {
		return "Alpha"
	}
	return "Beta"
}

// Intersect is a crossing between two path segments. SegA and SegB index into the
// respective paths' Segments() slice, and TA and TB are the curve parameters on those
// segments.
type Intersect struct {
	Point  Point
	TA, TB float64
	SegA   int
	SegB   int
}

func (z Intersect) String() string {
	return fmt.Sprintf("{%v seg=%d,%d t=%g,%g}", z.Point, z.SegA, z.SegB, z.TA, z.TB)
}

// validT reports whether t is a countable intersection parameter. Intersections at the
// very end of a segment belong to the start of the next segment and are not counted here,
// so that a crossing at a segment junction appears exactly once.
func validT(t float64) bool {
	return -Epsilon < t && t < 1.0-Epsilon
}

// tPair is an intersection parameter pair local to two segments.
type tPair struct {
	p      Point
	ta, tb float64
}

// intersectLineLine returns the crossing of two line segments. Parallel and overlapping
// lines yield no crossing.
func intersectLineLine(a0, a1, b0, b1 Point) []tPair {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if Equal(div, 0.0) {
		return nil
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		return []tPair{{p: a0.Interpolate(a1, ta), ta: ta, tb: tb}}
	}
	return nil
}

// intersectLineCurve returns the crossings of a line segment with a Bézier segment,
// with ta on the line and tb on the curve. It writes the line as A.X = bias and solves
// the resulting polynomial in the curve parameter.
// See https://www.particleincell.com/2013/cubic-line-intersection/.
func intersectLineCurve(l0, l1 Point, seg Segment) []tPair {
	if l0.Equals(l1) {
		return nil
	}
	A := Point{l1.Y - l0.Y, l0.X - l1.X}
	bias := l0.Dot(A)

	roots := []float64{}
	if seg.Kind == QuadSeg {
		a := A.Dot(seg.P0.Sub(seg.P1.Mul(2.0)).Add(seg.P2))
		b := A.Dot(seg.P1.Sub(seg.P0).Mul(2.0))
		c := A.Dot(seg.P0) - bias
		r0, r1 := solveQuadraticFormula(a, b, c)
		if !math.IsNaN(r0) {
			roots = append(roots, r0)
			if !math.IsNaN(r1) {
				roots = append(roots, r1)
			}
		}
	} else {
		a := A.Dot(seg.P3.Sub(seg.P0).Add(seg.P1.Mul(3.0)).Sub(seg.P2.Mul(3.0)))
		b := A.Dot(seg.P0.Mul(3.0).Sub(seg.P1.Mul(6.0)).Add(seg.P2.Mul(3.0)))
		c := A.Dot(seg.P1.Mul(3.0).Sub(seg.P0.Mul(3.0)))
		d := A.Dot(seg.P0) - bias
		r0, r1, r2 := solveCubicFormula(a, b, c, d)
		if !math.IsNaN(r0) {
			roots = append(roots, r0)
			if !math.IsNaN(r1) {
				roots = append(roots, r1)
				if !math.IsNaN(r2) {
					roots = append(roots, r2)
				}
			}
		}
	}

	var zs []tPair
	horizontal := math.Abs(l1.Y-l0.Y) <= math.Abs(l1.X-l0.X)
	for _, root := range roots {
		if !Interval(root, 0.0, 1.0) {
			continue
		}
		pos := seg.Pos(root)
		var s float64
		if horizontal {
			s = (pos.X - l0.X) / (l1.X - l0.X)
		} else {
			s = (pos.Y - l0.Y) / (l1.Y - l0.Y)
		}
		if Interval(s, 0.0, 1.0) {
			zs = append(zs, tPair{p: pos, ta: s, tb: root})
		}
	}
	return zs
}

// flatEnough reports whether the segment's control points deviate from its chord by less
// than curveFidelity.
func flatEnough(seg Segment) bool {
	chord := seg.End().Sub(seg.Start())
	d := chord.Length()
	if d <= curveFidelity {
		return true
	}
	dist := func(p Point) float64 {
		return math.Abs(chord.PerpDot(p.Sub(seg.Start()))) / d
	}
	switch seg.Kind {
	case LineSeg:
		return true
	case QuadSeg:
		return dist(seg.P1) <= curveFidelity
	}
	return dist(seg.P1) <= curveFidelity && dist(seg.P2) <= curveFidelity
}

// intersectCurveCurve appends the crossings of two Bézier segments by recursive
// subdivision. Sub-curves whose bounding rectangles do not overlap are discarded; once
// both sub-curves are flat enough their chords are intersected and the chord parameter
// is mapped back to the original curve parameter range.
func intersectCurveCurve(zs []tPair, a, b Segment, ta0, ta1, tb0, tb1 float64) []tPair {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return zs
	}
	if flatEnough(a) && flatEnough(b) {
		for _, z := range intersectLineLine(a.Start(), a.End(), b.Start(), b.End()) {
			zs = append(zs, tPair{
				p:  z.p,
				ta: ta0 + z.ta*(ta1-ta0),
				tb: tb0 + z.tb*(tb1-tb0),
			})
		}
		return zs
	}
	am := 0.5 * (ta0 + ta1)
	bm := 0.5 * (tb0 + tb1)
	a0, a1 := a.split(0.5)
	b0, b1 := b.split(0.5)
	zs = intersectCurveCurve(zs, a0, b0, ta0, am, tb0, bm)
	zs = intersectCurveCurve(zs, a0, b1, ta0, am, bm, tb1)
	zs = intersectCurveCurve(zs, a1, b0, am, ta1, tb0, bm)
	zs = intersectCurveCurve(zs, a1, b1, am, ta1, bm, tb1)
	return zs
}

// intersectSegments returns the crossings of segments a and b, with ta on a and tb on b.
func intersectSegments(a, b Segment) []tPair {
	if a.Kind == LineSeg && b.Kind == LineSeg {
		return intersectLineLine(a.P0, a.P1, b.P0, b.P1)
	} else if a.Kind == LineSeg {
		return intersectLineCurve(a.P0, a.P1, b)
	} else if b.Kind == LineSeg {
		zs := intersectLineCurve(b.P0, b.P1, a)
		for i := range zs {
			zs[i].ta, zs[i].tb = zs[i].tb, zs[i].ta
		}
		return zs
	}
	return dedupPairs(intersectCurveCurve(nil, a, b, 0.0, 1.0, 0.0, 1.0))
}

// dedupPairs removes near-identical intersections produced by adjacent subdivision cells.
func dedupPairs(zs []tPair) []tPair {
	res := zs[:0]
	for _, z := range zs {
		dup := false
		for _, r := range res {
			if math.Abs(z.ta-r.ta) < 1e-6 && math.Abs(z.tb-r.tb) < 1e-6 {
				dup = true
				break
			}
		}
		if !dup {
			res = append(res, z)
		}
	}
	return res
}

// PathIntersections returns all crossings between the segments of paths a and b.
// Crossings at the end of a segment are attributed to the start of the next segment, so
// each geometric crossing appears exactly once. Tangential touches of parallel lines are
// not reported.
func PathIntersections(a, b *Path) []Intersect {
	segsA, segsB := a.Segments(), b.Segments()
	var zs []Intersect
	for i, segA := range segsA {
		boundsA := segA.Bounds()
		for j, segB := range segsB {
			if !boundsA.Overlaps(segB.Bounds()) {
				continue
			}
			for _, z := range intersectSegments(segA, segB) {
				if validT(z.ta) && validT(z.tb) {
					zs = append(zs, Intersect{
						Point: z.p,
						TA:    z.ta,
						TB:    z.tb,
						SegA:  i,
						SegB:  j,
					})
				}
			}
		}
	}
	return zs
}

// castHorizontalRay counts the crossings of the path with the horizontal ray going right
// from the given point.
func castHorizontalRay(p *Path, from Point) int {
	crossings := 0
	for _, seg := range p.Segments() {
		bounds := seg.Bounds()
		if bounds.X1 <= from.X || from.Y < bounds.Y0 || bounds.Y1 < from.Y {
			continue
		}
		roots := []float64{}
		switch seg.Kind {
		case LineSeg:
			dy := seg.P1.Y - seg.P0.Y
			if !Equal(dy, 0.0) {
				roots = append(roots, (from.Y-seg.P0.Y)/dy)
			}
		case QuadSeg:
			a := seg.P0.Y - 2.0*seg.P1.Y + seg.P2.Y
			b := 2.0 * (seg.P1.Y - seg.P0.Y)
			c := seg.P0.Y - from.Y
			r0, r1 := solveQuadraticFormula(a, b, c)
			if !math.IsNaN(r0) {
				roots = append(roots, r0)
				if !math.IsNaN(r1) {
					roots = append(roots, r1)
				}
			}
		case CubeSeg:
			a := seg.P3.Y - seg.P0.Y + 3.0*(seg.P1.Y-seg.P2.Y)
			b := 3.0 * (seg.P0.Y - 2.0*seg.P1.Y + seg.P2.Y)
			c := 3.0 * (seg.P1.Y - seg.P0.Y)
			d := seg.P0.Y - from.Y
			r0, r1, r2 := solveCubicFormula(a, b, c, d)
			if !math.IsNaN(r0) {
				roots = append(roots, r0)
				if !math.IsNaN(r1) {
					roots = append(roots, r1)
					if !math.IsNaN(r2) {
						roots = append(roots, r2)
					}
				}
			}
		}
		for _, t := range roots {
			if validT(t) && from.X < seg.Pos(t).X {
				crossings++
			}
		}
	}
	return crossings
}

// pointInPath reports whether the point lies inside the path by even-odd ray casting.
// The ray is offset by rayFudge so that it does not pass exactly through vertices.
func pointInPath(p *Path, pt Point) bool {
	return castHorizontalRay(p, Point{pt.X, pt.Y + rayFudge})%2 == 1
}
