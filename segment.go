package shapeops

import (
	"fmt"
	"strings"
)

// SegmentKind distinguishes the curve types a path segment can take.
type SegmentKind int

const (
	LineSeg SegmentKind = iota
	QuadSeg
	CubeSeg
)

// Segment is a single path segment: a line, a quadratic Bézier, or a cubic Bézier.
// Direction is meaningful, reversing a segment reorders its control points.
type Segment struct {
	Kind           SegmentKind
	P0, P1, P2, P3 Point
}

// Line returns the line segment between p0 and p1.
func Line(p0, p1 Point) Segment {
	return Segment{Kind: LineSeg, P0: p0, P1: p1}
}

// Quadratic returns the quadratic Bézier segment with control point p1.
func Quadratic(p0, p1, p2 Point) Segment {
	return Segment{Kind: QuadSeg, P0: p0, P1: p1, P2: p2}
}

// Cubic returns the cubic Bézier segment with control points p1 and p2.
func Cubic(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubeSeg, P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start returns the segment's start point.
func (seg Segment) Start() Point {
	return seg.P0
}

// End returns the segment's end point.
func (seg Segment) End() Point {
	switch seg.Kind {
	case LineSeg:
		return seg.P1
	case QuadSeg:
		return seg.P2
	}
	return seg.P3
}

// Pos evaluates the segment position at t in [0,1].
func (seg Segment) Pos(t float64) Point {
	switch seg.Kind {
	case LineSeg:
		return seg.P0.Interpolate(seg.P1, t)
	case QuadSeg:
		p01 := seg.P0.Interpolate(seg.P1, t)
		p12 := seg.P1.Interpolate(seg.P2, t)
		return p01.Interpolate(p12, t)
	}
	p01 := seg.P0.Interpolate(seg.P1, t)
	p12 := seg.P1.Interpolate(seg.P2, t)
	p23 := seg.P2.Interpolate(seg.P3, t)
	a := p01.Interpolate(p12, t)
	b := p12.Interpolate(p23, t)
	return a.Interpolate(b, t)
}

// Deriv evaluates the segment derivative at t in [0,1].
func (seg Segment) Deriv(t float64) Point {
	switch seg.Kind {
	case LineSeg:
		return seg.P1.Sub(seg.P0)
	case QuadSeg:
		d0 := seg.P1.Sub(seg.P0).Mul(2.0)
		d1 := seg.P2.Sub(seg.P1).Mul(2.0)
		return d0.Interpolate(d1, t)
	}
	d0 := seg.P1.Sub(seg.P0).Mul(3.0)
	d1 := seg.P2.Sub(seg.P1).Mul(3.0)
	d2 := seg.P3.Sub(seg.P2).Mul(3.0)
	d01 := d0.Interpolate(d1, t)
	d12 := d1.Interpolate(d2, t)
	return d01.Interpolate(d12, t)
}

// SignedArea returns the signed area between the segment and the origin, following Green's theorem.
// Summed over the segments of a closed path this gives the enclosed area, positive for counter clockwise paths.
func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineSeg:
		return 0.5 * seg.P0.PerpDot(seg.P1)
	case QuadSeg:
		v := seg.P0.X*(2.0*seg.P1.Y+seg.P2.Y) +
			2.0*seg.P1.X*(seg.P2.Y-seg.P0.Y) -
			seg.P2.X*(seg.P0.Y+2.0*seg.P1.Y)
		return v / 6.0
	}
	v := seg.P0.X*(6.0*seg.P1.Y+3.0*seg.P2.Y+seg.P3.Y) +
		3.0*(seg.P1.X*(-2.0*seg.P0.Y+seg.P2.Y+seg.P3.Y)-seg.P2.X*(seg.P0.Y+seg.P1.Y-2.0*seg.P3.Y)) -
		seg.P3.X*(seg.P0.Y+3.0*seg.P1.Y+6.0*seg.P2.Y)
	return v / 20.0
}

// Reverse returns the segment in the opposite direction, reordering its control points.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineSeg:
		return Line(seg.P1, seg.P0)
	case QuadSeg:
		return Quadratic(seg.P2, seg.P1, seg.P0)
	}
	return Cubic(seg.P3, seg.P2, seg.P1, seg.P0)
}

// Extrema returns the interior parameters in (0,1) at which x or y reaches a local extremum.
func (seg Segment) Extrema() []float64 {
	var ts []float64
	add := func(t float64) {
		if Epsilon < t && t < 1.0-Epsilon {
			ts = append(ts, t)
		}
	}
	switch seg.Kind {
	case LineSeg:
		// no interior extrema
	case QuadSeg:
		d0 := seg.P1.Sub(seg.P0)
		dd := seg.P2.Sub(seg.P1).Sub(d0)
		if dd.X != 0.0 {
			add(-d0.X / dd.X)
		}
		if dd.Y != 0.0 {
			add(-d0.Y / dd.Y)
		}
	case CubeSeg:
		d0 := seg.P1.Sub(seg.P0)
		d1 := seg.P2.Sub(seg.P1)
		d2 := seg.P3.Sub(seg.P2)
		r0, r1 := solveQuadraticFormula(d0.X-2.0*d1.X+d2.X, 2.0*(d1.X-d0.X), d0.X)
		if r0 == r0 {
			add(r0)
		}
		if r1 == r1 {
			add(r1)
		}
		r0, r1 = solveQuadraticFormula(d0.Y-2.0*d1.Y+d2.Y, 2.0*(d1.Y-d0.Y), d0.Y)
		if r0 == r0 {
			add(r0)
		}
		if r1 == r1 {
			add(r1)
		}
	}
	return ts
}

// Bounds returns the tight bounding rectangle of the segment.
func (seg Segment) Bounds() Rect {
	r := rectFromPoints(seg.Start(), seg.End())
	for _, t := range seg.Extrema() {
		r = r.AddPoint(seg.Pos(t))
	}
	return r
}

// Length returns the arc length of the segment using Gauss-Legendre quadrature.
func (seg Segment) Length() float64 {
	if seg.Kind == LineSeg {
		return seg.P1.Sub(seg.P0).Length()
	}
	return gaussLegendre5(func(t float64) float64 {
		return seg.Deriv(t).Length()
	}, 0.0, 1.0)
}

func (seg Segment) String() string {
	sb := strings.Builder{}
	switch seg.Kind {
	case LineSeg:
		fmt.Fprintf(&sb, "L%v%v", seg.P0, seg.P1)
	case QuadSeg:
		fmt.Fprintf(&sb, "Q%v%v%v", seg.P0, seg.P1, seg.P2)
	case CubeSeg:
		fmt.Fprintf(&sb, "C%v%v%v%v", seg.P0, seg.P1, seg.P2, seg.P3)
	}
	return sb.String()
}

// split cuts the segment at t in (0,1) using De Casteljau's algorithm, without edge handling.
func (seg Segment) split(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineSeg:
		mid := seg.P0.Interpolate(seg.P1, t)
		return Line(seg.P0, mid), Line(mid, seg.P1)
	case QuadSeg:
		b1 := seg.P0.Interpolate(seg.P1, t)
		b2 := seg.P1.Interpolate(seg.P2, t)
		c1 := b1.Interpolate(b2, t)
		return Quadratic(seg.P0, b1, c1), Quadratic(c1, b2, seg.P2)
	}
	a1 := seg.P0.Interpolate(seg.P1, t)
	a2 := seg.P1.Interpolate(seg.P2, t)
	a3 := seg.P2.Interpolate(seg.P3, t)
	b1 := a1.Interpolate(a2, t)
	b2 := a2.Interpolate(a3, t)
	c1 := b1.Interpolate(b2, t)
	return Cubic(seg.P0, a1, b1, c1), Cubic(c1, b2, a3, seg.P3)
}

// splitSegment cuts the segment at t and returns both halves.
// When t is within Epsilon of 0 the whole segment ends up in the second half, and when
// within Epsilon of 1 in the first half; the skipped half is nil.
func splitSegment(seg Segment, t float64) (*Segment, *Segment) {
	if t <= Epsilon {
		whole := seg
		return nil, &whole
	} else if t >= 1.0-Epsilon {
		whole := seg
		return &whole, nil
	}
	s0, s1 := seg.split(t)
	return &s0, &s1
}

// subdivideSegment splits the segment at each of ts, which must be sorted ascending.
// The returned slice has len(ts)+1 entries whose non-nil members concatenate to the original
// curve. Each split is re-parameterized relative to the remaining part of the curve.
func subdivideSegment(seg Segment, ts []float64) []*Segment {
	subs := make([]*Segment, 0, len(ts)+1)
	remainder := &seg
	prev := 0.0
	for _, t := range ts {
		if remainder == nil {
			subs = append(subs, nil)
			continue
		}
		sub, rest := splitSegment(*remainder, (t-prev)/(1.0-prev))
		subs = append(subs, sub)
		remainder = rest
		prev = t
	}
	return append(subs, remainder)
}
