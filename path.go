package shapeops

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits at which floating point numbers are
// printed to SVG output.
var Precision = 8

// Subpath is a contiguous run of segments starting at Start. When Closed, the last
// segment ends at Start again; closing lines are materialized as real line segments.
type Subpath struct {
	Start  Point
	Segs   []Segment
	Closed bool
}

// End returns the current end point of the subpath.
func (sp *Subpath) End() Point {
	if len(sp.Segs) == 0 {
		return sp.Start
	}
	return sp.Segs[len(sp.Segs)-1].End()
}

// Path is a sequence of subpaths built from lines and Bézier curves.
type Path struct {
	subs []Subpath
}

// Empty returns true if the path holds no segments.
func (p *Path) Empty() bool {
	for _, sp := range p.subs {
		if 0 < len(sp.Segs) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	q := &Path{subs: make([]Subpath, len(p.subs))}
	for i, sp := range p.subs {
		q.subs[i] = Subpath{Start: sp.Start, Segs: append([]Segment{}, sp.Segs...), Closed: sp.Closed}
	}
	return q
}

// StartPoint returns the start point of the first subpath.
func (p *Path) StartPoint() Point {
	if len(p.subs) == 0 {
		return Point{}
	}
	return p.subs[0].Start
}

// Pos returns the current position of the path, ie. the end point of the last segment.
func (p *Path) Pos() Point {
	if len(p.subs) == 0 {
		return Point{}
	}
	return p.subs[len(p.subs)-1].End()
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, Subpath{Start: Point{x, y}})
}

func (p *Path) current() *Subpath {
	if len(p.subs) == 0 || p.subs[len(p.subs)-1].Closed {
		start := p.Pos()
		p.subs = append(p.subs, Subpath{Start: start})
	}
	return &p.subs[len(p.subs)-1]
}

// LineTo adds a line segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	sp := p.current()
	end := Point{x, y}
	if sp.End().Equals(end) {
		return
	}
	sp.Segs = append(sp.Segs, Line(sp.End(), end))
}

// QuadTo adds a quadratic Bézier segment with control point (cpx,cpy) ending at (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	sp := p.current()
	sp.Segs = append(sp.Segs, Quadratic(sp.End(), Point{cpx, cpy}, Point{x, y}))
}

// CubeTo adds a cubic Bézier segment with control points (cpx1,cpy1) and (cpx2,cpy2)
// ending at (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	sp := p.current()
	sp.Segs = append(sp.Segs, Cubic(sp.End(), Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}))
}

// Close closes the current subpath. When the current position differs from the subpath
// start a closing line segment is added, so that the closing edge takes part in
// intersection and area computations like any other segment.
func (p *Path) Close() {
	if len(p.subs) == 0 {
		return
	}
	sp := &p.subs[len(p.subs)-1]
	if sp.Closed {
		return
	}
	if !sp.End().Equals(sp.Start) {
		sp.Segs = append(sp.Segs, Line(sp.End(), sp.Start))
	}
	sp.Closed = true
}

// CloseAll closes all open subpaths.
func (p *Path) CloseAll() {
	for i := range p.subs {
		sp := &p.subs[i]
		if sp.Closed || len(sp.Segs) == 0 {
			continue
		}
		if !sp.End().Equals(sp.Start) {
			sp.Segs = append(sp.Segs, Line(sp.End(), sp.Start))
		}
		sp.Closed = true
	}
}

// Closed returns true if the path is non-empty and all subpaths are closed.
func (p *Path) Closed() bool {
	for _, sp := range p.subs {
		if !sp.Closed {
			return false
		}
	}
	return 0 < len(p.subs)
}

// Append appends a copy of the subpaths of q to p and returns p.
func (p *Path) Append(q *Path) *Path {
	if q != nil {
		p.subs = append(p.subs, q.Copy().subs...)
	}
	return p
}

// Segments returns all segments of the path in order, over all subpaths.
// Closing lines are materialized, so the returned indices address every edge of the path.
func (p *Path) Segments() []Segment {
	n := 0
	for _, sp := range p.subs {
		n += len(sp.Segs)
	}
	segs := make([]Segment, 0, n)
	for _, sp := range p.subs {
		segs = append(segs, sp.Segs...)
	}
	return segs
}

// Area returns the signed area of the path, positive for counter clockwise orientation.
// Open subpaths are treated as if closed by a chord.
func (p *Path) Area() float64 {
	area := 0.0
	for _, sp := range p.subs {
		for _, seg := range sp.Segs {
			area += seg.SignedArea()
		}
		if end := sp.End(); !sp.Closed && !end.Equals(sp.Start) {
			area += Line(end, sp.Start).SignedArea()
		}
	}
	return area
}

// CCW returns true if the path is oriented counter clockwise.
func (p *Path) CCW() bool {
	return 0.0 <= p.Area()
}

// Reverse returns a new path with all subpaths in the opposite direction.
func (p *Path) Reverse() *Path {
	q := &Path{subs: make([]Subpath, len(p.subs))}
	for i, sp := range p.subs {
		segs := make([]Segment, len(sp.Segs))
		for j, seg := range sp.Segs {
			segs[len(sp.Segs)-1-j] = seg.Reverse()
		}
		start := sp.Start
		if 0 < len(segs) {
			start = segs[0].Start()
		}
		q.subs[i] = Subpath{Start: start, Segs: segs, Closed: sp.Closed}
	}
	return q
}

// Bounds returns the tight bounding rectangle of the path.
func (p *Path) Bounds() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	empty := true
	for _, sp := range p.subs {
		for _, seg := range sp.Segs {
			r = r.Add(seg.Bounds())
			empty = false
		}
	}
	if empty {
		return Rect{}
	}
	return r
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	d := 0.0
	for _, sp := range p.subs {
		for _, seg := range sp.Segs {
			d += seg.Length()
		}
	}
	return d
}

// Equals returns true if both paths have the same subpaths and segments within Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.subs) != len(q.subs) {
		return false
	}
	for i, sp := range p.subs {
		sq := q.subs[i]
		if sp.Closed != sq.Closed || len(sp.Segs) != len(sq.Segs) || !sp.Start.Equals(sq.Start) {
			return false
		}
		for j, seg := range sp.Segs {
			other := sq.Segs[j]
			if seg.Kind != other.Kind || !seg.P0.Equals(other.P0) || !seg.P1.Equals(other.P1) ||
				!seg.P2.Equals(other.P2) || !seg.P3.Equals(other.P3) {
				return false
			}
		}
	}
	return true
}

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// ToSVG returns the path as an SVG path data string. The materialized closing line of a
// closed subpath is written as 'z' instead of an explicit line command.
func (p *Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	for _, sp := range p.subs {
		fmt.Fprintf(&sb, "M%v %v", num(sp.Start.X), num(sp.Start.Y))
		n := len(sp.Segs)
		for i, seg := range sp.Segs {
			if sp.Closed && i == n-1 && seg.Kind == LineSeg && seg.P1.Equals(sp.Start) {
				break
			}
			switch seg.Kind {
			case LineSeg:
				fmt.Fprintf(&sb, "L%v %v", num(seg.P1.X), num(seg.P1.Y))
			case QuadSeg:
				fmt.Fprintf(&sb, "Q%v %v %v %v", num(seg.P1.X), num(seg.P1.Y), num(seg.P2.X), num(seg.P2.Y))
			case CubeSeg:
				fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(seg.P1.X), num(seg.P1.Y), num(seg.P2.X), num(seg.P2.Y), num(seg.P3.X), num(seg.P3.Y))
			}
		}
		if sp.Closed {
			sb.WriteString("z")
		}
	}
	return sb.String()
}

// String returns the path as an SVG path data string.
func (p *Path) String() string {
	return p.ToSVG()
}
