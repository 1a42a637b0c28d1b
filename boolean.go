package shapeops

import (
	"errors"
	"math"
)

// Op selects a boolean operation between two or more shapes.
type Op int

const (
	Union Op = iota
	Difference
	Intersection
	SubtractFront
	SubtractBack
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Intersection:
		return "intersection"
	case SubtractFront:
		return "subtract-front"
	case SubtractBack:
		return "subtract-back"
	}
	return "unknown"
}

var (
	// ErrInvalidSelection is returned when an operand shape is empty.
	ErrInvalidSelection = errors.New("shapeops: shape selection is empty")
	// ErrInvalidIntersections is returned when an odd number of intersections is found,
	// which indicates a tangency or a missed intersection.
	ErrInvalidIntersections = errors.New("shapeops: invalid number of intersections")
	// ErrNoIntersections is returned by NewPathGraph when the operand paths do not cross.
	ErrNoIntersections = errors.New("shapeops: paths do not intersect")
	// ErrNothingDone is returned when disjoint shapes leave nothing to combine. It is not
	// necessarily an error, the operands are simply left as they are.
	ErrNothingDone = errors.New("shapeops: nothing to do")
	// ErrDirectionUndefined is returned when a zero-area path has no winding direction.
	ErrDirectionUndefined = errors.New("shapeops: winding direction undefined")
	// ErrNoResult is returned when a composite operation ends up with no shapes.
	ErrNoResult = errors.New("shapeops: operation has no result")
	// ErrUnexpected is returned when the intersection graph is in a state that a pair of
	// closed non-self-intersecting paths cannot produce.
	ErrUnexpected = errors.New("shapeops: unexpected graph state")
)

// pointOnPath returns the start point of the path's first segment.
func pointOnPath(p *Path) Point {
	return p.StartPoint()
}

// maxAreaCycle returns the index of the cycle with the largest absolute area. With both
// operands wound the same way this is the outer boundary of the union.
func maxAreaCycle(cycles []*Cycle) int {
	max := 0
	for i, c := range cycles {
		if math.Abs(cycles[max].Area()) <= math.Abs(c.Area()) {
			max = i
		}
	}
	return max
}

// collectShapes assembles all cycles whose winding direction satisfies the predicate
// into shapes, styled per direction. Zero-area cycles have no direction and are skipped.
func collectShapes(g *PathGraph, cycles []*Cycle, predicate func(Direction) bool, style func(Direction) Style) ([]*Shape, error) {
	if len(cycles) == 0 {
		return nil, ErrUnexpected
	}
	var shapes []*Shape
	for _, c := range cycles {
		dir, err := c.Direction()
		if err != nil {
			continue
		}
		if predicate(dir) {
			shapes = append(shapes, g.Shape(c, style(dir)))
		}
	}
	return shapes, nil
}

// Boolean combines the shapes alpha and beta with the given operation. The resulting
// shapes trace the boundaries of the combined filled region, holes appear as subpaths
// wound opposite to their outer boundary. Disjoint operands that cannot be combined
// return ErrNothingDone.
func Boolean(op Op, alpha, beta *Shape) ([]*Shape, error) {
	if alpha.Path.Empty() || beta.Path.Empty() {
		return nil, ErrInvalidSelection
	}
	if op == SubtractFront {
		op = SubtractBack
		alpha, beta = beta, alpha
	}

	alphaPath := alpha.Path.Copy()
	alphaPath.CloseAll()
	betaPath := beta.Path.Copy()
	betaPath.CloseAll()
	betaReverse := betaPath.Reverse()
	alphaDir, err := directionForPath(alphaPath)
	if err != nil {
		return nil, err
	}
	betaDir, err := directionForPath(betaPath)
	if err != nil {
		return nil, err
	}

	// A graph built from operands wound the same way yields the union boundary and the
	// intersection as separate cycles, while opposite windings yield the difference
	// fragments. Reversing beta switches between the two.
	sameWinding := betaPath
	oppositeWinding := betaReverse
	if alphaDir != betaDir {
		sameWinding, oppositeWinding = betaReverse, betaPath
	}

	switch op {
	case Union:
		g, err := NewPathGraph(alphaPath, sameWinding)
		if err == nil {
			cycles := g.GetCycles()
			union := g.Shape(cycles[maxAreaCycle(cycles)], alpha.Style)
			interiors, err := collectShapes(g, cycles,
				func(dir Direction) bool { return dir != alphaDir },
				func(Direction) Style { return alpha.Style })
			if err != nil {
				return nil, err
			}
			for _, interior := range interiors {
				union.Path.Append(interior.Path)
			}
			return []*Shape{union}, nil
		} else if errors.Is(err, ErrNoIntersections) {
			// one shape inside the other, the union is the larger
			if pointInPath(alphaPath, pointOnPath(betaPath)) {
				return []*Shape{{Path: alphaPath, Style: alpha.Style}}, nil
			} else if pointInPath(betaPath, pointOnPath(alphaPath)) {
				return []*Shape{{Path: betaPath, Style: alpha.Style}}, nil
			}
			return nil, ErrNothingDone
		}
		return nil, err
	case Intersection:
		g, err := NewPathGraph(alphaPath, sameWinding)
		if err == nil {
			cycles := g.GetCycles()
			max := maxAreaCycle(cycles)
			cycles = append(cycles[:max], cycles[max+1:]...)
			return collectShapes(g, cycles,
				func(dir Direction) bool { return dir == alphaDir },
				func(Direction) Style { return alpha.Style })
		} else if errors.Is(err, ErrNoIntersections) {
			if pointInPath(alphaPath, pointOnPath(betaPath)) {
				return []*Shape{{Path: betaPath, Style: alpha.Style}}, nil
			} else if pointInPath(betaPath, pointOnPath(alphaPath)) {
				return []*Shape{{Path: alphaPath, Style: alpha.Style}}, nil
			}
			return nil, ErrNothingDone
		}
		return nil, err
	case Difference:
		g, err := NewPathGraph(alphaPath, oppositeWinding)
		if err != nil {
			return nil, err
		}
		return collectShapes(g, g.GetCycles(),
			func(Direction) bool { return true },
			func(dir Direction) Style {
				if dir == alphaDir {
					return alpha.Style
				}
				return beta.Style
			})
	case SubtractBack:
		g, err := NewPathGraph(alphaPath, oppositeWinding)
		if err == nil {
			return collectShapes(g, g.GetCycles(),
				func(dir Direction) bool { return dir == alphaDir },
				func(Direction) Style { return alpha.Style })
		} else if errors.Is(err, ErrNoIntersections) {
			// beta inside alpha is subtracted as a hole
			if pointInPath(alphaPath, pointOnPath(betaPath)) {
				hole := betaPath
				if alphaDir == betaDir {
					hole = betaReverse
				}
				return []*Shape{{Path: alphaPath.Append(hole), Style: alpha.Style}}, nil
			}
			return nil, ErrNothingDone
		}
		return nil, err
	}
	return nil, ErrInvalidSelection
}
