package shapeops

import (
	"fmt"
	"strings"
)

// Direction is the winding orientation of a closed curve.
type Direction int

const (
	CW Direction = iota
	CCW
)

func (dir Direction) String() string {
	if dir == CCW {
		return "CCW"
	}
	return "CW"
}

// directionForPath returns the winding direction of a closed path by the sign of its
// area. A zero-area path has no defined direction.
func directionForPath(p *Path) (Direction, error) {
	area := p.Area()
	if 0.0 < area {
		return CCW, nil
	} else if area < 0.0 {
		return CW, nil
	}
	return CW, ErrDirectionUndefined
}

// Edge is a directed run of segments between two vertices, colored by the operand path
// it came from.
type Edge struct {
	Origin Origin
	Dest   int
	Segs   []Segment
}

// Vertex is an intersection between the two operand paths. Its outgoing edges are stored
// with it.
type Vertex struct {
	Intersect Intersect
	Edges     []Edge
}

// PathGraph is a directed graph over the intersections of two paths, with edges colored
// by Origin. Each edge carries the portion of the operand path between two consecutive
// intersections. Behavior is undefined when the operand paths self-intersect.
type PathGraph struct {
	vertices []Vertex
}

// NewPathGraph builds the intersection graph of the closed paths alpha and beta.
// It returns ErrNoIntersections when the paths do not cross, and ErrInvalidIntersections
// when an odd number of crossings is found, which indicates a tangency or a missed
// intersection.
func NewPathGraph(alpha, beta *Path) (*PathGraph, error) {
	zs := PathIntersections(alpha, beta)
	if len(zs) == 0 {
		return nil, ErrNoIntersections
	}
	if len(zs)%2 != 0 {
		return nil, ErrInvalidIntersections
	}
	g := &PathGraph{vertices: make([]Vertex, len(zs))}
	for i, z := range zs {
		g.vertices[i] = Vertex{Intersect: z}
	}
	g.addPathEdges(alpha, OriginAlpha)
	g.addPathEdges(beta, OriginBeta)
	return g, nil
}

// Size returns the number of vertices, which equals the number of intersections plus any
// vertices added for intersection-free subpaths.
func (g *PathGraph) Size() int {
	return len(g.vertices)
}

// Vertex returns the vertex at index.
func (g *PathGraph) Vertex(index int) *Vertex {
	return &g.vertices[index]
}

func (g *PathGraph) addVertex(z Intersect) int {
	g.vertices = append(g.vertices, Vertex{Intersect: z})
	return len(g.vertices) - 1
}

func (g *PathGraph) addEdge(origin Origin, vertex, dest int, segs []Segment) {
	g.vertices[vertex].Edges = append(g.vertices[vertex].Edges, Edge{Origin: origin, Dest: dest, Segs: segs})
}

// edge returns the edge from one vertex to another with the given origin. A properly
// constructed graph has no duplicate edges of the same origin between two vertices.
func (g *PathGraph) edge(from, to int, origin Origin) *Edge {
	for i := range g.vertices[from].Edges {
		edge := &g.vertices[from].Edges[i]
		if edge.Dest == to && edge.Origin == origin {
			return edge
		}
	}
	return nil
}

// intersectsInSeg returns the vertex indices and intersection parameters of all
// intersections on the segment with the given global index of the origin path, sorted
// ascending by parameter.
func (g *PathGraph) intersectsInSeg(segIndex int, origin Origin) ([]int, []float64) {
	var ids []int
	var ts []float64
	for i, vertex := range g.vertices {
		seg, t := vertex.Intersect.SegB, vertex.Intersect.TB
		if origin == OriginAlpha {
			seg, t = vertex.Intersect.SegA, vertex.Intersect.TA
		}
		if seg != segIndex {
			continue
		}
		at := len(ts)
		for 0 < at && t < ts[at-1] {
			at--
		}
		ids = append(ids[:at], append([]int{i}, ids[at:]...)...)
		ts = append(ts[:at], append([]float64{t}, ts[at:]...)...)
	}
	return ids, ts
}

// addPathEdges walks the path segment by segment, cutting it at every intersection and
// adding the runs between consecutive intersections as edges. The run before the first
// intersection of a subpath is held back and appended to the final run, closing the loop.
// A subpath without intersections becomes a self-loop on a vertex of its own, which the
// cycle extraction identifies as a complete cycle.
func (g *PathGraph) addPathEdges(p *Path, origin Origin) {
	segIndex := 0
	for _, sp := range p.subs {
		currentStart, startIndex := -1, -1
		var current, beginning []Segment
		for _, seg := range sp.Segs {
			ids, ts := g.intersectsInSeg(segIndex, origin)
			if 0 < len(ids) {
				subs := subdivideSegment(seg, ts)
				for k, id := range ids {
					if currentStart != -1 {
						if subs[k] != nil {
							current = append(current, *subs[k])
						}
						g.addEdge(origin, currentStart, id, current)
						currentStart = id
						current = nil
					} else {
						currentStart, startIndex = id, id
						if subs[k] != nil {
							beginning = append(beginning, *subs[k])
						}
					}
				}
				if last := subs[len(subs)-1]; last != nil {
					current = append(current, *last)
				}
			} else if currentStart != -1 {
				current = append(current, seg)
			} else {
				beginning = append(beginning, seg)
			}
			segIndex++
		}
		if currentStart != -1 {
			current = append(current, beginning...)
			g.addEdge(origin, currentStart, startIndex, current)
		} else if 0 < len(beginning) {
			id := g.addVertex(Intersect{Point: beginning[0].Start(), SegA: -1, SegB: -1})
			g.addEdge(origin, id, id, beginning)
		}
	}
}

// cycleVertex is a step in a cycle: the vertex reached and the origin of the edge
// traversed to get there.
type cycleVertex struct {
	id     int
	origin Origin
}

// Cycle is a closed loop in the graph that alternates edge origin at every vertex.
// Its area accumulates as the cycle is extended, so the winding direction of the loop is
// known as soon as it closes.
type Cycle struct {
	vertices []cycleVertex
	area     float64
}

func newCycle(startVertex int, edgeOrigin Origin) *Cycle {
	return &Cycle{vertices: []cycleVertex{{startVertex, edgeOrigin}}}
}

// extend appends the vertex reached over an edge and returns true when the cycle is
// complete, ie. when it revisits its first vertex.
func (c *Cycle) extend(vertex int, edgeOrigin Origin, edgeSegs []Segment) bool {
	c.vertices = append(c.vertices, cycleVertex{vertex, edgeOrigin})
	for _, seg := range edgeSegs {
		c.area += seg.SignedArea()
	}
	return vertex == c.vertices[0].id
}

// Len returns the number of edges in the cycle.
func (c *Cycle) Len() int {
	return len(c.vertices) - 1
}

// Area returns the signed area enclosed by the cycle.
func (c *Cycle) Area() float64 {
	return c.area
}

// Direction returns the winding direction of the cycle. A zero-area cycle has no
// defined direction.
func (c *Cycle) Direction() (Direction, error) {
	if 0.0 < c.area {
		return CCW, nil
	} else if c.area < 0.0 {
		return CW, nil
	}
	return CW, ErrDirectionUndefined
}

func (c *Cycle) prevVertex() int {
	return c.vertices[len(c.vertices)-1].id
}

func (c *Cycle) prevEdgeOrigin() Origin {
	return c.vertices[len(c.vertices)-1].origin
}

func (c *Cycle) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, v := range c.vertices {
		if 0 < i {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d/%v", v.id, v.origin)
	}
	sb.WriteByte(']')
	return sb.String()
}

// getCycle extends the cycle until it closes, at each vertex taking an edge whose origin
// differs from the edge it arrived over. Visited vertices are marked per origin so that
// each cycle is found once.
func (g *PathGraph) getCycle(c *Cycle, markers []uint8) {
	for {
		if c.prevEdgeOrigin() == OriginAlpha {
			markers[c.prevVertex()] |= 1
		} else {
			markers[c.prevVertex()] |= 2
		}
		var next *Edge
		for i := range g.vertices[c.prevVertex()].Edges {
			if edge := &g.vertices[c.prevVertex()].Edges[i]; edge.Origin != c.prevEdgeOrigin() {
				next = edge
				break
			}
		}
		if next == nil || c.extend(next.Dest, next.Origin, next.Segs) {
			return
		}
	}
}

// GetCycles returns all origin-alternating cycles in the graph. Self-loop vertices of
// intersection-free subpaths yield single-edge cycles.
func (g *PathGraph) GetCycles() []*Cycle {
	var cycles []*Cycle
	markers := make([]uint8, g.Size())
	for i := range g.vertices {
		if markers[i]&1 == 0 {
			c := newCycle(i, OriginAlpha)
			g.getCycle(c, markers)
			if 0 < c.Len() {
				cycles = append(cycles, c)
			}
		}
		if markers[i]&2 == 0 {
			c := newCycle(i, OriginBeta)
			g.getCycle(c, markers)
			if 0 < c.Len() {
				cycles = append(cycles, c)
			}
		}
	}
	return cycles
}

// Shape assembles the closed path traced by the cycle into a shape with the given style.
func (g *PathGraph) Shape(c *Cycle, style Style) *Shape {
	var segs []Segment
	for i := 1; i < len(c.vertices); i++ {
		edge := g.edge(c.vertices[i-1].id, c.vertices[i].id, c.vertices[i].origin)
		segs = append(segs, edge.Segs...)
	}
	p := &Path{}
	if 0 < len(segs) {
		p.subs = append(p.subs, Subpath{Start: segs[0].Start(), Segs: segs, Closed: true})
	}
	return &Shape{Path: p, Style: style}
}
