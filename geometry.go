package sweepline

import "math"

// epsilon is the relative tolerance used by approxEqual, and the
// absolute tolerance below which a 2x2 system is treated as singular.
const epsilon = 1e-9

// sweepPerturbation is how far below an event point the sweep line is
// symbolically nudged to break ties among segments that share an
// x-intercept at the event itself. Several segments can start, end, or
// pass through the exact same point, and at that instant they all
// report the same status-structure key; looking an infinitesimal
// distance below lets each segment's slope fan them out into a stable
// left-to-right order again. A fixed absolute offset is scale-
// sensitive: inputs whose coordinates span many orders of magnitude
// can either miss genuine ties or invert slopes.
const sweepPerturbation = 0.01

// Point is a coordinate in the plane. Equality is coordinate equality.
type Point struct {
	X, Y float64
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Segment is a line segment canonicalised into an Upper and Lower
// endpoint: Upper has the greater Y, ties broken by the lesser X. A
// degenerate point-segment (Upper == Lower) is permitted.
type Segment struct {
	Upper, Lower Point

	// order is the segment's most recently computed intercept with the
	// sweep line, refreshed on every rekey (status.go).
	order float64
}

// NewSegment canonicalises a and b into a Segment.
func NewSegment(a, b Point) *Segment {
	s := &Segment{}
	if a.Y > b.Y || (a.Y == b.Y && a.X < b.X) {
		s.Upper, s.Lower = a, b
	} else {
		s.Upper, s.Lower = b, a
	}
	return s
}

// Order returns the segment's last computed sweep-line intercept.
func (s *Segment) Order() float64 { return s.order }

// isVertical reports whether s runs parallel to the sweep line's
// travel axis (constant x).
func (s *Segment) isVertical() bool { return s.Upper.X == s.Lower.X }

// isHorizontal reports whether s is perpendicular to the sweep
// direction (constant y). A horizontal segment has no slope, so it
// never separates from a tie by looking below the sweep line the way
// other segments do; callers sort it last rather than trying to rank
// it by an intercept that doesn't move.
func (s *Segment) isHorizontal() bool { return s.Upper.Y == s.Lower.Y }

// isDegenerate reports whether s collapses to a single point.
func (s *Segment) isDegenerate() bool { return s.Upper == s.Lower }

// interceptAt computes s's x-intercept with a horizontal sweep line at
// the given y. The driver calls it at the current sweep position or its
// epsilon-perturbed neighbour; the perturbed y lies below s.Lower.Y when
// s spans less than sweepPerturbation in y below that point, and the
// result is then the intercept of the line through s extended.
func (s *Segment) interceptAt(y float64) float64 {
	if s.isVertical() {
		return s.Upper.X
	}
	if s.isHorizontal() {
		return s.Upper.X
	}
	return s.Upper.X + (y-s.Upper.Y)*(s.Upper.X-s.Lower.X)/(s.Upper.Y-s.Lower.Y)
}

// approxEqual mirrors Python's math.isclose with relative tolerance
// epsilon and absolute tolerance 0, compared symmetrically.
func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= epsilon*math.Max(math.Abs(a), math.Abs(b))
}

// liesOnSegment reports whether p lies on the closed segment s.
func liesOnSegment(s *Segment, p Point) bool {
	if p.Y < s.Lower.Y || p.Y > s.Upper.Y {
		return false
	}
	xmin, xmax := s.Upper.X, s.Lower.X
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	if p.X < xmin || p.X > xmax {
		return false
	}
	if s.isDegenerate() {
		return false
	}
	if s.isVertical() {
		return p.X == s.Lower.X
	}
	if s.isHorizontal() {
		return p.Y == s.Lower.Y
	}
	dx := s.Upper.X - s.Lower.X
	dy := s.Upper.Y - s.Lower.Y
	return approxEqual((p.X-s.Lower.X)/dx, (p.Y-s.Lower.Y)/dy)
}

// segmentIntersection solves for the intersection of the infinite
// lines through s1 and s2, then revalidates the candidate against
// both segments' finite extents. ok is false for parallel lines or a
// candidate point that lands off either segment — the line solve alone
// would happily report an intersection beyond one segment's endpoint.
func segmentIntersection(s1, s2 *Segment) (Point, bool) {
	p1, v1 := s1.Lower, Point{X: s1.Upper.X - s1.Lower.X, Y: s1.Upper.Y - s1.Lower.Y}
	p2, v2 := s2.Lower, Point{X: s2.Upper.X - s2.Lower.X, Y: s2.Upper.Y - s2.Lower.Y}

	det := v1.X*(-v2.Y) - v1.Y*(-v2.X)
	if math.Abs(det) < epsilon {
		return Point{}, false
	}

	rhsX := p2.X - p1.X
	rhsY := p2.Y - p1.Y
	t := (rhsX*(-v2.Y) - rhsY*(-v2.X)) / det

	candidate := Point{X: p1.X + t*v1.X, Y: p1.Y + t*v1.Y}
	if liesOnSegment(s1, candidate) && liesOnSegment(s2, candidate) {
		return candidate, true
	}
	return Point{}, false
}
