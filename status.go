package sweepline

import "github.com/arcstride/sweepline/internal/avltree"

func statusLess(a, b float64) bool   { return a < b }
func statusEquals(a, b float64) bool { return a == b }
func segmentSame(a, b *Segment) bool { return a == b }

// Status is the sweep-line status structure: the segments currently
// intersected by the sweep, ordered by x-intercept at the sweep's
// current y. Keys are not unique — two segments can share an
// x-intercept, most commonly at an intersection event — so Status is
// built on the pair-qualified family of the ordered tree rather than
// plain key-based removal, which would risk evicting the wrong
// segment among several sharing a key.
//
// Status owns the shared sweep-y scalar: every status-key computation
// reads it, and the driver must call Rekey before any lookup that
// depends on a fresh sweep position.
type Status struct {
	tree *avltree.Tree[float64, *Segment]
	y    float64
}

// NewStatus returns an empty status structure.
func NewStatus() *Status {
	return &Status{tree: avltree.New(statusLess, statusEquals, segmentSame)}
}

// SetY sets the sweep line's current y without touching the tree's
// contents. Used after the symbolic epsilon perturbation, where keys
// were computed at a temporary y but the already-resident entries
// don't need to move.
func (s *Status) SetY(y float64) { s.y = y }

// Y returns the sweep line's current y.
func (s *Status) Y() float64 { return s.y }

// keyAt computes seg's x-intercept at y.
func (s *Status) keyAt(seg *Segment, y float64) float64 {
	return seg.interceptAt(y)
}

// Insert adds seg, keyed by its x-intercept at the status structure's
// current y.
func (s *Status) Insert(seg *Segment) {
	key := s.keyAt(seg, s.y)
	seg.order = key
	s.tree.Insert(key, seg)
}

// InsertWithKey adds seg using an explicit key rather than recomputing
// one from the current y. Used for the epsilon-perturbed secondary
// ordering, where each segment's key is computed at y-epsilon but the
// status structure's own y must remain at the event's y.
func (s *Status) InsertWithKey(seg *Segment, key float64) {
	seg.order = key
	s.tree.Insert(key, seg)
}

// RemovePair removes seg from the status structure, using its most
// recently assigned key to locate it and pointer identity to
// disambiguate it from any other segment sharing that key.
func (s *Status) RemovePair(seg *Segment) {
	s.tree.RemovePair(seg.order, seg)
}

// Rekey drains the status structure and reinserts every resident
// segment with a freshly computed key at y, preserving the relative
// order of segments whose relative order does not change across the
// infinitesimal advance. The tree never re-derives a node's key on its
// own — it trusts whatever key was given at insertion — so without an
// explicit rekey, a stale intercept computed at a previous sweep
// position would silently mis-order the tree as y advances. This is
// O(m log m) in the current status-structure size; an order-
// maintenance structure with local swaps would avoid the redundant
// work, but the tree is simpler and fast enough in practice.
func (s *Status) Rekey(y float64) {
	s.y = y
	resident := s.tree.DrainInOrder()
	for _, seg := range resident {
		key := s.keyAt(seg, y)
		seg.order = key
		s.tree.Insert(key, seg)
	}
}

// Neighbours returns the segments immediately left and right of x in
// the current ordering, present or not.
func (s *Status) Neighbours(x float64) (left, right *Segment, leftOK, rightOK bool) {
	return s.tree.Neighbours(x)
}

// LeftNeighbourOfPair returns the in-order predecessor of seg.
func (s *Status) LeftNeighbourOfPair(seg *Segment) (*Segment, bool) {
	return s.tree.LeftNeighbourOfPair(seg.order, seg)
}

// RightNeighbourOfPair returns the in-order successor of seg.
func (s *Status) RightNeighbourOfPair(seg *Segment) (*Segment, bool) {
	return s.tree.RightNeighbourOfPair(seg.order, seg)
}
