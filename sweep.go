package sweepline

import "sort"

// Record pairs an intersection point with its incident segments. The
// segments starting or passing through the point come first, ordered
// by their secondary intercept just below the point, followed by the
// segments ending at the point.
type Record struct {
	Point    Point
	Segments []*Segment
}

// FindIntersections computes every pairwise intersection among segs
// with the Bentley–Ottmann sweep: segments are seeded into an event
// queue by endpoint, then the driver pops events top to bottom,
// rekeying the status structure and classifying every segment against
// the current event before discovering new events among newly-
// adjacent neighbours.
func FindIntersections(segs []*Segment) []Record {
	events := NewEventQueue()
	for _, s := range segs {
		events.Insert(s.Upper)
		events.Insert(s.Lower)
	}

	status := NewStatus()
	var records []Record

	for {
		p, ok := events.Pop()
		if !ok {
			break
		}

		// Advance the sweep line to this event and bring every resident
		// segment's status key up to date before touching the structure.
		status.Rekey(p.Y)

		// Classify every segment against p: does it start here, end
		// here, or simply pass through its interior?
		var upper, lower, interior []*Segment
		for _, s := range segs {
			switch {
			case s.Upper.Equal(p):
				upper = append(upper, s)
			case s.Lower.Equal(p):
				lower = append(lower, s)
			case liesOnSegment(s, p):
				interior = append(interior, s)
			}
		}
		for _, s := range lower {
			status.RemovePair(s)
		}
		for _, s := range interior {
			status.RemovePair(s)
		}

		// Segments starting or passing through p all share the key p.x at
		// this exact instant, so their relative order is momentarily
		// ambiguous. Looking symbolically just below p separates them by
		// slope again, which is the order they'll actually occupy as the
		// sweep continues.
		perturbedY := p.Y - sweepPerturbation

		// Reinsert the starting/passing-through segments keyed by their
		// intercept at the perturbed y, horizontals sorted last. A
		// horizontal has no such intercept; it takes the largest key given
		// so far at this event (at least p.X), which places it after the
		// others in the status structure too.
		uc := make([]*Segment, 0, len(upper)+len(interior))
		uc = append(uc, upper...)
		uc = append(uc, interior...)
		secondaryOrder(uc, perturbedY)
		hKey := p.X
		for _, s := range uc {
			key := hKey
			if !s.isHorizontal() {
				key = s.interceptAt(perturbedY)
				if key > hKey {
					hKey = key
				}
			}
			status.InsertWithKey(s, key)
		}
		status.SetY(p.Y) // the perturbation was symbolic; restore the real sweep y.

		// An intersection only exists where at least two segments meet.
		if len(upper)+len(lower)+len(interior) >= 2 {
			incident := make([]*Segment, 0, len(uc)+len(lower))
			incident = append(incident, uc...)
			incident = append(incident, lower...)
			records = append(records, Record{Point: p, Segments: incident})
		}

		// Removing and reinserting segments around p can bring previously
		// non-adjacent segments into contact; check the structure's new
		// neighbours for intersections that weren't visible before.
		if len(uc) == 0 {
			sL, sR, leftOK, rightOK := status.Neighbours(p.X)
			if leftOK && rightOK {
				findNewEvent(sL, sR, p, events)
			}
			continue
		}

		leftmost, rightmost := uc[0], uc[len(uc)-1]
		if left, ok := status.LeftNeighbourOfPair(leftmost); ok && left != leftmost {
			findNewEvent(left, leftmost, p, events)
		}
		if right, ok := status.RightNeighbourOfPair(rightmost); ok && right != rightmost {
			findNewEvent(rightmost, right, p, events)
		}
	}

	return records
}

// secondaryOrder sorts segs by their intercept at y, placing
// horizontal segments last regardless of intercept.
func secondaryOrder(segs []*Segment, y float64) {
	sort.SliceStable(segs, func(i, j int) bool {
		a, b := segs[i], segs[j]
		if a.isHorizontal() != b.isHorizontal() {
			return b.isHorizontal()
		}
		if a.isHorizontal() {
			return false
		}
		return a.interceptAt(y) < b.interceptAt(y)
	})
}

// findNewEvent inserts the intersection of sL and sR into events if it
// exists, lies strictly below p in sweep order, and is not already
// queued. Only intersections below the current sweep line are useful
// future events; one at or above p has already been handled (or is
// being handled right now).
func findNewEvent(sL, sR *Segment, p Point, events *EventQueue) {
	q, ok := segmentIntersection(sL, sR)
	if !ok {
		return
	}
	below := q.Y < p.Y || (q.Y == p.Y && q.X > p.X)
	if !below {
		return
	}
	if events.Contains(q) {
		return
	}
	events.Insert(q)
}
