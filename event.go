package sweepline

import "github.com/arcstride/sweepline/internal/avltree"

// eventLess orders events top-to-bottom, then left-to-right: a point
// with a greater Y comes first; ties are broken by the lesser X. The
// sweep line travels downward through the plane, so this is the order
// in which the driver must actually encounter events.
func eventLess(p, q Point) bool {
	if p.Y != q.Y {
		return p.Y > q.Y
	}
	return p.X < q.X
}

func eventEquals(p, q Point) bool { return p.Equal(q) }

func pointSame(p, q Point) bool { return p.Equal(q) }

// EventQueue is the ordered container of pending events: segment
// endpoints and discovered intersections, keyed by sweep order. Keys
// are unique — coincident endpoints collapse to a single event, and
// intersection events are suppressed on insert if already queued.
//
// It is an instantiation of the same ordered tree that backs the
// status structure (internal/avltree), keyed on the point itself.
type EventQueue struct {
	tree *avltree.Tree[Point, Point]
}

// NewEventQueue returns an empty event queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{tree: avltree.New(eventLess, eventEquals, pointSame)}
}

// Insert adds p to the queue. A no-op if p is already queued.
func (q *EventQueue) Insert(p Point) { q.tree.Insert(p, p) }

// Contains reports whether p is currently queued.
func (q *EventQueue) Contains(p Point) bool { return q.tree.Contains(p) }

// Empty reports whether the queue has no pending events.
func (q *EventQueue) Empty() bool { return q.tree.Len() == 0 }

// Pop removes and returns the next event in sweep order. ok is false
// if the queue is empty.
func (q *EventQueue) Pop() (Point, bool) { return q.tree.PopMin() }
