package avltree_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/arcstride/sweepline/internal/avltree"
)

func lessInt(a, b int) bool    { return a < b }
func equalsInt(a, b int) bool  { return a == b }
func samePtr(a, b *int) bool   { return a == b }
func newIntTree() *avltree.Tree[int, *int] {
	return avltree.New(lessInt, equalsInt, samePtr)
}

func ptr(i int) *int { return &i }

func TestInOrderTraversalSorted(t *testing.T) {
	tr := newIntTree()
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	values := make(map[int]*int)
	for _, k := range keys {
		v := ptr(k)
		values[k] = v
		tr.Insert(k, v)
	}
	drained := tr.DrainInOrder()
	if len(drained) != len(keys) {
		t.Fatalf("expected %d values, got %d", len(keys), len(drained))
	}
	for i := 1; i < len(drained); i++ {
		if *drained[i-1] > *drained[i] {
			t.Fatalf("drain not sorted at index %d: %d > %d", i, *drained[i-1], *drained[i])
		}
	}
}

func TestHeightBound(t *testing.T) {
	tr := newIntTree()
	const n = 2000
	for i := 0; i < n; i++ {
		tr.Insert(i, ptr(i))
	}
	// AVL-family trees (single or double rotation) keep height within a
	// constant factor of log2(n+1); 1.5 is comfortable slack for the
	// single-rotation variant this tree uses.
	bound := int(1.5*math.Log2(float64(n+1))) + 2
	if h := tr.Height(); h > bound {
		t.Fatalf("height %d exceeds bound %d for n=%d", h, bound, n)
	}
}

func TestRemovePairThenInsertIsNoop(t *testing.T) {
	tr := newIntTree()
	a, b := ptr(1), ptr(1)
	tr.Insert(5, a)
	tr.Insert(5, b) // duplicate key, distinct value
	if tr.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tr.Len())
	}
	tr.RemovePair(5, a)
	if tr.Len() != 1 {
		t.Fatalf("expected 1 entry after RemovePair, got %d", tr.Len())
	}
	tr.Insert(5, a)
	if tr.Len() != 2 {
		t.Fatalf("expected 2 entries after reinsert, got %d", tr.Len())
	}
	drained := tr.DrainInOrder()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained values, got %d", len(drained))
	}
}

func TestInsertSameValueIsNoop(t *testing.T) {
	tr := newIntTree()
	v := ptr(3)
	tr.Insert(3, v)
	tr.Insert(3, v)
	if tr.Len() != 1 {
		t.Fatalf("expected identical (key,value) insert to be a no-op, got size %d", tr.Len())
	}
}

func TestRemoveIsNoopOnAbsentKey(t *testing.T) {
	tr := newIntTree()
	tr.Insert(1, ptr(1))
	tr.Remove(99)
	if tr.Len() != 1 {
		t.Fatalf("expected size unchanged, got %d", tr.Len())
	}
}

func TestFindMinMaxPopMinMax(t *testing.T) {
	tr := newIntTree()
	if _, ok := tr.FindMin(); ok {
		t.Fatalf("expected ok=false on empty tree FindMin")
	}
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Insert(k, ptr(k))
	}
	if v, ok := tr.FindMin(); !ok || *v != 1 {
		t.Fatalf("expected min 1, got %v ok=%v", v, ok)
	}
	if v, ok := tr.FindMax(); !ok || *v != 9 {
		t.Fatalf("expected max 9, got %v ok=%v", v, ok)
	}
	v, ok := tr.PopMin()
	if !ok || *v != 1 {
		t.Fatalf("expected popped min 1, got %v ok=%v", v, ok)
	}
	if tr.Contains(1) {
		t.Fatalf("expected 1 removed from tree")
	}
	v, ok = tr.PopMax()
	if !ok || *v != 9 {
		t.Fatalf("expected popped max 9, got %v ok=%v", v, ok)
	}
}

func TestNeighboursPresentKey(t *testing.T) {
	tr := newIntTree()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tr.Insert(k, ptr(k))
	}
	left, right, leftOK, rightOK := tr.Neighbours(30)
	if !leftOK || *left != 20 {
		t.Fatalf("expected left neighbour 20, got %v ok=%v", left, leftOK)
	}
	if !rightOK || *right != 40 {
		t.Fatalf("expected right neighbour 40, got %v ok=%v", right, rightOK)
	}
}

func TestNeighboursAbsentKeyBracketsInsertPosition(t *testing.T) {
	tr := newIntTree()
	for _, k := range []int{10, 20, 40, 50} {
		tr.Insert(k, ptr(k))
	}
	left, right, leftOK, rightOK := tr.Neighbours(30)
	if !leftOK || *left != 20 {
		t.Fatalf("expected left neighbour 20, got %v ok=%v", left, leftOK)
	}
	if !rightOK || *right != 40 {
		t.Fatalf("expected right neighbour 40, got %v ok=%v", right, rightOK)
	}
}

func TestNeighboursAtEdges(t *testing.T) {
	tr := newIntTree()
	for _, k := range []int{10, 20, 30} {
		tr.Insert(k, ptr(k))
	}
	_, _, leftOK, _ := tr.Neighbours(10)
	if leftOK {
		t.Fatalf("expected no left neighbour for minimum key")
	}
	_, _, _, rightOK := tr.Neighbours(30)
	if rightOK {
		t.Fatalf("expected no right neighbour for maximum key")
	}
}

func TestNeighbourOfPairDisambiguatesDuplicateKeys(t *testing.T) {
	tr := newIntTree()
	tr.Insert(10, ptr(10))
	a, b, c := ptr(20), ptr(20), ptr(20)
	tr.Insert(20, a)
	tr.Insert(20, b)
	tr.Insert(20, c)
	tr.Insert(30, ptr(30))

	// In-order position of duplicate-key nodes follows insertion order
	// because ties are always routed right: a, then b, then c.
	if left, ok := tr.LeftNeighbourOfPair(20, b); !ok || left != a {
		t.Fatalf("expected left neighbour of b to be a")
	}
	if right, ok := tr.RightNeighbourOfPair(20, b); !ok || right != c {
		t.Fatalf("expected right neighbour of b to be c")
	}
	if _, ok := tr.RightNeighbourOfPair(20, c); !ok {
		t.Fatalf("expected c to have a right neighbour (30)")
	}
	if right, _ := tr.RightNeighbourOfPair(20, c); *right != 30 {
		t.Fatalf("expected right neighbour of c to be 30, got %d", *right)
	}
}

func TestContains(t *testing.T) {
	tr := newIntTree()
	tr.Insert(1, ptr(1))
	if !tr.Contains(1) {
		t.Fatalf("expected tree to contain 1")
	}
	if tr.Contains(2) {
		t.Fatalf("expected tree to not contain 2")
	}
}

// TestRandomizedAgainstSortedSliceModel drives the tree with a long
// random sequence of inserts and removes, using one value pointer per
// key throughout (so a repeated insert of the same key is genuinely
// the identical (key, value) pair and correctly becomes a no-op),
// and checks the tree against a plain Go set kept in lockstep.
func TestRandomizedAgainstSortedSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := newIntTree()
	present := make(map[int]bool)
	values := make(map[int]*int)

	for i := 0; i < 500; i++ {
		k := rng.Intn(100)
		v, ok := values[k]
		if !ok {
			v = ptr(k)
			values[k] = v
		}
		if rng.Intn(3) != 2 {
			tr.Insert(k, v)
			present[k] = true
		} else {
			tr.Remove(k)
			delete(present, k)
		}
	}

	var model []int
	for k := range present {
		model = append(model, k)
	}
	sort.Ints(model)

	drained := tr.DrainInOrder()
	if len(drained) != len(model) {
		t.Fatalf("expected %d entries, got %d", len(model), len(drained))
	}
	for i := range model {
		if *drained[i] != model[i] {
			t.Fatalf("mismatch at %d: want %d got %d", i, model[i], *drained[i])
		}
	}
}
