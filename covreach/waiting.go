package covreach

import "container/list"

// Order selects the waiting-set discipline of spec.md §4.8: BFS (FIFO) or
// DFS (LIFO). Both are implemented as a "linked hash-set" (spec.md §4.8
// "a linked hash-set backing is sufficient"): a doubly linked list for
// insertion-order iteration, paired with a map from node pointer to list
// element for O(1) Remove.
type Order int

const (
	// BFS pops the earliest-inserted node first.
	BFS Order = iota
	// DFS pops the most-recently-inserted node first.
	DFS
)

// waitingSet[N] is the generic linked hash-set backing both policies. N is
// instantiated with *subsumption.Node[S] by Run.
type waitingSet[N comparable] struct {
	order Order
	l     *list.List
	elems map[N]*list.Element
}

func newWaitingSet[N comparable](order Order) *waitingSet[N] {
	return &waitingSet[N]{order: order, l: list.New(), elems: make(map[N]*list.Element)}
}

// Insert appends n at the back of the list, unless it is already present.
// Complexity: O(1).
func (w *waitingSet[N]) Insert(n N) {
	if _, ok := w.elems[n]; ok {
		return
	}
	w.elems[n] = w.l.PushBack(n)
}

// Remove drops n from the waiting set if present. Complexity: O(1),
// satisfying spec.md §4.8's "remove(c) must operate in O(log N) or
// amortized constant".
func (w *waitingSet[N]) Remove(n N) {
	if e, ok := w.elems[n]; ok {
		w.l.Remove(e)
		delete(w.elems, n)
	}
}

// Pop removes and returns the next node per w's order: the front of the
// list for BFS, the back for DFS.
func (w *waitingSet[N]) Pop() N {
	var e *list.Element
	if w.order == DFS {
		e = w.l.Back()
	} else {
		e = w.l.Front()
	}
	w.l.Remove(e)
	n := e.Value.(N)
	delete(w.elems, n)
	return n
}

// Len reports the number of nodes currently waiting.
func (w *waitingSet[N]) Len() int { return w.l.Len() }

// insertBatch inserts every node of batch, in TS iteration order for BFS,
// or in reverse TS iteration order for DFS so that the first child (in TS
// order) ends up on top of the stack and is the first one popped back off
// — spec.md §5 "Ordering guarantees": "When using DFS, [siblings] are
// inserted in reverse order so the first child comes off first."
func insertBatch[N comparable](w *waitingSet[N], batch []N) {
	if w.order == DFS {
		for i := len(batch) - 1; i >= 0; i-- {
			w.Insert(batch[i])
		}
		return
	}
	for _, n := range batch {
		w.Insert(n)
	}
}
