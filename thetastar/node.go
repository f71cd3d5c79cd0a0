package thetastar

import "github.com/theta-robotics/quailpath/geom"

// searchNode is the planner-internal representation of one grid cell during
// a single Search call. Identity is the cell coordinates. The start node is
// its own parent — a sentinel marking the root of the reconstruction walk,
// used in place of a language-level null/cycle in the parent tree.
type searchNode struct {
	cell   geom.Cell
	g      float64 // best-known cost from start; +Inf until relaxed
	h      float64 // cached Euclidean distance to goal, computed once
	parent *searchNode
	closed bool
}

// isStart reports whether n is the self-parented root of the search.
func (n *searchNode) isStart() bool {
	return n.parent == n
}

// heapEntry is one snapshot of a node's priority at the time it was pushed.
// The open set uses lazy decrease-key: a node may have several entries
// outstanding; an entry is stale once popped if its g no longer matches the
// node's current best g (the node was relaxed again after this entry was
// pushed), in which case it is discarded rather than reprocessed.
type heapEntry struct {
	node *searchNode
	g    float64
	f    float64
	seq  int // insertion order, for tie-breaking
}

func (e *heapEntry) stale() bool {
	return e.node.closed || e.g != e.node.g
}

// openHeap implements container/heap.Interface over []*heapEntry, ordered by
// f ascending, ties broken by lower h then by insertion order.
type openHeap []*heapEntry

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].node.h != h[j].node.h {
		return h[i].node.h < h[j].node.h
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) {
	*h = append(*h, x.(*heapEntry))
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}
