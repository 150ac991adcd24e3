package search

import "container/heap"

// OpenSet is a priority queue of *State ordered by ascending f = g + h,
// ties broken by ascending h and then by insertion order. It supports
// membership lookup by Identity and in-place relaxation: pushing
// a state whose identity already exists and whose f is strictly better
// updates the existing entry (decrease-key) instead of inserting a
// duplicate, the paired heap-plus-index-map shape dijkstra.nodePQ uses
// under its "lazy decrease-key" strategy — except here the key is
// genuinely decreased in place via heap.Fix rather than left stale.
type OpenSet struct {
	items openHeap
	index map[Identity]*State
	next  int
}

// NewOpenSet returns an empty OpenSet.
func NewOpenSet() *OpenSet {
	return &OpenSet{items: make(openHeap, 0), index: make(map[Identity]*State)}
}

// Len returns the number of states currently open.
func (o *OpenSet) Len() int { return len(o.items) }

// Empty reports whether the open set has no states left.
func (o *OpenSet) Empty() bool { return len(o.items) == 0 }

// Contains returns the open state with the given identity, if any.
func (o *OpenSet) Contains(id Identity) (*State, bool) {
	s, ok := o.index[id]
	return s, ok
}

// Push inserts s, or — if a state with the same identity is already
// open — relaxes it in place when s.F() is strictly better. Returns true
// if s was inserted or improved an existing entry, false if a
// strictly-better-or-equal entry was already open.
func (o *OpenSet) Push(s *State) bool {
	id := s.Identity()
	if existing, ok := o.index[id]; ok {
		if s.F() >= existing.F() {
			return false
		}
		existing.G, existing.H, existing.Fuel = s.G, s.H, s.Fuel
		existing.Parent, existing.Turbo = s.Parent, s.Turbo
		heap.Fix(&o.items, existing.index)
		return true
	}

	s.seq = o.next
	o.next++
	o.index[id] = s
	heap.Push(&o.items, s)
	return true
}

// PopMin removes and returns the open state with minimum f, or nil if the
// open set is empty.
func (o *OpenSet) PopMin() *State {
	if len(o.items) == 0 {
		return nil
	}
	s := heap.Pop(&o.items).(*State)
	delete(o.index, s.Identity())
	return s
}

// openHeap implements heap.Interface over *State, ordered by f then h
// then insertion order.
type openHeap []*State

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].F() != h[j].F() {
		return h[i].F() < h[j].F()
	}
	if h[i].H != h[j].H {
		return h[i].H < h[j].H
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x interface{}) {
	s := x.(*State)
	s.index = len(*h)
	*h = append(*h, s)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*h = old[:n-1]
	return s
}
