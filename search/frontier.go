package search

import "container/heap"

// entry is a frontier element. seq orders equal priorities by insertion.
type entry[N comparable] struct {
	priority float64
	seq      uint64
	id       N
}

// entryHeap implements heap.Interface as a min-heap on (priority, seq).
type entryHeap[N comparable] []entry[N]

func (h entryHeap[N]) Len() int { return len(h) }

func (h entryHeap[N]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[N]) Push(x any) { *h = append(*h, x.(entry[N])) }

func (h *entryHeap[N]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is a min-priority queue of (priority, id) pairs.
//
// It never updates an entry in place: pushing an id again adds a second
// entry, and it is up to the caller to recognise the superseded one when it
// is popped. Equal priorities pop in insertion (FIFO) order.
type Frontier[N comparable] struct {
	items  entryHeap[N]
	seq    uint64
	queued map[N]int // id → number of entries currently in items
}

// NewFrontier returns an empty Frontier.
func NewFrontier[N comparable]() *Frontier[N] {
	return &Frontier[N]{queued: make(map[N]int)}
}

// Push adds an entry. Complexity: O(log n).
func (f *Frontier[N]) Push(priority float64, id N) {
	heap.Push(&f.items, entry[N]{priority: priority, seq: f.seq, id: id})
	f.seq++
	f.queued[id]++
}

// PopMin removes and returns the entry with the lowest priority, or
// ErrEmptyFrontier. Complexity: O(log n).
func (f *Frontier[N]) PopMin() (float64, N, error) {
	if len(f.items) == 0 {
		var zero N
		return 0, zero, ErrEmptyFrontier
	}
	e := heap.Pop(&f.items).(entry[N])
	if f.queued[e.id]--; f.queued[e.id] == 0 {
		delete(f.queued, e.id)
	}
	return e.priority, e.id, nil
}

// Contains reports whether at least one entry for id is queued, stale or not.
func (f *Frontier[N]) Contains(id N) bool {
	return f.queued[id] > 0
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[N]) Len() int { return len(f.items) }
