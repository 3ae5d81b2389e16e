// SPDX-License-Identifier: MIT
//
// Package frontier provides the lazy-deletion priority queue shared by the
// Prim-style expansions in closetree.
//
// A Queue holds candidate crossing edges (Cost, From, To) between a settled
// vertex set and the rest of the graph. Callers Push every candidate and, on
// Pop, skip entries whose To vertex is already settled. No decrease-key is
// needed: stale entries stay in the heap until they surface.
//
// Ordering: ascending Cost, then From, then To. Ties therefore resolve the
// same way on every run.
//
// Complexity: Push and Pop are O(log N) where N is the number of live
// entries; over a full expansion N ≤ 2·E.
package frontier

import "container/heap"

// Entry is one candidate crossing edge.
type Entry struct {
	Cost int64 // priority
	From int   // settled endpoint
	To   int   // endpoint to settle
}

// less orders entries by (Cost, From, To).
func (a Entry) less(b Entry) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Queue is a binary min-heap of Entry. The zero value is ready to use.
type Queue struct {
	h entryHeap
}

// New returns a Queue with room for capacity entries.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{h: make(entryHeap, 0, capacity)}
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return len(q.h) }

// Push inserts e. Complexity: O(log N).
func (q *Queue) Push(e Entry) { heap.Push(&q.h, e) }

// Pop removes and returns the minimum entry.
// ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&q.h).(Entry), true
}

// entryHeap implements heap.Interface for a min-heap of Entry.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop removes the last element; called by heap.Pop after it moved the minimum there.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
