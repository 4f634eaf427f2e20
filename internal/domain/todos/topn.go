package todos

import (
	"container/heap"
	"sort"
)

// topN keeps the best (earliest-sorting) records seen so far, at most
// capacity of them, in O(log k) per offer. The backing heap keeps the worst
// survivor at the root so it can be compared against and evicted cheaply.
type topN struct {
	less     func(a, b *Todo) bool
	items    []Todo
	capacity int
}

func newTopN(capacity int, less func(a, b *Todo) bool) *topN {
	return &topN{
		less:     less,
		items:    make([]Todo, 0, capacity),
		capacity: capacity,
	}
}

// offer inserts t while there is room; once full, it replaces the current
// worst survivor only if t sorts strictly earlier.
func (h *topN) offer(t Todo) {
	if len(h.items) < h.capacity {
		heap.Push(h, t)
		return
	}

	if h.less(&t, &h.items[0]) {
		h.items[0] = t
		heap.Fix(h, 0)
	}
}

// sorted drains the survivors into presentation order.
func (h *topN) sorted() []Todo {
	out := h.items
	h.items = nil

	sort.Slice(out, func(i, j int) bool {
		return h.less(&out[i], &out[j])
	})

	return out
}

// heap.Interface; Less is inverted so the worst record sits at the root.

func (h *topN) Len() int { return len(h.items) }

func (h *topN) Less(i, j int) bool {
	return h.less(&h.items[j], &h.items[i])
}

func (h *topN) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *topN) Push(x any) {
	h.items = append(h.items, x.(Todo))
}

func (h *topN) Pop() any {
	last := len(h.items) - 1
	t := h.items[last]
	h.items = h.items[:last]
	return t
}
