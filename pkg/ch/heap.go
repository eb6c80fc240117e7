package ch

// pqEntry is one entry in the contraction priority queue: a node and its
// current edge-difference priority (lower contracts first).
type pqEntry struct {
	node     int64
	priority float64
}

// priorityQueue is a concrete binary min-heap over pqEntry, the same
// lazy-decrease-key idiom pkg/routing's minHeap uses: never updates a key
// in place, just pushes a fresh entry and lets stale pops be recognized by
// the caller.
type priorityQueue struct {
	items []pqEntry
}

func (h *priorityQueue) Len() int { return len(h.items) }

func (h *priorityQueue) Push(node int64, priority float64) {
	h.items = append(h.items, pqEntry{node: node, priority: priority})
	h.siftUp(len(h.items) - 1)
}

func (h *priorityQueue) Pop() (pqEntry, bool) {
	if len(h.items) == 0 {
		return pqEntry{}, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top, true
}

func (h *priorityQueue) Min() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0].priority, true
}

func (h *priorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].priority <= h.items[i].priority {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *priorityQueue) siftDown(i int) {
	n := len(h.items)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.items[l].priority < h.items[smallest].priority {
			smallest = l
		}
		if r < n && h.items[r].priority < h.items[smallest].priority {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
