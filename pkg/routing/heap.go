package routing

// pqItem is one entry in minHeap: a node and its tentative priority
// (distance, or f-score for A*).
type pqItem struct {
	node int64
	dist float64
}

// minHeap is a concrete binary min-heap over pqItem, avoiding the interface
// boxing container/heap would impose on a hot shortest-path loop. It never
// decreases a key in place — callers push a fresh entry on every
// improvement and rely on a dist/fScore map to recognize and skip stale
// pops (lazy decrease-key).
type minHeap struct {
	items []pqItem
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node int64, dist float64) {
	h.items = append(h.items, pqItem{node: node, dist: dist})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() (pqItem, bool) {
	if len(h.items) == 0 {
		return pqItem{}, false
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

// Min returns the top item's priority without popping it.
func (h *minHeap) Min() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0].dist, true
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].dist <= h.items[i].dist {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.items[l].dist < h.items[smallest].dist {
			smallest = l
		}
		if r < n && h.items[r].dist < h.items[smallest].dist {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

func (h *minHeap) reset() {
	h.items = h.items[:0]
}
